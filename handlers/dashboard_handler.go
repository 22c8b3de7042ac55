package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/addness-teambase/kyonodekita-sub002/journal"
)

type DashboardHandler struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

func NewDashboardHandler(db *gorm.DB, log *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{DB: db, Log: log}
}

// GET /parent/dashboard/today?childId=
// Today's records for the active child plus per-category counts for the
// badges. Derived from the current list on every request, never cached.
func (h *DashboardHandler) Today(c echo.Context) error {
	childID := uint(atoiOr(c.QueryParam("childId"), 0))
	if childID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_CHILD"})
	}
	uid, _ := accountID(c)

	store := journal.NewRecordStore(gormRecordSource{db: h.DB}, uid)
	if err := store.Reload(c.Request().Context()); err != nil {
		h.Log.WithError(err).Error("dashboard reload failed")
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}

	now := time.Now()
	return c.JSON(http.StatusOK, map[string]any{
		"records": store.TodayView(childID, now),
		"counts":  store.CountByCategory(childID, now),
	})
}
