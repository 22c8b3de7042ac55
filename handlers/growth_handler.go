package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/addness-teambase/kyonodekita-sub002/models"
)

type GrowthHandler struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

func NewGrowthHandler(db *gorm.DB, log *logrus.Logger) *GrowthHandler {
	return &GrowthHandler{DB: db, Log: log}
}

func (h *GrowthHandler) ownsChild(c echo.Context, childID uint) bool {
	uid, _ := accountID(c)
	var ch models.Child
	return h.DB.Where("id = ? AND account_id = ?", childID, uid).First(&ch).Error == nil
}

// GET /parent/growth?childId=
func (h *GrowthHandler) List(c echo.Context) error {
	childID := uint(atoiOr(c.QueryParam("childId"), 0))
	if childID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_CHILD"})
	}
	if !h.ownsChild(c, childID) {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	var rows []models.GrowthRecord
	if err := h.DB.Where("child_id = ?", childID).Order("date ASC, id ASC").Find(&rows).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}

type growthReq struct {
	ChildID   uint    `json:"child_id"`
	Date      string  `json:"date"`
	HeightCM  float64 `json:"height_cm"`
	WeightKG  float64 `json:"weight_kg"`
	Milestone string  `json:"milestone"`
	Note      string  `json:"note"`
}

// POST /parent/growth
func (h *GrowthHandler) Create(c echo.Context) error {
	var req growthReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if req.ChildID == 0 || !isDateYYYYMMDD(req.Date) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	if !h.ownsChild(c, req.ChildID) {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}

	rec := models.GrowthRecord{
		ChildID:   req.ChildID,
		Date:      req.Date,
		HeightCM:  req.HeightCM,
		WeightKG:  req.WeightKG,
		Milestone: strings.TrimSpace(req.Milestone),
		Note:      strings.TrimSpace(req.Note),
	}
	if err := h.DB.Create(&rec).Error; err != nil {
		h.Log.WithError(err).Error("growth record create failed")
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "CREATE_FAILED"})
	}
	return c.JSON(http.StatusCreated, rec)
}

// DELETE /parent/growth/:id
func (h *GrowthHandler) Delete(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	var rec models.GrowthRecord
	if err := h.DB.First(&rec, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	if !h.ownsChild(c, rec.ChildID) {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	if err := h.DB.Delete(&rec).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "DELETE_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
