package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/addness-teambase/kyonodekita-sub002/journal"
	"github.com/addness-teambase/kyonodekita-sub002/models"
)

type AnnouncementHandler struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

func NewAnnouncementHandler(db *gorm.DB, log *logrus.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{DB: db, Log: log}
}

// GET /parent/announcements?from=&to=  (also mounted under /staff)
func (h *AnnouncementHandler) List(c echo.Context) error {
	tx := h.DB.Model(&models.Announcement{})
	from := strings.TrimSpace(c.QueryParam("from"))
	to := strings.TrimSpace(c.QueryParam("to"))
	if from != "" && to != "" {
		tx = tx.Where("date >= ? AND date <= ?", from, to)
	}
	var rows []models.Announcement
	if err := tx.Order("date ASC, time ASC, id ASC").Find(&rows).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	for i := range rows {
		rows[i].Time = journal.NormalizeTime(rows[i].Time)
	}
	return c.JSON(http.StatusOK, rows)
}

type announcementReq struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Priority string `json:"priority"`
}

// POST /staff/announcements
func (h *AnnouncementHandler) Create(c echo.Context) error {
	var req announcementReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if strings.TrimSpace(req.Title) == "" || !isDateYYYYMMDD(req.Date) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	req.Time = journal.NormalizeTime(req.Time)
	if req.Time != "" && !reHHMM.MatchString(req.Time) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_TIME"})
	}

	uid, _ := accountID(c)
	an := models.Announcement{
		Title:     strings.TrimSpace(req.Title),
		Body:      strings.TrimSpace(req.Body),
		Date:      req.Date,
		Time:      req.Time,
		Priority:  req.Priority,
		CreatedBy: uid,
	}
	if err := h.DB.Create(&an).Error; err != nil {
		h.Log.WithError(err).Error("announcement create failed")
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "CREATE_FAILED"})
	}
	return c.JSON(http.StatusCreated, an)
}

// DELETE /staff/announcements/:id
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	res := h.DB.Delete(&models.Announcement{}, id)
	if res.Error != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "DELETE_FAILED"})
	}
	if res.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
