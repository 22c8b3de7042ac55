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

type CalendarHandler struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

func NewCalendarHandler(db *gorm.DB, log *logrus.Logger) *CalendarHandler {
	return &CalendarHandler{DB: db, Log: log}
}

// GET /parent/calendar/day?date=YYYY-MM-DD&childId=
// The aggregated day view: the child's own entries, facility announcements,
// and attendance-derived entries, merged and time-ordered. Rebuilt from the
// raw rows on every call.
func (h *CalendarHandler) Day(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	childID := uint(atoiOr(c.QueryParam("childId"), 0))
	if !isDateYYYYMMDD(date) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}
	if childID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_CHILD"})
	}
	uid, _ := accountID(c)
	if !h.ownsChild(uid, childID) {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}

	var own []models.CalendarEvent
	if err := h.DB.Where("account_id = ? AND child_id = ? AND date = ?", uid, childID, date).
		Order("id ASC").Find(&own).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	var facility []models.Announcement
	if err := h.DB.Where("date = ?", date).Order("id ASC").Find(&facility).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	var attendance []models.Attendance
	if err := h.DB.Where("child_id = ? AND date = ?", childID, date).Order("id ASC").Find(&attendance).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}

	return c.JSON(http.StatusOK, journal.BuildDaySchedule(date, childID, own, facility, attendance))
}

// GET /parent/calendar/events?childId=&from=&to=
func (h *CalendarHandler) ListEvents(c echo.Context) error {
	uid, _ := accountID(c)
	tx := h.DB.Where("account_id = ?", uid)
	if childID := atoiOr(c.QueryParam("childId"), 0); childID > 0 {
		tx = tx.Where("child_id = ?", childID)
	}
	from := strings.TrimSpace(c.QueryParam("from"))
	to := strings.TrimSpace(c.QueryParam("to"))
	if from != "" && to != "" {
		tx = tx.Where("date >= ? AND date <= ?", from, to)
	}
	var rows []models.CalendarEvent
	if err := tx.Order("date ASC, time ASC, id ASC").Find(&rows).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	for i := range rows {
		rows[i].Time = journal.NormalizeTime(rows[i].Time)
	}
	return c.JSON(http.StatusOK, rows)
}

type eventReq struct {
	ChildID     uint   `json:"child_id"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// POST /parent/calendar/events
func (h *CalendarHandler) CreateEvent(c echo.Context) error {
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if req.ChildID == 0 || strings.TrimSpace(req.Title) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	if !isDateYYYYMMDD(req.Date) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}
	req.Time = journal.NormalizeTime(req.Time)
	if req.Time != "" && !reHHMM.MatchString(req.Time) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_TIME"})
	}
	uid, _ := accountID(c)
	if !h.ownsChild(uid, req.ChildID) {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}

	ev := models.CalendarEvent{
		AccountID:   uid,
		ChildID:     req.ChildID,
		Date:        req.Date,
		Title:       strings.TrimSpace(req.Title),
		Time:        req.Time,
		Description: strings.TrimSpace(req.Description),
		Priority:    req.Priority,
	}
	if err := h.DB.Create(&ev).Error; err != nil {
		h.Log.WithError(err).Error("calendar event create failed")
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "CREATE_FAILED"})
	}
	return c.JSON(http.StatusCreated, ev)
}

// DELETE /parent/calendar/events/:id — plain entries only; facility-wide and
// attendance-derived entries are read-only projections.
func (h *CalendarHandler) DeleteEvent(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	uid, _ := accountID(c)
	res := h.DB.Where("id = ? AND account_id = ?", id, uid).Delete(&models.CalendarEvent{})
	if res.Error != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "DELETE_FAILED"})
	}
	if res.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

func (h *CalendarHandler) ownsChild(uid, childID uint) bool {
	var ch models.Child
	return h.DB.Where("id = ? AND account_id = ?", childID, uid).First(&ch).Error == nil
}
