package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/addness-teambase/kyonodekita-sub002/journal"
	"github.com/addness-teambase/kyonodekita-sub002/models"
)

type AttendanceHandler struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

func NewAttendanceHandler(db *gorm.DB, log *logrus.Logger) *AttendanceHandler {
	return &AttendanceHandler{DB: db, Log: log}
}

// attendanceView adds the condition/activities sections, derived from the
// raw notes on every read. They are never stored independently.
type attendanceView struct {
	models.Attendance
	Condition  string `json:"condition,omitempty"`
	Activities string `json:"activities,omitempty"`
}

func attendanceViews(rows []models.Attendance) []attendanceView {
	out := make([]attendanceView, 0, len(rows))
	for _, at := range rows {
		at.ScheduledArrival = journal.NormalizeTime(at.ScheduledArrival)
		at.ScheduledDeparture = journal.NormalizeTime(at.ScheduledDeparture)
		at.ActualArrival = journal.NormalizeTime(at.ActualArrival)
		at.ActualDeparture = journal.NormalizeTime(at.ActualDeparture)
		condition, activities := journal.ParseAttendanceNotes(at.Notes)
		out = append(out, attendanceView{Attendance: at, Condition: condition, Activities: activities})
	}
	return out
}

// GET /parent/attendance?childId=&start=&end=
func (h *AttendanceHandler) ParentList(c echo.Context) error {
	childID := uint(atoiOr(c.QueryParam("childId"), 0))
	if childID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_CHILD"})
	}
	uid, _ := accountID(c)
	var ch models.Child
	if err := h.DB.Where("id = ? AND account_id = ?", childID, uid).First(&ch).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}

	tx := h.DB.Where("child_id = ?", childID)
	start := strings.TrimSpace(c.QueryParam("start"))
	end := strings.TrimSpace(c.QueryParam("end"))
	if start != "" && end != "" {
		tx = tx.Where("date >= ? AND date <= ?", start, end)
	}
	var rows []models.Attendance
	if err := tx.Order("date ASC, id ASC").Find(&rows).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, attendanceViews(rows))
}

// GET /staff/attendance?date=&childId=&statuses=scheduled,attended,absent
func (h *AttendanceHandler) StaffList(c echo.Context) error {
	tx := h.DB.Model(&models.Attendance{})
	if date := strings.TrimSpace(c.QueryParam("date")); date != "" {
		tx = tx.Where("date = ?", date)
	}
	if childID := atoiOr(c.QueryParam("childId"), 0); childID > 0 {
		tx = tx.Where("child_id = ?", childID)
	}
	if statuses := strings.TrimSpace(c.QueryParam("statuses")); statuses != "" {
		parts := splitCSV(statuses)
		if len(parts) > 0 {
			tx = tx.Where("status IN ?", parts)
		}
	}
	var rows []models.Attendance
	if err := tx.Order("date ASC, child_id ASC, id ASC").Find(&rows).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, attendanceViews(rows))
}

type attendanceReq struct {
	ChildID            uint   `json:"child_id"`
	Date               string `json:"date"`
	Status             string `json:"status"`
	ScheduledArrival   string `json:"scheduled_arrival"`
	ScheduledDeparture string `json:"scheduled_departure"`
	ActualArrival      string `json:"actual_arrival"`
	ActualDeparture    string `json:"actual_departure"`
	Condition          string `json:"condition"`
	Activities         string `json:"activities"`
}

func validStatus(s string) bool {
	switch s {
	case models.AttendanceStatusScheduled, models.AttendanceStatusAttended, models.AttendanceStatusAbsent:
		return true
	}
	return false
}

// POST /staff/attendance — record a schedule or a realized attendance. One
// row per child and day: a later submission for the same pair updates the
// existing row in place (a schedule becoming a realized record is the
// common path).
func (h *AttendanceHandler) Record(c echo.Context) error {
	var req attendanceReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if req.ChildID == 0 || !isDateYYYYMMDD(req.Date) || !validStatus(req.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	for _, t := range []string{req.ScheduledArrival, req.ScheduledDeparture, req.ActualArrival, req.ActualDeparture} {
		if t != "" && !reHHMM.MatchString(journal.NormalizeTime(t)) {
			return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_TIME"})
		}
	}

	recorder, _ := c.Get("name").(string)
	now := time.Now()

	var rec models.Attendance
	err := h.DB.Where("child_id = ? AND date = ?", req.ChildID, req.Date).First(&rec).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}

	rec.ChildID = req.ChildID
	rec.Date = req.Date
	rec.Status = req.Status
	rec.ScheduledArrival = journal.NormalizeTime(req.ScheduledArrival)
	rec.ScheduledDeparture = journal.NormalizeTime(req.ScheduledDeparture)
	rec.ActualArrival = journal.NormalizeTime(req.ActualArrival)
	rec.ActualDeparture = journal.NormalizeTime(req.ActualDeparture)
	rec.Notes = journal.FormatAttendanceNotes(req.Condition, req.Activities)
	if req.Status != models.AttendanceStatusScheduled {
		rec.RecordedBy = recorder
		rec.RecordedAt = &now
	}

	if err := h.DB.Save(&rec).Error; err != nil {
		h.Log.WithError(err).Error("attendance save failed")
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "SAVE_FAILED"})
	}
	return c.JSON(http.StatusOK, attendanceViews([]models.Attendance{rec})[0])
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
