package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/addness-teambase/kyonodekita-sub002/models"
)

type ChildHandler struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

func NewChildHandler(db *gorm.DB, log *logrus.Logger) *ChildHandler {
	return &ChildHandler{DB: db, Log: log}
}

type childReq struct {
	Name      string `json:"name" validate:"required"`
	Age       int    `json:"age" validate:"gte=0,lte=18"`
	BirthDate string `json:"birth_date"`
	Gender    string `json:"gender" validate:"omitempty,oneof=boy girl"`
	Avatar    string `json:"avatar"`
}

// childView is the API shape of a child: age is always recomputed from the
// birth date when one exists.
type childView struct {
	models.Child
	Age int `json:"age"`
}

func view(ch models.Child, now time.Time) childView {
	return childView{Child: ch, Age: ch.DisplayAge(now)}
}

// GET /parent/children
func (h *ChildHandler) List(c echo.Context) error {
	uid, _ := accountID(c)
	var rows []models.Child
	if err := h.DB.Where("account_id = ?", uid).Order("id ASC").Find(&rows).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	now := time.Now()
	out := make([]childView, 0, len(rows))
	for _, ch := range rows {
		out = append(out, view(ch, now))
	}
	return c.JSON(http.StatusOK, out)
}

// POST /parent/children
func (h *ChildHandler) Create(c echo.Context) error {
	var req childReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.BirthDate != "" && !isDateYYYYMMDD(req.BirthDate) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_BIRTH_DATE"})
	}

	uid, _ := accountID(c)
	ch := models.Child{
		AccountID: uid,
		Name:      strings.TrimSpace(req.Name),
		Age:       req.Age,
		BirthDate: req.BirthDate,
		Gender:    req.Gender,
		Avatar:    req.Avatar,
	}
	if err := h.DB.Create(&ch).Error; err != nil {
		h.Log.WithError(err).Error("child create failed")
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "CREATE_FAILED"})
	}
	return c.JSON(http.StatusCreated, view(ch, time.Now()))
}

// PUT /parent/children/:id — full replace of the editable fields.
func (h *ChildHandler) Update(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	var req childReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.BirthDate != "" && !isDateYYYYMMDD(req.BirthDate) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_BIRTH_DATE"})
	}

	uid, _ := accountID(c)
	var ch models.Child
	if err := h.DB.Where("id = ? AND account_id = ?", id, uid).First(&ch).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}

	ch.Name = strings.TrimSpace(req.Name)
	ch.Age = req.Age
	ch.BirthDate = req.BirthDate
	ch.Gender = req.Gender
	ch.Avatar = req.Avatar
	if err := h.DB.Save(&ch).Error; err != nil {
		h.Log.WithError(err).Error("child update failed")
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "UPDATE_FAILED"})
	}
	return c.JSON(http.StatusOK, view(ch, time.Now()))
}

// DELETE /parent/children/:id
func (h *ChildHandler) Delete(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	uid, _ := accountID(c)
	res := h.DB.Where("id = ? AND account_id = ?", id, uid).Delete(&models.Child{})
	if res.Error != nil {
		h.Log.WithError(res.Error).Error("child delete failed")
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "DELETE_FAILED"})
	}
	if res.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
