package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/addness-teambase/kyonodekita-sub002/models"
	"github.com/addness-teambase/kyonodekita-sub002/services/scheduling"
)

// ConsultationHandler hands out booking links for paid expert consultations.
// Scheduling and payment both live inside the external provider; the app
// only opens the returned URL.
type ConsultationHandler struct {
	DB     *gorm.DB
	Log    *logrus.Logger
	Client *scheduling.Client
}

func NewConsultationHandler(db *gorm.DB, log *logrus.Logger, client *scheduling.Client) *ConsultationHandler {
	return &ConsultationHandler{DB: db, Log: log, Client: client}
}

type consultationReq struct {
	ChildID uint   `json:"child_id"`
	Topic   string `json:"topic"`
}

// POST /parent/consultations/link
func (h *ConsultationHandler) CreateLink(c echo.Context) error {
	var req consultationReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	uid, _ := accountID(c)

	childName := ""
	if req.ChildID > 0 {
		var ch models.Child
		if err := h.DB.Where("id = ? AND account_id = ?", req.ChildID, uid).First(&ch).Error; err == nil {
			childName = ch.Name
		}
	}

	url, err := h.Client.CreateBookingLink(
		c.Request().Context(),
		"account-"+strconv.FormatUint(uint64(uid), 10),
		childName,
		strings.TrimSpace(req.Topic),
	)
	if err != nil {
		h.Log.WithError(err).Error("booking link request failed")
		return echo.NewHTTPError(http.StatusBadGateway, map[string]any{"error": "BOOKING_UNAVAILABLE"})
	}
	return c.JSON(http.StatusOK, map[string]any{"booking_url": url})
}
