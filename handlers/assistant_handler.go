package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/addness-teambase/kyonodekita-sub002/models"
	"github.com/addness-teambase/kyonodekita-sub002/services/assistant"
)

// AssistantHandler bridges parents to the conversational AI gateway. The
// server persists nothing for these chats; the conversation id is threaded
// back to the client, which keeps its own session history on the device.
type AssistantHandler struct {
	DB     *gorm.DB
	Log    *logrus.Logger
	Client *assistant.Client
}

func NewAssistantHandler(db *gorm.DB, log *logrus.Logger, client *assistant.Client) *AssistantHandler {
	return &AssistantHandler{DB: db, Log: log, Client: client}
}

type assistantChatReq struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
	ChildID        uint   `json:"child_id"`
}

// POST /parent/assistant/chat
func (h *AssistantHandler) Chat(c echo.Context) error {
	var req assistantChatReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if strings.TrimSpace(req.Message) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "EMPTY_MESSAGE"})
	}

	uid, _ := accountID(c)

	var child assistant.ChildContext
	if req.ChildID > 0 {
		var ch models.Child
		if err := h.DB.Where("id = ? AND account_id = ?", req.ChildID, uid).First(&ch).Error; err != nil {
			return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		child = assistant.ChildContext{
			Name:      ch.Name,
			Age:       ch.DisplayAge(time.Now()),
			Gender:    ch.Gender,
			Birthdate: ch.BirthDate,
		}
	}

	reply, convID := h.Client.Ask(
		c.Request().Context(),
		strings.TrimSpace(req.Message),
		strings.TrimSpace(req.ConversationID),
		"account-"+strconv.FormatUint(uint64(uid), 10),
		child,
	)

	return c.JSON(http.StatusOK, map[string]any{
		"reply":           reply,
		"conversation_id": convID,
	})
}
