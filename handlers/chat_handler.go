package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/addness-teambase/kyonodekita-sub002/models"
)

// ChatHandler serves the durable parent-to-staff chat. The parent side and
// the staff side share one table; each side marks the other side's messages
// read when it opens a conversation.
type ChatHandler struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

func NewChatHandler(db *gorm.DB, log *logrus.Logger) *ChatHandler {
	return &ChatHandler{DB: db, Log: log}
}

// GET /parent/chat/conversations
func (h *ChatHandler) ParentConversations(c echo.Context) error {
	uid, _ := accountID(c)
	var rows []models.Conversation
	if err := h.DB.Where("account_id = ?", uid).Order("updated_at DESC").Find(&rows).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /staff/chat/conversations
func (h *ChatHandler) StaffConversations(c echo.Context) error {
	var rows []models.Conversation
	if err := h.DB.Order("updated_at DESC").Find(&rows).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}

type startConversationReq struct {
	ChildID uint   `json:"child_id"`
	Subject string `json:"subject"`
}

// POST /parent/chat/conversations
func (h *ChatHandler) StartConversation(c echo.Context) error {
	var req startConversationReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	uid, _ := accountID(c)
	conv := models.Conversation{
		AccountID: uid,
		ChildID:   req.ChildID,
		Subject:   strings.TrimSpace(req.Subject),
	}
	if err := h.DB.Create(&conv).Error; err != nil {
		h.Log.WithError(err).Error("conversation create failed")
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "CREATE_FAILED"})
	}
	return c.JSON(http.StatusCreated, conv)
}

func (h *ChatHandler) conversation(c echo.Context, parentSide bool) (*models.Conversation, *echo.HTTPError) {
	id, err := mustID(c)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	var conv models.Conversation
	tx := h.DB.Where("id = ?", id)
	if parentSide {
		uid, _ := accountID(c)
		tx = tx.Where("account_id = ?", uid)
	}
	if err := tx.First(&conv).Error; err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return &conv, nil
}

// listMessages returns the ordered message list and marks the other side's
// messages as read.
func (h *ChatHandler) listMessages(c echo.Context, parentSide bool) error {
	conv, httpErr := h.conversation(c, parentSide)
	if httpErr != nil {
		return httpErr
	}

	otherRole := models.SenderStaff
	if !parentSide {
		otherRole = models.SenderParent
	}
	if err := h.DB.Model(&models.ChatMessage{}).
		Where("conversation_id = ? AND sender_role = ? AND read = false", conv.ID, otherRole).
		Update("read", true).Error; err != nil {
		h.Log.WithError(err).Warn("mark read failed")
	}

	var msgs []models.ChatMessage
	if err := h.DB.Where("conversation_id = ?", conv.ID).Order("created_at ASC, id ASC").Find(&msgs).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, msgs)
}

// GET /parent/chat/conversations/:id/messages
func (h *ChatHandler) ParentMessages(c echo.Context) error {
	return h.listMessages(c, true)
}

// GET /staff/chat/conversations/:id/messages
func (h *ChatHandler) StaffMessages(c echo.Context) error {
	return h.listMessages(c, false)
}

type postMessageReq struct {
	Content string `json:"content"`
}

func (h *ChatHandler) postMessage(c echo.Context, parentSide bool) error {
	conv, httpErr := h.conversation(c, parentSide)
	if httpErr != nil {
		return httpErr
	}
	var req postMessageReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "EMPTY_MESSAGE"})
	}

	role := models.SenderParent
	if !parentSide {
		role = models.SenderStaff
	}
	msg := models.ChatMessage{
		ConversationID: conv.ID,
		SenderRole:     role,
		Content:        content,
	}
	if err := h.DB.Create(&msg).Error; err != nil {
		h.Log.WithError(err).Error("chat message create failed")
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "CREATE_FAILED"})
	}
	// Bump the thread so conversation lists sort by activity.
	h.DB.Model(conv).Update("updated_at", msg.CreatedAt)

	return c.JSON(http.StatusCreated, msg)
}

// POST /parent/chat/conversations/:id/messages
func (h *ChatHandler) ParentPostMessage(c echo.Context) error {
	return h.postMessage(c, true)
}

// POST /staff/chat/conversations/:id/messages
func (h *ChatHandler) StaffPostMessage(c echo.Context) error {
	return h.postMessage(c, false)
}

// GET /parent/chat/unread-count
func (h *ChatHandler) ParentUnreadCount(c echo.Context) error {
	uid, _ := accountID(c)
	var n int64
	if err := h.DB.Model(&models.ChatMessage{}).
		Joins("JOIN conversations ON conversations.id = chat_messages.conversation_id").
		Where("conversations.account_id = ? AND chat_messages.sender_role = ? AND chat_messages.read = false",
			uid, models.SenderStaff).
		Count(&n).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"count": n})
}

// GET /staff/chat/unread-count
func (h *ChatHandler) StaffUnreadCount(c echo.Context) error {
	var n int64
	if err := h.DB.Model(&models.ChatMessage{}).
		Where("sender_role = ? AND read = false", models.SenderParent).
		Count(&n).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"count": n})
}
