package models

import "time"

const (
	SenderParent = "parent"
	SenderStaff  = "staff"
)

// Conversation is a durable parent-to-staff chat thread. The disposable AI
// assistant chat is a separate system and stores nothing here.
type Conversation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AccountID uint      `json:"account_id" gorm:"index;not null"`
	ChildID   uint      `json:"child_id" gorm:"index"`
	Subject   string    `json:"subject,omitempty" gorm:"size:120"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatMessage is one message in a conversation, tagged with the sender role
// and a per-message read flag maintained for the receiving side.
type ChatMessage struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ConversationID uint      `json:"conversation_id" gorm:"index;not null"`
	SenderRole     string    `json:"sender_role" gorm:"size:10;not null"` // parent | staff
	Content        string    `json:"content" gorm:"type:text;not null"`
	Read           bool      `json:"read" gorm:"not null;default:false"`
	CreatedAt      time.Time `json:"created_at"`
}
