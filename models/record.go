package models

import "time"

// Record is one parent-authored observation about a child. The category is
// one of the journal taxonomy values (achievement | happy | failure |
// trouble); CreatedAt is the submission timestamp the today view filters on.
type Record struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AccountID uint      `json:"account_id" gorm:"index;not null"`
	ChildID   uint      `json:"child_id" gorm:"index;not null"`
	Category  string    `json:"category" gorm:"size:20;not null"`
	Note      string    `json:"note" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
