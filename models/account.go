package models

import "time"

// Account is a parent (guardian) login.
type Account struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Email       string    `json:"email" gorm:"uniqueIndex;size:120"`
	Phone       string    `json:"phone" gorm:"size:20"`
	Password    string    `json:"-" gorm:"not null"` // bcrypt hash
	Name        string    `json:"name" gorm:"size:120"`
	AgreedTerms bool      `json:"agreed_terms" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
