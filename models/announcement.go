package models

import "time"

// Announcement is a facility-wide notice shown to every parent on the
// calendar day it targets. Parents never mutate these.
type Announcement struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:120;not null"`
	Body      string    `json:"body,omitempty" gorm:"type:text"`
	Date      string    `json:"date" gorm:"type:date;not null"` // YYYY-MM-DD
	Time      string    `json:"time,omitempty" gorm:"size:5"`   // HH:MM, optional
	Priority  string    `json:"priority,omitempty" gorm:"size:10"`
	CreatedBy uint      `json:"created_by"` // staff id
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
