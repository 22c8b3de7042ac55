package models

import "time"

// CalendarEvent is a parent-created, single-day calendar entry. Facility-wide
// and attendance-derived calendar entries are projections built at read time
// (see journal.BuildDaySchedule); only plain entries live in this table.
type CalendarEvent struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	AccountID   uint      `json:"account_id" gorm:"index;not null"`
	ChildID     uint      `json:"child_id" gorm:"index;not null"`
	Date        string    `json:"date" gorm:"type:date;not null"` // YYYY-MM-DD
	Title       string    `json:"title" gorm:"size:120;not null"`
	Time        string    `json:"time,omitempty" gorm:"size:5"` // HH:MM, optional
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Priority    string    `json:"priority,omitempty" gorm:"size:10"` // high | medium | low
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
