package models

import "time"

const (
	AttendanceStatusScheduled = "scheduled"
	AttendanceStatusAttended  = "attended"
	AttendanceStatusAbsent    = "absent"
)

// Attendance is a facility-recorded attendance fact for one child and day.
// Notes holds the combined condition/activities text in the labeled-paragraph
// convention; the two fields are always derived on read, never stored apart
// (see journal.ParseAttendanceNotes).
type Attendance struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	ChildID uint   `json:"child_id" gorm:"index;not null"`
	Date    string `json:"date" gorm:"size:10;not null"`   // YYYY-MM-DD
	Status  string `json:"status" gorm:"size:20;not null"` // scheduled | attended | absent

	ScheduledArrival   string `json:"scheduled_arrival,omitempty" gorm:"size:8"`   // HH:MM
	ScheduledDeparture string `json:"scheduled_departure,omitempty" gorm:"size:8"` // HH:MM
	ActualArrival      string `json:"actual_arrival,omitempty" gorm:"size:8"`      // HH:MM
	ActualDeparture    string `json:"actual_departure,omitempty" gorm:"size:8"`    // HH:MM

	Notes      string     `json:"notes,omitempty" gorm:"type:text"`
	RecordedBy string     `json:"recorded_by,omitempty" gorm:"size:120"`
	RecordedAt *time.Time `json:"recorded_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
