package models

import "time"

// GrowthRecord is a dated growth/milestone entry for one child.
type GrowthRecord struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ChildID   uint      `json:"child_id" gorm:"index;not null"`
	Date      string    `json:"date" gorm:"type:date;not null"` // YYYY-MM-DD
	HeightCM  float64   `json:"height_cm,omitempty"`
	WeightKG  float64   `json:"weight_kg,omitempty"`
	Milestone string    `json:"milestone,omitempty" gorm:"size:200"`
	Note      string    `json:"note,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
