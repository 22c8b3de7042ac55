package models

import "time"

// Child is one child profile owned by a parent account.
type Child struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AccountID uint      `json:"account_id" gorm:"index;not null"`
	Name      string    `json:"name" gorm:"size:120;not null"`
	Age       int       `json:"age"`
	BirthDate string    `json:"birth_date,omitempty" gorm:"size:10"` // YYYY-MM-DD
	Gender    string    `json:"gender,omitempty" gorm:"size:10"`     // "boy" | "girl"
	Avatar    string    `json:"avatar,omitempty" gorm:"type:text"`   // data-URL encoded image
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayAge returns the age in full years derived from the birth date.
// The birth date is the source of truth; the stored age is only a fallback
// for profiles created without one.
func (c *Child) DisplayAge(now time.Time) int {
	if c.BirthDate == "" {
		return c.Age
	}
	born, err := time.ParseInLocation("2006-01-02", c.BirthDate, now.Location())
	if err != nil {
		return c.Age
	}
	years := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
