package models

import "time"

// BusinessBreak is a recurring weekly closed window inside business hours.
// Multiple breaks per weekday are allowed.
type BusinessBreak struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DayOfWeek int `gorm:"index" json:"day_of_week"`

	BreakStart  string `gorm:"size:5" json:"break_start"` // "HH:MM"
	BreakEnd    string `gorm:"size:5" json:"break_end"`   // "HH:MM"
	Description string `gorm:"size:100" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
