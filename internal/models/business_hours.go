package models

import "time"

// BusinessHours is the default open/close window for one weekday.
// DayOfWeek follows time.Weekday: 0=Sunday .. 6=Saturday.
type BusinessHours struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DayOfWeek int  `gorm:"uniqueIndex" json:"day_of_week"`
	IsOpen    bool `json:"is_open"`

	OpenTime  string `gorm:"size:5" json:"open_time"`  // "HH:MM"
	CloseTime string `gorm:"size:5" json:"close_time"` // "HH:MM"

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
