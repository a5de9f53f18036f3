package models

import "time"

// BusinessHoliday closes the clinic for a whole calendar date.
// When IsRecurring, only month and day are compared (the stored year is ignored).
type BusinessHoliday struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date        time.Time `gorm:"index" json:"date"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	IsRecurring bool      `gorm:"default:false" json:"is_recurring"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
