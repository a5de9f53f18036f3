package models

import "time"

// BlockedSlot is an ad-hoc closed interval, independent of the weekly schedule.
type BlockedSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Reason    string    `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
