package models

import "time"

type Professional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:100" json:"specialty"`
	Email     string `gorm:"size:100" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfessionalSchedule overrides the general business hours for one
// professional on one weekday. When IsAvailable is false the professional
// takes no appointments that day even if the clinic is open.
type ProfessionalSchedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfessionalID uint         `gorm:"index" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"professional"`

	DayOfWeek int `json:"day_of_week"`

	StartTime   string `gorm:"size:5" json:"start_time"` // "HH:MM"
	EndTime     string `gorm:"size:5" json:"end_time"`   // "HH:MM"
	IsAvailable bool   `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
