package availability

import (
	"time"

	"github.com/VitalisHealthTech/clinic-scheduler/internal/models"
)

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayInputs carries everything the engine reads to compute one day.
// Date must be midnight of the queried day in the clinic location; all
// datetimes in Blocked and Appointments are expected in the same location.
type DayInputs struct {
	Date         time.Time
	Hours        *models.BusinessHours
	Override     *models.ProfessionalSchedule
	Breaks       []models.BusinessBreak
	Holidays     []models.BusinessHoliday
	Blocked      []models.BlockedSlot
	Appointments []models.Appointment
}

// HoursWindow is the effective open window echoed back on open days.
type HoursWindow struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type DayAvailability struct {
	Date            string       `json:"date"`
	IsOpen          bool         `json:"is_open"`
	BusinessHours   *HoursWindow `json:"business_hours,omitempty"`
	AvailableSlots  []TimeSlot   `json:"available_slots"`
	DurationMinutes int          `json:"duration_minutes"`
	Message         string       `json:"message,omitempty"`
}
