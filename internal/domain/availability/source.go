package availability

import (
	"context"
	"time"

	"github.com/VitalisHealthTech/clinic-scheduler/internal/models"
)

// Source reads the collections the engine computes from. Implementations
// return (nil, nil) when a per-weekday row does not exist.
type Source interface {
	BusinessHoursFor(
		ctx context.Context,
		weekday int,
	) (*models.BusinessHours, error)

	BreaksFor(
		ctx context.Context,
		weekday int,
	) ([]models.BusinessBreak, error)

	Holidays(
		ctx context.Context,
	) ([]models.BusinessHoliday, error)

	BlockedSlotsBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.BlockedSlot, error)

	AppointmentsBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
		professionalID *uint,
	) ([]models.Appointment, error)

	ProfessionalScheduleFor(
		ctx context.Context,
		professionalID uint,
		weekday int,
	) (*models.ProfessionalSchedule, error)
}
