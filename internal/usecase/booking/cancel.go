package booking

import (
	"context"
	"time"

	"github.com/VitalisHealthTech/clinic-scheduler/internal/audit"
	domain "github.com/VitalisHealthTech/clinic-scheduler/internal/domain/booking"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache SlotInvalidator
	loc   *time.Location
}

func NewCancelAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	cache SlotInvalidator,
	loc *time.Location,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: auditDispatcher,
		cache: cache,
		loc:   loc,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	userID *uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap, time.Now().In(uc.loc)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// the slot is free again
	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   userID,
			Action:   "appointment_cancelled",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}
