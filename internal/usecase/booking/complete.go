package booking

import (
	"context"
	"time"

	"github.com/VitalisHealthTech/clinic-scheduler/internal/audit"
	domain "github.com/VitalisHealthTech/clinic-scheduler/internal/domain/booking"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/models"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCompleteAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	loc *time.Location,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: auditDispatcher,
		loc:   loc,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	userID *uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Complete(ap, time.Now().In(uc.loc)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   userID,
			Action:   "appointment_completed",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}
