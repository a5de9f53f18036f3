package booking

import (
	"context"
	"time"

	"github.com/VitalisHealthTech/clinic-scheduler/internal/audit"
	availdomain "github.com/VitalisHealthTech/clinic-scheduler/internal/domain/availability"
	domain "github.com/VitalisHealthTech/clinic-scheduler/internal/domain/booking"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/httperr"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/models"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/timezone"
)

// SlotInvalidator drops cached availability after a mutation. Nil disables it.
type SlotInvalidator interface {
	Invalidate(ctx context.Context)
}

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ProfessionalID uint
	ServiceID      uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo       domain.Repository
	schedules  availdomain.Source
	audit      *audit.Dispatcher
	cache      SlotInvalidator
	loc        *time.Location
	minAdvance time.Duration
}

func NewCreateAppointment(
	repo domain.Repository,
	schedules availdomain.Source,
	auditDispatcher *audit.Dispatcher,
	cache SlotInvalidator,
	loc *time.Location,
	minAdvanceMinutes int,
) *CreateAppointment {
	return &CreateAppointment{
		repo:       repo,
		schedules:  schedules,
		audit:      auditDispatcher,
		cache:      cache,
		loc:        loc,
		minAdvance: time.Duration(minAdvanceMinutes) * time.Minute,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		uc.loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := time.Now().In(uc.loc)
	if start.Before(now.Add(uc.minAdvance)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	if _, err := uc.repo.GetProfessional(ctx, in.ProfessionalID); err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// the requested interval must sit inside the day's free time
	// (hours, breaks, holidays, blocked ranges, existing appointments)
	day := timezone.Midnight(start, uc.loc)
	inputs, err := availdomain.Load(ctx, uc.schedules, day, &in.ProfessionalID)
	if err != nil {
		return nil, err
	}

	if !availdomain.Fits(inputs, start, end) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ProfessionalID: in.ProfessionalID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		StartTime:      start,
		EndTime:        end,
		Status:         string(domain.InitialStatus()),
		Notes:          in.Notes,
	}

	// the repository re-checks conflicts under a row lock before inserting
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   "appointment_created",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}
