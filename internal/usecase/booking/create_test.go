package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/VitalisHealthTech/clinic-scheduler/internal/httperr"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/models"
)

type fakeRepo struct {
	getServiceFn        func(ctx context.Context, serviceID uint) (*models.Service, error)
	getProfessionalFn   func(ctx context.Context, professionalID uint) (*models.Professional, error)
	getOrCreateClientFn func(ctx context.Context, name, phone, email string) (*models.Client, error)
	createFn            func(ctx context.Context, ap *models.Appointment) error
	getAppointmentFn    func(ctx context.Context, appointmentID uint) (*models.Appointment, error)
	updateFn            func(ctx context.Context, ap *models.Appointment) error
	listFn              func(ctx context.Context, professionalID *uint, start, end time.Time) ([]models.Appointment, error)
}

func (f *fakeRepo) GetService(ctx context.Context, serviceID uint) (*models.Service, error) {
	if f.getServiceFn != nil {
		return f.getServiceFn(ctx, serviceID)
	}
	return &models.Service{ID: serviceID, Name: "Consultation", DurationMin: 30, Active: true}, nil
}

func (f *fakeRepo) GetProfessional(ctx context.Context, professionalID uint) (*models.Professional, error) {
	if f.getProfessionalFn != nil {
		return f.getProfessionalFn(ctx, professionalID)
	}
	return &models.Professional{ID: professionalID, Name: "Dr. Silva", Active: true}, nil
}

func (f *fakeRepo) GetOrCreateClient(ctx context.Context, name, phone, email string) (*models.Client, error) {
	if f.getOrCreateClientFn != nil {
		return f.getOrCreateClientFn(ctx, name, phone, email)
	}
	return &models.Client{ID: 42, Name: name, Phone: phone, Email: email}, nil
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.createFn != nil {
		return f.createFn(ctx, ap)
	}
	ap.ID = 1
	return nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, appointmentID uint) (*models.Appointment, error) {
	if f.getAppointmentFn != nil {
		return f.getAppointmentFn(ctx, appointmentID)
	}
	return nil, errors.New("not found")
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, ap)
	}
	return nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(ctx context.Context, professionalID *uint, start, end time.Time) ([]models.Appointment, error) {
	if f.listFn != nil {
		return f.listFn(ctx, professionalID, start, end)
	}
	return nil, nil
}

type openSource struct {
	appointments []models.Appointment
}

func (s *openSource) BusinessHoursFor(ctx context.Context, weekday int) (*models.BusinessHours, error) {
	return &models.BusinessHours{DayOfWeek: weekday, IsOpen: true, OpenTime: "08:00", CloseTime: "18:00"}, nil
}

func (s *openSource) BreaksFor(ctx context.Context, weekday int) ([]models.BusinessBreak, error) {
	return nil, nil
}

func (s *openSource) Holidays(ctx context.Context) ([]models.BusinessHoliday, error) {
	return nil, nil
}

func (s *openSource) BlockedSlotsBetween(ctx context.Context, start, end time.Time) ([]models.BlockedSlot, error) {
	return nil, nil
}

func (s *openSource) AppointmentsBetween(ctx context.Context, start, end time.Time, professionalID *uint) ([]models.Appointment, error) {
	return s.appointments, nil
}

func (s *openSource) ProfessionalScheduleFor(ctx context.Context, professionalID uint, weekday int) (*models.ProfessionalSchedule, error) {
	return nil, nil
}

type countingInvalidator struct {
	calls int
}

func (c *countingInvalidator) Invalidate(ctx context.Context) {
	c.calls++
}

// futureBooking returns a date/time pair safely beyond the minimum advance,
// anchored at 10:00 so it always falls inside the 08:00-18:00 test hours.
func futureBooking() (string, string, time.Time) {
	day := time.Now().In(time.UTC).AddDate(0, 0, 2)
	start := time.Date(day.Year(), day.Month(), day.Day(), 10, 0, 0, 0, time.UTC)
	return start.Format("2006-01-02"), "10:00", start
}

func validInput() CreateAppointmentInput {
	date, tm, _ := futureBooking()
	return CreateAppointmentInput{
		ProfessionalID: 7,
		ServiceID:      3,
		ClientName:     "Maria Souza",
		ClientPhone:    "+5511999990000",
		ClientEmail:    "maria@example.com",
		Date:           date,
		Time:           tm,
	}
}

func TestCreateAppointment_Success(t *testing.T) {
	var created *models.Appointment
	repo := &fakeRepo{
		createFn: func(ctx context.Context, ap *models.Appointment) error {
			ap.ID = 99
			created = ap
			return nil
		},
	}
	cache := &countingInvalidator{}
	uc := NewCreateAppointment(repo, &openSource{}, nil, cache, time.UTC, 60)

	date, tm, start := futureBooking()
	in := validInput()
	in.Date, in.Time = date, tm

	ap, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if !ap.StartTime.Equal(start) {
		t.Fatalf("start = %v, want %v", ap.StartTime, start)
	}
	if !ap.EndTime.Equal(start.Add(30 * time.Minute)) {
		t.Fatalf("end = %v, want start plus the service duration", ap.EndTime)
	}
	if ap.Status != "scheduled" {
		t.Fatalf("status = %s, want scheduled", ap.Status)
	}
	if ap.ClientID != 42 || ap.ProfessionalID != 7 || ap.ServiceID != 3 {
		t.Fatalf("references = %+v", ap)
	}
	if created == nil || created.ID != 99 {
		t.Fatalf("appointment not persisted")
	}
	if cache.calls != 1 {
		t.Fatalf("cache invalidations = %d, want 1", cache.calls)
	}
}

func TestCreateAppointment_InvalidDateOrTime(t *testing.T) {
	uc := NewCreateAppointment(&fakeRepo{}, &openSource{}, nil, nil, time.UTC, 60)

	for _, in := range []CreateAppointmentInput{
		func() CreateAppointmentInput { i := validInput(); i.Date = "05/01/2026"; return i }(),
		func() CreateAppointmentInput { i := validInput(); i.Time = "10h30"; return i }(),
	} {
		_, err := uc.Execute(context.Background(), in)
		if !httperr.IsBusiness(err, "invalid_date_or_time") {
			t.Fatalf("error = %v, want invalid_date_or_time", err)
		}
	}
}

func TestCreateAppointment_TooSoon(t *testing.T) {
	uc := NewCreateAppointment(&fakeRepo{}, &openSource{}, nil, nil, time.UTC, 60)

	soon := time.Now().In(time.UTC).Add(10 * time.Minute)
	in := validInput()
	in.Date = soon.Format("2006-01-02")
	in.Time = soon.Format("15:04")

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "too_soon") {
		t.Fatalf("error = %v, want too_soon", err)
	}
}

func TestCreateAppointment_ProfessionalNotFound(t *testing.T) {
	repo := &fakeRepo{
		getProfessionalFn: func(ctx context.Context, professionalID uint) (*models.Professional, error) {
			return nil, errors.New("record not found")
		},
	}
	uc := NewCreateAppointment(repo, &openSource{}, nil, nil, time.UTC, 60)

	_, err := uc.Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, "professional_not_found") {
		t.Fatalf("error = %v, want professional_not_found", err)
	}
}

func TestCreateAppointment_ServiceNotFound(t *testing.T) {
	repo := &fakeRepo{
		getServiceFn: func(ctx context.Context, serviceID uint) (*models.Service, error) {
			return nil, errors.New("record not found")
		},
	}
	uc := NewCreateAppointment(repo, &openSource{}, nil, nil, time.UTC, 60)

	_, err := uc.Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("error = %v, want service_not_found", err)
	}
}

func TestCreateAppointment_SlotUnavailable(t *testing.T) {
	date, tm, start := futureBooking()
	src := &openSource{
		appointments: []models.Appointment{
			{StartTime: start.Add(-15 * time.Minute), EndTime: start.Add(15 * time.Minute)},
		},
	}
	cache := &countingInvalidator{}
	uc := NewCreateAppointment(&fakeRepo{}, src, nil, cache, time.UTC, 60)

	in := validInput()
	in.Date, in.Time = date, tm

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "slot_unavailable") {
		t.Fatalf("error = %v, want slot_unavailable", err)
	}
	if cache.calls != 0 {
		t.Fatalf("rejected booking must not invalidate the cache")
	}
}

func TestCreateAppointment_ConflictFromRepository(t *testing.T) {
	// a concurrent booking can slip between the free-time check and the
	// insert; the repository's locked re-check surfaces it as time_conflict
	repo := &fakeRepo{
		createFn: func(ctx context.Context, ap *models.Appointment) error {
			return httperr.ErrBusiness("time_conflict")
		},
	}
	cache := &countingInvalidator{}
	uc := NewCreateAppointment(repo, &openSource{}, nil, cache, time.UTC, 60)

	_, err := uc.Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("error = %v, want time_conflict", err)
	}
	if cache.calls != 0 {
		t.Fatalf("failed insert must not invalidate the cache")
	}
}
