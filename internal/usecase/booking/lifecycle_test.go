package booking

import (
	"context"
	"testing"
	"time"

	"github.com/VitalisHealthTech/clinic-scheduler/internal/httperr"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/models"
)

func scheduledAppointment() *models.Appointment {
	return &models.Appointment{
		ID:             5,
		ProfessionalID: 7,
		ClientID:       42,
		ServiceID:      3,
		Status:         "scheduled",
	}
}

func TestCancelAppointment(t *testing.T) {
	var updated *models.Appointment
	repo := &fakeRepo{
		getAppointmentFn: func(ctx context.Context, appointmentID uint) (*models.Appointment, error) {
			return scheduledAppointment(), nil
		},
		updateFn: func(ctx context.Context, ap *models.Appointment) error {
			updated = ap
			return nil
		},
	}
	cache := &countingInvalidator{}
	uc := NewCancelAppointment(repo, nil, cache, time.UTC)

	ap, err := uc.Execute(context.Background(), 5, nil)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if ap.Status != "cancelled" {
		t.Fatalf("status = %s, want cancelled", ap.Status)
	}
	if ap.CancelledAt == nil {
		t.Fatalf("cancelled_at not stamped")
	}
	if updated == nil {
		t.Fatalf("state change not persisted")
	}
	if cache.calls != 1 {
		t.Fatalf("cancellation frees the slot and must invalidate the cache")
	}
}

func TestCancelAppointment_InvalidState(t *testing.T) {
	for _, status := range []string{"cancelled", "completed"} {
		repo := &fakeRepo{
			getAppointmentFn: func(ctx context.Context, appointmentID uint) (*models.Appointment, error) {
				ap := scheduledAppointment()
				ap.Status = status
				return ap, nil
			},
			updateFn: func(ctx context.Context, ap *models.Appointment) error {
				t.Fatalf("update must not run for status %s", status)
				return nil
			},
		}
		cache := &countingInvalidator{}
		uc := NewCancelAppointment(repo, nil, cache, time.UTC)

		_, err := uc.Execute(context.Background(), 5, nil)
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("status %s: error = %v, want invalid_state", status, err)
		}
		if cache.calls != 0 {
			t.Fatalf("status %s: rejected cancel must not invalidate the cache", status)
		}
	}
}

func TestCompleteAppointment(t *testing.T) {
	var updated *models.Appointment
	repo := &fakeRepo{
		getAppointmentFn: func(ctx context.Context, appointmentID uint) (*models.Appointment, error) {
			return scheduledAppointment(), nil
		},
		updateFn: func(ctx context.Context, ap *models.Appointment) error {
			updated = ap
			return nil
		},
	}
	uc := NewCompleteAppointment(repo, nil, time.UTC)

	ap, err := uc.Execute(context.Background(), 5, nil)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if ap.Status != "completed" {
		t.Fatalf("status = %s, want completed", ap.Status)
	}
	if ap.CompletedAt == nil {
		t.Fatalf("completed_at not stamped")
	}
	if updated == nil {
		t.Fatalf("state change not persisted")
	}
}

func TestCompleteAppointment_InvalidState(t *testing.T) {
	repo := &fakeRepo{
		getAppointmentFn: func(ctx context.Context, appointmentID uint) (*models.Appointment, error) {
			ap := scheduledAppointment()
			ap.Status = "cancelled"
			return ap, nil
		},
	}
	uc := NewCompleteAppointment(repo, nil, time.UTC)

	_, err := uc.Execute(context.Background(), 5, nil)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("error = %v, want invalid_state", err)
	}
}

func TestListAppointmentsByDate(t *testing.T) {
	day := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		listFn: func(ctx context.Context, professionalID *uint, start, end time.Time) ([]models.Appointment, error) {
			if !start.Equal(day) || !end.Equal(day.Add(24*time.Hour)) {
				t.Errorf("window = %v..%v, want the full day", start, end)
			}
			return []models.Appointment{
				{
					ID:           5,
					StartTime:    start.Add(9 * time.Hour),
					EndTime:      start.Add(9*time.Hour + 30*time.Minute),
					Status:       "scheduled",
					Client:       models.Client{Name: "Maria Souza"},
					Service:      models.Service{Name: "Consultation"},
					Professional: models.Professional{Name: "Dr. Silva"},
				},
			}, nil
		},
	}
	uc := NewListAppointmentsByDate(repo, time.UTC)

	got, err := uc.Execute(context.Background(), nil, day.Add(15*time.Hour))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("rows = %d, want 1", len(got))
	}
	row := got[0]
	if row.ClientName != "Maria Souza" || row.ServiceName != "Consultation" || row.ProfessionalName != "Dr. Silva" {
		t.Fatalf("row = %+v", row)
	}
}
