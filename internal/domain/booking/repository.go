package booking

import (
	"context"
	"time"

	"github.com/VitalisHealthTech/clinic-scheduler/internal/models"
)

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- Professional --------
	GetProfessional(
		ctx context.Context,
		professionalID uint,
	) (*models.Professional, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Appointment (create / conflict) --------
	// CreateAppointment re-checks for a conflicting scheduled appointment
	// under a row lock inside the same transaction before inserting.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (listing) --------
	ListAppointmentsForPeriod(
		ctx context.Context,
		professionalID *uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
