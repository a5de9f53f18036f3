package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/VitalisHealthTech/clinic-scheduler/internal/domain/availability"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/models"
)

// ScheduleGormRepository reads the five schedule collections the
// availability engine consumes.
type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Business hours
// --------------------------------------------------

func (r *ScheduleGormRepository) BusinessHoursFor(
	ctx context.Context,
	weekday int,
) (*models.BusinessHours, error) {

	var hours models.BusinessHours
	err := r.db.WithContext(ctx).
		Where("day_of_week = ?", weekday).
		First(&hours).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		// no row means the clinic never opens that weekday
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hours, nil
}

// --------------------------------------------------
// Breaks
// --------------------------------------------------

func (r *ScheduleGormRepository) BreaksFor(
	ctx context.Context,
	weekday int,
) ([]models.BusinessBreak, error) {

	var breaks []models.BusinessBreak
	if err := r.db.WithContext(ctx).
		Where("day_of_week = ?", weekday).
		Order("break_start ASC").
		Find(&breaks).Error; err != nil {
		return nil, err
	}
	return breaks, nil
}

// --------------------------------------------------
// Holidays
// --------------------------------------------------

func (r *ScheduleGormRepository) Holidays(
	ctx context.Context,
) ([]models.BusinessHoliday, error) {

	var holidays []models.BusinessHoliday
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&holidays).Error; err != nil {
		return nil, err
	}
	return holidays, nil
}

// --------------------------------------------------
// Blocked slots
// --------------------------------------------------

func (r *ScheduleGormRepository) BlockedSlotsBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.BlockedSlot, error) {

	var blocked []models.BlockedSlot
	if err := r.db.WithContext(ctx).
		Where("start_time < ? AND end_time > ?", end, start).
		Order("start_time ASC").
		Find(&blocked).Error; err != nil {
		return nil, err
	}
	return blocked, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *ScheduleGormRepository) AppointmentsBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
	professionalID *uint,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"status = 'scheduled' AND start_time < ? AND end_time > ?",
			end, start,
		)

	if professionalID != nil {
		q = q.Where("professional_id = ?", *professionalID)
	}

	var apps []models.Appointment
	if err := q.Order("start_time ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Professional schedules
// --------------------------------------------------

func (r *ScheduleGormRepository) ProfessionalScheduleFor(
	ctx context.Context,
	professionalID uint,
	weekday int,
) (*models.ProfessionalSchedule, error) {

	var sched models.ProfessionalSchedule
	err := r.db.WithContext(ctx).
		Preload("Professional").
		Where("professional_id = ? AND day_of_week = ?", professionalID, weekday).
		First(&sched).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sched, nil
}

// Compile-time check
var _ availability.Source = (*ScheduleGormRepository)(nil)
