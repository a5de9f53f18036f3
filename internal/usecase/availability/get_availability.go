package availability

import (
	"context"
	"time"

	domain "github.com/VitalisHealthTech/clinic-scheduler/internal/domain/availability"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/httperr"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/timezone"
)

// SlotCache is satisfied by the redis availability cache. A nil SlotCache
// disables caching entirely.
type SlotCache interface {
	Get(
		ctx context.Context,
		date string,
		durationMin int,
		professionalID *uint,
	) (*domain.DayAvailability, bool)

	Set(
		ctx context.Context,
		date string,
		durationMin int,
		professionalID *uint,
		day domain.DayAvailability,
	)
}

type GetAvailability struct {
	src   domain.Source
	cache SlotCache
	loc   *time.Location
}

func NewGetAvailability(
	src domain.Source,
	cache SlotCache,
	loc *time.Location,
) *GetAvailability {
	return &GetAvailability{
		src:   src,
		cache: cache,
		loc:   loc,
	}
}

type Input struct {
	Date           time.Time
	DurationMin    int
	ProfessionalID *uint
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in Input,
) (domain.DayAvailability, error) {

	if in.DurationMin <= 0 {
		return domain.DayAvailability{}, httperr.ErrBusiness("invalid_duration")
	}

	day := timezone.Midnight(in.Date, uc.loc)
	dateStr := day.Format("2006-01-02")

	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx, dateStr, in.DurationMin, in.ProfessionalID); ok {
			return *cached, nil
		}
	}

	inputs, err := domain.Load(ctx, uc.src, day, in.ProfessionalID)
	if err != nil {
		return domain.DayAvailability{}, err
	}

	result, err := domain.ComputeDaySlots(inputs, in.DurationMin)
	if err != nil {
		return domain.DayAvailability{}, err
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, dateStr, in.DurationMin, in.ProfessionalID, result)
	}

	return result, nil
}
