package availability

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Load issues the collection reads for one day concurrently and joins them.
// date must be midnight in the clinic location. professionalID, when set,
// also scopes the appointment read and fetches the schedule override.
//
// Any failed read aborts the whole load: computing from partial data could
// offer a slot that is actually blocked.
func Load(
	ctx context.Context,
	src Source,
	date time.Time,
	professionalID *uint,
) (DayInputs, error) {

	weekday := int(date.Weekday())
	dayEnd := date.Add(24 * time.Hour)

	in := DayInputs{Date: date}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hours, err := src.BusinessHoursFor(gctx, weekday)
		if err != nil {
			return err
		}
		in.Hours = hours
		return nil
	})

	g.Go(func() error {
		breaks, err := src.BreaksFor(gctx, weekday)
		if err != nil {
			return err
		}
		in.Breaks = breaks
		return nil
	})

	g.Go(func() error {
		holidays, err := src.Holidays(gctx)
		if err != nil {
			return err
		}
		in.Holidays = holidays
		return nil
	})

	g.Go(func() error {
		blocked, err := src.BlockedSlotsBetween(gctx, date, dayEnd)
		if err != nil {
			return err
		}
		in.Blocked = blocked
		return nil
	})

	g.Go(func() error {
		apps, err := src.AppointmentsBetween(gctx, date, dayEnd, professionalID)
		if err != nil {
			return err
		}
		in.Appointments = apps
		return nil
	})

	if professionalID != nil {
		g.Go(func() error {
			override, err := src.ProfessionalScheduleFor(gctx, *professionalID, weekday)
			if err != nil {
				return err
			}
			in.Override = override
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return DayInputs{}, err
	}

	return in, nil
}
