package availability

import (
	"time"

	"github.com/VitalisHealthTech/clinic-scheduler/internal/httperr"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/models"
)

const timeLayout = "15:04"

// ComputeDaySlots returns the bookable slots of length durationMin for the day
// described by in. A closed day (weekday closed, holiday, or professional
// marked unavailable) is a normal result with IsOpen=false, not an error.
func ComputeDaySlots(in DayInputs, durationMin int) (DayAvailability, error) {
	if durationMin <= 0 {
		return DayAvailability{}, httperr.ErrBusiness("invalid_duration")
	}

	out := DayAvailability{
		Date:            in.Date.Format("2006-01-02"),
		AvailableSlots:  []TimeSlot{},
		DurationMinutes: durationMin,
	}

	free, open, isOpen := freeIntervals(in)
	if !isOpen {
		out.Message = "closed"
		return out, nil
	}

	out.IsOpen = true
	out.BusinessHours = &HoursWindow{
		Open:  open.Start.Format(timeLayout),
		Close: open.End.Format(timeLayout),
	}

	d := time.Duration(durationMin) * time.Minute
	for _, iv := range free {
		// back-to-back slots; a slot that no longer fits is dropped, never truncated
		for cur := iv.Start; !cur.Add(d).After(iv.End); cur = cur.Add(d) {
			out.AvailableSlots = append(out.AvailableSlots, TimeSlot{
				Start: cur.Format(timeLayout),
				End:   cur.Add(d).Format(timeLayout),
			})
		}
	}

	return out, nil
}

// Fits reports whether the interval [start, end) lies wholly inside the
// day's free time. Used when validating a booking request.
func Fits(in DayInputs, start, end time.Time) bool {
	if !start.Before(end) {
		return false
	}

	free, _, isOpen := freeIntervals(in)
	if !isOpen {
		return false
	}

	for _, iv := range free {
		if !start.Before(iv.Start) && !end.After(iv.End) {
			return true
		}
	}
	return false
}

// freeIntervals resolves the effective open window and subtracts breaks,
// blocked ranges and existing appointments. The bool result is false when
// the day is closed altogether.
func freeIntervals(in DayInputs) ([]Interval, Interval, bool) {
	if isHoliday(in.Date, in.Holidays) {
		return nil, Interval{}, false
	}

	if in.Hours == nil || !in.Hours.IsOpen {
		return nil, Interval{}, false
	}

	openStr, closeStr := in.Hours.OpenTime, in.Hours.CloseTime
	if in.Override != nil {
		if !in.Override.IsAvailable {
			return nil, Interval{}, false
		}
		if in.Override.StartTime != "" && in.Override.EndTime != "" {
			openStr, closeStr = in.Override.StartTime, in.Override.EndTime
		}
	}

	open := Interval{Start: atTime(in.Date, openStr), End: atTime(in.Date, closeStr)}
	if open.Empty() {
		return nil, Interval{}, false
	}

	day := Interval{Start: in.Date, End: in.Date.Add(24 * time.Hour)}

	var cuts []Interval
	for _, br := range in.Breaks {
		cuts = append(cuts, Interval{
			Start: atTime(in.Date, br.BreakStart),
			End:   atTime(in.Date, br.BreakEnd),
		})
	}
	for _, bl := range in.Blocked {
		cuts = append(cuts, Interval{Start: bl.StartTime, End: bl.EndTime}.Clip(day))
	}
	for _, ap := range in.Appointments {
		cuts = append(cuts, Interval{Start: ap.StartTime, End: ap.EndTime})
	}

	return SubtractAll([]Interval{open}, cuts), open, true
}

// isHoliday compares the stored calendar date; any time component is ignored.
// Recurring holidays match on month and day only. The stored instant is
// converted to the query date's location first: the driver may hand back
// UTC, and midnight in a positive-offset zone is still the previous UTC day.
func isHoliday(date time.Time, holidays []models.BusinessHoliday) bool {
	for _, h := range holidays {
		d := h.Date.In(date.Location())
		if h.IsRecurring {
			if d.Month() == date.Month() && d.Day() == date.Day() {
				return true
			}
			continue
		}
		if d.Year() == date.Year() &&
			d.Month() == date.Month() &&
			d.Day() == date.Day() {
			return true
		}
	}
	return false
}

// atTime anchors an "HH:MM" time-of-day to the given date's day and location.
func atTime(date time.Time, hm string) time.Time {
	t, _ := time.Parse(timeLayout, hm)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	)
}
