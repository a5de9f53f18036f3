package availability

import (
	"sort"
	"time"
)

// Interval is a half-open time interval [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && iv.End.After(other.Start)
}

func (iv Interval) Empty() bool {
	return !iv.Start.Before(iv.End)
}

// Clip bounds iv to bound. The result may be empty.
func (iv Interval) Clip(bound Interval) Interval {
	out := iv
	if out.Start.Before(bound.Start) {
		out.Start = bound.Start
	}
	if out.End.After(bound.End) {
		out.End = bound.End
	}
	return out
}

// subtract removes cut from iv, yielding zero, one or two pieces.
func subtract(iv, cut Interval) []Interval {
	if !iv.Overlaps(cut) {
		return []Interval{iv}
	}

	var out []Interval
	if iv.Start.Before(cut.Start) {
		out = append(out, Interval{Start: iv.Start, End: cut.Start})
	}
	if cut.End.Before(iv.End) {
		out = append(out, Interval{Start: cut.End, End: iv.End})
	}
	return out
}

// SubtractAll removes every cut from every free interval and returns the
// remaining disjoint pieces ordered by start.
func SubtractAll(free []Interval, cuts []Interval) []Interval {
	for _, cut := range cuts {
		if cut.Empty() {
			continue
		}
		next := make([]Interval, 0, len(free))
		for _, iv := range free {
			next = append(next, subtract(iv, cut)...)
		}
		free = next
	}

	sort.Slice(free, func(i, j int) bool {
		return free[i].Start.Before(free[j].Start)
	})
	return free
}
