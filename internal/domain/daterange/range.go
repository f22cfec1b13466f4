// Package daterange holds the validated date-range model and the
// calculator that fills in the missing element of a range — start
// date, end date, or day count — given the other two.
package daterange

import (
	"fmt"
	"time"
)

const (
	MinDays = 0
	MaxDays = 1_000_000
)

const dateLayout = "2006-01-02"

// Range is an immutable date range. Up to three of its fields may be
// set; construction through NewRange is the only validation gate, so
// an existing Range is always internally consistent.
type Range struct {
	start        *time.Time
	end          *time.Time
	days         *int
	includeStart bool
}

// NewRange validates and builds a Range. Checks run in a fixed order:
// field count first, then the days bounds (lower before upper), then
// start/end ordering. The first violation fails construction.
// Dates are normalized to midnight UTC; time-of-day and zone are
// discarded.
func NewRange(start, end *time.Time, days *int, includeStart bool) (Range, error) {
	provided := 0
	for _, present := range []bool{start != nil, end != nil, days != nil} {
		if present {
			provided++
		}
	}
	if provided < 2 {
		return Range{}, ErrInsufficientFields
	}

	if days != nil {
		if *days < MinDays {
			return Range{}, fmt.Errorf("%w, got %d", ErrDaysNegative, *days)
		}
		if *days > MaxDays {
			return Range{}, fmt.Errorf("%w, got %d", ErrDaysTooLarge, *days)
		}
	}

	r := Range{includeStart: includeStart}
	if start != nil {
		normalized := Normalize(*start)
		r.start = &normalized
	}
	if end != nil {
		normalized := Normalize(*end)
		r.end = &normalized
	}
	if r.start != nil && r.end != nil && r.start.After(*r.end) {
		return Range{}, fmt.Errorf("%w (start %s, end %s)",
			ErrStartAfterEnd, r.start.Format(dateLayout), r.end.Format(dateLayout))
	}
	if days != nil {
		value := *days
		r.days = &value
	}
	return r, nil
}

// Normalize truncates a timestamp to its calendar date at midnight UTC.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (r Range) Start() (time.Time, bool) {
	if r.start == nil {
		return time.Time{}, false
	}
	return *r.start, true
}

func (r Range) End() (time.Time, bool) {
	if r.end == nil {
		return time.Time{}, false
	}
	return *r.end, true
}

func (r Range) Days() (int, bool) {
	if r.days == nil {
		return 0, false
	}
	return *r.days, true
}

func (r Range) IncludeStart() bool {
	return r.includeStart
}
