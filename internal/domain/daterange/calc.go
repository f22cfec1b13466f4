package daterange

import "time"

// Calculator computes the missing element of a date range. It holds
// no state; the zero value is ready to use and safe to share.
type Calculator struct{}

// inclusionAdjustment is the single counting-convention rule all three
// operations derive from: when the start date itself counts as day
// one, every day count carries one extra day relative to the plain
// calendar delta.
func inclusionAdjustment(includeStart bool) int {
	if includeStart {
		return 1
	}
	return 0
}

// inclusionOffset converts a day count into the number of calendar
// days to move a boundary date by.
func inclusionOffset(days int, includeStart bool) int {
	return days - inclusionAdjustment(includeStart)
}

// DayCount returns the number of days between start and end under the
// given counting convention. With includeStart, the same start and end
// date counts as one day.
func (Calculator) DayCount(start, end time.Time, includeStart bool) (int, error) {
	r, err := NewRange(&start, &end, nil, includeStart)
	if err != nil {
		return 0, err
	}
	from, _ := r.Start()
	to, _ := r.End()
	// Unix seconds rather than Sub: a time.Duration overflows at
	// roughly 292 years, well inside the permitted days domain.
	delta := int((to.Unix() - from.Unix()) / 86400)
	return delta + inclusionAdjustment(includeStart), nil
}

// EndDate returns the date on which a range of the given length ends.
// With includeStart and days=0 the result is the day before start:
// zero counted days means the range ends before it begins. That edge
// follows directly from the offset rule and is kept deliberately.
func (Calculator) EndDate(start time.Time, days int, includeStart bool) (time.Time, error) {
	r, err := NewRange(&start, nil, &days, includeStart)
	if err != nil {
		return time.Time{}, err
	}
	from, _ := r.Start()
	return from.AddDate(0, 0, inclusionOffset(days, includeStart)), nil
}

// StartDate returns the date on which a range of the given length
// starts, the mirror of EndDate.
func (Calculator) StartDate(end time.Time, days int, includeStart bool) (time.Time, error) {
	r, err := NewRange(nil, &end, &days, includeStart)
	if err != nil {
		return time.Time{}, err
	}
	to, _ := r.End()
	return to.AddDate(0, 0, -inclusionOffset(days, includeStart)), nil
}

var defaultCalculator Calculator

// DayCount is a convenience wrapper over a shared Calculator.
func DayCount(start, end time.Time, includeStart bool) (int, error) {
	return defaultCalculator.DayCount(start, end, includeStart)
}

// EndDate is a convenience wrapper over a shared Calculator.
func EndDate(start time.Time, days int, includeStart bool) (time.Time, error) {
	return defaultCalculator.EndDate(start, days, includeStart)
}

// StartDate is a convenience wrapper over a shared Calculator.
func StartDate(end time.Time, days int, includeStart bool) (time.Time, error) {
	return defaultCalculator.StartDate(end, days, includeStart)
}
