package daterange

import (
	"errors"
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int {
	return &v
}

func TestNewRangeRequiresTwoFields(t *testing.T) {
	start := date(2023, time.January, 1)

	cases := []struct {
		name  string
		start *time.Time
		end   *time.Time
		days  *int
	}{
		{name: "nothing"},
		{name: "only start", start: &start},
		{name: "only end", end: &start},
		{name: "only days", days: intPtr(5)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRange(tc.start, tc.end, tc.days, true)
			if !errors.Is(err, ErrInsufficientFields) {
				t.Fatalf("expected ErrInsufficientFields, got %v", err)
			}
		})
	}
}

func TestNewRangeRejectsStartAfterEnd(t *testing.T) {
	start := date(2023, time.January, 10)
	end := date(2023, time.January, 1)

	for _, includeStart := range []bool{true, false} {
		if _, err := NewRange(&start, &end, nil, includeStart); !errors.Is(err, ErrStartAfterEnd) {
			t.Fatalf("includeStart=%v: expected ErrStartAfterEnd, got %v", includeStart, err)
		}
	}

	// also rejected when days is supplied alongside the bad pair
	if _, err := NewRange(&start, &end, intPtr(10), true); !errors.Is(err, ErrStartAfterEnd) {
		t.Fatalf("expected ErrStartAfterEnd with days present, got %v", err)
	}
}

func TestNewRangeAllowsEqualDates(t *testing.T) {
	day := date(2023, time.June, 15)
	r, err := NewRange(&day, &day, nil, true)
	if err != nil {
		t.Fatalf("equal dates should validate: %v", err)
	}
	start, ok := r.Start()
	if !ok || !start.Equal(day) {
		t.Fatalf("expected start %v, got %v (ok=%v)", day, start, ok)
	}
}

func TestNewRangeDaysBounds(t *testing.T) {
	start := date(2023, time.January, 1)

	if _, err := NewRange(&start, nil, intPtr(-1), true); !errors.Is(err, ErrDaysNegative) {
		t.Fatalf("expected ErrDaysNegative, got %v", err)
	}
	if _, err := NewRange(&start, nil, intPtr(MaxDays+1), true); !errors.Is(err, ErrDaysTooLarge) {
		t.Fatalf("expected ErrDaysTooLarge, got %v", err)
	}
	if _, err := NewRange(&start, nil, intPtr(0), true); err != nil {
		t.Fatalf("days=0 should validate: %v", err)
	}
	if _, err := NewRange(&start, nil, intPtr(MaxDays), true); err != nil {
		t.Fatalf("days=%d should validate: %v", MaxDays, err)
	}
}

func TestNewRangeChecksFieldCountBeforeBounds(t *testing.T) {
	// only one field present and it is out of bounds: the field-count
	// check wins, per the documented validation order
	_, err := NewRange(nil, nil, intPtr(-1), true)
	if !errors.Is(err, ErrInsufficientFields) {
		t.Fatalf("expected ErrInsufficientFields first, got %v", err)
	}
}

func TestNewRangeNormalizesDates(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*3600)
	start := time.Date(2023, time.March, 10, 17, 45, 12, 0, zone)
	end := time.Date(2023, time.March, 11, 3, 0, 0, 0, zone)

	r, err := NewRange(&start, &end, nil, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := r.Start()
	if want := date(2023, time.March, 10); !got.Equal(want) {
		t.Fatalf("expected normalized start %v, got %v", want, got)
	}
	got, _ = r.End()
	if want := date(2023, time.March, 11); !got.Equal(want) {
		t.Fatalf("expected normalized end %v, got %v", want, got)
	}
}

func TestRangeAccessorsReportAbsentFields(t *testing.T) {
	start := date(2023, time.January, 1)
	r, err := NewRange(&start, nil, intPtr(7), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := r.End(); ok {
		t.Fatal("end should be absent")
	}
	days, ok := r.Days()
	if !ok || days != 7 {
		t.Fatalf("expected days 7, got %d (ok=%v)", days, ok)
	}
	if r.IncludeStart() {
		t.Fatal("expected includeStart false")
	}
}

func TestNewRangeCopiesInputs(t *testing.T) {
	start := date(2023, time.January, 1)
	days := 5
	r, err := NewRange(&start, nil, &days, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	days = 99
	start = date(2030, time.December, 31)

	got, _ := r.Days()
	if got != 5 {
		t.Fatalf("range shared caller's days value, got %d", got)
	}
	gotStart, _ := r.Start()
	if !gotStart.Equal(date(2023, time.January, 1)) {
		t.Fatalf("range shared caller's start value, got %v", gotStart)
	}
}
