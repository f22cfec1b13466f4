package shared

import (
	"fmt"
	"time"
)

// DateLayout is the only accepted textual date form.
const DateLayout = "2006-01-02"

// FormatError reports date text that does not match DateLayout.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid date %q: expected format YYYY-MM-DD", e.Input)
}

// ParseDate accepts exactly YYYY-MM-DD: four-digit year, two-digit
// month and day, hyphen separators, and a combination that exists in
// the calendar. Anything else fails with a *FormatError.
func ParseDate(value string) (time.Time, error) {
	if !wellFormed(value) {
		return time.Time{}, &FormatError{Input: value}
	}
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, &FormatError{Input: value}
	}
	return parsed, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// wellFormed enforces digit counts and separators up front; time.Parse
// alone is lenient about short numeric fields.
func wellFormed(value string) bool {
	if len(value) != 10 || value[4] != '-' || value[7] != '-' {
		return false
	}
	for i, c := range value {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
