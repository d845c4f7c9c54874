package schedule

import (
	"fmt"
	"time"

	"lodge/shared/constant"
)

// ParseDate parses a calendar date in the canonical YYYY-MM-DD form.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(constant.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a valid calendar date: %w", value, err)
	}

	return date, nil
}

// Nights returns the number of nights covered by [start, end).
func Nights(start, end time.Time) int {
	return int(end.Sub(start) / (24 * time.Hour))
}
