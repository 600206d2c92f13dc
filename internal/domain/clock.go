package domain

import (
	"fmt"
	"time"
)

// Tenant clock: converts UTC instants into the tenant's local calendar and
// does local-date arithmetic. Calendar dates are YYYY-MM-DD strings, which
// compare correctly with plain string comparison (ISO ordering).

// LocalDate returns the calendar date of instant in the given location
func LocalDate(loc *time.Location, instant time.Time) string {
	return instant.In(loc).Format(DateFormat)
}

// LocalMinutes returns minutes since local midnight in [0, 1439]
func LocalMinutes(loc *time.Location, instant time.Time) int {
	local := instant.In(loc)
	return local.Hour()*60 + local.Minute()
}

// AddDays adds n calendar days to a YYYY-MM-DD date string.
// Month and year boundaries roll over via real calendar arithmetic.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(DateFormat), nil
}

// ParseDate parses a YYYY-MM-DD date string as a UTC midnight instant
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, date)
	}
	return t, nil
}

// DayOfWeek returns the weekday of a YYYY-MM-DD date string (Sunday = 0)
func DayOfWeek(date string) (time.Weekday, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}
