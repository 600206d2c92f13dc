package domain

import (
	"fmt"
	"strconv"
)

// TimeRange is a half-open [Start, End) interval in minutes from midnight.
// Immutable value type; always non-empty and within a single day.
type TimeRange struct {
	Start int
	End   int
}

// NewTimeRange validates 0 <= start < end <= 1440
func NewTimeRange(start, end int) (TimeRange, error) {
	if start < 0 || end > MinutesPerDay || start >= end {
		return TimeRange{}, fmt.Errorf("%w: %d-%d", ErrInvalidTimeRange, start, end)
	}
	return TimeRange{Start: start, End: end}, nil
}

// NewTimeRangeFromHHMM builds a range from two HH:MM strings
func NewTimeRangeFromHHMM(start, end string) (TimeRange, error) {
	startMin, err := ParseHHMM(start)
	if err != nil {
		return TimeRange{}, err
	}
	endMin, err := ParseHHMM(end)
	if err != nil {
		return TimeRange{}, err
	}
	return NewTimeRange(startMin, endMin)
}

// ParseHHMM converts "HH:MM" to minutes from midnight
func ParseHHMM(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	h, errH := strconv.Atoi(s[:2])
	m, errM := strconv.Atoi(s[3:])
	if errH != nil || errM != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return h*60 + m, nil
}

// FormatMinutes converts minutes from midnight to zero-padded "HH:MM"
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// DurationMinutes returns the length of the range
func (r TimeRange) DurationMinutes() int {
	return r.End - r.Start
}

// Overlaps reports whether two half-open ranges intersect.
// Touching ranges (end == other.start) do NOT overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start < other.End && other.Start < r.End
}

// Contains reports whether other lies entirely within r (inclusive of exact match)
func (r TimeRange) Contains(other TimeRange) bool {
	return r.Start <= other.Start && r.End >= other.End
}

// Subtract removes other from r, returning 0, 1 or 2 fragments.
// No overlap returns [r] unchanged; full coverage returns an empty slice.
func (r TimeRange) Subtract(other TimeRange) []TimeRange {
	if !r.Overlaps(other) {
		return []TimeRange{r}
	}
	result := make([]TimeRange, 0, 2)
	if r.Start < other.Start {
		result = append(result, TimeRange{Start: r.Start, End: other.Start})
	}
	if r.End > other.End {
		result = append(result, TimeRange{Start: other.End, End: r.End})
	}
	return result
}

// Equal reports value equality
func (r TimeRange) Equal(other TimeRange) bool {
	return r.Start == other.Start && r.End == other.End
}

// StartHHMM returns the start formatted as "HH:MM"
func (r TimeRange) StartHHMM() string {
	return FormatMinutes(r.Start)
}

// EndHHMM returns the end formatted as "HH:MM"
func (r TimeRange) EndHHMM() string {
	return FormatMinutes(r.End)
}

func (r TimeRange) String() string {
	return r.StartHHMM() + "-" + r.EndHHMM()
}
