package domain

import "time"

// DaySchedule holds the open time ranges for a single weekday.
// Ranges may be disjoint (morning/afternoon) and are not sorted, merged or
// de-duplicated here; callers are expected to supply sane data.
type DaySchedule struct {
	Day    time.Weekday
	Ranges []TimeRange
}

// WeeklySchedule maps each weekday to its opening hours.
// A nil entry means the business is closed that day.
// The schedule is rebuilt wholesale on every save; there are no mutators.
type WeeklySchedule struct {
	TenantID string
	days     [7]*DaySchedule
}

// NewWeeklySchedule builds a schedule from a full list of day entries.
// If the same weekday appears more than once, the last entry wins; supplying
// duplicates is a caller error and the tie-break is not a guaranteed contract.
func NewWeeklySchedule(tenantID string, entries []DaySchedule) *WeeklySchedule {
	ws := &WeeklySchedule{TenantID: tenantID}
	for i := range entries {
		entry := entries[i]
		ws.days[int(entry.Day)] = &entry
	}
	return ws
}

// DaySchedule returns the schedule for a weekday, or nil if closed
func (w *WeeklySchedule) DaySchedule(day time.Weekday) *DaySchedule {
	return w.days[int(day)]
}

// IsOpenOn reports whether the business is open on the given weekday
func (w *WeeklySchedule) IsOpenOn(day time.Weekday) bool {
	return w.days[int(day)] != nil
}

// Days returns the configured day entries in weekday order (Sunday first).
// Closed days are omitted.
func (w *WeeklySchedule) Days() []DaySchedule {
	result := make([]DaySchedule, 0, 7)
	for _, d := range w.days {
		if d != nil {
			result = append(result, *d)
		}
	}
	return result
}
