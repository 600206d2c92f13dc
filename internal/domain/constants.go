package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

const (
	// MinutesPerDay upper bound for a TimeRange end (exclusive day boundary)
	MinutesPerDay = 1440

	// SlotIntervalMinutes fixed display granularity for bookable slots
	SlotIntervalMinutes = 30
)

// Booking policy defaults
const (
	DefaultTimezone          = "Europe/Madrid"
	DefaultMinAdvanceMinutes = 120
	DefaultMaxAdvanceDays    = 30
)

// Booking policy validation bounds (inclusive)
const (
	MinAdvanceMinutesLowerBound = 0
	MinAdvanceMinutesUpperBound = 43200 // 30 days
	MaxAdvanceDaysLowerBound    = 1
	MaxAdvanceDaysUpperBound    = 365
)
