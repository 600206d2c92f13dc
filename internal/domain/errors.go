package domain

import "errors"

var (
	// ErrInvalidTimeRange is returned when a time range violates 0 <= start < end <= 1440
	ErrInvalidTimeRange = errors.New("domain: invalid time range")

	// ErrInvalidTimeFormat is returned when an HH:MM string cannot be parsed
	ErrInvalidTimeFormat = errors.New("domain: invalid time format, expected HH:MM")

	// ErrInvalidDateFormat is returned when a YYYY-MM-DD string cannot be parsed
	ErrInvalidDateFormat = errors.New("domain: invalid date format, expected YYYY-MM-DD")

	// ErrInvalidBookingPolicy is returned when a booking policy fails validation
	ErrInvalidBookingPolicy = errors.New("domain: invalid booking policy")

	// ErrInvalidMoney is returned when a money amount is negative
	ErrInvalidMoney = errors.New("domain: invalid money amount")

	// ErrInvalidSlug is returned when a tenant slug fails validation
	ErrInvalidSlug = errors.New("domain: invalid slug")
)
