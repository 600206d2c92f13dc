package domain

import (
	"fmt"
	"time"
)

// BookingPolicy is the per-tenant rule set for how far in advance bookings
// may or must be made, in the tenant's own timezone.
// Construct through NewBookingPolicy; a zero BookingPolicy is not usable.
type BookingPolicy struct {
	Timezone          string
	MinAdvanceMinutes int
	MaxAdvanceDays    int

	loc *time.Location
}

// PolicyOverrides carries optional overrides for NewBookingPolicy.
// Nil fields fall back to the documented defaults.
type PolicyOverrides struct {
	Timezone          *string
	MinAdvanceMinutes *int
	MaxAdvanceDays    *int
}

// NewBookingPolicy merges overrides onto defaults and validates the result.
// The timezone must resolve as an IANA zone; numeric bounds are inclusive.
func NewBookingPolicy(overrides PolicyOverrides) (BookingPolicy, error) {
	timezone := DefaultTimezone
	minAdvance := DefaultMinAdvanceMinutes
	maxAdvance := DefaultMaxAdvanceDays

	if overrides.Timezone != nil {
		timezone = *overrides.Timezone
	}
	if overrides.MinAdvanceMinutes != nil {
		minAdvance = *overrides.MinAdvanceMinutes
	}
	if overrides.MaxAdvanceDays != nil {
		maxAdvance = *overrides.MaxAdvanceDays
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil || timezone == "" {
		return BookingPolicy{}, fmt.Errorf("%w: unknown timezone %q", ErrInvalidBookingPolicy, timezone)
	}

	if minAdvance < MinAdvanceMinutesLowerBound || minAdvance > MinAdvanceMinutesUpperBound {
		return BookingPolicy{}, fmt.Errorf("%w: minAdvanceMinutes must be between %d and %d",
			ErrInvalidBookingPolicy, MinAdvanceMinutesLowerBound, MinAdvanceMinutesUpperBound)
	}
	if maxAdvance < MaxAdvanceDaysLowerBound || maxAdvance > MaxAdvanceDaysUpperBound {
		return BookingPolicy{}, fmt.Errorf("%w: maxAdvanceDays must be between %d and %d",
			ErrInvalidBookingPolicy, MaxAdvanceDaysLowerBound, MaxAdvanceDaysUpperBound)
	}

	return BookingPolicy{
		Timezone:          timezone,
		MinAdvanceMinutes: minAdvance,
		MaxAdvanceDays:    maxAdvance,
		loc:               loc,
	}, nil
}

// Location returns the resolved IANA location for the policy timezone
func (p BookingPolicy) Location() *time.Location {
	return p.loc
}
