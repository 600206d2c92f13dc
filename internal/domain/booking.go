package domain

import "time"

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// ActiveStatuses are the statuses that occupy capacity on the calendar
var ActiveStatuses = []BookingStatus{StatusPending, StatusConfirmed}

// Booking represents a customer appointment. It references tenant, service
// and customer by id only; cross-entity integrity is enforced by use cases.
type Booking struct {
	ID         string
	TenantID   string
	ServiceID  string
	CustomerID string
	Date       string // YYYY-MM-DD, tenant-local calendar date
	TimeRange  TimeRange
	Status     BookingStatus

	ReminderSentAt *time.Time
	CreatedAt      time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal returns true if no further status transitions are defined
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCancelled
}

// CanBeConfirmed returns true if a payment confirmation may transition the booking
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// CanBeCancelled returns true if the booking may still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// ParseBookingStatus validates a status string
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}
