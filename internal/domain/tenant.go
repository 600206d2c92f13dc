package domain

import "time"

// Tenant is a business using the platform. It owns its services, weekly
// schedule, booking policy and bookings.
type Tenant struct {
	ID         string
	Name       string
	Slug       Slug
	Currency   Currency
	Policy     BookingPolicy
	OwnerEmail string
	CreatedAt  time.Time
}

// Service is a bookable offering of a tenant; its duration drives how much
// free time a booking consumes.
type Service struct {
	ID              string
	TenantID        string
	Name            string
	DurationMinutes int
	Price           Money
	Active          bool
}

// Customer is identified by email within the platform; one record is shared
// across a customer's bookings.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     *string
	CreatedAt time.Time
}
