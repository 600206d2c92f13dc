package models

import (
	"time"

	"github.com/avelesk/TenantBookingService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              string     `json:"id"`
	TenantID        string     `json:"tenantId"`
	ServiceID       string     `json:"serviceId"`
	CustomerID      string     `json:"customerId"`
	BookingDate     string     `json:"bookingDate"` // "2026-09-07"
	StartTime       string     `json:"startTime"`   // "10:00"
	EndTime         string     `json:"endTime"`     // "11:00"
	DurationMinutes int        `json:"durationMinutes"`
	Status          string     `json:"status"`
	ReminderSentAt  *time.Time `json:"reminderSentAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в response модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		TenantID:        b.TenantID,
		ServiceID:       b.ServiceID,
		CustomerID:      b.CustomerID,
		BookingDate:     b.Date,
		StartTime:       b.TimeRange.StartHHMM(),
		EndTime:         b.TimeRange.EndHHMM(),
		DurationMinutes: b.TimeRange.DurationMinutes(),
		Status:          string(b.Status),
		ReminderSentAt:  b.ReminderSentAt,
		CreatedAt:       b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain.Booking в response модель
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
