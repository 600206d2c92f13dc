package create_booking

import (
	"time"

	createBooking "github.com/avelesk/TenantBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID     string  `json:"serviceId"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Date          string  `json:"date"`      // "2026-09-07"
	StartTime     string  `json:"startTime"` // "10:00"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(tenantSlug string) *createBooking.Request {
	return &createBooking.Request{
		TenantSlug:    tenantSlug,
		ServiceID:     r.ServiceID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Date:          r.Date,
		StartTime:     r.StartTime,
	}
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string `json:"id"`
	TenantID        string `json:"tenantId"`
	ServiceID       string `json:"serviceId"`
	CustomerID      string `json:"customerId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	TenantName      string `json:"tenantName"`
	ServiceName     string `json:"serviceName"`
	ServicePrice    string `json:"servicePrice"`
	CreatedAt       string `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		TenantID:        resp.TenantID,
		ServiceID:       resp.ServiceID,
		CustomerID:      resp.CustomerID,
		Date:            resp.Date,
		StartTime:       resp.StartTime,
		EndTime:         resp.EndTime,
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		TenantName:      resp.TenantName,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
