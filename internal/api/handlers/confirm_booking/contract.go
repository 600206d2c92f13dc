package confirm_booking

import (
	"context"

	"github.com/avelesk/TenantBookingService/internal/service/bookings/models"
)

type BookingService interface {
	Confirm(ctx context.Context, id string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
