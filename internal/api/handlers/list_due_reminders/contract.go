package list_due_reminders

import (
	"context"

	"github.com/avelesk/TenantBookingService/internal/service/bookings/models"
)

type BookingService interface {
	ListRemindersDue(ctx context.Context, date string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
