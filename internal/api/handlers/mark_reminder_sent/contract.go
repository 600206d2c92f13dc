package mark_reminder_sent

import "context"

type BookingService interface {
	MarkReminderSent(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
