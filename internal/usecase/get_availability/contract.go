package get_availability

import (
	"context"
	"time"

	"github.com/avelesk/TenantBookingService/internal/domain"
)

// TenantRepository интерфейс репозитория тенантов
type TenantRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetByTenant(ctx context.Context, tenantID string) (*domain.WeeklySchedule, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByTenantAndDate(ctx context.Context, tenantID, date string) ([]*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
