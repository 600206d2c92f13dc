package tenantcfg

import (
	"context"

	"github.com/avelesk/TenantBookingService/internal/domain"
)

// TenantRepository интерфейс репозитория тенантов
type TenantRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	UpdatePolicy(ctx context.Context, tenantID string, policy domain.BookingPolicy) error
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetByTenant(ctx context.Context, tenantID string) (*domain.WeeklySchedule, error)
	Replace(ctx context.Context, tenantID string, schedule *domain.WeeklySchedule) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
