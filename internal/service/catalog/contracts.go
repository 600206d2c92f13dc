package catalog

import (
	"context"

	"github.com/avelesk/TenantBookingService/internal/domain"
)

// TenantRepository интерфейс репозитория тенантов
type TenantRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	ListByTenant(ctx context.Context, tenantID string) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
