package list_services

import (
	"context"

	"github.com/avelesk/TenantBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListBySlug(ctx context.Context, slug string) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
