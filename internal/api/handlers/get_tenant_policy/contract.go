package get_tenant_policy

import (
	"context"

	"github.com/avelesk/TenantBookingService/internal/service/tenantcfg/models"
)

type TenantConfigService interface {
	GetPolicy(ctx context.Context, tenantID string) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
