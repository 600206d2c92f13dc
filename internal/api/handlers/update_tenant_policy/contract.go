package update_tenant_policy

import (
	"context"

	"github.com/avelesk/TenantBookingService/internal/service/tenantcfg/models"
)

type TenantConfigService interface {
	UpdatePolicy(ctx context.Context, tenantID string, req *models.UpdatePolicyRequest) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
