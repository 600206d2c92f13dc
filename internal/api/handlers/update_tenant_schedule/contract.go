package update_tenant_schedule

import (
	"context"

	"github.com/avelesk/TenantBookingService/internal/service/tenantcfg/models"
)

type TenantConfigService interface {
	ReplaceSchedule(ctx context.Context, tenantID string, req *models.ReplaceScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
