package update_tenant_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avelesk/TenantBookingService/internal/api/handlers"
	"github.com/avelesk/TenantBookingService/internal/service/tenantcfg"
	"github.com/avelesk/TenantBookingService/internal/service/tenantcfg/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTenantNotFound     = "тенант не найден"
	msgInvalidSchedule    = "некорректное расписание"
)

type Handler struct {
	service TenantConfigService
	logger  Logger
}

func NewHandler(service TenantConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/tenants/{tenantId}/schedule
// Расписание заменяется целиком: дни, не указанные в запросе, становятся выходными
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := mux.Vars(r)["tenantId"]

	var req models.ReplaceScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tenants/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	schedule, err := h.service.ReplaceSchedule(r.Context(), tenantID, &req)
	if err != nil {
		switch {
		case errors.Is(err, tenantcfg.ErrTenantNotFound):
			h.logger.Warn("PUT /tenants/{id}/schedule - Tenant not found: id=%s", tenantID)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, tenantcfg.ErrInvalidSchedule):
			h.logger.Warn("PUT /tenants/{id}/schedule - Invalid schedule: id=%s: %v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PUT /tenants/{id}/schedule - Failed: id=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /tenants/{id}/schedule - Replaced: id=%s, days=%d", tenantID, len(schedule.Days))
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
