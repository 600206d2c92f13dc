package get_tenant_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avelesk/TenantBookingService/internal/api/handlers"
	"github.com/avelesk/TenantBookingService/internal/service/tenantcfg"
)

const msgTenantNotFound = "тенант не найден"

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

// Handle GET /api/v1/tenants/{tenantId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := mux.Vars(r)["tenantId"]

	schedule, err := h.service.GetSchedule(r.Context(), tenantID)
	if err != nil {
		switch {
		case errors.Is(err, tenantcfg.ErrTenantNotFound):
			h.logger.Warn("GET /tenants/{id}/schedule - Tenant not found: id=%s", tenantID)
			handlers.RespondNotFound(w, msgTenantNotFound)

		default:
			h.logger.Error("GET /tenants/{id}/schedule - Failed: id=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, schedule)
}
