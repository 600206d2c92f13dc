package update_tenant_policy

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
	msgInvalidPolicy      = "некорректная политика бронирования"
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

// Handle PUT /api/v1/tenants/{tenantId}/policy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := mux.Vars(r)["tenantId"]

	var req models.UpdatePolicyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tenants/{id}/policy - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	policy, err := h.service.UpdatePolicy(r.Context(), tenantID, &req)
	if err != nil {
		switch {
		case errors.Is(err, tenantcfg.ErrTenantNotFound):
			h.logger.Warn("PUT /tenants/{id}/policy - Tenant not found: id=%s", tenantID)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, tenantcfg.ErrInvalidPolicy):
			h.logger.Warn("PUT /tenants/{id}/policy - Invalid policy: id=%s: %v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidPolicy)

		default:
			h.logger.Error("PUT /tenants/{id}/policy - Failed: id=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /tenants/{id}/policy - Updated: id=%s, timezone=%s", tenantID, policy.Timezone)
	handlers.RespondJSON(w, http.StatusOK, policy)
}
