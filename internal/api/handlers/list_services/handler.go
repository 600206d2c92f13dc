package list_services

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avelesk/TenantBookingService/internal/api/handlers"
	"github.com/avelesk/TenantBookingService/internal/service/catalog"
)

const msgTenantNotFound = "тенант не найден"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{slug}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	result, err := h.service.ListBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrTenantNotFound):
			h.logger.Warn("GET /services - Tenant not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgTenantNotFound)

		default:
			h.logger.Error("GET /services - Failed: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
