package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avelesk/TenantBookingService/internal/api/handlers"
	getAvailability "github.com/avelesk/TenantBookingService/internal/usecase/get_availability"
)

const (
	msgMissingDate    = "требуется query-параметр date в формате YYYY-MM-DD"
	msgInvalidRequest = "некорректные параметры запроса"
	msgTenantNotFound = "тенант не найден"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{slug}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	date := r.URL.Query().Get("date")
	if date == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		TenantSlug: slug,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrTenantNotFound):
			h.logger.Warn("GET /availability - Tenant not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid request: slug=%s, date=%s: %v", slug, date, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /availability - Failed: slug=%s, date=%s, error=%v", slug, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
