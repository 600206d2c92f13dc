package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avelesk/TenantBookingService/internal/api/handlers"
	"github.com/avelesk/TenantBookingService/internal/api/middleware"
	"github.com/avelesk/TenantBookingService/internal/service/bookings"
)

const msgBookingNotFound = "бронирование не найдено"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/cancel
// Отмена уже отмененного бронирования безопасна
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	booking, err := h.service.Cancel(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/cancel - Booking not found: id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("POST /bookings/{id}/cancel - Failed: id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	userID, _ := middleware.UserID(r.Context())
	h.logger.Info("POST /bookings/{id}/cancel - Booking id=%s cancelled by user=%s", bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
