package create_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avelesk/TenantBookingService/internal/api/handlers"
	createBooking "github.com/avelesk/TenantBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgTenantNotFound     = "тенант не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgBusinessClosed     = "закрыто в выбранную дату"
	msgDoesNotFit         = "выбранное время недоступно"
	msgTooSoon            = "слишком поздно для бронирования на это время"
	msgInPast             = "дата бронирования уже прошла"
	msgTooFarAhead        = "дата бронирования слишком далеко в будущем"
	msgInvalidPhone       = "некорректный номер телефона"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tenants/{slug}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(slug))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrTenantNotFound):
			h.logger.Warn("POST /bookings - Tenant not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: slug=%s, service=%s", slug, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrServiceDoesNotFit):
			h.logger.Warn("POST /bookings - Slot unavailable: slug=%s, date=%s, time=%s",
				slug, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgDoesNotFit)

		case errors.Is(err, createBooking.ErrBusinessClosed):
			h.logger.Warn("POST /bookings - Business closed: slug=%s, date=%s", slug, req.Date)
			handlers.RespondBadRequest(w, msgBusinessClosed)

		case errors.Is(err, createBooking.ErrBookingTooSoon):
			h.logger.Warn("POST /bookings - Too soon: slug=%s, date=%s, time=%s", slug, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgTooSoon)

		case errors.Is(err, createBooking.ErrBookingInPast):
			h.logger.Warn("POST /bookings - Date in past: slug=%s, date=%s", slug, req.Date)
			handlers.RespondBadRequest(w, msgInPast)

		case errors.Is(err, createBooking.ErrBookingTooFarAhead):
			h.logger.Warn("POST /bookings - Date too far ahead: slug=%s, date=%s", slug, req.Date)
			handlers.RespondBadRequest(w, msgTooFarAhead)

		case errors.Is(err, createBooking.ErrInvalidPhone):
			h.logger.Warn("POST /bookings - Invalid phone: slug=%s", slug)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: slug=%s: %v", slug, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%s, tenant=%s, date=%s, time=%s",
		result.ID, slug, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
