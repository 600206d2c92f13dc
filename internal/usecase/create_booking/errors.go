package create_booking

import "errors"

var (
	// ErrTenantNotFound возвращается, когда тенант не найден по slug
	ErrTenantNotFound = errors.New("create_booking: tenant not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или принадлежит
	// другому тенанту (различие намеренно не раскрывается)
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrBusinessClosed возвращается, когда тенант закрыт в указанный день недели
	ErrBusinessClosed = errors.New("create_booking: business is closed on this date")

	// ErrServiceDoesNotFit возвращается, когда запрошенный интервал не помещается
	// целиком ни в один свободный фрагмент
	ErrServiceDoesNotFit = errors.New("create_booking: service does not fit in the requested time")

	// ErrBookingTooSoon возвращается при нарушении minAdvanceMinutes
	ErrBookingTooSoon = errors.New("create_booking: booking is too soon")

	// ErrBookingInPast возвращается, когда дата раньше локального "сегодня" тенанта
	ErrBookingInPast = errors.New("create_booking: booking date is in the past")

	// ErrBookingTooFarAhead возвращается, когда дата за пределами maxAdvanceDays
	ErrBookingTooFarAhead = errors.New("create_booking: booking date is too far ahead")

	// ErrInvalidPhone возвращается, когда телефон содержит меньше 6 цифр
	ErrInvalidPhone = errors.New("create_booking: invalid phone number")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
