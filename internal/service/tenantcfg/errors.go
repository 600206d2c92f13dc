package tenantcfg

import "errors"

var (
	// ErrTenantNotFound возвращается, когда тенант не найден
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrInvalidPolicy возвращается, когда политика не проходит валидацию
	ErrInvalidPolicy = errors.New("invalid booking policy")

	// ErrInvalidSchedule возвращается, когда расписание не проходит валидацию
	ErrInvalidSchedule = errors.New("invalid schedule")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
