package catalog

import "errors"

var (
	// ErrTenantNotFound возвращается, когда тенант не найден
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
