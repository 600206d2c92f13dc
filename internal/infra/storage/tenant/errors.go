package tenant

import "errors"

var (
	// ErrTenantNotFound возвращается, когда тенант не найден
	ErrTenantNotFound = errors.New("tenant.repository: tenant not found")

	// ErrInvalidPolicy возвращается, когда политика бронирования в БД не проходит валидацию
	ErrInvalidPolicy = errors.New("tenant.repository: stored booking policy is invalid")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tenant.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tenant.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tenant.repository: failed to scan row")
)
