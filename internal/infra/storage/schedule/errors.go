package schedule

import "errors"

// Ошибки репозитория расписаний
var (
	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow ошибка сканирования строки результата
	ErrScanRow = errors.New("schedule.repository: failed to scan row")

	// ErrInvalidScheduleRow строка расписания содержит невалидный интервал
	ErrInvalidScheduleRow = errors.New("schedule.repository: invalid schedule row")
)
