package get_availability

import "time"

// Request модель запроса доступных слотов
type Request struct {
	TenantSlug string     // Slug тенанта (например, "peluqueria-moderna")
	Date       string     // Дата в формате YYYY-MM-DD
	Now        *time.Time // Текущее время (опционально, для детерминизма)
}

// Slot слот фиксированной длительности с флагом доступности
type Slot struct {
	StartTime string // Время начала в формате HH:MM
	EndTime   string // Время окончания в формате HH:MM
	Available bool   // Свободен ли слот целиком
}

// Response модель ответа со списком слотов на дату
type Response struct {
	TenantName string // Отображаемое имя тенанта
	Date       string // Дата запроса (эхо)
	Slots      []Slot // Слоты в порядке времени начала
}
