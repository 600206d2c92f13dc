package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	TenantSlug    string     // Slug тенанта
	ServiceID     string     // ID услуги
	CustomerName  string     // Имя клиента
	CustomerEmail string     // Email клиента
	CustomerPhone *string    // Телефон клиента (опционально)
	Date          string     // Дата бронирования в формате YYYY-MM-DD
	StartTime     string     // Время начала в формате HH:MM
	Now           *time.Time // Текущее время (опционально, для детерминизма)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string // ID бронирования
	TenantID        string // ID тенанта
	ServiceID       string // ID услуги
	CustomerID      string // ID клиента
	Date            string // Дата бронирования
	StartTime       string // Время начала (HH:MM)
	EndTime         string // Время окончания (HH:MM)
	DurationMinutes int    // Длительность в минутах
	Status          string // Статус бронирования (PENDING)

	// Денормализованные данные для ответа клиенту
	TenantName   string // Имя тенанта
	ServiceName  string // Название услуги
	ServicePrice string // Цена услуги в формате с валютой

	CreatedAt time.Time // Время создания
}
