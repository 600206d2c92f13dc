package create_booking

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/avelesk/TenantBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantSlug == "" {
		return fmt.Errorf("%w: tenantSlug is required", ErrInvalidInput)
	}

	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if !strings.Contains(req.CustomerEmail, "@") {
		return fmt.Errorf("%w: customerEmail is invalid", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := domain.ParseDate(req.Date); err != nil {
		return fmt.Errorf("%w: invalid date format: %v", ErrInvalidInput, err)
	}

	if _, err := domain.ParseHHMM(req.StartTime); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validatePhone проверяет телефон: пустой или отсутствующий телефон допустим,
// непустой должен содержать не меньше 6 цифр
func validatePhone(phone *string) error {
	if phone == nil || *phone == "" {
		return nil
	}

	digits := 0
	for _, r := range *phone {
		if unicode.IsDigit(r) {
			digits++
		}
	}

	if digits < 6 {
		return fmt.Errorf("%w: phone must contain at least 6 digits", ErrInvalidPhone)
	}

	return nil
}
