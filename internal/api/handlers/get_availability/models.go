package get_availability

import (
	getAvailability "github.com/avelesk/TenantBookingService/internal/usecase/get_availability"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// AvailabilityResponse HTTP модель ответа со слотами на дату
type AvailabilityResponse struct {
	TenantName string         `json:"tenantName"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Available: s.Available,
		})
	}
	return &AvailabilityResponse{
		TenantName: resp.TenantName,
		Date:       resp.Date,
		Slots:      slots,
	}
}
