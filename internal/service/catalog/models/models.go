package models

import "github.com/avelesk/TenantBookingService/internal/domain"

// ServiceResponse модель услуги для ответа API
type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           string `json:"price"`
}

// ServiceListResponse модель списка услуг тенанта
type ServiceListResponse struct {
	TenantName string            `json:"tenantName"`
	Services   []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует доменную модель услуги в модель ответа
func FromDomainService(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price.Format(),
	}
}

// FromDomainServiceList конвертирует список услуг тенанта в модель ответа
func FromDomainServiceList(tenantName string, services []*domain.Service) *ServiceListResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromDomainService(s))
	}
	return &ServiceListResponse{
		TenantName: tenantName,
		Services:   out,
	}
}
