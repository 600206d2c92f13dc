// Package catalog сервис каталога услуг тенанта
package catalog

import (
	"context"
	"errors"
	"fmt"

	tenantRepo "github.com/avelesk/TenantBookingService/internal/infra/storage/tenant"
	"github.com/avelesk/TenantBookingService/internal/service/catalog/models"
)

// Service сервис для публичного каталога услуг
type Service struct {
	tenantRepo  TenantRepository
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(tenantRepository TenantRepository, serviceRepository ServiceRepository, logger Logger) *Service {
	return &Service{
		tenantRepo:  tenantRepository,
		serviceRepo: serviceRepository,
		logger:      logger,
	}
}

// ListBySlug возвращает активные услуги тенанта по его slug
func (s *Service) ListBySlug(ctx context.Context, slug string) (*models.ServiceListResponse, error) {
	tenant, err := s.tenantRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			s.logger.Warn("ListBySlug: tenant slug=%s not found", slug)
			return nil, ErrTenantNotFound
		}
		s.logger.Error("ListBySlug: failed to get tenant slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	services, err := s.serviceRepo.ListByTenant(ctx, tenant.ID)
	if err != nil {
		s.logger.Error("ListBySlug: failed to list services for tenant=%s: %v", tenant.ID, err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(tenant.Name, services), nil
}
