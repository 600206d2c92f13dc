package tenantcfg

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelesk/TenantBookingService/internal/domain"
	tenantRepo "github.com/avelesk/TenantBookingService/internal/infra/storage/tenant"
	"github.com/avelesk/TenantBookingService/internal/service/tenantcfg/models"
)

// Service сервис администрирования настроек тенанта:
// политика бронирования и недельное расписание
type Service struct {
	tenantRepo   TenantRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	tenantRepo TenantRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		tenantRepo:   tenantRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetPolicy получает политику бронирования тенанта
func (s *Service) GetPolicy(ctx context.Context, tenantID string) (*models.PolicyResponse, error) {
	tenant, err := s.getTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainPolicy(tenant.ID, tenant.Policy), nil
}

// UpdatePolicy обновляет политику бронирования тенанта.
// Неуказанные поля откатываются к дефолтам: политика заменяется целиком,
// а не дополняется
func (s *Service) UpdatePolicy(ctx context.Context, tenantID string, req *models.UpdatePolicyRequest) (*models.PolicyResponse, error) {
	s.logger.Info("UpdatePolicy: tenant=%s", tenantID)

	tenant, err := s.getTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	policy, err := domain.NewBookingPolicy(req.ToDomainOverrides())
	if err != nil {
		s.logger.Warn("UpdatePolicy: validation failed for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}

	if err := s.tenantRepo.UpdatePolicy(ctx, tenant.ID, policy); err != nil {
		s.logger.Error("UpdatePolicy: repository error for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: UpdatePolicy - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePolicy: tenant=%s timezone=%s minAdvance=%d maxDays=%d",
		tenantID, policy.Timezone, policy.MinAdvanceMinutes, policy.MaxAdvanceDays)
	return models.FromDomainPolicy(tenant.ID, policy), nil
}

// GetSchedule получает недельное расписание тенанта
func (s *Service) GetSchedule(ctx context.Context, tenantID string) (*models.ScheduleResponse, error) {
	tenant, err := s.getTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	schedule, err := s.scheduleRepo.GetByTenant(ctx, tenant.ID)
	if err != nil {
		s.logger.Error("GetSchedule: repository error for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(schedule), nil
}

// ReplaceSchedule целиком заменяет недельное расписание тенанта
func (s *Service) ReplaceSchedule(ctx context.Context, tenantID string, req *models.ReplaceScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("ReplaceSchedule: tenant=%s, days=%d", tenantID, len(req.Days))

	tenant, err := s.getTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	schedule, err := req.ToDomainSchedule(tenant.ID)
	if err != nil {
		s.logger.Warn("ReplaceSchedule: validation failed for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	// Удаление и вставка строк должны быть атомарными
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.scheduleRepo.Replace(txCtx, tenant.ID, schedule)
	})
	if err != nil {
		s.logger.Error("ReplaceSchedule: repository error for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: ReplaceSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceSchedule: tenant=%s schedule replaced", tenantID)
	return models.FromDomainSchedule(schedule), nil
}

func (s *Service) getTenant(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			s.logger.Warn("tenantcfg: tenant id=%s not found", tenantID)
			return nil, ErrTenantNotFound
		}
		s.logger.Error("tenantcfg: failed to get tenant id=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}
	return tenant, nil
}
