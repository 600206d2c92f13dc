package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelesk/TenantBookingService/internal/domain"
	tenantRepo "github.com/avelesk/TenantBookingService/internal/infra/storage/tenant"
)

type stubTenantRepo struct {
	bySlug map[string]*domain.Tenant
}

func (s *stubTenantRepo) GetBySlug(_ context.Context, slug string) (*domain.Tenant, error) {
	t, ok := s.bySlug[slug]
	if !ok {
		return nil, tenantRepo.ErrTenantNotFound
	}
	return t, nil
}

type stubServiceRepo struct {
	byTenant map[string][]*domain.Service
}

func (s *stubServiceRepo) ListByTenant(_ context.Context, tenantID string) ([]*domain.Service, error) {
	return s.byTenant[tenantID], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestListBySlug(t *testing.T) {
	tenants := &stubTenantRepo{bySlug: map[string]*domain.Tenant{
		"peluqueria-moderna": {ID: "t-1", Name: "Peluquería Moderna", Slug: "peluqueria-moderna"},
	}}
	services := &stubServiceRepo{byTenant: map[string][]*domain.Service{
		"t-1": {
			{ID: "svc-1", TenantID: "t-1", Name: "Corte de pelo", DurationMinutes: 60,
				Price: domain.Money{AmountCents: 2550, Currency: domain.CurrencyEUR}, Active: true},
			{ID: "svc-2", TenantID: "t-1", Name: "Tinte", DurationMinutes: 90,
				Price: domain.Money{AmountCents: 4000, Currency: domain.CurrencyEUR}, Active: true},
		},
	}}

	svc := NewService(tenants, services, nopLogger{})

	result, err := svc.ListBySlug(context.Background(), "peluqueria-moderna")
	require.NoError(t, err)

	assert.Equal(t, "Peluquería Moderna", result.TenantName)
	require.Len(t, result.Services, 2)
	assert.Equal(t, "Corte de pelo", result.Services[0].Name)
	assert.Equal(t, 60, result.Services[0].DurationMinutes)
	assert.Equal(t, "25.50 €", result.Services[0].Price)
}

func TestListBySlug_EmptyCatalog(t *testing.T) {
	tenants := &stubTenantRepo{bySlug: map[string]*domain.Tenant{
		"peluqueria-moderna": {ID: "t-1", Name: "Peluquería Moderna"},
	}}
	svc := NewService(tenants, &stubServiceRepo{byTenant: map[string][]*domain.Service{}}, nopLogger{})

	result, err := svc.ListBySlug(context.Background(), "peluqueria-moderna")
	require.NoError(t, err)
	assert.Empty(t, result.Services)
}

func TestListBySlug_TenantNotFound(t *testing.T) {
	svc := NewService(&stubTenantRepo{bySlug: map[string]*domain.Tenant{}}, &stubServiceRepo{}, nopLogger{})

	_, err := svc.ListBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrTenantNotFound)
}
