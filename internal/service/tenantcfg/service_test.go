package tenantcfg

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelesk/TenantBookingService/internal/domain"
	tenantRepo "github.com/avelesk/TenantBookingService/internal/infra/storage/tenant"
	"github.com/avelesk/TenantBookingService/internal/service/tenantcfg/models"
)

type stubTenantRepo struct {
	tenant        *domain.Tenant
	updatedPolicy *domain.BookingPolicy
}

func (s *stubTenantRepo) GetByID(_ context.Context, id string) (*domain.Tenant, error) {
	if s.tenant == nil || s.tenant.ID != id {
		return nil, tenantRepo.ErrTenantNotFound
	}
	return s.tenant, nil
}

func (s *stubTenantRepo) UpdatePolicy(_ context.Context, _ string, policy domain.BookingPolicy) error {
	s.updatedPolicy = &policy
	return nil
}

type stubScheduleRepo struct {
	schedule *domain.WeeklySchedule
	replaced *domain.WeeklySchedule
}

func (s *stubScheduleRepo) GetByTenant(_ context.Context, _ string) (*domain.WeeklySchedule, error) {
	return s.schedule, nil
}

func (s *stubScheduleRepo) Replace(_ context.Context, _ string, schedule *domain.WeeklySchedule) error {
	s.replaced = schedule
	return nil
}

type stubTxManager struct{}

func (stubTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func newFixture(t *testing.T) (*Service, *stubTenantRepo, *stubScheduleRepo) {
	t.Helper()

	policy, err := domain.NewBookingPolicy(domain.PolicyOverrides{})
	require.NoError(t, err)

	tenants := &stubTenantRepo{tenant: &domain.Tenant{
		ID:     "tenant-1",
		Name:   "Peluquería Moderna",
		Policy: policy,
	}}
	schedules := &stubScheduleRepo{
		schedule: domain.NewWeeklySchedule("tenant-1", nil),
	}

	svc := NewService(tenants, schedules, stubTxManager{}, nopLogger{})
	return svc, tenants, schedules
}

func TestGetPolicy(t *testing.T) {
	svc, _, _ := newFixture(t)

	resp, err := svc.GetPolicy(context.Background(), "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, "tenant-1", resp.TenantID)
	assert.Equal(t, domain.DefaultTimezone, resp.Timezone)
	assert.Equal(t, domain.DefaultMinAdvanceMinutes, resp.MinAdvanceMinutes)
	assert.Equal(t, domain.DefaultMaxAdvanceDays, resp.MaxAdvanceDays)

	_, err = svc.GetPolicy(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestUpdatePolicy(t *testing.T) {
	svc, tenants, _ := newFixture(t)

	resp, err := svc.UpdatePolicy(context.Background(), "tenant-1", &models.UpdatePolicyRequest{
		Timezone:       strPtr("Asia/Tokyo"),
		MaxAdvanceDays: intPtr(14),
	})
	require.NoError(t, err)

	assert.Equal(t, "Asia/Tokyo", resp.Timezone)
	assert.Equal(t, 14, resp.MaxAdvanceDays)
	// Неуказанный minAdvanceMinutes откатывается к дефолту
	assert.Equal(t, domain.DefaultMinAdvanceMinutes, resp.MinAdvanceMinutes)

	require.NotNil(t, tenants.updatedPolicy)
	assert.Equal(t, "Asia/Tokyo", tenants.updatedPolicy.Timezone)
}

func TestUpdatePolicy_Invalid(t *testing.T) {
	svc, tenants, _ := newFixture(t)

	tests := []struct {
		name string
		req  *models.UpdatePolicyRequest
	}{
		{name: "bad timezone", req: &models.UpdatePolicyRequest{Timezone: strPtr("Mars/Olympus")}},
		{name: "negative min advance", req: &models.UpdatePolicyRequest{MinAdvanceMinutes: intPtr(-1)}},
		{name: "zero max days", req: &models.UpdatePolicyRequest{MaxAdvanceDays: intPtr(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdatePolicy(context.Background(), "tenant-1", tt.req)
			assert.ErrorIs(t, err, ErrInvalidPolicy)
			assert.Nil(t, tenants.updatedPolicy)
		})
	}
}

func TestGetSchedule_Empty(t *testing.T) {
	svc, _, _ := newFixture(t)

	resp, err := svc.GetSchedule(context.Background(), "tenant-1")
	require.NoError(t, err)
	assert.Empty(t, resp.Days)
}

func TestReplaceSchedule(t *testing.T) {
	svc, _, schedules := newFixture(t)

	resp, err := svc.ReplaceSchedule(context.Background(), "tenant-1", &models.ReplaceScheduleRequest{
		Days: []models.ScheduleDay{
			{
				DayOfWeek: int(time.Monday),
				Ranges: []models.ScheduleRange{
					{StartTime: "09:00", EndTime: "14:00"},
					{StartTime: "16:00", EndTime: "20:00"},
				},
			},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 1)
	assert.Equal(t, int(time.Monday), resp.Days[0].DayOfWeek)
	require.Len(t, resp.Days[0].Ranges, 2)
	assert.Equal(t, "09:00", resp.Days[0].Ranges[0].StartTime)
	assert.Equal(t, "20:00", resp.Days[0].Ranges[1].EndTime)

	require.NotNil(t, schedules.replaced)
	assert.True(t, schedules.replaced.IsOpenOn(time.Monday))
	assert.False(t, schedules.replaced.IsOpenOn(time.Tuesday))
}

func TestReplaceSchedule_InvalidRange(t *testing.T) {
	svc, _, schedules := newFixture(t)

	_, err := svc.ReplaceSchedule(context.Background(), "tenant-1", &models.ReplaceScheduleRequest{
		Days: []models.ScheduleDay{
			{
				DayOfWeek: int(time.Monday),
				Ranges:    []models.ScheduleRange{{StartTime: "14:00", EndTime: "09:00"}},
			},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidSchedule)
	assert.Nil(t, schedules.replaced)
}

func TestReplaceSchedule_InvalidDayOfWeek(t *testing.T) {
	svc, _, schedules := newFixture(t)

	for _, day := range []int{-1, 7, 12} {
		_, err := svc.ReplaceSchedule(context.Background(), "tenant-1", &models.ReplaceScheduleRequest{
			Days: []models.ScheduleDay{
				{
					DayOfWeek: day,
					Ranges:    []models.ScheduleRange{{StartTime: "09:00", EndTime: "14:00"}},
				},
			},
		})
		assert.ErrorIs(t, err, ErrInvalidSchedule, "dayOfWeek %d should be rejected", day)
	}
	assert.Nil(t, schedules.replaced)
}
