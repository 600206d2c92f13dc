package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelesk/TenantBookingService/internal/domain"
	bookingRepo "github.com/avelesk/TenantBookingService/internal/infra/storage/booking"
	customerRepo "github.com/avelesk/TenantBookingService/internal/infra/storage/customer"
	serviceRepo "github.com/avelesk/TenantBookingService/internal/infra/storage/service"
	tenantRepo "github.com/avelesk/TenantBookingService/internal/infra/storage/tenant"
)

type stubTenantRepo struct {
	tenant *domain.Tenant
	err    error
}

func (s *stubTenantRepo) GetBySlug(_ context.Context, _ string) (*domain.Tenant, error) {
	return s.tenant, s.err
}

type stubServiceRepo struct {
	service *domain.Service
	err     error
}

func (s *stubServiceRepo) GetByID(_ context.Context, _ string) (*domain.Service, error) {
	return s.service, s.err
}

type stubScheduleRepo struct {
	schedule *domain.WeeklySchedule
	err      error
}

func (s *stubScheduleRepo) GetByTenant(_ context.Context, _ string) (*domain.WeeklySchedule, error) {
	return s.schedule, s.err
}

type stubBookingRepo struct {
	bookings  []*domain.Booking
	createErr error
	created   *domain.Booking
}

func (s *stubBookingRepo) GetByTenantAndDate(_ context.Context, _, _ string) ([]*domain.Booking, error) {
	return s.bookings, nil
}

func (s *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *b
	created.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	s.created = &created
	return &created, nil
}

type stubCustomerRepo struct {
	existing *domain.Customer
	created  *domain.Customer
}

func (s *stubCustomerRepo) GetByEmail(_ context.Context, _ string) (*domain.Customer, error) {
	if s.existing == nil {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return s.existing, nil
}

func (s *stubCustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	created := *c
	created.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	s.created = &created
	return &created, nil
}

// stubTxManager прогоняет функцию без настоящей транзакции
type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

type fixture struct {
	tenants   *stubTenantRepo
	services  *stubServiceRepo
	schedules *stubScheduleRepo
	bookings  *stubBookingRepo
	customers *stubCustomerRepo
	uc        *UseCase
}

// Тенант в UTC с дефолтной политикой (minAdvance=120, maxAdvanceDays=30),
// услуга 60 минут, открыт по понедельникам 09:00-14:00 и 16:00-20:00
func newFixture(t *testing.T) *fixture {
	t.Helper()

	policy, err := domain.NewBookingPolicy(domain.PolicyOverrides{
		Timezone: strPtr("UTC"),
	})
	require.NoError(t, err)

	tenant := &domain.Tenant{
		ID:     "tenant-1",
		Name:   "Peluquería Moderna",
		Slug:   "peluqueria-moderna",
		Policy: policy,
	}

	service := &domain.Service{
		ID:              "service-1",
		TenantID:        "tenant-1",
		Name:            "Corte de pelo",
		DurationMinutes: 60,
		Price:           domain.Money{AmountCents: 2550, Currency: domain.CurrencyEUR},
		Active:          true,
	}

	morning, err := domain.NewTimeRangeFromHHMM("09:00", "14:00")
	require.NoError(t, err)
	evening, err := domain.NewTimeRangeFromHHMM("16:00", "20:00")
	require.NoError(t, err)
	schedule := domain.NewWeeklySchedule("tenant-1", []domain.DaySchedule{
		{Day: time.Monday, Ranges: []domain.TimeRange{morning, evening}},
	})

	f := &fixture{
		tenants:   &stubTenantRepo{tenant: tenant},
		services:  &stubServiceRepo{service: service},
		schedules: &stubScheduleRepo{schedule: schedule},
		bookings:  &stubBookingRepo{},
		customers: &stubCustomerRepo{},
	}
	f.uc = NewUseCase(f.tenants, f.services, f.schedules, f.bookings, f.customers, stubTxManager{}, nopLogger{})
	return f
}

// 2026-09-07 is a Monday; now is six days earlier
func validRequest() *Request {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	return &Request{
		TenantSlug:    "peluqueria-moderna",
		ServiceID:     "service-1",
		CustomerName:  "Ana García",
		CustomerEmail: "ana@example.com",
		Date:          "2026-09-07",
		StartTime:     "10:00",
		Now:           &now,
	}
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "tenant-1", resp.TenantID)
	assert.Equal(t, "service-1", resp.ServiceID)
	assert.Equal(t, "2026-09-07", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "11:00", resp.EndTime)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "Corte de pelo", resp.ServiceName)
	assert.Equal(t, "25.50 €", resp.ServicePrice)

	require.NotNil(t, f.bookings.created)
	assert.Equal(t, domain.StatusPending, f.bookings.created.Status)
}

func TestExecute_CreatesCustomerWhenAbsent(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.CustomerPhone = strPtr("+34 600 123 456")

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, f.customers.created)
	assert.Equal(t, "Ana García", f.customers.created.Name)
	assert.Equal(t, "ana@example.com", f.customers.created.Email)
	require.NotNil(t, f.customers.created.Phone)
	assert.Equal(t, resp.CustomerID, f.customers.created.ID)
}

func TestExecute_ReusesExistingCustomer(t *testing.T) {
	f := newFixture(t)
	f.customers.existing = &domain.Customer{ID: "customer-7", Name: "Ana García", Email: "ana@example.com"}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "customer-7", resp.CustomerID)
	assert.Nil(t, f.customers.created)
}

func TestExecute_TenantNotFound(t *testing.T) {
	f := newFixture(t)
	f.tenants.tenant = nil
	f.tenants.err = tenantRepo.ErrTenantNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestExecute_DateWindow(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr error
	}{
		{name: "date in the past", date: "2026-08-31", wantErr: ErrBookingInPast},
		{name: "date beyond max advance days", date: "2026-10-05", wantErr: ErrBookingTooFarAhead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			req := validRequest()
			req.Date = tt.date

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_BoundaryDateIsBookable(t *testing.T) {
	f := newFixture(t)

	policy, err := domain.NewBookingPolicy(domain.PolicyOverrides{
		Timezone:       strPtr("UTC"),
		MaxAdvanceDays: intPtr(7),
	})
	require.NoError(t, err)
	f.tenants.tenant.Policy = policy

	// now is Monday 2026-02-23; today+7 is Monday 2026-03-02, an open day
	now := time.Date(2026, 2, 23, 10, 0, 0, 0, time.UTC)
	req := validRequest()
	req.Date = "2026-03-02"
	req.Now = &now

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", resp.Date)
}

func TestExecute_BookingTooSoon(t *testing.T) {
	f := newFixture(t)

	// Same-day request: local now 08:00, min advance 120, cutoff 10:00
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)
	req := validRequest()
	req.StartTime = "09:00"
	req.Now = &now

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBookingTooSoon)
}

func TestExecute_SameDayAfterCutoffSucceeds(t *testing.T) {
	f := newFixture(t)

	now := time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)
	req := validRequest()
	req.StartTime = "10:00"
	req.Now = &now

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *fixture)
	}{
		{
			name: "missing service",
			mutate: func(f *fixture) {
				f.services.service = nil
				f.services.err = serviceRepo.ErrServiceNotFound
			},
		},
		{
			name: "service of another tenant",
			mutate: func(f *fixture) {
				f.services.service.TenantID = "tenant-2"
			},
		},
		{
			name: "inactive service",
			mutate: func(f *fixture) {
				f.services.service.Active = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mutate(f)

			_, err := f.uc.Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, ErrServiceNotFound)
		})
	}
}

func TestExecute_BusinessClosed(t *testing.T) {
	f := newFixture(t)

	// 2026-09-06 is a Sunday, only Monday is configured
	req := validRequest()
	req.Date = "2026-09-06"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBusinessClosed)
}

func TestExecute_ServiceDoesNotFit(t *testing.T) {
	f := newFixture(t)
	f.services.service.DurationMinutes = 90

	// Booking 10:00-11:00 leaves free 09:00-10:00 and 11:00-14:00; a 90-minute
	// service at 09:00 does not fit into any single fragment
	booked, err := domain.NewTimeRangeFromHHMM("10:00", "11:00")
	require.NoError(t, err)
	f.bookings.bookings = []*domain.Booking{{
		ID:        "booking-1",
		TenantID:  "tenant-1",
		Date:      "2026-09-07",
		TimeRange: booked,
		Status:    domain.StatusConfirmed,
	}}

	req := validRequest()
	req.StartTime = "09:00"

	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceDoesNotFit)
}

func TestExecute_OutsideOpeningHoursDoesNotFit(t *testing.T) {
	f := newFixture(t)

	// 19:30 + 60 minutes runs past closing at 20:00
	req := validRequest()
	req.StartTime = "19:30"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceDoesNotFit)
}

func TestExecute_StorageConflictSurfacesAsDoesNotFit(t *testing.T) {
	f := newFixture(t)
	f.bookings.createErr = bookingRepo.ErrBookingConflict

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceDoesNotFit)
}

func TestExecute_InvalidPhone(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.CustomerPhone = strPtr("12-34")

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPhone)
}

func TestExecute_EmptyPhoneIsAllowed(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.CustomerPhone = strPtr("")

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "empty slug", mutate: func(r *Request) { r.TenantSlug = "" }},
		{name: "empty service id", mutate: func(r *Request) { r.ServiceID = "" }},
		{name: "blank customer name", mutate: func(r *Request) { r.CustomerName = "   " }},
		{name: "bad email", mutate: func(r *Request) { r.CustomerEmail = "not-an-email" }},
		{name: "bad date", mutate: func(r *Request) { r.Date = "07.09.2026" }},
		{name: "bad start time", mutate: func(r *Request) { r.StartTime = "9:00" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
