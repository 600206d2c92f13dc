package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelesk/TenantBookingService/internal/domain"
	bookingRepo "github.com/avelesk/TenantBookingService/internal/infra/storage/booking"
)

type stubBookingRepo struct {
	byID           map[string]*domain.Booking
	statusUpdates  map[string]domain.BookingStatus
	reminderTimes  map[string]time.Time
	withoutRemind  []*domain.Booking
	updateErr      error
	setReminderErr error
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{
		byID:          make(map[string]*domain.Booking),
		statusUpdates: make(map[string]domain.BookingStatus),
		reminderTimes: make(map[string]time.Time),
	}
}

func (s *stubBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := s.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (s *stubBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.statusUpdates[id] = status
	return nil
}

func (s *stubBookingRepo) ListConfirmedWithoutReminder(_ context.Context, _ string) ([]*domain.Booking, error) {
	return s.withoutRemind, nil
}

func (s *stubBookingRepo) SetReminderSentAt(_ context.Context, id string, sentAt time.Time) error {
	if s.setReminderErr != nil {
		return s.setReminderErr
	}
	if _, ok := s.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	s.reminderTimes[id] = sentAt
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

func testBooking(t *testing.T, id string, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	tr, err := domain.NewTimeRangeFromHHMM("10:00", "11:00")
	require.NoError(t, err)
	return &domain.Booking{
		ID:         id,
		TenantID:   "tenant-1",
		ServiceID:  "service-1",
		CustomerID: "customer-1",
		Date:       "2026-09-07",
		TimeRange:  tr,
		Status:     status,
		CreatedAt:  time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newTestService(repo *stubBookingRepo) *Service {
	return NewService(repo, stubTxManager{}, nopLogger{})
}

func TestGetByID(t *testing.T) {
	repo := newStubBookingRepo()
	repo.byID["b-1"] = testBooking(t, "b-1", domain.StatusPending)

	svc := newTestService(repo)

	resp, err := svc.GetByID(context.Background(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, "b-1", resp.ID)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "11:00", resp.EndTime)
	assert.Equal(t, 60, resp.DurationMinutes)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestConfirm_PendingBooking(t *testing.T) {
	repo := newStubBookingRepo()
	repo.byID["b-1"] = testBooking(t, "b-1", domain.StatusPending)

	svc := newTestService(repo)

	resp, err := svc.Confirm(context.Background(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.statusUpdates["b-1"])
}

func TestConfirm_IsIdempotent(t *testing.T) {
	tests := []struct {
		name   string
		status domain.BookingStatus
	}{
		{name: "already confirmed", status: domain.StatusConfirmed},
		{name: "already cancelled", status: domain.StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubBookingRepo()
			repo.byID["b-1"] = testBooking(t, "b-1", tt.status)

			svc := newTestService(repo)

			resp, err := svc.Confirm(context.Background(), "b-1")
			require.NoError(t, err)
			assert.Equal(t, string(tt.status), resp.Status)
			// Статус в хранилище не трогается
			assert.Empty(t, repo.statusUpdates)
		})
	}
}

func TestConfirm_NotFound(t *testing.T) {
	svc := newTestService(newStubBookingRepo())

	_, err := svc.Confirm(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel(t *testing.T) {
	repo := newStubBookingRepo()
	repo.byID["b-1"] = testBooking(t, "b-1", domain.StatusConfirmed)

	svc := newTestService(repo)

	resp, err := svc.Cancel(context.Background(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, domain.StatusCancelled, repo.statusUpdates["b-1"])
}

func TestCancel_AlreadyCancelledIsNoOp(t *testing.T) {
	repo := newStubBookingRepo()
	repo.byID["b-1"] = testBooking(t, "b-1", domain.StatusCancelled)

	svc := newTestService(repo)

	resp, err := svc.Cancel(context.Background(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Empty(t, repo.statusUpdates)
}

func TestListRemindersDue(t *testing.T) {
	repo := newStubBookingRepo()
	repo.withoutRemind = []*domain.Booking{
		testBooking(t, "b-1", domain.StatusConfirmed),
		testBooking(t, "b-2", domain.StatusConfirmed),
	}

	svc := newTestService(repo)

	resp, err := svc.ListRemindersDue(context.Background(), "2026-09-07")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	_, err = svc.ListRemindersDue(context.Background(), "not-a-date")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMarkReminderSent(t *testing.T) {
	repo := newStubBookingRepo()
	repo.byID["b-1"] = testBooking(t, "b-1", domain.StatusConfirmed)

	svc := newTestService(repo)

	require.NoError(t, svc.MarkReminderSent(context.Background(), "b-1"))
	assert.False(t, repo.reminderTimes["b-1"].IsZero())

	err := svc.MarkReminderSent(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
