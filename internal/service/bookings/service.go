package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelesk/TenantBookingService/internal/domain"
	bookingRepo "github.com/avelesk/TenantBookingService/internal/infra/storage/booking"
	"github.com/avelesk/TenantBookingService/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований: подтверждение после оплаты,
// отмена и учет напоминаний
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Confirm переводит бронирование PENDING -> CONFIRMED после успешной оплаты.
// Повторное подтверждение и подтверждение отмененного бронирования - no-op:
// платежные уведомления приходят с повторами, операция обязана быть идемпотентной.
func (s *Service) Confirm(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%s", id)

	var confirmed *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
		}

		if !booking.CanBeConfirmed() {
			s.logger.Info("Confirm: booking id=%s already in status=%s, nothing to do", id, booking.Status)
			confirmed = booking
			return nil
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, id, domain.StatusConfirmed); err != nil {
			return fmt.Errorf("%w: Confirm - update status: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusConfirmed
		confirmed = booking
		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrBookingNotFound) {
			s.logger.Error("Confirm: failed for booking id=%s: %v", id, err)
		}
		return nil, err
	}

	s.logger.Info("Confirm: booking id=%s status=%s", id, confirmed.Status)
	return models.FromDomainBooking(confirmed), nil
}

// Cancel переводит бронирование в CANCELLED.
// Отмена уже отмененного бронирования - no-op.
func (s *Service) Cancel(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	var cancelled *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if !booking.CanBeCancelled() {
			s.logger.Info("Cancel: booking id=%s already cancelled, nothing to do", id)
			cancelled = booking
			return nil
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, id, domain.StatusCancelled); err != nil {
			return fmt.Errorf("%w: Cancel - update status: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusCancelled
		cancelled = booking
		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrBookingNotFound) {
			s.logger.Error("Cancel: failed for booking id=%s: %v", id, err)
		}
		return nil, err
	}

	s.logger.Info("Cancel: booking id=%s cancelled", id)
	return models.FromDomainBooking(cancelled), nil
}

// ListRemindersDue возвращает подтвержденные бронирования на дату, по которым
// напоминание еще не отправлялось
func (s *Service) ListRemindersDue(ctx context.Context, date string) (*models.BookingListResponse, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.ListConfirmedWithoutReminder(ctx, date)
	if err != nil {
		s.logger.Error("ListRemindersDue: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: ListRemindersDue - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListRemindersDue: %d bookings due for date=%s", len(bookings), date)
	return models.FromDomainBookingList(bookings), nil
}

// MarkReminderSent фиксирует отправку напоминания по бронированию
func (s *Service) MarkReminderSent(ctx context.Context, id string) error {
	sentAt := s.timeProvider.Now()

	if err := s.bookingRepo.SetReminderSentAt(ctx, id, sentAt); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("MarkReminderSent: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("MarkReminderSent: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: MarkReminderSent - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkReminderSent: booking id=%s marked at %s", id, sentAt.Format("2006-01-02 15:04:05"))
	return nil
}
