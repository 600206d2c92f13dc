package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/avelesk/TenantBookingService/internal/domain"
	bookingRepo "github.com/avelesk/TenantBookingService/internal/infra/storage/booking"
	customerRepo "github.com/avelesk/TenantBookingService/internal/infra/storage/customer"
	serviceRepo "github.com/avelesk/TenantBookingService/internal/infra/storage/service"
	tenantRepo "github.com/avelesk/TenantBookingService/internal/infra/storage/tenant"
)

// UseCase use case для создания бронирования.
// Проверки выполняются строго по порядку, первая ошибка прерывает запрос.
type UseCase struct {
	tenantRepo   TenantRepository
	serviceRepo  ServiceRepository
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	customerRepo CustomerRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tenantRepo TenantRepository,
	serviceRepo ServiceRepository,
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	customerRepo CustomerRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		tenantRepo:   tenantRepo,
		serviceRepo:  serviceRepo,
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка свободного интервала и вставка выполняются в сериализуемой
// транзакции с блокировкой бронирований на дату; ограничение уникальности
// слота в БД страхует от двойного бронирования при гонке.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: tenant=%s, service=%s, date=%s, time=%s, email=%s",
		req.TenantSlug, req.ServiceID, req.Date, req.StartTime, req.CustomerEmail)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем тенанта по slug
	tenant, err := uc.tenantRepo.GetBySlug(ctx, req.TenantSlug)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			uc.logger.Warn("CreateBooking: tenant slug=%s not found", req.TenantSlug)
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("CreateBooking: failed to get tenant slug=%s: %v", req.TenantSlug, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	// 3. Локальные "сегодня" и "сейчас" в таймзоне тенанта
	now := req.Now
	if now == nil {
		t := uc.timeProvider.Now()
		now = &t
	}
	loc := tenant.Policy.Location()
	today := domain.LocalDate(loc, *now)
	nowMinutes := domain.LocalMinutes(loc, *now)

	// 4. Окно бронирования: здесь выход за границы - ошибка, не пустой ответ.
	// Граница maxAllowedDate включительна.
	maxAllowedDate, err := domain.AddDays(today, tenant.Policy.MaxAdvanceDays)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to compute max allowed date: %v", err)
		return nil, fmt.Errorf("%w: failed to compute max allowed date: %v", ErrInternal, err)
	}

	if req.Date > maxAllowedDate {
		uc.logger.Warn("CreateBooking: date %s is beyond max allowed %s", req.Date, maxAllowedDate)
		return nil, fmt.Errorf("%w: can only book %d days in advance",
			ErrBookingTooFarAhead, tenant.Policy.MaxAdvanceDays)
	}

	if req.Date < today {
		uc.logger.Warn("CreateBooking: date %s is before tenant-local today %s", req.Date, today)
		return nil, ErrBookingInPast
	}

	// 5. Минимальное время до начала для бронирований на сегодня
	startMinute, err := domain.ParseHHMM(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if req.Date == today && startMinute < nowMinutes+tenant.Policy.MinAdvanceMinutes {
		uc.logger.Warn("CreateBooking: start %s violates min advance of %d minutes",
			req.StartTime, tenant.Policy.MinAdvanceMinutes)
		return nil, fmt.Errorf("%w: must book at least %d minutes in advance",
			ErrBookingTooSoon, tenant.Policy.MinAdvanceMinutes)
	}

	// 6. Получаем услугу; принадлежность другому тенанту неотличима от отсутствия
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.TenantID != tenant.ID || !service.Active {
		uc.logger.Warn("CreateBooking: service id=%s not available for tenant=%s", req.ServiceID, tenant.ID)
		return nil, ErrServiceNotFound
	}

	weekday, err := domain.DayOfWeek(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	var result *domain.Booking

	// 7. Расписание, проверка вместимости и вставка - в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Расписание на день недели; закрытый день - отказ
		schedule, err := uc.scheduleRepo.GetByTenant(txCtx, tenant.ID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		day := schedule.DaySchedule(weekday)
		if day == nil {
			uc.logger.Warn("CreateBooking: tenant=%s is closed on %s", tenant.ID, req.Date)
			return ErrBusinessClosed
		}

		// 7.2. Активные бронирования на дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByTenantAndDate(txCtx, tenant.ID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 7.3. Интервал услуги должен целиком помещаться в один свободный фрагмент
		freeRanges := domain.SubtractBookings(day.Ranges, activeRanges(bookings))
		if !domain.CanFitService(startMinute, service.DurationMinutes, freeRanges) {
			uc.logger.Warn("CreateBooking: service does not fit at %s on %s", req.StartTime, req.Date)
			return ErrServiceDoesNotFit
		}

		span, err := domain.NewTimeRange(startMinute, startMinute+service.DurationMinutes)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrServiceDoesNotFit, err)
		}

		// 7.4. Телефон проверяется только перед созданием клиента
		if err := validatePhone(req.CustomerPhone); err != nil {
			uc.logger.Warn("CreateBooking: phone validation failed: %v", err)
			return err
		}

		// 7.5. Клиент по email, создаем при отсутствии
		customer, err := uc.customerRepo.GetByEmail(txCtx, req.CustomerEmail)
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			customer, err = uc.customerRepo.Create(txCtx, &domain.Customer{
				ID:    uuid.NewString(),
				Name:  req.CustomerName,
				Email: req.CustomerEmail,
				Phone: req.CustomerPhone,
			})
		}
		if err != nil {
			uc.logger.Error("CreateBooking: failed to resolve customer email=%s: %v", req.CustomerEmail, err)
			return fmt.Errorf("%w: failed to resolve customer: %v", ErrInternal, err)
		}

		// 7.6. Создаем бронирование со статусом PENDING
		booking := &domain.Booking{
			ID:         uuid.NewString(),
			TenantID:   tenant.ID,
			ServiceID:  service.ID,
			CustomerID: customer.ID,
			Date:       req.Date,
			TimeRange:  span,
			Status:     domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingConflict) {
				uc.logger.Warn("CreateBooking: conflict on insert for %s %s", req.Date, req.StartTime)
				return ErrServiceDoesNotFit
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Срыв сериализации при фиксации - проигранная гонка за тот же интервал
		if bookingRepo.IsConflict(err) {
			uc.logger.Warn("CreateBooking: transaction conflict for %s %s", req.Date, req.StartTime)
			return nil, ErrServiceDoesNotFit
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{
		ID:              result.ID,
		TenantID:        result.TenantID,
		ServiceID:       result.ServiceID,
		CustomerID:      result.CustomerID,
		Date:            result.Date,
		StartTime:       result.TimeRange.StartHHMM(),
		EndTime:         result.TimeRange.EndHHMM(),
		DurationMinutes: result.TimeRange.DurationMinutes(),
		Status:          string(result.Status),
		TenantName:      tenant.Name,
		ServiceName:     service.Name,
		ServicePrice:    service.Price.Format(),
		CreatedAt:       result.CreatedAt,
	}, nil
}

// activeRanges извлекает занятые интервалы из активных бронирований
func activeRanges(bookings []*domain.Booking) []domain.TimeRange {
	ranges := make([]domain.TimeRange, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		ranges = append(ranges, b.TimeRange)
	}
	return ranges
}
