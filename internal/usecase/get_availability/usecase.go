package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelesk/TenantBookingService/internal/domain"
	tenantRepo "github.com/avelesk/TenantBookingService/internal/infra/storage/tenant"
)

// UseCase use case для получения доступных слотов на дату.
// Чистый запрос: ничего не изменяет, конкурентные бронирования не блокирует.
type UseCase struct {
	tenantRepo   TenantRepository
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tenantRepo TenantRepository,
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		tenantRepo:   tenantRepo,
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Запросы за границами окна бронирования и на закрытые дни возвращают
// пустой список слотов, а не ошибку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: tenant=%s, date=%s", req.TenantSlug, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем тенанта по slug
	tenant, err := uc.tenantRepo.GetBySlug(ctx, req.TenantSlug)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			uc.logger.Warn("GetAvailability: tenant slug=%s not found", req.TenantSlug)
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("GetAvailability: failed to get tenant slug=%s: %v", req.TenantSlug, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	// 3. Вычисляем локальные "сегодня" и "сейчас" в таймзоне тенанта
	now := req.Now
	if now == nil {
		t := uc.timeProvider.Now()
		now = &t
	}
	loc := tenant.Policy.Location()
	today := domain.LocalDate(loc, *now)
	nowMinutes := domain.LocalMinutes(loc, *now)

	// 4. Проверяем окно бронирования: за его пределами слотов нет
	maxAllowedDate, err := domain.AddDays(today, tenant.Policy.MaxAdvanceDays)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to compute max allowed date: %v", err)
		return nil, fmt.Errorf("%w: failed to compute max allowed date: %v", ErrInternal, err)
	}

	if req.Date < today || req.Date > maxAllowedDate {
		uc.logger.Info("GetAvailability: date %s outside booking window [%s, %s]",
			req.Date, today, maxAllowedDate)
		return emptyResponse(tenant.Name, req.Date), nil
	}

	// 5. Расписание на день недели запрошенной даты
	schedule, err := uc.scheduleRepo.GetByTenant(ctx, tenant.ID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get schedule for tenant=%s: %v", tenant.ID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	weekday, err := domain.DayOfWeek(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	day := schedule.DaySchedule(weekday)
	if day == nil {
		uc.logger.Info("GetAvailability: tenant=%s is closed on %s", tenant.ID, req.Date)
		return emptyResponse(tenant.Name, req.Date), nil
	}

	// 6. Свободные интервалы = рабочие минус активные бронирования
	bookings, err := uc.bookingRepo.GetByTenantAndDate(ctx, tenant.ID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	freeRanges := domain.SubtractBookings(day.Ranges, bookedRanges(bookings))

	// 7-9. Генерируем слоты из рабочих интервалов; на сегодня отсекаем
	// слоты раньше now + minAdvanceMinutes, на будущие даты фильтра нет
	cutoffMinute := -1
	if req.Date == today {
		cutoffMinute = nowMinutes + tenant.Policy.MinAdvanceMinutes
	}

	slots := buildSlots(day.Ranges, freeRanges, cutoffMinute)

	uc.logger.Info("GetAvailability: tenant=%s, date=%s, slots=%d", tenant.ID, req.Date, len(slots))

	return &Response{
		TenantName: tenant.Name,
		Date:       req.Date,
		Slots:      slots,
	}, nil
}

func emptyResponse(tenantName, date string) *Response {
	return &Response{
		TenantName: tenantName,
		Date:       date,
		Slots:      []Slot{},
	}
}
