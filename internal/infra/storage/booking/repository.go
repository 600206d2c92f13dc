package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/avelesk/TenantBookingService/internal/domain"
	"github.com/avelesk/TenantBookingService/pkg/dbmetrics"
	"github.com/avelesk/TenantBookingService/pkg/psqlbuilder"
)

// Коды ошибок PostgreSQL, сигнализирующие о конфликте бронирования
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
	pgSerializationFail  = "40001"
)

var bookingColumns = []string{
	"id",
	"tenant_id",
	"service_id",
	"customer_id",
	"booking_date",
	"start_minute",
	"end_minute",
	"status",
	"reminder_sent_at",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
//
// Таблица bookings защищена exclusion constraint:
//
//	EXCLUDE USING gist (
//	    tenant_id WITH =,
//	    booking_date WITH =,
//	    int4range(start_minute, end_minute) WITH &&
//	) WHERE (status <> 'CANCELLED')
//
// Два активных бронирования одного тенанта не могут пересекаться по времени
// в один день; нарушение маппится в ErrBookingConflict.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование
// Если в контексте есть активная транзакция (dbmetrics.WithTx), использует её
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"tenant_id",
			"service_id",
			"customer_id",
			"booking_date",
			"start_minute",
			"end_minute",
			"status",
		).
		Values(
			b.ID,
			b.TenantID,
			b.ServiceID,
			b.CustomerID,
			b.Date,
			b.TimeRange.Start,
			b.TimeRange.End,
			b.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		if isConflict(err) {
			return nil, fmt.Errorf("%w: tenant=%s date=%s range=%s: %v",
				ErrBookingConflict, b.TenantID, b.Date, b.TimeRange, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetByTenantAndDate получает активные бронирования тенанта на дату,
// отсортированные по времени начала.
// Внутри транзакции добавляется FOR UPDATE для блокировки строк
// (usecase создания бронирования - защита от check-then-act гонки)
func (r *Repository) GetByTenantAndDate(ctx context.Context, tenantID, date string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		OrderBy("start_minute ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// ListConfirmedWithoutReminder получает подтвержденные бронирования на дату,
// по которым еще не отправлялось напоминание
func (r *Repository) ListConfirmedWithoutReminder(ctx context.Context, date string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.Eq{"status": string(domain.StatusConfirmed)}).
		Where(squirrel.Eq{"reminder_sent_at": nil}).
		OrderBy("start_minute ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedWithoutReminder - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedWithoutReminder - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// SetReminderSentAt помечает бронирование как обработанное рассылкой напоминаний
func (r *Repository) SetReminderSentAt(ctx context.Context, id string, sentAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("reminder_sent_at", sentAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetReminderSentAt - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetReminderSentAt - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetReminderSentAt - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b           domain.Booking
		bookingDate time.Time
		startMin    int
		endMin      int
		statusRaw   string
		reminderAt  sql.NullTime
		createdAt   sql.NullTime
	)

	err := row.Scan(
		&b.ID,
		&b.TenantID,
		&b.ServiceID,
		&b.CustomerID,
		&bookingDate,
		&startMin,
		&endMin,
		&statusRaw,
		&reminderAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	status, ok := domain.ParseBookingStatus(statusRaw)
	if !ok {
		return nil, fmt.Errorf("%w: unknown booking status %q", ErrScanRow, statusRaw)
	}
	b.Status = status

	b.Date = bookingDate.Format(domain.DateFormat)
	b.TimeRange = domain.TimeRange{Start: startMin, End: endMin}
	if reminderAt.Valid {
		b.ReminderSentAt = &reminderAt.Time
	}
	b.CreatedAt = createdAt.Time

	return &b, nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// IsConflict сообщает, является ли ошибка конфликтом бронирования:
// сентинел ErrBookingConflict либо сырая ошибка Postgres с кодом нарушения
// ограничения или serialization failure (ошибки фиксации транзакции
// приходят мимо репозитория)
func IsConflict(err error) bool {
	return errors.Is(err, ErrBookingConflict) || isConflict(err)
}

// isConflict распознает нарушение ограничения слота и serialization failure
func isConflict(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation, pgExclusionViolation, pgSerializationFail:
			return true
		}
	}
	return false
}
