package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/avelesk/TenantBookingService/internal/domain"
	"github.com/avelesk/TenantBookingService/pkg/dbmetrics"
	"github.com/avelesk/TenantBookingService/pkg/psqlbuilder"
)

// Repository репозиторий недельных расписаний тенантов.
// Расписание хранится построчно в таблице schedule_days: одна строка
// на интервал работы (tenant_id, day_of_week, start_minute, end_minute).
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByTenant собирает недельное расписание тенанта из строк schedule_days.
// Если строк нет, возвращается пустое расписание (тенант закрыт всю неделю).
func (r *Repository) GetByTenant(ctx context.Context, tenantID string) (*domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day_of_week", "start_minute", "end_minute").
		From("schedule_days").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("day_of_week ASC", "start_minute ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ranges := make(map[time.Weekday][]domain.TimeRange)
	for rows.Next() {
		var day, startMinute, endMinute int
		if err := rows.Scan(&day, &startMinute, &endMinute); err != nil {
			return nil, fmt.Errorf("%w: GetByTenant - scan row: %v", ErrScanRow, err)
		}

		tr, err := domain.NewTimeRange(startMinute, endMinute)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByTenant - day %d [%d, %d): %v",
				ErrInvalidScheduleRow, day, startMinute, endMinute, err)
		}

		weekday := time.Weekday(day)
		ranges[weekday] = append(ranges[weekday], tr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByTenant - rows error: %v", ErrScanRow, err)
	}

	days := make([]domain.DaySchedule, 0, len(ranges))
	for day := time.Sunday; day <= time.Saturday; day++ {
		if rs, ok := ranges[day]; ok {
			days = append(days, domain.DaySchedule{Day: day, Ranges: rs})
		}
	}

	return domain.NewWeeklySchedule(tenantID, days), nil
}

// Replace целиком заменяет расписание тенанта: удаляет старые строки
// и вставляет новые. Ожидается вызов внутри транзакции.
func (r *Repository) Replace(ctx context.Context, tenantID string, schedule *domain.WeeklySchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedule_days").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Replace - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - delete old rows: %v", ErrExecQuery, err)
	}

	insert := psqlbuilder.Insert("schedule_days").
		Columns("tenant_id", "day_of_week", "start_minute", "end_minute")

	rowCount := 0
	for _, day := range schedule.Days() {
		for _, tr := range day.Ranges {
			insert = insert.Values(tenantID, int(day.Day), tr.Start, tr.End)
			rowCount++
		}
	}

	if rowCount == 0 {
		return nil
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - insert rows: %v", ErrExecQuery, err)
	}

	return nil
}
