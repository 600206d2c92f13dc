package tenant

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avelesk/TenantBookingService/internal/domain"
	"github.com/avelesk/TenantBookingService/pkg/dbmetrics"
	"github.com/avelesk/TenantBookingService/pkg/psqlbuilder"
	"github.com/avelesk/TenantBookingService/pkg/ptr"
)

var tenantColumns = []string{
	"id",
	"name",
	"slug",
	"currency",
	"owner_email",
	"timezone",
	"min_advance_minutes",
	"max_advance_days",
	"created_at",
}

// Repository репозиторий тенантов
// Политика бронирования хранится в колонках таблицы tenants и
// восстанавливается через domain.NewBookingPolicy при чтении
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория тенантов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBySlug получает тенанта по slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	return r.getByColumn(ctx, "slug", slug)
}

// GetByID получает тенанта по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	return r.getByColumn(ctx, "id", id)
}

// UpdatePolicy сохраняет политику бронирования тенанта
func (r *Repository) UpdatePolicy(ctx context.Context, tenantID string, policy domain.BookingPolicy) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tenants").
		Set("timezone", policy.Timezone).
		Set("min_advance_minutes", policy.MinAdvanceMinutes).
		Set("max_advance_days", policy.MaxAdvanceDays).
		Where(squirrel.Eq{"id": tenantID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePolicy - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePolicy - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePolicy - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTenantNotFound
	}

	return nil
}

func (r *Repository) getByColumn(ctx context.Context, column, value string) (*domain.Tenant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tenantColumns...).
		From("tenants").
		Where(squirrel.Eq{column: value}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getByColumn - build select query: %v", ErrBuildQuery, err)
	}

	var (
		t                 domain.Tenant
		slug              string
		timezone          string
		minAdvanceMinutes int
		maxAdvanceDays    int
		createdAt         sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&t.Name,
		&slug,
		&t.Currency,
		&t.OwnerEmail,
		&timezone,
		&minAdvanceMinutes,
		&maxAdvanceDays,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByColumn - scan tenant: %v", ErrScanRow, err)
	}

	t.Slug = domain.Slug(slug)
	t.CreatedAt = createdAt.Time

	policy, err := domain.NewBookingPolicy(domain.PolicyOverrides{
		Timezone:          ptr.Ptr(timezone),
		MinAdvanceMinutes: ptr.Ptr(minAdvanceMinutes),
		MaxAdvanceDays:    ptr.Ptr(maxAdvanceDays),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: tenant=%s: %v", ErrInvalidPolicy, t.ID, err)
	}
	t.Policy = policy

	return &t, nil
}
