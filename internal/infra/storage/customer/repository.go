package customer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avelesk/TenantBookingService/internal/domain"
	"github.com/avelesk/TenantBookingService/pkg/dbmetrics"
	"github.com/avelesk/TenantBookingService/pkg/psqlbuilder"
)

var customerColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"created_at",
}

// Repository репозиторий клиентов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEmail получает клиента по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	cust, err := scanCustomer(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan customer: %v", ErrScanRow, err)
	}

	return cust, nil
}

// Create создает нового клиента и возвращает его с заполненным created_at
func (r *Repository) Create(ctx context.Context, cust *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("id", "name", "email", "phone").
		Values(cust.ID, cust.Name, cust.Email, cust.Phone).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *cust
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&created.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &created, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var cust domain.Customer

	err := row.Scan(
		&cust.ID,
		&cust.Name,
		&cust.Email,
		&cust.Phone,
		&cust.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &cust, nil
}
