package repository

import (
	"context"
	"database/sql"
	"fmt"

	"laundrypos/internal/domain"
	"laundrypos/internal/errors"
	"laundrypos/internal/infrastructure/database"
)

type SQLCustomerRepository struct {
	db *sql.DB
}

func NewSQLCustomerRepository(db *sql.DB) *SQLCustomerRepository {
	return &SQLCustomerRepository{db: db}
}

func (r *SQLCustomerRepository) Create(ctx context.Context, c domain.Customer) error {
	return insertCustomer(ctx, r.db, c)
}

// CreateTx inserts the customer inside tx.
func (r *SQLCustomerRepository) CreateTx(ctx context.Context, tx *sql.Tx, c domain.Customer) error {
	return insertCustomer(ctx, tx, c)
}

func insertCustomer(ctx context.Context, q database.DBTX, c domain.Customer) error {
	query := `INSERT INTO customers (id, name, contact, createdAt) VALUES (?, ?, ?, ?)`

	_, err := q.ExecContext(ctx, query, c.ID, c.Name, c.Contact, c.CreatedAt.UTC())
	if database.IsUniqueViolation(err) {
		return errors.NewConflictError(fmt.Sprintf("Customer name %q already exists!", c.Name))
	}
	if err != nil {
		return fmt.Errorf("inserting customer: %w", err)
	}
	return nil
}

func (r *SQLCustomerRepository) Update(ctx context.Context, c domain.Customer) error {
	result, err := r.db.ExecContext(ctx, `UPDATE customers SET name = ?, contact = ? WHERE id = ?`, c.Name, c.Contact, c.ID)
	if database.IsUniqueViolation(err) {
		return errors.NewConflictError(fmt.Sprintf("Customer name %q already exists!", c.Name))
	}
	if err != nil {
		return fmt.Errorf("updating customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("customer with id %s not found", c.ID))
	}
	return nil
}

func (r *SQLCustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `SELECT id, name, contact, createdAt FROM customers WHERE id = ?`

	var c domain.Customer
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Contact, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("customer with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying customer by id: %w", err)
	}
	return &c, nil
}

func (r *SQLCustomerRepository) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	return customerNameExists(ctx, r.db, name, excludeID)
}

func (r *SQLCustomerRepository) ExistsByNameTx(ctx context.Context, tx *sql.Tx, name string) (bool, error) {
	return customerNameExists(ctx, tx, name, "")
}

func customerNameExists(ctx context.Context, q database.DBTX, name, excludeID string) (bool, error) {
	query := `SELECT COUNT(*) FROM customers WHERE LOWER(name) = LOWER(?) AND id <> ?`

	var count int
	if err := q.QueryRowContext(ctx, query, name, excludeID).Scan(&count); err != nil {
		return false, fmt.Errorf("checking customer name: %w", err)
	}
	return count > 0, nil
}

// ListWithUnpaidTotal returns every customer ordered by name together with
// the gross of their orders not yet paid.
func (r *SQLCustomerRepository) ListWithUnpaidTotal(ctx context.Context) ([]domain.CustomerBalance, error) {
	query := `
		SELECT c.id, c.name, c.contact, c.createdAt,
		       COALESCE(SUM(CASE WHEN ss.isPaid = 0 THEN s.gross ELSE 0 END), 0)
		FROM customers c
		LEFT JOIN services s ON s.customerId = c.id
		LEFT JOIN services_status ss ON ss.serviceId = s.id
		GROUP BY c.id, c.name, c.contact, c.createdAt
		ORDER BY c.name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying customers: %w", err)
	}
	defer rows.Close()

	balances := []domain.CustomerBalance{}
	for rows.Next() {
		var b domain.CustomerBalance
		if err := rows.Scan(&b.ID, &b.Name, &b.Contact, &b.CreatedAt, &b.UnpaidTotal); err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customers: %w", err)
	}
	return balances, nil
}

func (r *SQLCustomerRepository) UnclaimedCount(ctx context.Context, customerID string) (int, error) {
	query := `SELECT COUNT(*) FROM services_status WHERE customerId = ? AND isClaimed = 0`

	var count int
	if err := r.db.QueryRowContext(ctx, query, customerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting unclaimed orders: %w", err)
	}
	return count, nil
}
