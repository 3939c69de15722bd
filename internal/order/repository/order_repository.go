package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"laundrypos/internal/domain"
	"laundrypos/internal/errors"
)

type SQLOrderRepository struct {
	db *sql.DB
}

func NewSQLOrderRepository(db *sql.DB) *SQLOrderRepository {
	return &SQLOrderRepository{db: db}
}

// Insert writes the order row. The add-on selection is also stored in the
// legacy JSON column so older readers keep working.
func (r *SQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order) error {
	addons, err := domain.EncodeAddOnIDs(order.AddOnIDs)
	if err != nil {
		return fmt.Errorf("encoding add-ons: %w", err)
	}

	query := "INSERT INTO services (id, customerId, serviceType, weight, `load`, instructions, addons, gross, createdAt) " +
		"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"

	_, err = tx.ExecContext(ctx, query,
		order.ID, order.CustomerID, order.ServiceTypeName, order.Weight, order.LoadCount,
		order.Instructions, addons, order.Gross, order.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}
	return nil
}

const selectOrderWithStatus = "SELECT s.id, s.customerId, s.serviceType, s.weight, s.`load`, s.instructions, s.addons, s.gross, s.createdAt, " +
	"ss.isFinished, ss.finishedAt, ss.isPaid, ss.paidAt, ss.isClaimed, ss.claimedAt " +
	"FROM services s JOIN services_status ss ON ss.serviceId = s.id "

func (r *SQLOrderRepository) FindByID(ctx context.Context, id string) (*domain.OrderWithStatus, error) {
	o, err := scanOrderWithStatus(r.db.QueryRowContext(ctx, selectOrderWithStatus+"WHERE s.id = ?", id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}
	return o, nil
}

// ListByCustomer orders unpaid, unfinished and unclaimed work first, newest
// first within each group.
func (r *SQLOrderRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.OrderWithStatus, error) {
	query := selectOrderWithStatus +
		"WHERE s.customerId = ? ORDER BY ss.isPaid ASC, ss.isFinished ASC, ss.isClaimed ASC, s.createdAt DESC"

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("querying orders by customer: %w", err)
	}
	defer rows.Close()

	orders := []domain.OrderWithStatus{}
	for rows.Next() {
		o, err := scanOrderWithStatus(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}
	return orders, nil
}

// LegacyAddOns returns the add-on selection exactly as stored in the JSON
// column.
func (r *SQLOrderRepository) LegacyAddOns(ctx context.Context, id string) (string, error) {
	var raw sql.NullString
	err := r.db.QueryRowContext(ctx, `SELECT addons FROM services WHERE id = ?`, id).Scan(&raw)
	if err == sql.ErrNoRows {
		return "", errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}
	if err != nil {
		return "", fmt.Errorf("querying order add-ons: %w", err)
	}
	return raw.String, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrderWithStatus(row scanner) (*domain.OrderWithStatus, error) {
	var (
		o                             domain.OrderWithStatus
		addons                        sql.NullString
		finishedAt, paidAt, claimedAt sql.NullTime
	)
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.ServiceTypeName, &o.Weight, &o.LoadCount, &o.Instructions, &addons, &o.Gross, &o.CreatedAt,
		&o.Status.IsFinished, &finishedAt, &o.Status.IsPaid, &paidAt, &o.Status.IsClaimed, &claimedAt,
	)
	if err != nil {
		return nil, err
	}

	// An unreadable legacy selection is reported by the detail view, not here.
	ids, err := domain.DecodeAddOnIDs(addons.String)
	if err != nil {
		ids = []string{}
	}
	o.AddOnIDs = ids

	o.Status.OrderID = o.ID
	o.Status.CustomerID = o.CustomerID
	o.Status.FinishedAt = timePtr(finishedAt)
	o.Status.PaidAt = timePtr(paidAt)
	o.Status.ClaimedAt = timePtr(claimedAt)
	return &o, nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
