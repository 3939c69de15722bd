package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"laundrypos/internal/domain"
	"laundrypos/internal/errors"
)

type SQLStatusRepository struct {
	db *sql.DB
}

func NewSQLStatusRepository(db *sql.DB) *SQLStatusRepository {
	return &SQLStatusRepository{db: db}
}

func (r *SQLStatusRepository) Insert(ctx context.Context, tx *sql.Tx, s domain.OrderStatus) error {
	query := `INSERT INTO services_status (serviceId, customerId, isFinished, finishedAt, isPaid, paidAt, isClaimed, claimedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := tx.ExecContext(ctx, query,
		s.OrderID, s.CustomerID,
		s.IsFinished, nullableTime(s.FinishedAt),
		s.IsPaid, nullableTime(s.PaidAt),
		s.IsClaimed, nullableTime(s.ClaimedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting order status: %w", err)
	}
	return nil
}

func (r *SQLStatusRepository) FindByOrderID(ctx context.Context, orderID string) (*domain.OrderStatus, error) {
	query := `SELECT serviceId, customerId, isFinished, finishedAt, isPaid, paidAt, isClaimed, claimedAt
		FROM services_status WHERE serviceId = ?`

	var (
		s                             domain.OrderStatus
		finishedAt, paidAt, claimedAt sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, orderID).Scan(
		&s.OrderID, &s.CustomerID, &s.IsFinished, &finishedAt, &s.IsPaid, &paidAt, &s.IsClaimed, &claimedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", orderID))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order status: %w", err)
	}

	s.FinishedAt = timePtr(finishedAt)
	s.PaidAt = timePtr(paidAt)
	s.ClaimedAt = timePtr(claimedAt)
	return &s, nil
}

// SetFlag raises the flag targeted by action and stamps it with at. The
// update only applies while the flag is still unset, so a flag is never
// cleared or re-stamped. It returns false when nothing was updated.
func (r *SQLStatusRepository) SetFlag(ctx context.Context, orderID string, action domain.Action, at time.Time) (bool, error) {
	var query string
	switch action {
	case domain.ActionFinish:
		query = `UPDATE services_status SET isFinished = 1, finishedAt = ? WHERE serviceId = ? AND isFinished = 0`
	case domain.ActionPay:
		query = `UPDATE services_status SET isPaid = 1, paidAt = ? WHERE serviceId = ? AND isPaid = 0`
	case domain.ActionClaim:
		query = `UPDATE services_status SET isClaimed = 1, claimedAt = ? WHERE serviceId = ? AND isFinished = 1 AND isClaimed = 0`
	default:
		return false, fmt.Errorf("unknown action %q", action)
	}

	result, err := r.db.ExecContext(ctx, query, at.UTC(), orderID)
	if err != nil {
		return false, fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("getting rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
