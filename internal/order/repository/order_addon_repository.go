package repository

import (
	"context"
	"database/sql"
	"fmt"

	"laundrypos/internal/domain"
)

type SQLOrderAddOnRepository struct {
	db *sql.DB
}

func NewSQLOrderAddOnRepository(db *sql.DB) *SQLOrderAddOnRepository {
	return &SQLOrderAddOnRepository{db: db}
}

func (r *SQLOrderAddOnRepository) Insert(ctx context.Context, tx *sql.Tx, item domain.OrderAddOn) error {
	query := `INSERT INTO order_addons (orderId, addOnId, position, price) VALUES (?, ?, ?, ?)`

	_, err := tx.ExecContext(ctx, query, item.OrderID, item.AddOnID, item.Position, item.Price)
	if err != nil {
		return fmt.Errorf("inserting order add-on: %w", err)
	}
	return nil
}

// ListByOrder returns the add-ons of an order in selection order, priced as
// they were when the order was placed. An add-on since removed from the
// catalog comes back with an empty name.
func (r *SQLOrderAddOnRepository) ListByOrder(ctx context.Context, orderID string) ([]domain.AddOn, error) {
	query := `
		SELECT oa.addOnId, COALESCE(a.name, ''), oa.price
		FROM order_addons oa
		LEFT JOIN addons a ON a.id = oa.addOnId
		WHERE oa.orderId = ?
		ORDER BY oa.position
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order add-ons: %w", err)
	}
	defer rows.Close()

	addOns := []domain.AddOn{}
	for rows.Next() {
		var a domain.AddOn
		if err := rows.Scan(&a.ID, &a.Name, &a.Price); err != nil {
			return nil, fmt.Errorf("scanning order add-on: %w", err)
		}
		addOns = append(addOns, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order add-ons: %w", err)
	}
	return addOns, nil
}
