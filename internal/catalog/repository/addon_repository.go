package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"laundrypos/internal/domain"
	"laundrypos/internal/errors"
	"laundrypos/internal/infrastructure/database"
)

type SQLAddOnRepository struct {
	db *sql.DB
}

func NewSQLAddOnRepository(db *sql.DB) *SQLAddOnRepository {
	return &SQLAddOnRepository{db: db}
}

func (r *SQLAddOnRepository) Create(ctx context.Context, a domain.AddOn) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO addons (id, name, price) VALUES (?, ?, ?)`, a.ID, a.Name, a.Price)
	if database.IsUniqueViolation(err) {
		return errors.NewConflictError(fmt.Sprintf("Add-on %q already exists.", a.Name))
	}
	if err != nil {
		return fmt.Errorf("inserting add-on: %w", err)
	}
	return nil
}

func (r *SQLAddOnRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM addons WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting add-on: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("add-on with id %s not found", id))
	}
	return nil
}

func (r *SQLAddOnRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM addons WHERE LOWER(name) = LOWER(?)`, name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking add-on name: %w", err)
	}
	return count > 0, nil
}

func (r *SQLAddOnRepository) List(ctx context.Context) ([]domain.AddOn, error) {
	return r.query(ctx, `SELECT id, name, price FROM addons ORDER BY name`)
}

// FindByIDs returns the add-ons among ids that exist, ordered by name.
// Unknown ids are skipped; callers compare lengths to detect them.
func (r *SQLAddOnRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.AddOn, error) {
	if len(ids) == 0 {
		return []domain.AddOn{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	return r.query(ctx, `SELECT id, name, price FROM addons WHERE id IN (`+placeholders+`) ORDER BY name`, args...)
}

func (r *SQLAddOnRepository) query(ctx context.Context, query string, args ...any) ([]domain.AddOn, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying add-ons: %w", err)
	}
	defer rows.Close()

	addOns := []domain.AddOn{}
	for rows.Next() {
		var a domain.AddOn
		if err := rows.Scan(&a.ID, &a.Name, &a.Price); err != nil {
			return nil, fmt.Errorf("scanning add-on: %w", err)
		}
		addOns = append(addOns, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating add-ons: %w", err)
	}
	return addOns, nil
}
