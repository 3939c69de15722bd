package repository

import (
	"context"
	"database/sql"
	"fmt"

	"laundrypos/internal/domain"
	"laundrypos/internal/errors"
	"laundrypos/internal/infrastructure/database"
)

type SQLServiceTypeRepository struct {
	db *sql.DB
}

func NewSQLServiceTypeRepository(db *sql.DB) *SQLServiceTypeRepository {
	return &SQLServiceTypeRepository{db: db}
}

func (r *SQLServiceTypeRepository) Create(ctx context.Context, st domain.ServiceType) error {
	query := `INSERT INTO service_types (id, name, price, minWeight) VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, st.ID, st.Name, st.Price, st.MinWeight.Ptr())
	if database.IsUniqueViolation(err) {
		return errors.NewConflictError(fmt.Sprintf("Service %q already exists.", st.Name))
	}
	if err != nil {
		return fmt.Errorf("inserting service type: %w", err)
	}
	return nil
}

func (r *SQLServiceTypeRepository) Update(ctx context.Context, st domain.ServiceType) error {
	query := `UPDATE service_types SET name = ?, price = ?, minWeight = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, st.Name, st.Price, st.MinWeight.Ptr(), st.ID)
	if database.IsUniqueViolation(err) {
		return errors.NewConflictError(fmt.Sprintf("Service %q already exists.", st.Name))
	}
	if err != nil {
		return fmt.Errorf("updating service type: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("service type with id %s not found", st.ID))
	}
	return nil
}

func (r *SQLServiceTypeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM service_types WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting service type: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("service type with id %s not found", id))
	}
	return nil
}

func (r *SQLServiceTypeRepository) FindByID(ctx context.Context, id string) (*domain.ServiceType, error) {
	query := `SELECT id, name, price, minWeight FROM service_types WHERE id = ?`

	st, err := scanServiceType(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("service type with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying service type by id: %w", err)
	}
	return st, nil
}

// FindByName matches case-insensitively.
func (r *SQLServiceTypeRepository) FindByName(ctx context.Context, name string) (*domain.ServiceType, error) {
	query := `SELECT id, name, price, minWeight FROM service_types WHERE LOWER(name) = LOWER(?)`

	st, err := scanServiceType(r.db.QueryRowContext(ctx, query, name))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("service type %q not found", name))
	}
	if err != nil {
		return nil, fmt.Errorf("querying service type by name: %w", err)
	}
	return st, nil
}

// ExistsByName reports whether another service type already uses name,
// ignoring case. excludeID skips the record being renamed.
func (r *SQLServiceTypeRepository) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	query := `SELECT COUNT(*) FROM service_types WHERE LOWER(name) = LOWER(?) AND id <> ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, name, excludeID).Scan(&count); err != nil {
		return false, fmt.Errorf("checking service type name: %w", err)
	}
	return count > 0, nil
}

func (r *SQLServiceTypeRepository) List(ctx context.Context) ([]domain.ServiceType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, price, minWeight FROM service_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying service types: %w", err)
	}
	defer rows.Close()

	types := []domain.ServiceType{}
	for rows.Next() {
		st, err := scanServiceType(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning service type: %w", err)
		}
		types = append(types, *st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating service types: %w", err)
	}
	return types, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanServiceType(row scanner) (*domain.ServiceType, error) {
	var (
		st        domain.ServiceType
		minWeight sql.NullFloat64
	)
	if err := row.Scan(&st.ID, &st.Name, &st.Price, &minWeight); err != nil {
		return nil, err
	}
	if minWeight.Valid {
		st.MinWeight = domain.QuantityOf(minWeight.Float64)
	}
	return &st, nil
}
