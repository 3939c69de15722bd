package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"laundrypos/internal/domain"
)

// SQLReportRepository runs the read-only aggregate queries behind the
// dashboard and reports.
type SQLReportRepository struct {
	db *sql.DB
}

func NewSQLReportRepository(db *sql.DB) *SQLReportRepository {
	return &SQLReportRepository{db: db}
}

func (r *SQLReportRepository) StatusSnapshots(ctx context.Context) ([]domain.StatusSnapshot, error) {
	query := `
		SELECT s.customerId, s.createdAt, ss.isFinished, ss.isPaid, ss.isClaimed
		FROM services s
		JOIN services_status ss ON ss.serviceId = s.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying status snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := []domain.StatusSnapshot{}
	for rows.Next() {
		var s domain.StatusSnapshot
		if err := rows.Scan(&s.CustomerID, &s.CreatedAt, &s.Status.IsFinished, &s.Status.IsPaid, &s.Status.IsClaimed); err != nil {
			return nil, fmt.Errorf("scanning status snapshot: %w", err)
		}
		s.Status.CustomerID = s.CustomerID
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating status snapshots: %w", err)
	}
	return snapshots, nil
}

// CustomersWithOrdersBetween lists the distinct customers that placed an
// order in [start, end), ordered by name.
func (r *SQLReportRepository) CustomersWithOrdersBetween(ctx context.Context, start, end time.Time) ([]domain.Customer, error) {
	query := `
		SELECT DISTINCT c.id, c.name, c.contact, c.createdAt
		FROM customers c
		JOIN services s ON s.customerId = c.id
		WHERE s.createdAt >= ? AND s.createdAt < ?
		ORDER BY c.name
	`

	rows, err := r.db.QueryContext(ctx, query, start.UTC(), end.UTC())
	if err != nil {
		return nil, fmt.Errorf("querying customers of the day: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Contact, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customers: %w", err)
	}
	return customers, nil
}

// Income sums gross amounts by payment state. Today's income counts orders
// paid within [start, end).
func (r *SQLReportRepository) Income(ctx context.Context, start, end time.Time) (domain.IncomeSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN ss.isPaid = 1 THEN s.gross ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN ss.isPaid = 1 AND ss.paidAt >= ? AND ss.paidAt < ? THEN s.gross ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN ss.isPaid = 0 THEN s.gross ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN ss.isFinished = 1 AND ss.isClaimed = 0 THEN s.gross ELSE 0 END), 0)
		FROM services s
		JOIN services_status ss ON ss.serviceId = s.id
	`

	var sum domain.IncomeSummary
	err := r.db.QueryRowContext(ctx, query, start.UTC(), end.UTC()).Scan(
		&sum.TotalIncome, &sum.TodayIncome, &sum.ToCollect, &sum.UnclaimedTotal,
	)
	if err != nil {
		return domain.IncomeSummary{}, fmt.Errorf("querying income: %w", err)
	}
	return sum, nil
}

// Entries returns every order with its customer name and status, newest
// first.
func (r *SQLReportRepository) Entries(ctx context.Context) ([]domain.ReportEntry, error) {
	query := `
		SELECT s.id, s.customerId, c.name, s.serviceType, s.weight, s.instructions, s.gross, s.createdAt,
		       ss.isFinished, ss.finishedAt, ss.isPaid, ss.paidAt, ss.isClaimed, ss.claimedAt
		FROM services s
		JOIN customers c ON c.id = s.customerId
		JOIN services_status ss ON ss.serviceId = s.id
		ORDER BY s.createdAt DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying report entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.ReportEntry{}
	for rows.Next() {
		var (
			e                             domain.ReportEntry
			finishedAt, paidAt, claimedAt sql.NullTime
		)
		err := rows.Scan(
			&e.OrderID, &e.CustomerID, &e.CustomerName, &e.ServiceTypeName, &e.Weight, &e.Instructions, &e.Gross, &e.CreatedAt,
			&e.Status.IsFinished, &finishedAt, &e.Status.IsPaid, &paidAt, &e.Status.IsClaimed, &claimedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning report entry: %w", err)
		}
		e.Status.OrderID = e.OrderID
		e.Status.CustomerID = e.CustomerID
		e.Status.FinishedAt = nullTime(finishedAt)
		e.Status.PaidAt = nullTime(paidAt)
		e.Status.ClaimedAt = nullTime(claimedAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating report entries: %w", err)
	}
	return entries, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
