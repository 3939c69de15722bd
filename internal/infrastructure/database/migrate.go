package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"laundrypos/internal/config"
)

// Migrate applies every migration not yet recorded in schema_migrations.
func Migrate(ctx context.Context, db *sql.DB, driver string, logger *zap.Logger) error {
	createTable := `CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) NOT NULL PRIMARY KEY,
		appliedAt DATETIME NOT NULL
	)`
	if _, err := db.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("creating schema_migrations: %w", err)
	}

	for _, m := range migrations {
		stmts, ok := m.statements[driver]
		if !ok {
			return fmt.Errorf("migration %s has no statements for driver %q", m.version, driver)
		}

		var count int
		err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations WHERE version = ?`, m.version).Scan(&count)
		if err != nil {
			return fmt.Errorf("checking migration %s: %w", m.version, err)
		}
		if count > 0 {
			logger.Debug("migration already applied", zap.String("version", m.version))
			continue
		}

		if err := applyMigration(ctx, db, m.version, stmts); err != nil {
			return err
		}
		logger.Info("migration applied", zap.String("version", m.version), zap.String("driver", driver))
	}

	return nil
}

func applyMigration(ctx context.Context, db *sql.DB, version string, stmts []string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning migration %s: %w", version, err)
	}
	defer tx.Rollback()

	for i, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying migration %s statement %d: %w", version, i, err)
		}
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO schema_migrations (version, appliedAt) VALUES (?, ?)`, version, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("recording migration %s: %w", version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration %s: %w", version, err)
	}
	return nil
}

// Drivers lists the drivers with a schema.
func Drivers() []string {
	return []string{config.DriverSQLite, config.DriverMySQL}
}
