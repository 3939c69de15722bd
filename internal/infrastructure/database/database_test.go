package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"laundrypos/internal/config"
)

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenSQLite(SQLiteMemoryDSN(uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_CreatesSchemaOnce(t *testing.T) {
	ctx := context.Background()
	db := openMemoryDB(t)

	require.NoError(t, Migrate(ctx, db, config.DriverSQLite, zap.NewNop()))
	require.NoError(t, Migrate(ctx, db, config.DriverSQLite, zap.NewNop()))

	var applied int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied))
	assert.Equal(t, len(migrations), applied)

	for _, table := range []string{"customers", "service_types", "addons", "services", "services_status", "order_addons", "settings"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		assert.NoError(t, err, "table %s", table)
	}
}

func TestMigrate_UnknownDriver(t *testing.T) {
	db := openMemoryDB(t)

	err := Migrate(context.Background(), db, "postgres", zap.NewNop())
	assert.Error(t, err)
}

func TestMigrations_CoverEveryDriver(t *testing.T) {
	for _, m := range migrations {
		for _, driver := range Drivers() {
			assert.NotEmpty(t, m.statements[driver], "migration %s driver %s", m.version, driver)
		}
	}
}

func TestIsUniqueViolation_SQLiteNameIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	db := openMemoryDB(t)
	require.NoError(t, Migrate(ctx, db, config.DriverSQLite, zap.NewNop()))

	insert := `INSERT INTO customers (id, name, contact, createdAt) VALUES (?, ?, ?, ?)`
	_, err := db.ExecContext(ctx, insert, uuid.NewString(), "Juan", "0917", time.Now().UTC())
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, insert, uuid.NewString(), "JUAN", "0918", time.Now().UTC())
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.True(t, IsUniqueViolation(fmt.Errorf("inserting customer: %w", err)))
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"mysql duplicate entry", &mysql.MySQLError{Number: 1062}, true},
		{"mysql other error", &mysql.MySQLError{Number: 1213}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err))
		})
	}
}

func TestMySQLDSN(t *testing.T) {
	dsn := MySQLDSN(config.DatabaseConfig{
		Host:     "db.local",
		Port:     3307,
		User:     "laundry",
		Password: "secret",
		Name:     "shop",
	})

	assert.Contains(t, dsn, "laundry:secret@tcp(db.local:3307)/shop")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "clientFoundRows=true")
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "file:laundry.db?_foreign_keys=on&_busy_timeout=5000", SQLiteFileDSN("laundry.db"))
	assert.Contains(t, SQLiteMemoryDSN("abc"), "mode=memory")
}

func TestNewConnection_UnsupportedDriver(t *testing.T) {
	_, err := NewConnection(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestNewConnection_SQLiteFile(t *testing.T) {
	path := t.TempDir() + "/laundry.db"

	db, err := NewConnection(config.DatabaseConfig{Driver: config.DriverSQLite, Path: path})
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, Migrate(context.Background(), db, config.DriverSQLite, zap.NewNop()))
}
