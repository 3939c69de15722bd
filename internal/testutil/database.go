package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"laundrypos/internal/config"
	"laundrypos/internal/domain"
	"laundrypos/internal/infrastructure/database"
)

// SetupTestDB opens a private in-memory SQLite database with the full schema
// applied. It is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.OpenSQLite(database.SQLiteMemoryDSN(uuid.NewString()))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(context.Background(), db, config.DriverSQLite, zap.NewNop()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return n
}

func InsertCustomer(t *testing.T, db *sql.DB, name, contact string) domain.Customer {
	t.Helper()

	c := domain.Customer{
		ID:        uuid.NewString(),
		Name:      name,
		Contact:   contact,
		CreatedAt: time.Now().UTC(),
	}
	_, err := db.Exec(`INSERT INTO customers (id, name, contact, createdAt) VALUES (?, ?, ?, ?)`,
		c.ID, c.Name, c.Contact, c.CreatedAt)
	if err != nil {
		t.Fatalf("failed to insert customer: %v", err)
	}
	return c
}

func InsertServiceType(t *testing.T, db *sql.DB, name string, price float64, minWeight domain.Quantity) domain.ServiceType {
	t.Helper()

	st := domain.ServiceType{ID: uuid.NewString(), Name: name, Price: price, MinWeight: minWeight}
	_, err := db.Exec(`INSERT INTO service_types (id, name, price, minWeight) VALUES (?, ?, ?, ?)`,
		st.ID, st.Name, st.Price, st.MinWeight.Ptr())
	if err != nil {
		t.Fatalf("failed to insert service type: %v", err)
	}
	return st
}

func InsertAddOn(t *testing.T, db *sql.DB, name string, price float64) domain.AddOn {
	t.Helper()

	a := domain.AddOn{ID: uuid.NewString(), Name: name, Price: price}
	_, err := db.Exec(`INSERT INTO addons (id, name, price) VALUES (?, ?, ?)`, a.ID, a.Name, a.Price)
	if err != nil {
		t.Fatalf("failed to insert add-on: %v", err)
	}
	return a
}

// InsertOrder writes an order and its status row as given, bypassing pricing.
func InsertOrder(t *testing.T, db *sql.DB, order domain.Order, status domain.OrderStatus) domain.Order {
	t.Helper()

	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	addons, err := domain.EncodeAddOnIDs(order.AddOnIDs)
	if err != nil {
		t.Fatalf("failed to encode add-ons: %v", err)
	}

	_, err = db.Exec("INSERT INTO services (id, customerId, serviceType, weight, `load`, instructions, addons, gross, createdAt) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		order.ID, order.CustomerID, order.ServiceTypeName, order.Weight, order.LoadCount,
		order.Instructions, addons, order.Gross, order.CreatedAt.UTC())
	if err != nil {
		t.Fatalf("failed to insert order: %v", err)
	}

	_, err = db.Exec(`INSERT INTO services_status (serviceId, customerId, isFinished, finishedAt, isPaid, paidAt, isClaimed, claimedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.CustomerID,
		status.IsFinished, utcPtr(status.FinishedAt),
		status.IsPaid, utcPtr(status.PaidAt),
		status.IsClaimed, utcPtr(status.ClaimedAt))
	if err != nil {
		t.Fatalf("failed to insert order status: %v", err)
	}
	return order
}

func utcPtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
