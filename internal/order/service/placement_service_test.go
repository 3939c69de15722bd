package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	customerrepo "laundrypos/internal/customer/repository"
	"laundrypos/internal/domain"
	apperrors "laundrypos/internal/errors"
	orderrepo "laundrypos/internal/order/repository"
	"laundrypos/internal/testutil"
)

type failingStatusRepository struct{}

func (failingStatusRepository) Insert(ctx context.Context, tx *sql.Tx, status domain.OrderStatus) error {
	return errors.New("disk I/O error")
}

type mockTransactionManager struct {
	BeginTxFunc func(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

func (m *mockTransactionManager) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return m.BeginTxFunc(ctx, opts)
}

func newTestPlacementService(db *sql.DB, statuses StatusRepository) *PlacementService {
	return NewPlacementService(
		db,
		orderrepo.NewSQLOrderRepository(db),
		statuses,
		orderrepo.NewSQLOrderAddOnRepository(db),
		customerrepo.NewSQLCustomerRepository(db),
		zap.NewNop(),
		5*time.Second,
	)
}

func newOrder(customerID string, addOnIDs ...string) domain.Order {
	return domain.Order{
		ID:              uuid.NewString(),
		CustomerID:      customerID,
		ServiceTypeName: "Wash",
		Weight:          3,
		LoadCount:       1,
		AddOnIDs:        addOnIDs,
		Gross:           120,
		CreatedAt:       time.Now().UTC(),
	}
}

func TestPlace_WritesOrderAddOnsAndStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newTestPlacementService(db, orderrepo.NewSQLStatusRepository(db))

	juan := testutil.InsertCustomer(t, db, "Juan", "1")
	softener := testutil.InsertAddOn(t, db, "Softener", 20)

	placed, err := svc.Place(context.Background(), newOrder(juan.ID, softener.ID), []domain.AddOn{softener})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatus{OrderID: placed.ID, CustomerID: juan.ID}, placed.Status)

	assert.Equal(t, 1, testutil.CountRows(t, db, "services"))
	assert.Equal(t, 1, testutil.CountRows(t, db, "services_status"))
	assert.Equal(t, 1, testutil.CountRows(t, db, "order_addons"))
}

func TestPlace_RollsBackWhenStatusInsertFails(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newTestPlacementService(db, failingStatusRepository{})

	juan := testutil.InsertCustomer(t, db, "Juan", "1")
	softener := testutil.InsertAddOn(t, db, "Softener", 20)

	_, err := svc.Place(context.Background(), newOrder(juan.ID, softener.ID), []domain.AddOn{softener})

	ie, ok := apperrors.IsInternalError(err)
	require.True(t, ok)
	assert.Equal(t, "An error occurred while saving. Please try again.", ie.Message)
	assert.Equal(t, 0, testutil.CountRows(t, db, "services"))
	assert.Equal(t, 0, testutil.CountRows(t, db, "order_addons"))
}

func TestPlace_BeginTxFailure(t *testing.T) {
	txMgr := &mockTransactionManager{
		BeginTxFunc: func(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
			return nil, errors.New("database is locked")
		},
	}
	svc := NewPlacementService(txMgr, nil, nil, nil, nil, zap.NewNop(), time.Second)

	_, err := svc.Place(context.Background(), newOrder("c-1"), nil)

	_, ok := apperrors.IsInternalError(err)
	assert.True(t, ok)
}

func TestPlaceWithCustomer_CreatesBoth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newTestPlacementService(db, orderrepo.NewSQLStatusRepository(db))

	customer := domain.Customer{ID: uuid.NewString(), Name: "Juan", Contact: "0917", CreatedAt: time.Now().UTC()}
	placed, err := svc.PlaceWithCustomer(context.Background(), customer, newOrder(customer.ID), nil)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, placed.CustomerID)

	assert.Equal(t, 1, testutil.CountRows(t, db, "customers"))
	assert.Equal(t, 1, testutil.CountRows(t, db, "services"))
}

func TestPlaceWithCustomer_DuplicateNameLeavesTablesUnchanged(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newTestPlacementService(db, orderrepo.NewSQLStatusRepository(db))

	testutil.InsertCustomer(t, db, "Juan", "1")
	before := testutil.CountRows(t, db, "customers")

	customer := domain.Customer{ID: uuid.NewString(), Name: "JUAN", Contact: "0917", CreatedAt: time.Now().UTC()}
	_, err := svc.PlaceWithCustomer(context.Background(), customer, newOrder(customer.ID), nil)

	ce, ok := apperrors.IsConflictError(err)
	require.True(t, ok)
	assert.Equal(t, `Customer name "JUAN" already exists!`, ce.Message)
	assert.Equal(t, before, testutil.CountRows(t, db, "customers"))
	assert.Equal(t, 0, testutil.CountRows(t, db, "services"))
}
