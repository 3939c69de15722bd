package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundrypos/internal/domain"
	"laundrypos/internal/errors"
	"laundrypos/internal/testutil"
)

func TestSQLCustomerRepository_CreateAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSQLCustomerRepository(db)
	ctx := context.Background()

	c := domain.Customer{ID: uuid.NewString(), Name: "Juan", Contact: "09171234567", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Name, got.Name)
	assert.Equal(t, c.Contact, got.Contact)
	assert.WithinDuration(t, c.CreatedAt, got.CreatedAt, time.Millisecond)

	_, err = repo.FindByID(ctx, "missing")
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestSQLCustomerRepository_DuplicateNameIgnoresCase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSQLCustomerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.Customer{ID: uuid.NewString(), Name: "Juan", Contact: "1", CreatedAt: time.Now()}))

	exists, err := repo.ExistsByName(ctx, "JUAN", "")
	require.NoError(t, err)
	assert.True(t, exists)

	err = repo.Create(ctx, domain.Customer{ID: uuid.NewString(), Name: "juan", Contact: "2", CreatedAt: time.Now()})
	ce, ok := errors.IsConflictError(err)
	require.True(t, ok)
	assert.Equal(t, `Customer name "juan" already exists!`, ce.Message)
	assert.Equal(t, 1, testutil.CountRows(t, db, "customers"))
}

func TestSQLCustomerRepository_CreateTxRollsBack(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSQLCustomerRepository(db)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	require.NoError(t, repo.CreateTx(ctx, tx, domain.Customer{ID: uuid.NewString(), Name: "Maria", Contact: "1", CreatedAt: time.Now()}))
	exists, err := repo.ExistsByNameTx(ctx, tx, "maria")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, tx.Rollback())
	assert.Equal(t, 0, testutil.CountRows(t, db, "customers"))
}

func TestSQLCustomerRepository_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSQLCustomerRepository(db)
	ctx := context.Background()

	juan := testutil.InsertCustomer(t, db, "Juan", "1")
	maria := testutil.InsertCustomer(t, db, "Maria", "2")

	juan.Name = "Juan Dela Cruz"
	require.NoError(t, repo.Update(ctx, juan))

	maria.Name = "JUAN DELA CRUZ"
	_, ok := errors.IsConflictError(repo.Update(ctx, maria))
	assert.True(t, ok)

	_, ok = errors.IsNotFoundError(repo.Update(ctx, domain.Customer{ID: "missing", Name: "X"}))
	assert.True(t, ok)
}

func TestSQLCustomerRepository_ListWithUnpaidTotal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSQLCustomerRepository(db)
	ctx := context.Background()

	maria := testutil.InsertCustomer(t, db, "Maria", "2")
	juan := testutil.InsertCustomer(t, db, "Juan", "1")

	testutil.InsertOrder(t, db, domain.Order{CustomerID: juan.ID, ServiceTypeName: "Wash", Weight: 3, LoadCount: 1, Gross: 100}, domain.OrderStatus{})
	testutil.InsertOrder(t, db, domain.Order{CustomerID: juan.ID, ServiceTypeName: "Wash", Weight: 3, LoadCount: 2, Gross: 250.5}, domain.OrderStatus{IsFinished: true})
	testutil.InsertOrder(t, db, domain.Order{CustomerID: juan.ID, ServiceTypeName: "Wash", Weight: 3, LoadCount: 1, Gross: 400}, domain.OrderStatus{IsPaid: true})

	list, err := repo.ListWithUnpaidTotal(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "Juan", list[0].Name)
	assert.InDelta(t, 350.5, list[0].UnpaidTotal, 0.001)
	assert.Equal(t, maria.ID, list[1].ID)
	assert.Equal(t, 0.0, list[1].UnpaidTotal)

	count, err := repo.UnclaimedCount(ctx, juan.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = repo.UnclaimedCount(ctx, maria.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
