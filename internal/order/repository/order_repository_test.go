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

func TestSQLOrderRepository_InsertAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	orders := NewSQLOrderRepository(db)
	statuses := NewSQLStatusRepository(db)
	items := NewSQLOrderAddOnRepository(db)
	ctx := context.Background()

	juan := testutil.InsertCustomer(t, db, "Juan", "1")
	softener := testutil.InsertAddOn(t, db, "Softener", 20)

	order := domain.Order{
		ID:              uuid.NewString(),
		CustomerID:      juan.ID,
		ServiceTypeName: "Wash",
		Weight:          3,
		LoadCount:       1,
		Instructions:    "no bleach",
		AddOnIDs:        []string{softener.ID},
		Gross:           120,
		CreatedAt:       time.Now().UTC(),
	}

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, orders.Insert(ctx, tx, order))
	require.NoError(t, items.Insert(ctx, tx, domain.OrderAddOn{OrderID: order.ID, AddOnID: softener.ID, Position: 0, Price: 20}))
	require.NoError(t, statuses.Insert(ctx, tx, domain.NewOrderStatus(order)))
	require.NoError(t, tx.Commit())

	got, err := orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Instructions, got.Instructions)
	assert.Equal(t, []string{softener.ID}, got.AddOnIDs)
	assert.Equal(t, 120.0, got.Gross)
	assert.Equal(t, 1, got.LoadCount)
	assert.False(t, got.Status.IsFinished)
	assert.Nil(t, got.Status.FinishedAt)
	assert.Equal(t, juan.ID, got.Status.CustomerID)

	raw, err := orders.LegacyAddOns(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, `["`+softener.ID+`"]`, raw)

	snapshot, err := items.ListByOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.AddOn{softener}, snapshot)

	_, err = orders.FindByID(ctx, "missing")
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestSQLOrderRepository_ListByCustomerOrdering(t *testing.T) {
	db := testutil.SetupTestDB(t)
	orders := NewSQLOrderRepository(db)
	ctx := context.Background()

	juan := testutil.InsertCustomer(t, db, "Juan", "1")
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	now := base.Add(time.Hour)

	paid := testutil.InsertOrder(t, db, domain.Order{CustomerID: juan.ID, ServiceTypeName: "Wash", Weight: 1, LoadCount: 1, Gross: 10, CreatedAt: base.Add(3 * time.Hour)},
		domain.OrderStatus{IsPaid: true, PaidAt: &now})
	finished := testutil.InsertOrder(t, db, domain.Order{CustomerID: juan.ID, ServiceTypeName: "Wash", Weight: 1, LoadCount: 1, Gross: 10, CreatedAt: base.Add(2 * time.Hour)},
		domain.OrderStatus{IsFinished: true, FinishedAt: &now})
	older := testutil.InsertOrder(t, db, domain.Order{CustomerID: juan.ID, ServiceTypeName: "Wash", Weight: 1, LoadCount: 1, Gross: 10, CreatedAt: base},
		domain.OrderStatus{})
	newer := testutil.InsertOrder(t, db, domain.Order{CustomerID: juan.ID, ServiceTypeName: "Wash", Weight: 1, LoadCount: 1, Gross: 10, CreatedAt: base.Add(time.Hour)},
		domain.OrderStatus{})

	list, err := orders.ListByCustomer(ctx, juan.ID)
	require.NoError(t, err)
	require.Len(t, list, 4)

	ids := []string{list[0].ID, list[1].ID, list[2].ID, list[3].ID}
	assert.Equal(t, []string{newer.ID, older.ID, finished.ID, paid.ID}, ids)
	require.NotNil(t, list[3].Status.PaidAt)
	assert.True(t, list[3].Status.PaidAt.Equal(now))
}

func TestSQLOrderRepository_UnreadableLegacyAddOns(t *testing.T) {
	db := testutil.SetupTestDB(t)
	orders := NewSQLOrderRepository(db)
	ctx := context.Background()

	juan := testutil.InsertCustomer(t, db, "Juan", "1")
	o := testutil.InsertOrder(t, db, domain.Order{CustomerID: juan.ID, ServiceTypeName: "Wash", Weight: 1, LoadCount: 1, Gross: 10}, domain.OrderStatus{})
	_, err := db.Exec(`UPDATE services SET addons = ? WHERE id = ?`, "not json", o.ID)
	require.NoError(t, err)

	got, err := orders.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Empty(t, got.AddOnIDs)

	raw, err := orders.LegacyAddOns(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "not json", raw)
}

func TestSQLStatusRepository_SetFlag(t *testing.T) {
	db := testutil.SetupTestDB(t)
	statuses := NewSQLStatusRepository(db)
	ctx := context.Background()

	juan := testutil.InsertCustomer(t, db, "Juan", "1")
	o := testutil.InsertOrder(t, db, domain.Order{CustomerID: juan.ID, ServiceTypeName: "Wash", Weight: 1, LoadCount: 1, Gross: 10}, domain.OrderStatus{})

	finishedAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	updated, err := statuses.SetFlag(ctx, o.ID, domain.ActionClaim, finishedAt)
	require.NoError(t, err)
	assert.False(t, updated, "claim requires a finished order")

	updated, err = statuses.SetFlag(ctx, o.ID, domain.ActionFinish, finishedAt)
	require.NoError(t, err)
	assert.True(t, updated)

	updated, err = statuses.SetFlag(ctx, o.ID, domain.ActionFinish, finishedAt.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, updated, "finish is never re-stamped")

	s, err := statuses.FindByOrderID(ctx, o.ID)
	require.NoError(t, err)
	assert.True(t, s.IsFinished)
	require.NotNil(t, s.FinishedAt)
	assert.True(t, s.FinishedAt.Equal(finishedAt))
	assert.False(t, s.IsPaid)
	assert.Nil(t, s.PaidAt)

	_, err = statuses.SetFlag(ctx, o.ID, domain.Action("wash"), finishedAt)
	assert.Error(t, err)

	_, err = statuses.FindByOrderID(ctx, "missing")
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}
