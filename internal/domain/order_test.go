package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrder_Creation(t *testing.T) {
	createdAt := time.Now()

	order := Order{
		ID:              "o-1",
		CustomerID:      "c-1",
		ServiceTypeName: "Wash & Fold",
		Weight:          3.5,
		LoadCount:       1,
		Instructions:    "separate whites",
		AddOnIDs:        []string{"a1"},
		Gross:           100,
		CreatedAt:       createdAt,
	}

	assert.Equal(t, "o-1", order.ID)
	assert.Equal(t, "c-1", order.CustomerID)
	assert.Equal(t, "Wash & Fold", order.ServiceTypeName)
	assert.Equal(t, 3.5, order.Weight)
	assert.Equal(t, 1, order.LoadCount)
	assert.Equal(t, []string{"a1"}, order.AddOnIDs)
	assert.Equal(t, 100.0, order.Gross)
	assert.Equal(t, createdAt, order.CreatedAt)
}

func TestNewOrderStatus(t *testing.T) {
	s := NewOrderStatus(Order{ID: "o-1", CustomerID: "c-1"})

	assert.Equal(t, "o-1", s.OrderID)
	assert.Equal(t, "c-1", s.CustomerID)
	assert.False(t, s.IsFinished)
	assert.False(t, s.IsPaid)
	assert.False(t, s.IsClaimed)
	assert.Nil(t, s.FinishedAt)
	assert.Nil(t, s.PaidAt)
	assert.Nil(t, s.ClaimedAt)
}
