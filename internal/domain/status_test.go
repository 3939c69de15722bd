package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func status(finished, paid, claimed bool) OrderStatus {
	return OrderStatus{OrderID: "o-1", IsFinished: finished, IsPaid: paid, IsClaimed: claimed}
}

func TestOrderStatus_Label(t *testing.T) {
	tests := []struct {
		status   OrderStatus
		expected string
	}{
		{status(false, false, false), "Pending, Unpaid"},
		{status(false, true, false), "Pending, Paid"},
		{status(true, false, false), "Finished, Unpaid, Unclaimed"},
		{status(true, true, false), "Finished, Paid, Unclaimed"},
		{status(true, false, true), "Finished, Unpaid, Claimed"},
		{status(true, true, true), "Finished, Paid, Claimed"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.Label())
		})
	}
}

func TestOrderStatus_BadgeStyle(t *testing.T) {
	assert.Equal(t, StylePending, status(false, false, false).BadgeStyle())
	assert.Equal(t, StylePending, status(false, true, false).BadgeStyle())
	assert.Equal(t, StyleDone, status(true, true, true).BadgeStyle())
	assert.Equal(t, StyleClaimedUnpaid, status(true, false, true).BadgeStyle())
	assert.Equal(t, StylePaidUnclaimed, status(true, true, false).BadgeStyle())
	assert.Equal(t, StyleOverdue, status(true, false, false).BadgeStyle())

	assert.Equal(t, "#FFA000", StylePending.Color)
	assert.Equal(t, "#D32F2F", StyleOverdue.Color)
}

func TestOrderStatus_AmountStyle(t *testing.T) {
	assert.Equal(t, "#DC2626", status(true, false, true).AmountStyle().Color)
	assert.Equal(t, "#16A34A", status(false, true, false).AmountStyle().Color)
}

func TestOrderStatus_OfferedActions(t *testing.T) {
	tests := []struct {
		name     string
		status   OrderStatus
		expected []Action
	}{
		{"initial", status(false, false, false), []Action{ActionFinish, ActionPay}},
		{"paid before finished", status(false, true, false), []Action{ActionFinish}},
		{"finished", status(true, false, false), []Action{ActionPay, ActionClaim}},
		{"finished and paid", status(true, true, false), []Action{ActionClaim}},
		{"finished and claimed", status(true, false, true), []Action{ActionPay}},
		{"terminal", status(true, true, true), []Action{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.OfferedActions())
		})
	}
}

func TestOrderStatus_ClaimNeverOfferedBeforeFinished(t *testing.T) {
	for _, paid := range []bool{false, true} {
		s := status(false, paid, false)
		assert.False(t, s.CanApply(ActionClaim))
		assert.ErrorIs(t, s.Apply(ActionClaim, time.Now()), ErrActionNotOffered)
		assert.False(t, s.IsClaimed)
	}
}

func TestOrderStatus_ApplyFullLifecycle(t *testing.T) {
	s := NewOrderStatus(Order{ID: "o-1", CustomerID: "c-1"})
	assert.Equal(t, "Pending, Unpaid", s.Label())

	t0 := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.Apply(ActionFinish, t0))
	assert.NotContains(t, s.OfferedActions(), ActionFinish)
	assert.ErrorIs(t, s.Apply(ActionFinish, t0.Add(time.Minute)), ErrActionNotOffered)
	assert.Equal(t, t0, *s.FinishedAt)

	require.NoError(t, s.Apply(ActionPay, t0.Add(time.Hour)))
	require.NoError(t, s.Apply(ActionClaim, t0.Add(2*time.Hour)))

	assert.True(t, s.IsTerminal())
	assert.Empty(t, s.OfferedActions())
	assert.Equal(t, "Finished, Paid, Claimed", s.Label())
	assert.False(t, s.PaidAt.Before(*s.FinishedAt))
	assert.False(t, s.ClaimedAt.Before(*s.PaidAt))
}

func TestParseAction(t *testing.T) {
	a, ok := ParseAction(" Pay ")
	assert.True(t, ok)
	assert.Equal(t, ActionPay, a)

	_, ok = ParseAction("unpay")
	assert.False(t, ok)

	assert.Equal(t, "Mark as Claimed", ActionClaim.Label())
}
