package domain

import "time"

// Order is a single laundry job. Gross is fixed when the order is placed and
// is never recomputed from the live catalog.
type Order struct {
	ID              string
	CustomerID      string
	ServiceTypeName string
	Weight          float64
	LoadCount       int
	Instructions    string
	AddOnIDs        []string
	Gross           float64
	CreatedAt       time.Time
}

// OrderAddOn is one selected add-on of an order with the price it had when
// the order was placed.
type OrderAddOn struct {
	OrderID  string
	AddOnID  string
	Position int
	Price    float64
}

type OrderStatus struct {
	OrderID    string
	CustomerID string
	IsFinished bool
	FinishedAt *time.Time
	IsPaid     bool
	PaidAt     *time.Time
	IsClaimed  bool
	ClaimedAt  *time.Time
}

func NewOrderStatus(order Order) OrderStatus {
	return OrderStatus{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
	}
}

type OrderWithStatus struct {
	Order
	Status OrderStatus
}
