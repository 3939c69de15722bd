package events

import (
	"context"
	"time"
)

const (
	OrderCreatedTopic       = "order.created"
	OrderStatusChangedTopic = "order.status_changed"
)

type OrderCreatedEvent struct {
	OrderID         string    `json:"orderId"`
	CustomerID      string    `json:"customerId"`
	ServiceTypeName string    `json:"serviceType"`
	Weight          float64   `json:"weight"`
	LoadCount       int       `json:"load"`
	AddOnIDs        []string  `json:"addons"`
	Gross           float64   `json:"gross"`
	CreatedAt       time.Time `json:"createdAt"`
	EventTime       time.Time `json:"eventTime"`
}

type OrderStatusChangedEvent struct {
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	Action     string    `json:"action"`
	IsFinished bool      `json:"isFinished"`
	IsPaid     bool      `json:"isPaid"`
	IsClaimed  bool      `json:"isClaimed"`
	Label      string    `json:"label"`
	ChangedAt  time.Time `json:"changedAt"`
	EventTime  time.Time `json:"eventTime"`
}

// Publisher announces order lifecycle changes to other systems.
type Publisher interface {
	OrderCreated(ctx context.Context, event OrderCreatedEvent) error
	OrderStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error
	Close() error
}

// NopPublisher drops every event. Used when EVENTS_ENABLED is off.
type NopPublisher struct{}

func (NopPublisher) OrderCreated(context.Context, OrderCreatedEvent) error { return nil }

func (NopPublisher) OrderStatusChanged(context.Context, OrderStatusChangedEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
