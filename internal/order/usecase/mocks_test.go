package usecase

import (
	"context"
	"time"

	"laundrypos/internal/domain"
	"laundrypos/internal/infrastructure/events"
)

type mockCustomerFinder struct {
	FindByIDFunc func(ctx context.Context, id string) (*domain.Customer, error)
}

func (m *mockCustomerFinder) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	return m.FindByIDFunc(ctx, id)
}

type mockResolver struct {
	ResolveFunc func(ctx context.Context, ref string) (*domain.ServiceType, error)
}

func (m *mockResolver) Resolve(ctx context.Context, ref string) (*domain.ServiceType, error) {
	return m.ResolveFunc(ctx, ref)
}

type mockAddOnFinder struct {
	FindByIDsFunc func(ctx context.Context, ids []string) ([]domain.AddOn, error)
}

func (m *mockAddOnFinder) FindByIDs(ctx context.Context, ids []string) ([]domain.AddOn, error) {
	return m.FindByIDsFunc(ctx, ids)
}

type mockOrderPlacer struct {
	PlaceFunc             func(ctx context.Context, order domain.Order, addOns []domain.AddOn) (*domain.OrderWithStatus, error)
	PlaceWithCustomerFunc func(ctx context.Context, customer domain.Customer, order domain.Order, addOns []domain.AddOn) (*domain.OrderWithStatus, error)
}

func (m *mockOrderPlacer) Place(ctx context.Context, order domain.Order, addOns []domain.AddOn) (*domain.OrderWithStatus, error) {
	return m.PlaceFunc(ctx, order, addOns)
}

func (m *mockOrderPlacer) PlaceWithCustomer(ctx context.Context, customer domain.Customer, order domain.Order, addOns []domain.AddOn) (*domain.OrderWithStatus, error) {
	return m.PlaceWithCustomerFunc(ctx, customer, order, addOns)
}

type mockPublisher struct {
	created []events.OrderCreatedEvent
	changed []events.OrderStatusChangedEvent
	err     error
}

func (m *mockPublisher) OrderCreated(ctx context.Context, event events.OrderCreatedEvent) error {
	m.created = append(m.created, event)
	return m.err
}

func (m *mockPublisher) OrderStatusChanged(ctx context.Context, event events.OrderStatusChangedEvent) error {
	m.changed = append(m.changed, event)
	return m.err
}

type mockStatusRepository struct {
	FindByOrderIDFunc func(ctx context.Context, orderID string) (*domain.OrderStatus, error)
	SetFlagFunc       func(ctx context.Context, orderID string, action domain.Action, at time.Time) (bool, error)
}

func (m *mockStatusRepository) FindByOrderID(ctx context.Context, orderID string) (*domain.OrderStatus, error) {
	return m.FindByOrderIDFunc(ctx, orderID)
}

func (m *mockStatusRepository) SetFlag(ctx context.Context, orderID string, action domain.Action, at time.Time) (bool, error) {
	return m.SetFlagFunc(ctx, orderID, action, at)
}

type mockOrderReader struct {
	FindByIDFunc       func(ctx context.Context, id string) (*domain.OrderWithStatus, error)
	ListByCustomerFunc func(ctx context.Context, customerID string) ([]domain.OrderWithStatus, error)
	LegacyAddOnsFunc   func(ctx context.Context, id string) (string, error)
}

func (m *mockOrderReader) FindByID(ctx context.Context, id string) (*domain.OrderWithStatus, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockOrderReader) ListByCustomer(ctx context.Context, customerID string) ([]domain.OrderWithStatus, error) {
	return m.ListByCustomerFunc(ctx, customerID)
}

func (m *mockOrderReader) LegacyAddOns(ctx context.Context, id string) (string, error) {
	return m.LegacyAddOnsFunc(ctx, id)
}

type mockOrderAddOnReader struct {
	ListByOrderFunc func(ctx context.Context, orderID string) ([]domain.AddOn, error)
}

func (m *mockOrderAddOnReader) ListByOrder(ctx context.Context, orderID string) ([]domain.AddOn, error) {
	return m.ListByOrderFunc(ctx, orderID)
}
