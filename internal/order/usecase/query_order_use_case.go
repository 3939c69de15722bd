package usecase

import (
	"context"

	"go.uber.org/zap"

	"laundrypos/internal/domain"
)

type OrderReader interface {
	FindByID(ctx context.Context, id string) (*domain.OrderWithStatus, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.OrderWithStatus, error)
	LegacyAddOns(ctx context.Context, id string) (string, error)
}

type OrderAddOnReader interface {
	ListByOrder(ctx context.Context, orderID string) ([]domain.AddOn, error)
}

// OrderDetails is an order with its add-ons resolved for display.
type OrderDetails struct {
	domain.OrderWithStatus
	AddOnsLabel string
	AddOns      []domain.AddOn
}

type QueryOrderUseCase struct {
	orders     OrderReader
	orderItems OrderAddOnReader
	addOns     AddOnFinder
	customers  CustomerFinder
	logger     *zap.Logger
}

func NewQueryOrderUseCase(orders OrderReader, orderItems OrderAddOnReader, addOns AddOnFinder, customers CustomerFinder, logger *zap.Logger) *QueryOrderUseCase {
	return &QueryOrderUseCase{
		orders:     orders,
		orderItems: orderItems,
		addOns:     addOns,
		customers:  customers,
		logger:     logger,
	}
}

func (uc *QueryOrderUseCase) Get(ctx context.Context, orderID string) (*OrderDetails, error) {
	order, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	raw, err := uc.orders.LegacyAddOns(ctx, orderID)
	if err != nil {
		return nil, err
	}

	known, err := uc.orderItems.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// Orders written before the join table existed only carry the JSON list;
	// their add-ons are looked up in the live catalog.
	recorded := make(map[string]struct{}, len(known))
	for _, a := range known {
		recorded[a.ID] = struct{}{}
	}
	var missing []string
	for _, id := range order.AddOnIDs {
		if _, ok := recorded[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		live, err := uc.addOns.FindByIDs(ctx, missing)
		if err != nil {
			return nil, err
		}
		known = append(known, live...)
	}

	label, details := domain.ResolveAddOnNames(raw, known)
	if details == nil {
		details = []domain.AddOn{}
	}

	return &OrderDetails{OrderWithStatus: *order, AddOnsLabel: label, AddOns: details}, nil
}

func (uc *QueryOrderUseCase) ListByCustomer(ctx context.Context, customerID string) ([]domain.OrderWithStatus, error) {
	if _, err := uc.customers.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	orders, err := uc.orders.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("orders listed", zap.String("customerId", customerID), zap.Int("count", len(orders)))
	return orders, nil
}
