package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"laundrypos/internal/domain"
	apperrors "laundrypos/internal/errors"
	"laundrypos/internal/infrastructure/events"
)

const (
	msgInvalidWeight    = "Please enter a valid weight."
	msgInvalidLoad      = "Please enter a valid load."
	msgNoServiceType    = "Please select a service type."
	msgInvalidUnitPrice = "Please set a valid price for the service type."
	msgUnknownAddOn     = "Please select add-ons from the list."
	msgCalculation      = "Calculation failed."
)

type CustomerFinder interface {
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
}

type ServiceTypeResolver interface {
	Resolve(ctx context.Context, ref string) (*domain.ServiceType, error)
}

type AddOnFinder interface {
	FindByIDs(ctx context.Context, ids []string) ([]domain.AddOn, error)
}

type OrderPlacer interface {
	Place(ctx context.Context, order domain.Order, addOns []domain.AddOn) (*domain.OrderWithStatus, error)
	PlaceWithCustomer(ctx context.Context, customer domain.Customer, order domain.Order, addOns []domain.AddOn) (*domain.OrderWithStatus, error)
}

type EventPublisher interface {
	OrderCreated(ctx context.Context, event events.OrderCreatedEvent) error
	OrderStatusChanged(ctx context.Context, event events.OrderStatusChangedEvent) error
}

type CreateOrderInput struct {
	ServiceType  string
	Weight       *float64
	LoadCount    *int
	Instructions string
	AddOnIDs     []string
}

type CreateOrderUseCase struct {
	customers    CustomerFinder
	serviceTypes ServiceTypeResolver
	addOns       AddOnFinder
	placer       OrderPlacer
	publisher    EventPublisher
	logger       *zap.Logger
	now          func() time.Time
	newID        func() string
}

func NewCreateOrderUseCase(
	customers CustomerFinder,
	serviceTypes ServiceTypeResolver,
	addOns AddOnFinder,
	placer OrderPlacer,
	publisher EventPublisher,
	logger *zap.Logger,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		customers:    customers,
		serviceTypes: serviceTypes,
		addOns:       addOns,
		placer:       placer,
		publisher:    publisher,
		logger:       logger,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// Create prices and stores a new order for an existing customer.
func (uc *CreateOrderUseCase) Create(ctx context.Context, customerID string, in CreateOrderInput) (*domain.OrderWithStatus, error) {
	uc.logger.Info("create order started", zap.String("customerId", customerID), zap.String("serviceType", in.ServiceType))

	if _, err := uc.customers.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	order, addOns, err := uc.Prepare(ctx, customerID, in)
	if err != nil {
		return nil, err
	}

	placed, err := uc.placer.Place(ctx, order, addOns)
	if err != nil {
		return nil, err
	}

	uc.publishCreated(ctx, placed.Order)
	return placed, nil
}

// Register stores a new customer together with its first order. The order is
// validated and priced before anything is written.
func (uc *CreateOrderUseCase) Register(ctx context.Context, customer domain.Customer, in CreateOrderInput) (*domain.OrderWithStatus, error) {
	uc.logger.Info("register customer started", zap.String("customerId", customer.ID), zap.String("serviceType", in.ServiceType))

	order, addOns, err := uc.Prepare(ctx, customer.ID, in)
	if err != nil {
		return nil, err
	}

	placed, err := uc.placer.PlaceWithCustomer(ctx, customer, order, addOns)
	if err != nil {
		return nil, err
	}

	uc.publishCreated(ctx, placed.Order)
	return placed, nil
}

// Prepare validates the input, resolves the catalog entries it refers to and
// computes the gross. The returned add-ons follow the selection order.
func (uc *CreateOrderUseCase) Prepare(ctx context.Context, customerID string, in CreateOrderInput) (domain.Order, []domain.AddOn, error) {
	if in.Weight == nil || math.IsNaN(*in.Weight) || math.IsInf(*in.Weight, 0) || *in.Weight <= 0 {
		return domain.Order{}, nil, validationError("weight", msgInvalidWeight)
	}
	if in.LoadCount == nil || *in.LoadCount <= 0 {
		return domain.Order{}, nil, validationError("load", msgInvalidLoad)
	}
	if strings.TrimSpace(in.ServiceType) == "" {
		return domain.Order{}, nil, validationError("serviceType", msgNoServiceType)
	}

	st, err := uc.serviceTypes.Resolve(ctx, in.ServiceType)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return domain.Order{}, nil, validationError("serviceType", msgNoServiceType)
		}
		return domain.Order{}, nil, err
	}

	addOns, err := uc.selectedAddOns(ctx, in.AddOnIDs)
	if err != nil {
		return domain.Order{}, nil, err
	}

	gross, err := domain.Quote(*st, *in.Weight, *in.LoadCount, addOns)
	switch {
	case errors.Is(err, domain.ErrInvalidUnitPrice):
		return domain.Order{}, nil, validationError("serviceType", msgInvalidUnitPrice)
	case errors.Is(err, domain.ErrInvalidWeight):
		return domain.Order{}, nil, validationError("weight", msgInvalidWeight)
	case errors.Is(err, domain.ErrInvalidLoad):
		return domain.Order{}, nil, validationError("load", msgInvalidLoad)
	case err != nil:
		uc.logger.Warn("gross calculation failed", zap.String("serviceType", st.Name), zap.Error(err))
		return domain.Order{}, nil, apperrors.NewCalculationError(msgCalculation)
	}

	ids := make([]string, len(addOns))
	for i, a := range addOns {
		ids[i] = a.ID
	}

	order := domain.Order{
		ID:              uc.newID(),
		CustomerID:      customerID,
		ServiceTypeName: st.Name,
		Weight:          *in.Weight,
		LoadCount:       *in.LoadCount,
		Instructions:    strings.TrimSpace(in.Instructions),
		AddOnIDs:        ids,
		Gross:           gross,
		CreatedAt:       uc.now().UTC(),
	}
	return order, addOns, nil
}

func (uc *CreateOrderUseCase) selectedAddOns(ctx context.Context, ids []string) ([]domain.AddOn, error) {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return []domain.AddOn{}, nil
	}

	found, err := uc.addOns.FindByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.AddOn, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}

	selected := make([]domain.AddOn, 0, len(unique))
	for _, id := range unique {
		a, ok := byID[id]
		if !ok {
			return nil, validationError("addons", msgUnknownAddOn)
		}
		selected = append(selected, a)
	}
	return selected, nil
}

func (uc *CreateOrderUseCase) publishCreated(ctx context.Context, order domain.Order) {
	err := uc.publisher.OrderCreated(ctx, events.OrderCreatedEvent{
		OrderID:         order.ID,
		CustomerID:      order.CustomerID,
		ServiceTypeName: order.ServiceTypeName,
		Weight:          order.Weight,
		LoadCount:       order.LoadCount,
		AddOnIDs:        order.AddOnIDs,
		Gross:           order.Gross,
		CreatedAt:       order.CreatedAt,
	})
	if err != nil {
		uc.logger.Warn("failed to publish order created event", zap.String("orderId", order.ID), zap.Error(err))
	}
}

func validationError(field, message string) error {
	return apperrors.NewValidationError(message, apperrors.ValidationDetail{Field: field, Message: message})
}
