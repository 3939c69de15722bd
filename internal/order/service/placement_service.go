package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"laundrypos/internal/commons"
	"laundrypos/internal/domain"
	apperrors "laundrypos/internal/errors"
	"laundrypos/internal/infrastructure/database"
)

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) error
}

type StatusRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, status domain.OrderStatus) error
}

type OrderAddOnRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, item domain.OrderAddOn) error
}

type CustomerWriter interface {
	ExistsByNameTx(ctx context.Context, tx *sql.Tx, name string) (bool, error)
	CreateTx(ctx context.Context, tx *sql.Tx, c domain.Customer) error
}

// PlacementService writes an order, its add-on rows and its initial status
// in one transaction. Nothing is visible unless every write succeeds.
type PlacementService struct {
	db         database.TransactionManager
	orders     OrderRepository
	statuses   StatusRepository
	orderItems OrderAddOnRepository
	customers  CustomerWriter
	logger     *zap.Logger
	txTimeout  time.Duration
}

func NewPlacementService(
	db database.TransactionManager,
	orders OrderRepository,
	statuses StatusRepository,
	orderItems OrderAddOnRepository,
	customers CustomerWriter,
	logger *zap.Logger,
	txTimeout time.Duration,
) *PlacementService {
	return &PlacementService{
		db:         db,
		orders:     orders,
		statuses:   statuses,
		orderItems: orderItems,
		customers:  customers,
		logger:     logger,
		txTimeout:  txTimeout,
	}
}

// Place stores a priced order. addOns must be the selected add-ons in
// selection order; their prices are recorded as the order's snapshot.
func (s *PlacementService) Place(ctx context.Context, order domain.Order, addOns []domain.AddOn) (*domain.OrderWithStatus, error) {
	return s.place(ctx, nil, order, addOns)
}

// PlaceWithCustomer creates the customer and its first order together. The
// name check runs inside the transaction; a duplicate leaves no rows behind.
func (s *PlacementService) PlaceWithCustomer(ctx context.Context, customer domain.Customer, order domain.Order, addOns []domain.AddOn) (*domain.OrderWithStatus, error) {
	return s.place(ctx, &customer, order, addOns)
}

func (s *PlacementService) place(ctx context.Context, customer *domain.Customer, order domain.Order, addOns []domain.AddOn) (*domain.OrderWithStatus, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, commons.InternalSaveError(err)
	}
	defer tx.Rollback()

	if customer != nil {
		exists, err := s.customers.ExistsByNameTx(txCtx, tx, customer.Name)
		if err != nil {
			s.logger.Error("failed to check customer name", zap.Error(err))
			return nil, commons.InternalSaveError(err)
		}
		if exists {
			return nil, apperrors.NewConflictError(fmt.Sprintf("Customer name %q already exists!", customer.Name))
		}
		if err := s.customers.CreateTx(txCtx, tx, *customer); err != nil {
			if _, ok := apperrors.IsConflictError(err); ok {
				return nil, err
			}
			s.logger.Error("failed to insert customer", zap.String("customerId", customer.ID), zap.Error(err))
			return nil, commons.InternalSaveError(err)
		}
	}

	if err := s.orders.Insert(txCtx, tx, order); err != nil {
		s.logger.Error("failed to insert order", zap.String("orderId", order.ID), zap.Error(err))
		return nil, commons.InternalSaveError(err)
	}

	for i, a := range addOns {
		item := domain.OrderAddOn{OrderID: order.ID, AddOnID: a.ID, Position: i, Price: a.Price}
		if err := s.orderItems.Insert(txCtx, tx, item); err != nil {
			s.logger.Error("failed to insert order add-on", zap.String("orderId", order.ID), zap.String("addOnId", a.ID), zap.Error(err))
			return nil, commons.InternalSaveError(err)
		}
	}

	status := domain.NewOrderStatus(order)
	if err := s.statuses.Insert(txCtx, tx, status); err != nil {
		s.logger.Error("failed to insert order status", zap.String("orderId", order.ID), zap.Error(err))
		return nil, commons.InternalSaveError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", zap.String("orderId", order.ID), zap.Error(err))
		return nil, commons.InternalSaveError(err)
	}

	s.logger.Info("order placed",
		zap.String("orderId", order.ID),
		zap.String("customerId", order.CustomerID),
		zap.Float64("gross", order.Gross),
		zap.Int("addOnCount", len(addOns)),
		zap.Bool("newCustomer", customer != nil),
	)

	return &domain.OrderWithStatus{Order: order, Status: status}, nil
}
