package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"laundrypos/internal/domain"
	apperrors "laundrypos/internal/errors"
	"laundrypos/internal/infrastructure/events"
)

type StatusRepository interface {
	FindByOrderID(ctx context.Context, orderID string) (*domain.OrderStatus, error)
	SetFlag(ctx context.Context, orderID string, action domain.Action, at time.Time) (bool, error)
}

type TagOrderUseCase struct {
	statuses  StatusRepository
	publisher EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewTagOrderUseCase(statuses StatusRepository, publisher EventPublisher, logger *zap.Logger) *TagOrderUseCase {
	return &TagOrderUseCase{
		statuses:  statuses,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Tag applies one status transition. Only the transitions offered for the
// current status are accepted.
func (uc *TagOrderUseCase) Tag(ctx context.Context, orderID string, action domain.Action) (*domain.OrderStatus, error) {
	status, err := uc.statuses.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	if err := status.Apply(action, now); err != nil {
		if errors.Is(err, domain.ErrActionNotOffered) {
			return nil, notOffered(action)
		}
		return nil, err
	}

	updated, err := uc.statuses.SetFlag(ctx, orderID, action, now)
	if err != nil {
		uc.logger.Error("failed to update order status", zap.String("orderId", orderID), zap.String("action", string(action)), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to update order status", err)
	}
	if !updated {
		return nil, notOffered(action)
	}

	uc.logger.Info("order tagged", zap.String("orderId", orderID), zap.String("action", string(action)), zap.String("status", status.Label()))

	err = uc.publisher.OrderStatusChanged(ctx, events.OrderStatusChangedEvent{
		OrderID:    orderID,
		CustomerID: status.CustomerID,
		Action:     string(action),
		IsFinished: status.IsFinished,
		IsPaid:     status.IsPaid,
		IsClaimed:  status.IsClaimed,
		Label:      status.Label(),
		ChangedAt:  now,
	})
	if err != nil {
		uc.logger.Warn("failed to publish status changed event", zap.String("orderId", orderID), zap.Error(err))
	}

	return status, nil
}

func (uc *TagOrderUseCase) OfferedActions(ctx context.Context, orderID string) (*domain.OrderStatus, []domain.Action, error) {
	status, err := uc.statuses.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	return status, status.OfferedActions(), nil
}

func notOffered(action domain.Action) error {
	return apperrors.NewConflictError(action.Label() + " is not available for this order.")
}
