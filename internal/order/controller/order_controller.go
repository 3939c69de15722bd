package controller

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"laundrypos/internal/commons"
	"laundrypos/internal/domain"
	"laundrypos/internal/dto"
	apperrors "laundrypos/internal/errors"
	"laundrypos/internal/order/usecase"
)

type CreateOrderUseCase interface {
	Create(ctx context.Context, customerID string, in usecase.CreateOrderInput) (*domain.OrderWithStatus, error)
}

type TagOrderUseCase interface {
	Tag(ctx context.Context, orderID string, action domain.Action) (*domain.OrderStatus, error)
	OfferedActions(ctx context.Context, orderID string) (*domain.OrderStatus, []domain.Action, error)
}

type QueryOrderUseCase interface {
	Get(ctx context.Context, orderID string) (*usecase.OrderDetails, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.OrderWithStatus, error)
}

var tagMessages = map[string]string{
	"action": "Please choose finish, pay or claim.",
}

type OrderController struct {
	create CreateOrderUseCase
	tag    TagOrderUseCase
	query  QueryOrderUseCase
	logger *zap.Logger
}

func NewOrderController(create CreateOrderUseCase, tag TagOrderUseCase, query QueryOrderUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		create: create,
		tag:    tag,
		query:  query,
		logger: logger,
	}
}

func (c *OrderController) RegisterRoutes(r chi.Router) {
	r.Get("/customers/{customerId}/orders", c.ListByCustomer)
	r.Post("/customers/{customerId}/orders", c.Create)
	r.Get("/orders/{orderId}", c.Get)
	r.Get("/orders/{orderId}/actions", c.OfferedActions)
	r.Post("/orders/{orderId}/tag", c.Tag)
}

// ToInput maps the wire request onto the use case input.
func ToInput(req dto.CreateOrderRequest) usecase.CreateOrderInput {
	return usecase.CreateOrderInput{
		ServiceType:  req.ServiceType,
		Weight:       req.Weight,
		LoadCount:    req.Load,
		Instructions: req.Instructions,
		AddOnIDs:     req.AddOns,
	}
}

func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	customerID := chi.URLParam(r, "customerId")
	logger := c.logger.With(zap.String("traceId", traceID), zap.String("customerId", customerID))

	var req dto.CreateOrderRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		commons.HandleError(w, traceID, err, logger)
		return
	}

	placed, err := c.create.Create(r.Context(), customerID, ToInput(req))
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	logger.Info("order created", zap.String("orderId", placed.ID), zap.Float64("gross", placed.Gross))
	commons.WriteJSON(w, http.StatusCreated, dto.NewOrderResponse(*placed), logger)
}

func (c *OrderController) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orders, err := c.query.ListByCustomer(r.Context(), chi.URLParam(r, "customerId"))
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewOrderResponses(orders), logger)
}

func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	details, err := c.query.Get(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewOrderDetailsResponse(details.OrderWithStatus, details.AddOnsLabel, details.AddOns), logger)
}

func (c *OrderController) OfferedActions(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	status, actions, err := c.tag.OfferedActions(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewOfferedActionsResponse(*status, actions), logger)
}

func (c *OrderController) Tag(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	orderID := chi.URLParam(r, "orderId")
	logger := c.logger.With(zap.String("traceId", traceID), zap.String("orderId", orderID))

	var req dto.TagOrderRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		commons.HandleError(w, traceID, err, logger)
		return
	}
	if err := commons.ValidateStruct(req, tagMessages); err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	action, ok := domain.ParseAction(req.Action)
	if !ok {
		msg := tagMessages["action"]
		commons.HandleError(w, traceID, apperrors.NewValidationError(msg, apperrors.ValidationDetail{Field: "action", Message: msg}), logger)
		return
	}
	status, err := c.tag.Tag(r.Context(), orderID, action)
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewOfferedActionsResponse(*status, status.OfferedActions()), logger)
}
