package controller

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"laundrypos/internal/commons"
	"laundrypos/internal/customer/usecase"
	"laundrypos/internal/domain"
	"laundrypos/internal/dto"
	ordercontroller "laundrypos/internal/order/controller"
	orderusecase "laundrypos/internal/order/usecase"
)

type CustomerUseCase interface {
	Create(ctx context.Context, in usecase.CustomerInput) (*domain.Customer, error)
	Register(ctx context.Context, in usecase.CustomerInput, order orderusecase.CreateOrderInput) (*domain.Customer, *domain.OrderWithStatus, error)
	Update(ctx context.Context, id string, in usecase.CustomerInput) (*domain.Customer, error)
	Get(ctx context.Context, id string) (*domain.Customer, error)
	ListWithUnpaidTotal(ctx context.Context) ([]domain.CustomerBalance, error)
	UnclaimedCount(ctx context.Context, customerID string) (int, error)
}

type CustomerController struct {
	useCase CustomerUseCase
	logger  *zap.Logger
}

func NewCustomerController(useCase CustomerUseCase, logger *zap.Logger) *CustomerController {
	return &CustomerController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *CustomerController) RegisterRoutes(r chi.Router) {
	r.Get("/customers", c.List)
	r.Post("/customers", c.Create)
	r.Post("/customers/register", c.Register)
	r.Get("/customers/{customerId}", c.Get)
	r.Put("/customers/{customerId}", c.Update)
	r.Get("/customers/{customerId}/unclaimed-count", c.UnclaimedCount)
}

func (c *CustomerController) List(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	balances, err := c.useCase.ListWithUnpaidTotal(r.Context())
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewCustomerBalanceResponses(balances, commons.FormatAmount), logger)
}

func (c *CustomerController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CustomerRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		commons.HandleError(w, traceID, err, logger)
		return
	}

	customer, err := c.useCase.Create(r.Context(), usecase.CustomerInput{Name: req.Name, Contact: req.Contact})
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusCreated, dto.NewCustomerResponse(*customer), logger)
}

func (c *CustomerController) Register(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.RegisterRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		commons.HandleError(w, traceID, err, logger)
		return
	}

	customer, order, err := c.useCase.Register(
		r.Context(),
		usecase.CustomerInput{Name: req.Name, Contact: req.Contact},
		ordercontroller.ToInput(req.Order),
	)
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusCreated, dto.RegisterResponse{
		Customer: dto.NewCustomerResponse(*customer),
		Order:    dto.NewOrderResponse(*order),
	}, logger)
}

func (c *CustomerController) Get(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	customer, err := c.useCase.Get(r.Context(), chi.URLParam(r, "customerId"))
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewCustomerResponse(*customer), logger)
}

func (c *CustomerController) Update(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CustomerRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		commons.HandleError(w, traceID, err, logger)
		return
	}

	customer, err := c.useCase.Update(r.Context(), chi.URLParam(r, "customerId"), usecase.CustomerInput{Name: req.Name, Contact: req.Contact})
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewCustomerResponse(*customer), logger)
}

func (c *CustomerController) UnclaimedCount(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))
	customerID := chi.URLParam(r, "customerId")

	count, err := c.useCase.UnclaimedCount(r.Context(), customerID)
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.UnclaimedCountResponse{CustomerID: customerID, Count: count}, logger)
}
