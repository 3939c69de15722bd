package controller

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"laundrypos/internal/catalog/usecase"
	"laundrypos/internal/commons"
	"laundrypos/internal/domain"
	"laundrypos/internal/dto"
	apperrors "laundrypos/internal/errors"
)

type CatalogUseCase interface {
	CreateServiceType(ctx context.Context, in usecase.ServiceTypeInput) (*domain.ServiceType, error)
	UpdateServiceType(ctx context.Context, id string, in usecase.ServiceTypeInput) (*domain.ServiceType, error)
	DeleteServiceType(ctx context.Context, id string) error
	ListServiceTypes(ctx context.Context) ([]domain.ServiceType, error)
	FindServiceTypeByName(ctx context.Context, name string) (*domain.ServiceType, error)
	CreateAddOn(ctx context.Context, in usecase.AddOnInput) (*domain.AddOn, error)
	DeleteAddOn(ctx context.Context, id string) error
	ListAddOns(ctx context.Context) ([]domain.AddOn, error)
}

type CatalogController struct {
	useCase CatalogUseCase
	logger  *zap.Logger
}

func NewCatalogController(useCase CatalogUseCase, logger *zap.Logger) *CatalogController {
	return &CatalogController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *CatalogController) RegisterRoutes(r chi.Router) {
	r.Route("/service-types", func(r chi.Router) {
		r.Get("/", c.ListServiceTypes)
		r.Post("/", c.CreateServiceType)
		r.Put("/{serviceTypeId}", c.UpdateServiceType)
		r.Delete("/{serviceTypeId}", c.DeleteServiceType)
	})
	r.Route("/addons", func(r chi.Router) {
		r.Get("/", c.ListAddOns)
		r.Post("/", c.CreateAddOn)
		r.Delete("/{addOnId}", c.DeleteAddOn)
	})
}

func (c *CatalogController) ListServiceTypes(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	if name := strings.TrimSpace(r.URL.Query().Get("name")); name != "" {
		c.findServiceTypeByName(w, r, name, traceID, logger)
		return
	}

	types, err := c.useCase.ListServiceTypes(r.Context())
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewServiceTypeResponses(types), logger)
}

// findServiceTypeByName answers the ?name= filter with zero or one entry.
func (c *CatalogController) findServiceTypeByName(w http.ResponseWriter, r *http.Request, name, traceID string, logger *zap.Logger) {
	st, err := c.useCase.FindServiceTypeByName(r.Context(), name)
	if _, ok := apperrors.IsNotFoundError(err); ok {
		commons.WriteJSON(w, http.StatusOK, []dto.ServiceTypeResponse{}, logger)
		return
	}
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, []dto.ServiceTypeResponse{dto.NewServiceTypeResponse(*st)}, logger)
}

func (c *CatalogController) CreateServiceType(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.ServiceTypeRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		commons.HandleError(w, traceID, err, logger)
		return
	}

	st, err := c.useCase.CreateServiceType(r.Context(), usecase.ServiceTypeInput{
		Name:      req.Name,
		Price:     req.Price,
		MinWeight: req.MinWeight,
	})
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusCreated, dto.NewServiceTypeResponse(*st), logger)
}

func (c *CatalogController) UpdateServiceType(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))
	id := chi.URLParam(r, "serviceTypeId")

	var req dto.ServiceTypeRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		commons.HandleError(w, traceID, err, logger)
		return
	}

	st, err := c.useCase.UpdateServiceType(r.Context(), id, usecase.ServiceTypeInput{
		Name:      req.Name,
		Price:     req.Price,
		MinWeight: req.MinWeight,
	})
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewServiceTypeResponse(*st), logger)
}

func (c *CatalogController) DeleteServiceType(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	if err := c.useCase.DeleteServiceType(r.Context(), chi.URLParam(r, "serviceTypeId")); err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *CatalogController) ListAddOns(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	addOns, err := c.useCase.ListAddOns(r.Context())
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewAddOnResponses(addOns), logger)
}

func (c *CatalogController) CreateAddOn(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.AddOnRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		commons.HandleError(w, traceID, err, logger)
		return
	}

	a, err := c.useCase.CreateAddOn(r.Context(), usecase.AddOnInput{Name: req.Name, Price: req.Price})
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusCreated, dto.NewAddOnResponse(*a), logger)
}

func (c *CatalogController) DeleteAddOn(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	if err := c.useCase.DeleteAddOn(r.Context(), chi.URLParam(r, "addOnId")); err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
