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
	"laundrypos/internal/shop/usecase"
)

type ProfileUseCase interface {
	Get() domain.ShopProfile
	IsConfigured() bool
	PickupMessage() string
	Save(ctx context.Context, in usecase.ProfileInput) (domain.ShopProfile, error)
	Clear(ctx context.Context) error
}

type ShopController struct {
	useCase ProfileUseCase
	logger  *zap.Logger
}

func NewShopController(useCase ProfileUseCase, logger *zap.Logger) *ShopController {
	return &ShopController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *ShopController) RegisterRoutes(r chi.Router) {
	r.Route("/shop", func(r chi.Router) {
		r.Get("/profile", c.GetProfile)
		r.Put("/profile", c.SaveProfile)
		r.Delete("/profile", c.ClearProfile)
		r.Get("/pickup-message", c.PickupMessage)
	})
}

func (c *ShopController) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))
	commons.WriteJSON(w, http.StatusOK, dto.NewShopProfileResponse(c.useCase.Get(), c.useCase.IsConfigured()), logger)
}

func (c *ShopController) SaveProfile(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.ShopProfileRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		commons.HandleError(w, traceID, err, logger)
		return
	}

	saved, err := c.useCase.Save(r.Context(), usecase.ProfileInput{
		BusinessName: req.BusinessName,
		Contact:      req.Contact,
		OwnerName:    req.OwnerName,
		WeightUnit:   req.WeightUnit,
		ShopAddress:  req.ShopAddress,
		Message:      req.Message,
	})
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewShopProfileResponse(saved, c.useCase.IsConfigured()), logger)
}

func (c *ShopController) ClearProfile(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	if err := c.useCase.Clear(r.Context()); err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *ShopController) PickupMessage(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))
	commons.WriteJSON(w, http.StatusOK, dto.PickupMessageResponse{Message: c.useCase.PickupMessage()}, logger)
}
