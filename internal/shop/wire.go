package shop

import (
	"database/sql"

	"go.uber.org/zap"

	"laundrypos/internal/shop/controller"
	"laundrypos/internal/shop/repository"
	"laundrypos/internal/shop/usecase"
)

type Module struct {
	Controller *controller.ShopController
	Profile    *usecase.ProfileUseCase
}

// NewModule wires the shop profile. Call Profile.Load before serving.
func NewModule(db *sql.DB, logger *zap.Logger) *Module {
	profile := usecase.NewProfileUseCase(repository.NewSQLSettingsRepository(db), logger)
	return &Module{
		Controller: controller.NewShopController(profile, logger),
		Profile:    profile,
	}
}
