package customer

import (
	"go.uber.org/zap"

	"laundrypos/internal/customer/controller"
	"laundrypos/internal/customer/repository"
	"laundrypos/internal/customer/usecase"
)

type Module struct {
	Controller *controller.CustomerController
	UseCase    *usecase.CustomerUseCase
}

// NewModule wires the customer module over repo. Registration places the
// first order through registrar.
func NewModule(repo *repository.SQLCustomerRepository, registrar usecase.OrderRegistrar, logger *zap.Logger) *Module {
	uc := usecase.NewCustomerUseCase(repo, registrar, logger)
	return &Module{
		Controller: controller.NewCustomerController(uc, logger),
		UseCase:    uc,
	}
}
