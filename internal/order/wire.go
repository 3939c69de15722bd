package order

import (
	"database/sql"

	"go.uber.org/zap"

	"laundrypos/internal/config"
	"laundrypos/internal/order/controller"
	orderrepo "laundrypos/internal/order/repository"
	"laundrypos/internal/order/service"
	"laundrypos/internal/order/usecase"
)

// Customers is the customer store the order module reads and, on
// registration, writes inside the placement transaction.
type Customers interface {
	usecase.CustomerFinder
	service.CustomerWriter
}

type Module struct {
	Controller *controller.OrderController
	Create     *usecase.CreateOrderUseCase
	Tag        *usecase.TagOrderUseCase
	Query      *usecase.QueryOrderUseCase
}

func NewModule(
	db *sql.DB,
	cfg *config.Config,
	customers Customers,
	serviceTypes usecase.ServiceTypeResolver,
	addOns usecase.AddOnFinder,
	publisher usecase.EventPublisher,
	logger *zap.Logger,
) *Module {
	orderRepo := orderrepo.NewSQLOrderRepository(db)
	statusRepo := orderrepo.NewSQLStatusRepository(db)
	orderAddOnRepo := orderrepo.NewSQLOrderAddOnRepository(db)

	placement := service.NewPlacementService(
		db,
		orderRepo,
		statusRepo,
		orderAddOnRepo,
		customers,
		logger,
		cfg.Order.TxTimeout,
	)

	create := usecase.NewCreateOrderUseCase(customers, serviceTypes, addOns, placement, publisher, logger)
	tag := usecase.NewTagOrderUseCase(statusRepo, publisher, logger)
	query := usecase.NewQueryOrderUseCase(orderRepo, orderAddOnRepo, addOns, customers, logger)

	return &Module{
		Controller: controller.NewOrderController(create, tag, query, logger),
		Create:     create,
		Tag:        tag,
		Query:      query,
	}
}
