package catalog

import (
	"database/sql"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"laundrypos/internal/catalog/controller"
	"laundrypos/internal/catalog/repository"
	"laundrypos/internal/catalog/usecase"
	"laundrypos/internal/infrastructure/cache"
)

type Module struct {
	Controller *controller.CatalogController
	UseCase    *usecase.CatalogUseCase
	Resolver   *usecase.NameResolver
	IDResolver *usecase.IDResolver
	AddOns     usecase.AddOnRepository
}

// NewModule wires the catalog. When rdb is non-nil the list queries are
// served through the Redis cache.
func NewModule(db *sql.DB, rdb *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *Module {
	var (
		serviceTypes usecase.ServiceTypeRepository = repository.NewSQLServiceTypeRepository(db)
		addOns       usecase.AddOnRepository       = repository.NewSQLAddOnRepository(db)
	)
	if rdb != nil {
		serviceTypes = cache.NewCachedServiceTypeRepository(serviceTypes, rdb, cacheTTL, logger)
		addOns = cache.NewCachedAddOnRepository(addOns, rdb, cacheTTL, logger)
	}

	uc := usecase.NewCatalogUseCase(serviceTypes, addOns, logger)

	return &Module{
		Controller: controller.NewCatalogController(uc, logger),
		UseCase:    uc,
		Resolver:   usecase.NewNameResolver(serviceTypes),
		IDResolver: usecase.NewIDResolver(serviceTypes),
		AddOns:     addOns,
	}
}
