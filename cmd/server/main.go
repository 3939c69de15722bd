package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"laundrypos/internal/catalog"
	"laundrypos/internal/config"
	"laundrypos/internal/customer"
	customerrepo "laundrypos/internal/customer/repository"
	"laundrypos/internal/infrastructure/cache"
	"laundrypos/internal/infrastructure/database"
	"laundrypos/internal/infrastructure/events"
	"laundrypos/internal/infrastructure/logger"
	"laundrypos/internal/order"
	orderusecase "laundrypos/internal/order/usecase"
	"laundrypos/internal/report"
	"laundrypos/internal/seed"
	"laundrypos/internal/server"
	"laundrypos/internal/shop"
)

func main() {
	cfg, err := config.Load("internal/config/config.yaml")
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected", zap.String("driver", cfg.Database.Driver))

	if err := database.Migrate(ctx, db, cfg.Database.Driver, zapLogger); err != nil {
		zapLogger.Fatal("migrating database", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.Cache.Enabled {
		rdb, err = cache.ConnectRedis(cfg.Cache)
		if err != nil {
			zapLogger.Fatal("connecting to redis", zap.Error(err))
		}
		defer rdb.Close()
		zapLogger.Info("catalog cache enabled", zap.String("addr", cfg.Cache.Addr))
	}

	publisher := newPublisher(cfg, zapLogger)
	defer publisher.Close()

	handler, err := buildApp(ctx, db, rdb, publisher, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("starting application", zap.Error(err))
	}

	srv := server.New(cfg.Server, handler, zapLogger)
	if err := srv.Run(ctx); err != nil {
		zapLogger.Fatal("server error", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

func newPublisher(cfg *config.Config, logger *zap.Logger) events.Publisher {
	if !cfg.Events.Enabled {
		return events.NopPublisher{}
	}
	p, err := events.NewKafkaPublisher(cfg.Events, logger)
	if err != nil {
		logger.Fatal("connecting to kafka", zap.Error(err))
	}
	logger.Info("order events enabled", zap.Strings("brokers", cfg.Events.Brokers))
	return p
}

func serviceTypeResolver(ref string, catalogMod *catalog.Module) orderusecase.ServiceTypeResolver {
	if ref == config.ServiceTypeRefID {
		return catalogMod.IDResolver
	}
	return catalogMod.Resolver
}

func buildApp(ctx context.Context, db *sql.DB, rdb *redis.Client, publisher events.Publisher, cfg *config.Config, logger *zap.Logger) (http.Handler, error) {
	catalogMod := catalog.NewModule(db, rdb, cfg.Cache.TTL, logger)
	customers := customerrepo.NewSQLCustomerRepository(db)
	orderMod := order.NewModule(db, cfg, customers, serviceTypeResolver(cfg.Order.ServiceTypeRef, catalogMod), catalogMod.AddOns, publisher, logger)
	customerMod := customer.NewModule(customers, orderMod.Create, logger)
	reportMod := report.NewModule(db, cfg.Location, logger)
	shopMod := shop.NewModule(db, logger)

	if err := shopMod.Profile.Load(ctx); err != nil {
		return nil, err
	}

	if cfg.Seed.Path != "" {
		doc, err := seed.Load(cfg.Seed.Path)
		if err != nil {
			return nil, err
		}
		summary, err := seed.NewSeeder(shopMod.Profile, catalogMod.UseCase, logger).Apply(ctx, doc)
		if err != nil {
			return nil, err
		}
		logger.Info("seed applied",
			zap.Bool("profileSaved", summary.ProfileSaved),
			zap.Int("serviceTypesCreated", summary.ServiceTypesCreated),
			zap.Int("addOnsCreated", summary.AddOnsCreated),
		)
	}

	return server.NewRouter(db, logger,
		catalogMod.Controller,
		customerMod.Controller,
		orderMod.Controller,
		reportMod.Controller,
		shopMod.Controller,
	), nil
}
