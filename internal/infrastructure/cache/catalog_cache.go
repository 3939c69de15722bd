package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"laundrypos/internal/domain"
)

const (
	serviceTypesKey = "catalog:service_types:all"
	addOnsKey       = "catalog:addons:all"
)

type ServiceTypeRepository interface {
	Create(ctx context.Context, st domain.ServiceType) error
	Update(ctx context.Context, st domain.ServiceType) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.ServiceType, error)
	FindByName(ctx context.Context, name string) (*domain.ServiceType, error)
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)
	List(ctx context.Context) ([]domain.ServiceType, error)
}

type AddOnRepository interface {
	Create(ctx context.Context, a domain.AddOn) error
	Delete(ctx context.Context, id string) error
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]domain.AddOn, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.AddOn, error)
}

// CachedServiceTypeRepository serves List from Redis and drops the cached
// list on every write. Redis failures fall back to the wrapped repository.
type CachedServiceTypeRepository struct {
	ServiceTypeRepository
	redis  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedServiceTypeRepository(repo ServiceTypeRepository, rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedServiceTypeRepository {
	return &CachedServiceTypeRepository{ServiceTypeRepository: repo, redis: rdb, ttl: ttl, logger: logger}
}

func (c *CachedServiceTypeRepository) List(ctx context.Context) ([]domain.ServiceType, error) {
	return readThrough(ctx, c.redis, c.logger, serviceTypesKey, c.ttl, c.ServiceTypeRepository.List)
}

func (c *CachedServiceTypeRepository) Create(ctx context.Context, st domain.ServiceType) error {
	defer invalidate(ctx, c.redis, c.logger, serviceTypesKey)
	return c.ServiceTypeRepository.Create(ctx, st)
}

func (c *CachedServiceTypeRepository) Update(ctx context.Context, st domain.ServiceType) error {
	defer invalidate(ctx, c.redis, c.logger, serviceTypesKey)
	return c.ServiceTypeRepository.Update(ctx, st)
}

func (c *CachedServiceTypeRepository) Delete(ctx context.Context, id string) error {
	defer invalidate(ctx, c.redis, c.logger, serviceTypesKey)
	return c.ServiceTypeRepository.Delete(ctx, id)
}

type CachedAddOnRepository struct {
	AddOnRepository
	redis  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedAddOnRepository(repo AddOnRepository, rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedAddOnRepository {
	return &CachedAddOnRepository{AddOnRepository: repo, redis: rdb, ttl: ttl, logger: logger}
}

func (c *CachedAddOnRepository) List(ctx context.Context) ([]domain.AddOn, error) {
	return readThrough(ctx, c.redis, c.logger, addOnsKey, c.ttl, c.AddOnRepository.List)
}

func (c *CachedAddOnRepository) Create(ctx context.Context, a domain.AddOn) error {
	defer invalidate(ctx, c.redis, c.logger, addOnsKey)
	return c.AddOnRepository.Create(ctx, a)
}

func (c *CachedAddOnRepository) Delete(ctx context.Context, id string) error {
	defer invalidate(ctx, c.redis, c.logger, addOnsKey)
	return c.AddOnRepository.Delete(ctx, id)
}

func readThrough[T any](ctx context.Context, rdb *redis.Client, logger *zap.Logger, key string, ttl time.Duration, load func(context.Context) ([]T, error)) ([]T, error) {
	data, err := rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var items []T
		if err := json.Unmarshal(data, &items); err == nil {
			return items, nil
		}
		logger.Warn("failed to unmarshal cached value, continuing with database", zap.String("key", key))
	case errors.Is(err, redis.Nil):
	default:
		logger.Warn("redis error, continuing with database", zap.String("key", key), zap.Error(err))
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(items)
	if err != nil {
		logger.Warn("failed to marshal value for cache", zap.String("key", key), zap.Error(err))
		return items, nil
	}
	if err := rdb.Set(ctx, key, payload, ttl).Err(); err != nil {
		logger.Warn("failed to cache value", zap.String("key", key), zap.Error(err))
	}
	return items, nil
}

func invalidate(ctx context.Context, rdb *redis.Client, logger *zap.Logger, key string) {
	if err := rdb.Del(ctx, key).Err(); err != nil {
		logger.Warn("failed to invalidate cache", zap.String("key", key), zap.Error(err))
	}
}
