package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"laundrypos/internal/config"
	"laundrypos/internal/domain"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	rdb, err := ConnectRedis(config.CacheConfig{Addr: addr, DB: 15})
	if err != nil {
		t.Skipf("redis not available: %v", err)
	}
	t.Cleanup(func() {
		rdb.Del(context.Background(), serviceTypesKey, addOnsKey)
		rdb.Close()
	})
	rdb.Del(context.Background(), serviceTypesKey, addOnsKey)
	return rdb
}

type fakeServiceTypeRepository struct {
	ServiceTypeRepository
	items     []domain.ServiceType
	listCalls int
}

func (f *fakeServiceTypeRepository) List(ctx context.Context) ([]domain.ServiceType, error) {
	f.listCalls++
	return f.items, nil
}

func (f *fakeServiceTypeRepository) Create(ctx context.Context, st domain.ServiceType) error {
	f.items = append(f.items, st)
	return nil
}

type fakeAddOnRepository struct {
	AddOnRepository
	items     []domain.AddOn
	listCalls int
}

func (f *fakeAddOnRepository) List(ctx context.Context) ([]domain.AddOn, error) {
	f.listCalls++
	return f.items, nil
}

func (f *fakeAddOnRepository) Delete(ctx context.Context, id string) error {
	f.items = nil
	return nil
}

func TestCachedServiceTypeRepository(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()

	inner := &fakeServiceTypeRepository{items: []domain.ServiceType{
		{ID: "st-1", Name: "Wash", Price: 100, MinWeight: domain.QuantityOf(5)},
	}}
	repo := NewCachedServiceTypeRepository(inner, rdb, time.Minute, zap.NewNop())

	first, err := repo.List(ctx)
	require.NoError(t, err)
	second, err := repo.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, domain.QuantityOf(5), second[0].MinWeight)
	assert.Equal(t, 1, inner.listCalls)

	require.NoError(t, repo.Create(ctx, domain.ServiceType{ID: "st-2", Name: "Dry", Price: 200}))

	third, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, third, 2)
	assert.Equal(t, 2, inner.listCalls)
}

func TestCachedAddOnRepository(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()

	inner := &fakeAddOnRepository{items: []domain.AddOn{{ID: "a-1", Name: "Softener", Price: 20}}}
	repo := NewCachedAddOnRepository(inner, rdb, time.Minute, zap.NewNop())

	_, err := repo.List(ctx)
	require.NoError(t, err)
	_, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.listCalls)

	require.NoError(t, repo.Delete(ctx, "a-1"))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, 2, inner.listCalls)
}
