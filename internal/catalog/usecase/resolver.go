package usecase

import (
	"context"
	"strings"

	"laundrypos/internal/domain"
)

type serviceTypeFinder interface {
	FindByName(ctx context.Context, name string) (*domain.ServiceType, error)
	FindByID(ctx context.Context, id string) (*domain.ServiceType, error)
}

// NameResolver resolves references by case-insensitive name, which is how
// orders refer to service types.
type NameResolver struct {
	repo serviceTypeFinder
}

func NewNameResolver(repo serviceTypeFinder) *NameResolver {
	return &NameResolver{repo: repo}
}

func (r *NameResolver) Resolve(ctx context.Context, ref string) (*domain.ServiceType, error) {
	return r.repo.FindByName(ctx, strings.TrimSpace(ref))
}

// IDResolver resolves references by service type id.
type IDResolver struct {
	repo serviceTypeFinder
}

func NewIDResolver(repo serviceTypeFinder) *IDResolver {
	return &IDResolver{repo: repo}
}

func (r *IDResolver) Resolve(ctx context.Context, ref string) (*domain.ServiceType, error) {
	return r.repo.FindByID(ctx, strings.TrimSpace(ref))
}
