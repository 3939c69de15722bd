package usecase

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"laundrypos/internal/domain"
	apperrors "laundrypos/internal/errors"
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

type ServiceTypeInput struct {
	Name      string
	Price     *float64
	MinWeight *float64
}

type AddOnInput struct {
	Name  string
	Price *float64
}

type CatalogUseCase struct {
	serviceTypes ServiceTypeRepository
	addOns       AddOnRepository
	logger       *zap.Logger
	newID        func() string
}

func NewCatalogUseCase(serviceTypes ServiceTypeRepository, addOns AddOnRepository, logger *zap.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		serviceTypes: serviceTypes,
		addOns:       addOns,
		logger:       logger,
		newID:        uuid.NewString,
	}
}

func (uc *CatalogUseCase) CreateServiceType(ctx context.Context, in ServiceTypeInput) (*domain.ServiceType, error) {
	st, err := buildServiceType(in)
	if err != nil {
		return nil, err
	}
	st.ID = uc.newID()

	exists, err := uc.serviceTypes.ExistsByName(ctx, st.Name, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError(`Service "` + st.Name + `" already exists.`)
	}

	if err := uc.serviceTypes.Create(ctx, st); err != nil {
		return nil, err
	}

	uc.logger.Info("service type created", zap.String("serviceTypeId", st.ID), zap.String("name", st.Name), zap.Float64("price", st.Price))
	return &st, nil
}

func (uc *CatalogUseCase) UpdateServiceType(ctx context.Context, id string, in ServiceTypeInput) (*domain.ServiceType, error) {
	st, err := buildServiceType(in)
	if err != nil {
		return nil, err
	}
	st.ID = id

	if _, err := uc.serviceTypes.FindByID(ctx, id); err != nil {
		return nil, err
	}

	exists, err := uc.serviceTypes.ExistsByName(ctx, st.Name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError(`Service "` + st.Name + `" already exists.`)
	}

	if err := uc.serviceTypes.Update(ctx, st); err != nil {
		return nil, err
	}

	uc.logger.Info("service type updated", zap.String("serviceTypeId", id))
	return &st, nil
}

// DeleteServiceType removes a catalog entry. Orders keep the name and gross
// they were created with.
func (uc *CatalogUseCase) DeleteServiceType(ctx context.Context, id string) error {
	if err := uc.serviceTypes.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("service type deleted", zap.String("serviceTypeId", id))
	return nil
}

func (uc *CatalogUseCase) ListServiceTypes(ctx context.Context) ([]domain.ServiceType, error) {
	return uc.serviceTypes.List(ctx)
}

func (uc *CatalogUseCase) FindServiceTypeByName(ctx context.Context, name string) (*domain.ServiceType, error) {
	return uc.serviceTypes.FindByName(ctx, strings.TrimSpace(name))
}

func (uc *CatalogUseCase) CreateAddOn(ctx context.Context, in AddOnInput) (*domain.AddOn, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, validationError("name", "Add-on name is required.")
	}
	if in.Price == nil || !isFinite(*in.Price) || *in.Price < 0 {
		return nil, validationError("price", "Price must be a number.")
	}

	exists, err := uc.addOns.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError(`Add-on "` + name + `" already exists.`)
	}

	a := domain.AddOn{ID: uc.newID(), Name: name, Price: *in.Price}
	if err := uc.addOns.Create(ctx, a); err != nil {
		return nil, err
	}

	uc.logger.Info("add-on created", zap.String("addOnId", a.ID), zap.String("name", a.Name))
	return &a, nil
}

func (uc *CatalogUseCase) DeleteAddOn(ctx context.Context, id string) error {
	if err := uc.addOns.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("add-on deleted", zap.String("addOnId", id))
	return nil
}

func (uc *CatalogUseCase) ListAddOns(ctx context.Context) ([]domain.AddOn, error) {
	return uc.addOns.List(ctx)
}

func buildServiceType(in ServiceTypeInput) (domain.ServiceType, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.ServiceType{}, validationError("name", "Please enter a service name.")
	}
	if in.Price == nil || !isFinite(*in.Price) || *in.Price <= 0 {
		return domain.ServiceType{}, validationError("price", "Please enter a valid price per kilo.")
	}
	if in.MinWeight != nil && (!isFinite(*in.MinWeight) || *in.MinWeight < 0) {
		return domain.ServiceType{}, validationError("minWeight", "Please enter a valid minimum weight.")
	}

	return domain.ServiceType{
		Name:      name,
		Price:     *in.Price,
		MinWeight: domain.QuantityFromPtr(in.MinWeight),
	}, nil
}

func validationError(field, message string) error {
	return apperrors.NewValidationError(message, apperrors.ValidationDetail{Field: field, Message: message})
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
