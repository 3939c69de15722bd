package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"laundrypos/internal/commons"
	"laundrypos/internal/domain"
	apperrors "laundrypos/internal/errors"
	orderusecase "laundrypos/internal/order/usecase"
)

const msgMissingDetails = "Please fill in all customer details."

var customerMessages = map[string]string{
	"name":    msgMissingDetails,
	"contact": msgMissingDetails,
}

type CustomerRepository interface {
	Create(ctx context.Context, c domain.Customer) error
	Update(ctx context.Context, c domain.Customer) error
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)
	ListWithUnpaidTotal(ctx context.Context) ([]domain.CustomerBalance, error)
	UnclaimedCount(ctx context.Context, customerID string) (int, error)
}

// OrderRegistrar stores a new customer together with its first order.
type OrderRegistrar interface {
	Register(ctx context.Context, customer domain.Customer, in orderusecase.CreateOrderInput) (*domain.OrderWithStatus, error)
}

type CustomerInput struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact" validate:"required,numeric"`
}

type updateInput struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact" validate:"omitempty,numeric"`
}

type CustomerUseCase struct {
	repo      CustomerRepository
	registrar OrderRegistrar
	logger    *zap.Logger
	now       func() time.Time
	newID     func() string
}

func NewCustomerUseCase(repo CustomerRepository, registrar OrderRegistrar, logger *zap.Logger) *CustomerUseCase {
	return &CustomerUseCase{
		repo:      repo,
		registrar: registrar,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (uc *CustomerUseCase) Create(ctx context.Context, in CustomerInput) (*domain.Customer, error) {
	customer, err := uc.newCustomer(in)
	if err != nil {
		return nil, err
	}

	exists, err := uc.repo.ExistsByName(ctx, customer.Name, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, duplicateName(customer.Name)
	}

	if err := uc.repo.Create(ctx, customer); err != nil {
		if _, ok := apperrors.IsConflictError(err); ok {
			return nil, err
		}
		uc.logger.Error("failed to create customer", zap.String("customerId", customer.ID), zap.Error(err))
		return nil, commons.InternalSaveError(err)
	}

	uc.logger.Info("customer created", zap.String("customerId", customer.ID))
	return &customer, nil
}

// Register creates the customer and its first order. Nothing is written when
// either the customer details or the order are invalid.
func (uc *CustomerUseCase) Register(ctx context.Context, in CustomerInput, order orderusecase.CreateOrderInput) (*domain.Customer, *domain.OrderWithStatus, error) {
	customer, err := uc.newCustomer(in)
	if err != nil {
		return nil, nil, err
	}

	placed, err := uc.registrar.Register(ctx, customer, order)
	if err != nil {
		return nil, nil, err
	}

	uc.logger.Info("customer registered", zap.String("customerId", customer.ID), zap.String("orderId", placed.ID))
	return &customer, placed, nil
}

func (uc *CustomerUseCase) Update(ctx context.Context, id string, in CustomerInput) (*domain.Customer, error) {
	upd := updateInput{Name: strings.TrimSpace(in.Name), Contact: strings.TrimSpace(in.Contact)}
	if err := commons.ValidateStruct(upd, customerMessages); err != nil {
		return nil, err
	}

	current, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := uc.repo.ExistsByName(ctx, upd.Name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, duplicateName(upd.Name)
	}

	current.Name = upd.Name
	current.Contact = upd.Contact
	if err := uc.repo.Update(ctx, *current); err != nil {
		if _, ok := apperrors.IsConflictError(err); ok {
			return nil, err
		}
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, err
		}
		uc.logger.Error("failed to update customer", zap.String("customerId", id), zap.Error(err))
		return nil, commons.InternalSaveError(err)
	}

	return current, nil
}

func (uc *CustomerUseCase) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *CustomerUseCase) ListWithUnpaidTotal(ctx context.Context) ([]domain.CustomerBalance, error) {
	return uc.repo.ListWithUnpaidTotal(ctx)
}

// UnclaimedCount counts the customer's orders that have not been claimed.
func (uc *CustomerUseCase) UnclaimedCount(ctx context.Context, customerID string) (int, error) {
	if _, err := uc.repo.FindByID(ctx, customerID); err != nil {
		return 0, err
	}
	return uc.repo.UnclaimedCount(ctx, customerID)
}

func (uc *CustomerUseCase) newCustomer(in CustomerInput) (domain.Customer, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Contact = strings.TrimSpace(in.Contact)
	if err := commons.ValidateStruct(in, customerMessages); err != nil {
		return domain.Customer{}, err
	}
	return domain.Customer{
		ID:        uc.newID(),
		Name:      in.Name,
		Contact:   in.Contact,
		CreatedAt: uc.now().UTC(),
	}, nil
}

func duplicateName(name string) error {
	return apperrors.NewConflictError(fmt.Sprintf("Customer name %q already exists!", name))
}
