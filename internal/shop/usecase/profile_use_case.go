package usecase

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"laundrypos/internal/commons"
	"laundrypos/internal/domain"
)

const msgMissingProfile = "Please fill in the business name and owner name."

var profileMessages = map[string]string{
	"businessName": msgMissingProfile,
	"ownerName":    msgMissingProfile,
	"contact":      "Please enter a valid contact number.",
}

type SettingsRepository interface {
	Load(ctx context.Context) (domain.ShopProfile, error)
	Save(ctx context.Context, p domain.ShopProfile) error
	Clear(ctx context.Context) error
}

type ProfileInput struct {
	BusinessName string `json:"businessName" validate:"required,max=120"`
	Contact      string `json:"contact" validate:"omitempty,numeric"`
	OwnerName    string `json:"ownerName" validate:"required,max=120"`
	WeightUnit   string `json:"weightUnit" validate:"omitempty,max=10"`
	ShopAddress  string `json:"shopAddress" validate:"omitempty,max=255"`
	Message      string `json:"message" validate:"omitempty,max=500"`
}

// ProfileUseCase owns the shop profile. The stored value is loaded once and
// kept in memory; every change is written through to the settings table.
type ProfileUseCase struct {
	repo   SettingsRepository
	logger *zap.Logger

	mu      sync.RWMutex
	profile domain.ShopProfile
}

func NewProfileUseCase(repo SettingsRepository, logger *zap.Logger) *ProfileUseCase {
	return &ProfileUseCase{repo: repo, logger: logger}
}

// Load reads the stored profile into memory.
func (uc *ProfileUseCase) Load(ctx context.Context) error {
	p, err := uc.repo.Load(ctx)
	if err != nil {
		return err
	}

	uc.mu.Lock()
	uc.profile = p
	uc.mu.Unlock()

	uc.logger.Info("shop profile loaded", zap.Bool("configured", p.IsConfigured()))
	return nil
}

// Profile returns the profile as stored, without defaults.
func (uc *ProfileUseCase) Profile() domain.ShopProfile {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.profile
}

func (uc *ProfileUseCase) Get() domain.ShopProfile {
	return uc.Profile().WithDefaults()
}

func (uc *ProfileUseCase) IsConfigured() bool {
	return uc.Profile().IsConfigured()
}

func (uc *ProfileUseCase) PickupMessage() string {
	return uc.Profile().PickupMessage()
}

func (uc *ProfileUseCase) Save(ctx context.Context, in ProfileInput) (domain.ShopProfile, error) {
	in = ProfileInput{
		BusinessName: strings.TrimSpace(in.BusinessName),
		Contact:      strings.TrimSpace(in.Contact),
		OwnerName:    strings.TrimSpace(in.OwnerName),
		WeightUnit:   strings.TrimSpace(in.WeightUnit),
		ShopAddress:  strings.TrimSpace(in.ShopAddress),
		Message:      strings.TrimSpace(in.Message),
	}
	if err := commons.ValidateStruct(in, profileMessages); err != nil {
		return domain.ShopProfile{}, err
	}

	p := domain.ShopProfile{
		BusinessName: in.BusinessName,
		Contact:      in.Contact,
		OwnerName:    in.OwnerName,
		WeightUnit:   in.WeightUnit,
		ShopAddress:  in.ShopAddress,
		Message:      in.Message,
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.repo.Save(ctx, p); err != nil {
		uc.logger.Error("failed to save shop profile", zap.Error(err))
		return domain.ShopProfile{}, commons.InternalSaveError(err)
	}
	uc.profile = p

	uc.logger.Info("shop profile saved", zap.String("businessName", p.BusinessName))
	return p.WithDefaults(), nil
}

func (uc *ProfileUseCase) Clear(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.repo.Clear(ctx); err != nil {
		uc.logger.Error("failed to clear shop profile", zap.Error(err))
		return commons.InternalSaveError(err)
	}
	uc.profile = domain.ShopProfile{}

	uc.logger.Info("shop profile cleared")
	return nil
}
