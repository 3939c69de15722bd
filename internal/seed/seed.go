package seed

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"

	catalogusecase "laundrypos/internal/catalog/usecase"
	"laundrypos/internal/domain"
	apperrors "laundrypos/internal/errors"
	shopusecase "laundrypos/internal/shop/usecase"
)

type Document struct {
	Profile      *Profile      `yaml:"profile"`
	ServiceTypes []ServiceType `yaml:"serviceTypes"`
	AddOns       []AddOn       `yaml:"addOns"`
}

type Profile struct {
	BusinessName string `yaml:"businessName"`
	Contact      string `yaml:"contact"`
	OwnerName    string `yaml:"ownerName"`
	WeightUnit   string `yaml:"weightUnit"`
	ShopAddress  string `yaml:"shopAddress"`
	Message      string `yaml:"message"`
}

type ServiceType struct {
	Name      string   `yaml:"name"`
	Price     *float64 `yaml:"price"`
	MinWeight *float64 `yaml:"minWeight"`
}

type AddOn struct {
	Name  string   `yaml:"name"`
	Price *float64 `yaml:"price"`
}

// Summary reports what Apply changed.
type Summary struct {
	ProfileSaved        bool
	ServiceTypesCreated int
	ServiceTypesSkipped int
	AddOnsCreated       int
	AddOnsSkipped       int
}

func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return &doc, nil
}

type ProfileStore interface {
	IsConfigured() bool
	Save(ctx context.Context, in shopusecase.ProfileInput) (domain.ShopProfile, error)
}

type CatalogWriter interface {
	CreateServiceType(ctx context.Context, in catalogusecase.ServiceTypeInput) (*domain.ServiceType, error)
	CreateAddOn(ctx context.Context, in catalogusecase.AddOnInput) (*domain.AddOn, error)
}

type Seeder struct {
	profile ProfileStore
	catalog CatalogWriter
	logger  *zap.Logger
}

func NewSeeder(profile ProfileStore, catalog CatalogWriter, logger *zap.Logger) *Seeder {
	return &Seeder{profile: profile, catalog: catalog, logger: logger}
}

// Apply saves the profile when the shop has not been set up yet and creates
// the catalog entries whose names are not taken. Existing entries are left
// untouched, so applying the same document twice changes nothing.
func (s *Seeder) Apply(ctx context.Context, doc *Document) (Summary, error) {
	var sum Summary

	if doc.Profile != nil && !s.profile.IsConfigured() {
		p := doc.Profile
		_, err := s.profile.Save(ctx, shopusecase.ProfileInput{
			BusinessName: p.BusinessName,
			Contact:      p.Contact,
			OwnerName:    p.OwnerName,
			WeightUnit:   p.WeightUnit,
			ShopAddress:  p.ShopAddress,
			Message:      p.Message,
		})
		if err != nil {
			return sum, fmt.Errorf("seeding shop profile: %w", err)
		}
		sum.ProfileSaved = true
	}

	for _, st := range doc.ServiceTypes {
		_, err := s.catalog.CreateServiceType(ctx, catalogusecase.ServiceTypeInput{
			Name:      st.Name,
			Price:     st.Price,
			MinWeight: st.MinWeight,
		})
		if _, ok := apperrors.IsConflictError(err); ok {
			sum.ServiceTypesSkipped++
			continue
		}
		if err != nil {
			return sum, fmt.Errorf("seeding service type %q: %w", st.Name, err)
		}
		sum.ServiceTypesCreated++
	}

	for _, a := range doc.AddOns {
		_, err := s.catalog.CreateAddOn(ctx, catalogusecase.AddOnInput{Name: a.Name, Price: a.Price})
		if _, ok := apperrors.IsConflictError(err); ok {
			sum.AddOnsSkipped++
			continue
		}
		if err != nil {
			return sum, fmt.Errorf("seeding add-on %q: %w", a.Name, err)
		}
		sum.AddOnsCreated++
	}

	s.logger.Info("seed applied",
		zap.Bool("profileSaved", sum.ProfileSaved),
		zap.Int("serviceTypesCreated", sum.ServiceTypesCreated),
		zap.Int("serviceTypesSkipped", sum.ServiceTypesSkipped),
		zap.Int("addOnsCreated", sum.AddOnsCreated),
		zap.Int("addOnsSkipped", sum.AddOnsSkipped),
	)
	return sum, nil
}
