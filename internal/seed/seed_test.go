package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"laundrypos/internal/catalog"
	shoprepo "laundrypos/internal/shop/repository"
	shopusecase "laundrypos/internal/shop/usecase"
	"laundrypos/internal/testutil"
)

const sampleSeed = `
profile:
  businessName: Suds & Co
  ownerName: Ana
  contact: "09171234567"
serviceTypes:
  - name: Wash
    price: 100
    minWeight: 5
  - name: Dry
    price: 60
addOns:
  - name: Softener
    price: 20
  - name: Bleach
    price: 0
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	doc, err := Load(writeSeed(t, sampleSeed))
	require.NoError(t, err)

	require.NotNil(t, doc.Profile)
	assert.Equal(t, "Suds & Co", doc.Profile.BusinessName)
	assert.Equal(t, "09171234567", doc.Profile.Contact)
	require.Len(t, doc.ServiceTypes, 2)
	require.NotNil(t, doc.ServiceTypes[0].MinWeight)
	assert.Equal(t, 5.0, *doc.ServiceTypes[0].MinWeight)
	assert.Nil(t, doc.ServiceTypes[1].MinWeight)
	require.Len(t, doc.AddOns, 2)
	require.NotNil(t, doc.AddOns[1].Price)
	assert.Equal(t, 0.0, *doc.AddOns[1].Price)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeSeed(t, "serviceTypes: [unclosed"))
	assert.Error(t, err)
}

func TestApply_IsIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	catalogModule := catalog.NewModule(db, nil, 0, zap.NewNop())
	profile := shopusecase.NewProfileUseCase(shoprepo.NewSQLSettingsRepository(db), zap.NewNop())
	require.NoError(t, profile.Load(ctx))

	seeder := NewSeeder(profile, catalogModule.UseCase, zap.NewNop())
	doc, err := Load(writeSeed(t, sampleSeed))
	require.NoError(t, err)

	sum, err := seeder.Apply(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, Summary{ProfileSaved: true, ServiceTypesCreated: 2, AddOnsCreated: 2}, sum)
	assert.True(t, profile.IsConfigured())

	sum, err = seeder.Apply(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, Summary{ServiceTypesSkipped: 2, AddOnsSkipped: 2}, sum)

	assert.Equal(t, 2, testutil.CountRows(t, db, "service_types"))
	assert.Equal(t, 2, testutil.CountRows(t, db, "addons"))
}

func TestApply_KeepsConfiguredProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	catalogModule := catalog.NewModule(db, nil, 0, zap.NewNop())
	profile := shopusecase.NewProfileUseCase(shoprepo.NewSQLSettingsRepository(db), zap.NewNop())
	_, err := profile.Save(ctx, shopusecase.ProfileInput{BusinessName: "Existing", OwnerName: "Ben"})
	require.NoError(t, err)

	doc, err := Load(writeSeed(t, sampleSeed))
	require.NoError(t, err)

	sum, err := NewSeeder(profile, catalogModule.UseCase, zap.NewNop()).Apply(ctx, doc)
	require.NoError(t, err)

	assert.False(t, sum.ProfileSaved)
	assert.Equal(t, "Existing", profile.Profile().BusinessName)
}

func TestApply_InvalidEntry(t *testing.T) {
	db := testutil.SetupTestDB(t)
	catalogModule := catalog.NewModule(db, nil, 0, zap.NewNop())
	profile := shopusecase.NewProfileUseCase(shoprepo.NewSQLSettingsRepository(db), zap.NewNop())

	doc := &Document{ServiceTypes: []ServiceType{{Name: "Wash"}}}
	_, err := NewSeeder(profile, catalogModule.UseCase, zap.NewNop()).Apply(context.Background(), doc)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `seeding service type "Wash"`)
}
