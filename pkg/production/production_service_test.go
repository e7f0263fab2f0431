package production

import (
	"context"
	"testing"

	"barnmonitor-backend/domain"
	"barnmonitor-backend/entities"
	"barnmonitor-backend/internal/testutil"
	"barnmonitor-backend/pkg/animal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newService(t *testing.T) (ProductionService, testutil.Farm, func(model any) int64) {
	t.Helper()
	db := testutil.NewDB(t)
	farm := testutil.SeedFarm(t, db, "1")
	count := func(model any) int64 { return testutil.Count(t, db, model) }
	return NewProductionService(NewProductionRepository(db), animal.NewAnimalRepository(db)), farm, count
}

func TestCreateProduction(t *testing.T) {
	svc, farm, _ := newService(t)
	ctx := context.Background()

	res, err := svc.CreateProduction(ctx, domain.CreateProductionRequest{
		AnimalID:       ptr(farm.Animal.ID),
		ProductType:    ptr("wool"),
		Quantity:       ptr(3),
		ProductionDate: ptr("2024-05-05"),
	})
	require.NoError(t, err)
	assert.Equal(t, "wool", res.ProductType)

	_, err = svc.CreateProduction(ctx, domain.CreateProductionRequest{
		AnimalID:       ptr(uint(999)),
		ProductType:    ptr("wool"),
		Quantity:       ptr(3),
		ProductionDate: ptr("2024-05-05"),
	})
	assert.ErrorIs(t, err, domain.ErrUnknownAnimal)
}

func TestProductionDetailsAndPatch(t *testing.T) {
	svc, farm, _ := newService(t)
	ctx := context.Background()

	detail, err := svc.GetProductionByID(ctx, farm.Production.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Animal)
	assert.Equal(t, farm.Animal.ID, detail.Animal.ID)
	require.Len(t, detail.Sales, 1)

	patch, err := domain.ParsePatch([]byte(`{"quantity": 42}`))
	require.NoError(t, err)
	res, err := svc.UpdateProduction(ctx, farm.Production.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, 42, res.Quantity)
	assert.Equal(t, farm.Production.ProductType, res.ProductType)

	_, err = svc.UpdateProduction(ctx, 999, patch)
	assert.ErrorIs(t, err, domain.ErrProductionNotFound)
}

func TestDeleteProductionRemovesSales(t *testing.T) {
	svc, farm, count := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteProduction(ctx, farm.Production.ID))
	assert.Equal(t, int64(0), count(&entities.Production{}))
	assert.Equal(t, int64(0), count(&entities.Sale{}))
	assert.Equal(t, int64(1), count(&entities.Animal{}))

	assert.ErrorIs(t, svc.DeleteProduction(ctx, farm.Production.ID), domain.ErrProductionNotFound)
}
