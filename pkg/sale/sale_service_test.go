package sale

import (
	"context"
	"testing"

	"barnmonitor-backend/domain"
	"barnmonitor-backend/entities"
	"barnmonitor-backend/internal/testutil"
	"barnmonitor-backend/pkg/animal"
	"barnmonitor-backend/pkg/production"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

func newService(t *testing.T) (SaleService, *gorm.DB, testutil.Farm) {
	t.Helper()
	db := testutil.NewDB(t)
	farm := testutil.SeedFarm(t, db, "1")
	svc := NewSaleService(NewSaleRepository(db), animal.NewAnimalRepository(db), production.NewProductionRepository(db))
	return svc, db, farm
}

func saleRequest(animalID uint, quantity int) domain.CreateSaleRequest {
	return domain.CreateSaleRequest{
		AnimalID:     ptr(animalID),
		ProductType:  ptr("milk"),
		QuantitySold: ptr(quantity),
		SaleDate:     ptr("2024-02-01"),
		Amount:       ptr(12.5),
	}
}

func TestCreateSaleQuantity(t *testing.T) {
	svc, db, farm := newService(t)
	ctx := context.Background()

	_, err := svc.CreateSale(ctx, saleRequest(farm.Animal.ID, -1))
	assert.Equal(t, domain.KindDomainValidation, domain.KindOf(err))
	assert.Equal(t, int64(1), testutil.Count(t, db, &entities.Sale{}))

	res, err := svc.CreateSale(ctx, saleRequest(farm.Animal.ID, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, res.QuantitySold)
	assert.Equal(t, int64(2), testutil.Count(t, db, &entities.Sale{}))
}

func TestCreateSaleReferences(t *testing.T) {
	svc, _, farm := newService(t)
	ctx := context.Background()

	_, err := svc.CreateSale(ctx, saleRequest(999, 1))
	assert.ErrorIs(t, err, domain.ErrUnknownAnimal)

	req := saleRequest(farm.Animal.ID, 1)
	req.ProductionID = ptr(uint(999))
	_, err = svc.CreateSale(ctx, req)
	assert.ErrorIs(t, err, domain.ErrUnknownProduction)

	req.ProductionID = ptr(farm.Production.ID)
	res, err := svc.CreateSale(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, farm.Production.ID, *res.ProductionID)
}

func TestUpdateSale(t *testing.T) {
	svc, _, farm := newService(t)
	ctx := context.Background()

	patch, err := domain.ParsePatch([]byte(`{"amount": 30, "production_id": null}`))
	require.NoError(t, err)

	res, err := svc.UpdateSale(ctx, farm.Sale.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, 30.0, res.Amount)
	assert.Nil(t, res.ProductionID)
	assert.Equal(t, farm.Sale.QuantitySold, res.QuantitySold)

	patch, err = domain.ParsePatch([]byte(`{"quantity_sold": -4}`))
	require.NoError(t, err)
	_, err = svc.UpdateSale(ctx, farm.Sale.ID, patch)
	assert.Equal(t, domain.KindDomainValidation, domain.KindOf(err))

	patch, err = domain.ParsePatch([]byte(`{"amount": null}`))
	require.NoError(t, err)
	_, err = svc.UpdateSale(ctx, farm.Sale.ID, patch)
	assert.Equal(t, domain.KindDomainValidation, domain.KindOf(err))
}

func TestGetAndDeleteSale(t *testing.T) {
	svc, _, farm := newService(t)
	ctx := context.Background()

	res, err := svc.GetSaleByID(ctx, farm.Sale.ID)
	require.NoError(t, err)
	require.NotNil(t, res.Animal)
	require.NotNil(t, res.Production)
	assert.Equal(t, farm.Animal.Name, res.Animal.Name)

	require.NoError(t, svc.DeleteSale(ctx, farm.Sale.ID))
	assert.ErrorIs(t, svc.DeleteSale(ctx, farm.Sale.ID), domain.ErrSaleNotFound)

	_, err = svc.GetSaleByID(ctx, farm.Sale.ID)
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}
