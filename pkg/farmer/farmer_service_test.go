package farmer

import (
	"context"
	"testing"

	"barnmonitor-backend/domain"
	"barnmonitor-backend/entities"
	"barnmonitor-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFarmerByIDEmbedsAnimals(t *testing.T) {
	db := testutil.NewDB(t)
	farm := testutil.SeedFarm(t, db, "1")
	svc := NewFarmerService(NewFarmerRepository(db))

	res, err := svc.GetFarmerByID(context.Background(), farm.Farmer.ID)
	require.NoError(t, err)
	require.Len(t, res.Animals, 1)
	assert.Equal(t, farm.Animal.Name, res.Animals[0].Name)

	_, err = svc.GetFarmerByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrFarmerNotFound)
}

func TestDeleteFarmerCascades(t *testing.T) {
	db := testutil.NewDB(t)
	farm := testutil.SeedFarm(t, db, "1")
	svc := NewFarmerService(NewFarmerRepository(db))
	ctx := context.Background()

	require.NoError(t, svc.DeleteFarmer(ctx, farm.Farmer.ID))

	for _, model := range []any{&entities.Farmer{}, &entities.Animal{}, &entities.Feed{}, &entities.HealthRecord{}, &entities.Production{}, &entities.Sale{}} {
		assert.Equal(t, int64(0), testutil.Count(t, db, model))
	}

	assert.ErrorIs(t, svc.DeleteFarmer(ctx, farm.Farmer.ID), domain.ErrFarmerNotFound)
}

func TestGetFarmers(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedFarm(t, db, "1")
	testutil.SeedFarm(t, db, "2")
	svc := NewFarmerService(NewFarmerRepository(db))

	res, err := svc.GetFarmers(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Less(t, res[0].ID, res[1].ID)
}
