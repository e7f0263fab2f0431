package cascade

import (
	"testing"
	"time"

	"barnmonitor-backend/entities"
	"barnmonitor-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDeleteFarmerRemovesEveryDescendant(t *testing.T) {
	db := testutil.NewDB(t)
	farm := testutil.SeedFarm(t, db, "1")
	other := testutil.SeedFarm(t, db, "2")

	require.NoError(t, db.Create(&entities.Session{ID: "s1", FarmerID: &farm.Farmer.ID, ExpiresAt: time.Now().Add(time.Hour)}).Error)

	err := db.Transaction(func(tx *gorm.DB) error {
		return DeleteFarmer(tx, farm.Farmer.ID)
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), testutil.Count(t, db, &entities.Farmer{}))
	assert.Equal(t, int64(1), testutil.Count(t, db, &entities.Animal{}))
	assert.Equal(t, int64(1), testutil.Count(t, db, &entities.Feed{}))
	assert.Equal(t, int64(1), testutil.Count(t, db, &entities.HealthRecord{}))
	assert.Equal(t, int64(1), testutil.Count(t, db, &entities.Production{}))
	assert.Equal(t, int64(1), testutil.Count(t, db, &entities.Sale{}))
	assert.Equal(t, int64(0), testutil.Count(t, db, &entities.Session{}))

	// animal types are not owned by the farmer
	assert.Equal(t, int64(2), testutil.Count(t, db, &entities.AnimalType{}))

	var remaining entities.Animal
	require.NoError(t, db.First(&remaining).Error)
	assert.Equal(t, other.Animal.ID, remaining.ID)
}

func TestDeleteProductionsRemovesLinkedSales(t *testing.T) {
	db := testutil.NewDB(t)
	farm := testutil.SeedFarm(t, db, "1")

	unlinked := &entities.Sale{AnimalID: farm.Animal.ID, ProductType: "calf", QuantitySold: 1, SaleDate: "2024-02-01", Amount: 300}
	require.NoError(t, db.Create(unlinked).Error)

	err := db.Transaction(func(tx *gorm.DB) error {
		return DeleteProductions(tx, farm.Production.ID)
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), testutil.Count(t, db, &entities.Production{}))
	assert.Equal(t, int64(1), testutil.Count(t, db, &entities.Sale{}))
	assert.Equal(t, int64(1), testutil.Count(t, db, &entities.Animal{}))
}

func TestDeleteAnimalTypeDetachesAnimals(t *testing.T) {
	db := testutil.NewDB(t)
	farm := testutil.SeedFarm(t, db, "1")

	err := db.Transaction(func(tx *gorm.DB) error {
		return DeleteAnimalType(tx, farm.AnimalType.ID)
	})
	require.NoError(t, err)

	var animal entities.Animal
	require.NoError(t, db.First(&animal, farm.Animal.ID).Error)
	assert.Nil(t, animal.AnimalTypeID)
	assert.Equal(t, int64(0), testutil.Count(t, db, &entities.AnimalType{}))
}

func TestDeleteAnimalsNoIDs(t *testing.T) {
	db := testutil.NewDB(t)
	assert.NoError(t, DeleteAnimals(db))
}
