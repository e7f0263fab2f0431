package testutil

import (
	"testing"
	"time"

	"barnmonitor-backend/entities"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Farm is a farmer with one animal carrying one row of every record kind.
type Farm struct {
	Farmer       *entities.Farmer
	AnimalType   *entities.AnimalType
	Animal       *entities.Animal
	Feed         *entities.Feed
	HealthRecord *entities.HealthRecord
	Production   *entities.Production
	Sale         *entities.Sale
}

// SeedFarm inserts a Farm. suffix keeps unique columns apart when a test
// seeds more than one.
func SeedFarm(t *testing.T, db *gorm.DB, suffix string) Farm {
	t.Helper()

	farmer := &entities.Farmer{Name: "Ana", Email: "ana" + suffix + "@example.com", Phone: "555-0100", Password: "hash"}
	require.NoError(t, db.Create(farmer).Error)

	animalType := &entities.AnimalType{TypeName: "Cow" + suffix}
	require.NoError(t, db.Create(animalType).Error)

	animal := &entities.Animal{
		Name:         "Bessie" + suffix,
		BirthDate:    "2021-04-01",
		FarmerID:     &farmer.ID,
		AnimalTypeID: &animalType.ID,
	}
	require.NoError(t, db.Create(animal).Error)

	feed := &entities.Feed{AnimalID: animal.ID, FeedType: "hay", Quantity: 5, Date: "2024-01-01"}
	require.NoError(t, db.Create(feed).Error)

	record := &entities.HealthRecord{AnimalID: animal.ID, CheckupDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Treatment: "vaccine", VetName: "Dr. K"}
	require.NoError(t, db.Create(record).Error)

	production := &entities.Production{AnimalID: animal.ID, ProductType: "milk", Quantity: 20, ProductionDate: "2024-01-03"}
	require.NoError(t, db.Create(production).Error)

	sale := &entities.Sale{AnimalID: animal.ID, ProductType: "milk", QuantitySold: 10, SaleDate: "2024-01-04", Amount: 25.5, ProductionID: &production.ID}
	require.NoError(t, db.Create(sale).Error)

	return Farm{
		Farmer:       farmer,
		AnimalType:   animalType,
		Animal:       animal,
		Feed:         feed,
		HealthRecord: record,
		Production:   production,
		Sale:         sale,
	}
}

// Count returns the number of rows in model's table.
func Count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
