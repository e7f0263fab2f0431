package domain

import (
	"encoding/json"
	"testing"
	"time"

	"barnmonitor-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFarmerResponseOmitsPassword(t *testing.T) {
	farmer := entities.Farmer{ID: 1, Name: "Ana", Email: "ana@example.com", Phone: "555", Password: "hash"}

	raw, err := json.Marshal(NewFarmerResponse(&farmer))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "hash")
}

func TestAnimalDetailResponse(t *testing.T) {
	farmerID := uint(7)
	animal := entities.Animal{
		ID:        3,
		Name:      "Bessie",
		BirthDate: "2021-04-01",
		FarmerID:  &farmerID,
		Farmer:    &entities.Farmer{ID: 7, Name: "Ana", Password: "hash"},
		HealthRecords: []*entities.HealthRecord{
			{ID: 1, AnimalID: 3, CheckupDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Treatment: "vaccine", VetName: "Dr. K"},
		},
	}

	res := NewAnimalDetailResponse(&animal)
	require.NotNil(t, res.Farmer)
	assert.Equal(t, "Ana", res.Farmer.Name)
	assert.Nil(t, res.AnimalType)
	require.Len(t, res.HealthRecords, 1)
	assert.Equal(t, "2024-01-02T00:00:00Z", res.HealthRecords[0].CheckupDate)

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "Bessie", decoded["name"])
	assert.Equal(t, []any{}, decoded["sales"])
	assert.Equal(t, []any{}, decoded["feed_records"])
	assert.NotContains(t, string(raw), "hash")
}

func TestProductionDetailResponse(t *testing.T) {
	production := entities.Production{
		ID:       2,
		AnimalID: 3,
		Animal:   &entities.Animal{ID: 3, Name: "Bessie"},
		Sales:    []*entities.Sale{{ID: 9, AnimalID: 3, Amount: 10}},
	}

	res := NewProductionDetailResponse(&production)
	require.NotNil(t, res.Animal)
	assert.Equal(t, "Bessie", res.Animal.Name)
	require.Len(t, res.Sales, 1)
	assert.Equal(t, uint(9), res.Sales[0].ID)
}
