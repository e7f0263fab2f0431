package domain

import (
	"testing"

	"barnmonitor-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePatch(t *testing.T) {
	p, err := ParsePatch([]byte(`{"breed": null, "age": 4}`))
	require.NoError(t, err)
	assert.True(t, p.Has("breed"))
	assert.True(t, p.IsNull("breed"))
	assert.False(t, p.IsNull("age"))
	assert.False(t, p.Has("name"))

	p, err = ParsePatch([]byte(`null`))
	require.NoError(t, err)
	assert.Empty(t, p)

	_, err = ParsePatch([]byte(`[1, 2]`))
	assert.Error(t, err)
}

func TestApplyAnimalPatchLeavesAbsentKeys(t *testing.T) {
	animal := entities.Animal{
		Name:      "Bessie",
		Breed:     ptr("Jersey"),
		Age:       ptr(3),
		BirthDate: "2021-04-01",
	}

	p, err := ParsePatch([]byte(`{"health_status": "healthy"}`))
	require.NoError(t, err)
	require.Nil(t, ApplyAnimalPatch(&animal, p))

	assert.Equal(t, "Bessie", animal.Name)
	assert.Equal(t, "Jersey", *animal.Breed)
	assert.Equal(t, 3, *animal.Age)
	assert.Equal(t, "2021-04-01", animal.BirthDate)
	assert.Equal(t, "healthy", *animal.HealthStatus)
}

func TestApplyAnimalPatchNulls(t *testing.T) {
	animal := entities.Animal{Name: "Bessie", Breed: ptr("Jersey"), BirthDate: "2021-04-01"}

	p, err := ParsePatch([]byte(`{"breed": null}`))
	require.NoError(t, err)
	require.Nil(t, ApplyAnimalPatch(&animal, p))
	assert.Nil(t, animal.Breed)

	p, err = ParsePatch([]byte(`{"name": null}`))
	require.NoError(t, err)
	if verr := ApplyAnimalPatch(&animal, p); assert.NotNil(t, verr) {
		assert.Equal(t, "name", verr.Field)
	}
}

func TestApplySalePatchWrongType(t *testing.T) {
	sale := entities.Sale{QuantitySold: 2}

	p, err := ParsePatch([]byte(`{"quantity_sold": "two"}`))
	require.NoError(t, err)
	if verr := ApplySalePatch(&sale, p); assert.NotNil(t, verr) {
		assert.Equal(t, "quantity_sold", verr.Field)
	}
	assert.Equal(t, 2, sale.QuantitySold)
}

func TestApplyAnimalTypePatch(t *testing.T) {
	animalType := entities.AnimalType{TypeName: "Cow", Description: ptr("dairy")}

	p, err := ParsePatch([]byte(`{"description": "beef and dairy"}`))
	require.NoError(t, err)
	require.Nil(t, ApplyAnimalTypePatch(&animalType, p))
	assert.Equal(t, "Cow", animalType.TypeName)
	assert.Equal(t, "beef and dairy", *animalType.Description)
}
