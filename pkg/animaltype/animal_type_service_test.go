package animaltype

import (
	"context"
	"testing"

	"barnmonitor-backend/domain"
	"barnmonitor-backend/entities"
	"barnmonitor-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCreateAnimalTypeUniqueName(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewAnimalTypeService(NewAnimalTypeRepository(db))
	ctx := context.Background()

	res, err := svc.CreateAnimalType(ctx, domain.CreateAnimalTypeRequest{TypeName: ptr("Goat")})
	require.NoError(t, err)
	assert.Equal(t, "Goat", res.TypeName)

	_, err = svc.CreateAnimalType(ctx, domain.CreateAnimalTypeRequest{TypeName: ptr("Goat")})
	assert.ErrorIs(t, err, domain.ErrAnimalTypeNameTaken)

	_, err = svc.CreateAnimalType(ctx, domain.CreateAnimalTypeRequest{TypeName: ptr("")})
	assert.Equal(t, domain.KindDomainValidation, domain.KindOf(err))
}

func TestUpdateAnimalTypeKeepsOwnName(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewAnimalTypeService(NewAnimalTypeRepository(db))
	ctx := context.Background()

	created, err := svc.CreateAnimalType(ctx, domain.CreateAnimalTypeRequest{TypeName: ptr("Goat")})
	require.NoError(t, err)

	patch, err := domain.ParsePatch([]byte(`{"type_name": "Goat", "description": "small ruminant"}`))
	require.NoError(t, err)

	res, err := svc.UpdateAnimalType(ctx, created.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, "small ruminant", *res.Description)
}

func TestDeleteAnimalType(t *testing.T) {
	db := testutil.NewDB(t)
	farm := testutil.SeedFarm(t, db, "1")
	svc := NewAnimalTypeService(NewAnimalTypeRepository(db))
	ctx := context.Background()

	require.NoError(t, svc.DeleteAnimalType(ctx, farm.AnimalType.ID))

	var animal entities.Animal
	require.NoError(t, db.First(&animal, farm.Animal.ID).Error)
	assert.Nil(t, animal.AnimalTypeID)

	assert.ErrorIs(t, svc.DeleteAnimalType(ctx, farm.AnimalType.ID), domain.ErrAnimalTypeNotFound)
	_, err := svc.GetAnimalTypeByID(ctx, farm.AnimalType.ID)
	assert.ErrorIs(t, err, domain.ErrAnimalTypeNotFound)
}
