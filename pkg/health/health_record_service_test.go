package health

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

func TestCreateHealthRecordByName(t *testing.T) {
	db := testutil.NewDB(t)
	farm := testutil.SeedFarm(t, db, "1")
	svc := NewHealthRecordService(NewHealthRecordRepository(db), animal.NewAnimalRepository(db))
	ctx := context.Background()

	res, err := svc.CreateHealthRecord(ctx, domain.CreateHealthRecordRequest{
		Name:        ptr(farm.Animal.Name),
		CheckupDate: ptr("2024-03-01"),
		Treatment:   ptr("deworming"),
		VetName:     ptr("Dr. K"),
	})
	require.NoError(t, err)
	assert.Equal(t, farm.Animal.ID, res.AnimalID)
	assert.Equal(t, "2024-03-01T00:00:00Z", res.CheckupDate)
	assert.Nil(t, res.Notes)

	_, err = svc.CreateHealthRecord(ctx, domain.CreateHealthRecordRequest{
		Name:        ptr("Nobody"),
		CheckupDate: ptr("2024-03-01"),
		Treatment:   ptr("deworming"),
		VetName:     ptr("Dr. K"),
	})
	assert.ErrorIs(t, err, domain.ErrUnknownAnimalName)

	_, err = svc.CreateHealthRecord(ctx, domain.CreateHealthRecordRequest{
		AnimalID:    ptr(farm.Animal.ID),
		CheckupDate: ptr("first of March"),
		Treatment:   ptr("deworming"),
		VetName:     ptr("Dr. K"),
	})
	assert.Equal(t, domain.KindInvalidFormat, domain.KindOf(err))
}

func TestUpdateHealthRecordRepointsByName(t *testing.T) {
	db := testutil.NewDB(t)
	farm := testutil.SeedFarm(t, db, "1")
	other := testutil.SeedFarm(t, db, "2")
	svc := NewHealthRecordService(NewHealthRecordRepository(db), animal.NewAnimalRepository(db))
	ctx := context.Background()

	patch, err := domain.ParsePatch([]byte(`{"name": "` + other.Animal.Name + `", "notes": "follow up in a week"}`))
	require.NoError(t, err)

	res, err := svc.UpdateHealthRecord(ctx, farm.HealthRecord.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, other.Animal.ID, res.AnimalID)
	assert.Equal(t, "follow up in a week", *res.Notes)
	assert.Equal(t, farm.HealthRecord.Treatment, res.Treatment)

	var stored entities.HealthRecord
	require.NoError(t, db.First(&stored, farm.HealthRecord.ID).Error)
	assert.Equal(t, other.Animal.ID, stored.AnimalID)

	patch, err = domain.ParsePatch([]byte(`{"checkup_date": "soon"}`))
	require.NoError(t, err)
	_, err = svc.UpdateHealthRecord(ctx, farm.HealthRecord.ID, patch)
	assert.Equal(t, domain.KindInvalidFormat, domain.KindOf(err))

	_, err = svc.UpdateHealthRecord(ctx, 999, domain.Patch{})
	assert.ErrorIs(t, err, domain.ErrHealthRecordNotFound)
}

func TestDeleteHealthRecord(t *testing.T) {
	db := testutil.NewDB(t)
	farm := testutil.SeedFarm(t, db, "1")
	svc := NewHealthRecordService(NewHealthRecordRepository(db), animal.NewAnimalRepository(db))
	ctx := context.Background()

	require.NoError(t, svc.DeleteHealthRecord(ctx, farm.HealthRecord.ID))
	assert.ErrorIs(t, svc.DeleteHealthRecord(ctx, farm.HealthRecord.ID), domain.ErrHealthRecordNotFound)
}
