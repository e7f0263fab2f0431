package feed

import (
	"context"
	"testing"

	"barnmonitor-backend/domain"
	"barnmonitor-backend/internal/testutil"
	"barnmonitor-backend/pkg/animal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCreateFeed(t *testing.T) {
	db := testutil.NewDB(t)
	farm := testutil.SeedFarm(t, db, "1")
	svc := NewFeedService(NewFeedRepository(db), animal.NewAnimalRepository(db))
	ctx := context.Background()

	tests := []struct {
		name string
		req  domain.CreateFeedRequest
		ok   bool
		err  error
		kind domain.ErrorKind
	}{
		{
			name: "valid",
			req:  domain.CreateFeedRequest{AnimalID: ptr(farm.Animal.ID), FeedType: ptr("grain"), Quantity: ptr(0), Date: ptr("2024-02-01")},
			ok:   true,
		},
		{
			name: "negative quantity",
			req:  domain.CreateFeedRequest{AnimalID: ptr(farm.Animal.ID), FeedType: ptr("grain"), Quantity: ptr(-1), Date: ptr("2024-02-01")},
			kind: domain.KindDomainValidation,
		},
		{
			name: "bad date",
			req:  domain.CreateFeedRequest{AnimalID: ptr(farm.Animal.ID), FeedType: ptr("grain"), Quantity: ptr(1), Date: ptr("02/01/2024")},
			kind: domain.KindDomainValidation,
		},
		{
			name: "unknown animal",
			req:  domain.CreateFeedRequest{AnimalID: ptr(uint(999)), FeedType: ptr("grain"), Quantity: ptr(1), Date: ptr("2024-02-01")},
			err:  domain.ErrUnknownAnimal,
			kind: domain.KindDomainValidation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := svc.CreateFeed(ctx, tc.req)
			if tc.ok {
				require.NoError(t, err)
				assert.NotZero(t, res.ID)
				assert.Equal(t, *tc.req.FeedType, res.FeedType)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.kind, domain.KindOf(err))
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			}
		})
	}
}

func TestGetAndDeleteFeed(t *testing.T) {
	db := testutil.NewDB(t)
	farm := testutil.SeedFarm(t, db, "1")
	svc := NewFeedService(NewFeedRepository(db), animal.NewAnimalRepository(db))
	ctx := context.Background()

	res, err := svc.GetFeedByID(ctx, farm.Feed.ID)
	require.NoError(t, err)
	assert.Equal(t, "hay", res.FeedType)

	require.NoError(t, svc.DeleteFeed(ctx, farm.Feed.ID))
	assert.ErrorIs(t, svc.DeleteFeed(ctx, farm.Feed.ID), domain.ErrFeedNotFound)

	_, err = svc.GetFeedByID(ctx, farm.Feed.ID)
	assert.ErrorIs(t, err, domain.ErrFeedNotFound)
}
