package session

import (
	"context"
	"testing"
	"time"

	"barnmonitor-backend/domain"
	"barnmonitor-backend/entities"
	"barnmonitor-backend/internal/testutil"
	"barnmonitor-backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const ttl = 30 * 24 * time.Hour

func newService(t *testing.T) (*sessionService, *gorm.DB, uint) {
	t.Helper()
	db := testutil.NewDB(t)

	farmer := entities.Farmer{Name: "Ana", Email: "ana@example.com", Phone: "555", Password: "hash"}
	require.NoError(t, db.Create(&farmer).Error)

	svc := NewSessionService(NewSessionRepository(db), jwt.NewJWTService("secret"), ttl, zap.NewNop()).(*sessionService)
	return svc, db, farmer.ID
}

func TestStartAndResolve(t *testing.T) {
	svc, _, farmerID := newService(t)
	ctx := context.Background()

	token, expiresAt, err := svc.Start(ctx, farmerID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(ttl), expiresAt, time.Minute)

	got, _, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, farmerID, got)
}

func TestResolveSlidesExpiry(t *testing.T) {
	svc, db, farmerID := newService(t)
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return start }
	token, _, err := svc.Start(ctx, farmerID)
	require.NoError(t, err)

	later := start.Add(20 * 24 * time.Hour)
	svc.now = func() time.Time { return later }
	_, expiresAt, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	assert.True(t, expiresAt.Equal(later.Add(ttl)))

	var session entities.Session
	require.NoError(t, db.First(&session).Error)
	assert.True(t, session.ExpiresAt.Equal(later.Add(ttl)))
}

func TestResolveExpired(t *testing.T) {
	svc, _, farmerID := newService(t)
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return start }
	token, _, err := svc.Start(ctx, farmerID)
	require.NoError(t, err)

	svc.now = func() time.Time { return start.Add(ttl + time.Second) }
	_, _, err = svc.Resolve(ctx, token)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestEndIsIdempotent(t *testing.T) {
	svc, _, farmerID := newService(t)
	ctx := context.Background()

	token, _, err := svc.Start(ctx, farmerID)
	require.NoError(t, err)

	require.NoError(t, svc.End(ctx, token))
	require.NoError(t, svc.End(ctx, token))
	require.NoError(t, svc.End(ctx, ""))
	require.NoError(t, svc.End(ctx, "garbage"))

	_, _, err = svc.Resolve(ctx, token)
	assert.Equal(t, domain.KindNotAuthorized, domain.KindOf(err))
}

func TestResolveUnknownSession(t *testing.T) {
	svc, _, _ := newService(t)

	token, err := jwt.NewJWTService("secret").GenerateSessionToken("no-such-session")
	require.NoError(t, err)

	_, _, err = svc.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStartPurgesExpiredSessions(t *testing.T) {
	svc, db, farmerID := newService(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&entities.Session{ID: "old", ExpiresAt: time.Now().UTC().Add(-time.Hour)}).Error)

	_, _, err := svc.Start(ctx, farmerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), testutil.Count(t, db, &entities.Session{}))
}
