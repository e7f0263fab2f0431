package config

import (
	"context"
	"testing"
	"time"

	migration "barnmonitor-backend/cmd/database/migrate"
	"barnmonitor-backend/entities"
	"barnmonitor-backend/internal/testutil"
	"barnmonitor-backend/internal/utils"
	"barnmonitor-backend/pkg/farmer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		dbType string
		name   string
	}{
		{"postgres", "postgres"},
		{"postgresql", "postgres"},
		{"mysql", "mysql"},
		{"mariadb", "mysql"},
		{"sqlite", "sqlite"},
		{"sqlserver", "sqlserver"},
		{"mssql", "sqlserver"},
	}

	for _, tc := range tests {
		t.Run(tc.dbType, func(t *testing.T) {
			d, err := Dialector(&utils.Config{DBType: tc.dbType, DBName: "farm", DBUser: "u", DBHost: "h", DBPort: "1"})
			require.NoError(t, err)
			assert.Equal(t, tc.name, d.Name())
		})
	}

	_, err := Dialector(&utils.Config{DBType: "oracle"})
	assert.Error(t, err)
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, gormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, gormLogLevel("warn"))
	assert.Equal(t, gormlogger.Silent, gormLogLevel("info"))
}

func TestConnectPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("barnmonitor"),
		postgres.WithUsername("barn"),
		postgres.WithPassword("barn"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	db, err := ConnectDB(&utils.Config{
		DBType:     "postgres",
		DBHost:     host,
		DBPort:     port.Port(),
		DBUser:     "barn",
		DBPassword: "barn",
		DBName:     "barnmonitor",
		DBMaxConns: 4,
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseDB(db) })

	require.NoError(t, migration.Migrate(db))

	farm := testutil.SeedFarm(t, db, "pg")
	require.NoError(t, farmer.NewFarmerRepository(db).DeleteFarmer(ctx, farm.Farmer.ID))

	assert.Equal(t, int64(0), testutil.Count(t, db, &entities.Animal{}))
	assert.Equal(t, int64(0), testutil.Count(t, db, &entities.Sale{}))
	assert.Equal(t, int64(1), testutil.Count(t, db, &entities.AnimalType{}))
}
