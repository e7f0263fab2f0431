package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigYamlAndEnv(t *testing.T) {
	path := writeConfig(t, `
APP_PORT: "8080"
DB_TYPE: sqlite
DB_NAME: barn.db
SESSION_SECRET: from-yaml
COOKIE_SECURE: false
`)
	t.Setenv("SESSION_SECRET", "from-env")
	t.Setenv("RATE_LIMIT_MAX", "25")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "from-env", cfg.SessionSecret)
	assert.Equal(t, 25, cfg.RateLimitMax)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, 30, cfg.SessionTTLDays)

	assert.Equal(t, "from-env", GetConfig("SESSION_SECRET"))
	assert.Equal(t, "false", GetConfig("COOKIE_SECURE"))
	assert.Equal(t, "", GetConfig("UNKNOWN"))
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_NAME", "barn.db")
	t.Setenv("SESSION_SECRET", "s")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "5555", cfg.AppPort)
}

func TestLoadConfigBadInteger(t *testing.T) {
	path := writeConfig(t, "DB_TYPE: sqlite\nDB_NAME: x\nSESSION_SECRET: s\n")
	t.Setenv("SESSION_TTL_DAYS", "thirty")

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "SESSION_TTL_DAYS")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.ErrorContains(t, cfg.Validate(), "SESSION_SECRET")

	cfg.SessionSecret = "s"
	assert.ErrorContains(t, cfg.Validate(), "DB_HOST")

	cfg.DBType = "oracle"
	assert.ErrorContains(t, cfg.Validate(), "unsupported")

	cfg.DBType = "sqlite"
	cfg.DBName = "barn.db"
	assert.NoError(t, cfg.Validate())
}
