package main

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

func TestRunReturnsConfigErrors(t *testing.T) {
	path := writeConfig(t, "APP_PORT: \"5555\"\nCORS_ORIGIN: \"http://localhost:3000\"\n")

	err := run(path)
	assert.ErrorContains(t, err, "SESSION_SECRET")
}

func TestRunReturnsListenErrorsAfterStartup(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `APP_PORT: "not-a-port"
CORS_ORIGIN: "http://localhost:3000"
RATE_LIMIT_MAX: 0
METRICS_ENABLED: false
LOG_LEVEL: "error"
DB_TYPE: "sqlite"
DB_NAME: "`+filepath.ToSlash(filepath.Join(dir, "barn.db"))+`"
SESSION_SECRET: "secret"
SESSION_TTL_DAYS: 30
`)

	err := run(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-port")

	_, statErr := os.Stat(filepath.Join(dir, "barn.db"))
	assert.NoError(t, statErr)
}
