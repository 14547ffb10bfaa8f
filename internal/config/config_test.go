package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, uint(8080), cfg.Port())
	assert.Equal(t, "data-innerer", cfg.QueryAttr())
	assert.Equal(t, 10, cfg.RetryAttempts())
	assert.Equal(t, 200*time.Millisecond, cfg.RetryInterval())
	assert.Equal(t, 512, cfg.CacheSize())
	assert.False(t, cfg.InvertDirection())
	assert.Equal(t, "localhost:8080", cfg.APIHost())
	assert.Equal(t, "./pages", cfg.PagesDir())
}

func TestLoadFromFile(t *testing.T) {
	path := writeEnv(t, "PORT=9090\nQUERY_ATTR=data-spy\nRETRY_ATTEMPTS=3\nRETRY_INTERVAL_MS=50\nINVERT_DIRECTION=true\nCACHE_SIZE=0\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint(9090), cfg.Port())
	assert.Equal(t, "data-spy", cfg.QueryAttr())
	assert.Equal(t, 3, cfg.RetryAttempts())
	assert.Equal(t, 50*time.Millisecond, cfg.RetryInterval())
	assert.True(t, cfg.InvertDirection())
	assert.Equal(t, 0, cfg.CacheSize())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	path := writeEnv(t, "PORT=9090\n")
	t.Setenv("PORT", "7070")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint(7070), cfg.Port())
}

func TestLoadRejectsBadRetryPolicy(t *testing.T) {
	_, err := Load(writeEnv(t, "RETRY_ATTEMPTS=0\n"))
	assert.ErrorContains(t, err, "RETRY_ATTEMPTS")

	_, err = Load(writeEnv(t, "RETRY_INTERVAL_MS=-5\n"))
	assert.ErrorContains(t, err, "RETRY_INTERVAL_MS")
}
