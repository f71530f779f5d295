package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the duration of the test; t.Setenv restores them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadServerConfigDefaults(t *testing.T) {
	unsetEnv(t, "MORTGAGE_ADDR", "MORTGAGE_REDIS_ADDR", "MORTGAGE_LOG_LEVEL", "MORTGAGE_CACHE_TTL", "MORTGAGE_TRUSTED_PROXIES")

	cfg, err := LoadServerConfig("does-not-exist.env")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Empty(t, cfg.TrustedProxies)
}

func TestLoadServerConfigFromEnvFile(t *testing.T) {
	unsetEnv(t, "MORTGAGE_ADDR", "MORTGAGE_REDIS_ADDR", "MORTGAGE_CACHE_TTL", "MORTGAGE_TRUSTED_PROXIES")
	t.Setenv("MORTGAGE_LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), ".env")
	content := "MORTGAGE_ADDR=:9090\nMORTGAGE_REDIS_ADDR=localhost:6379\nMORTGAGE_LOG_LEVEL=debug\nMORTGAGE_CACHE_TTL=5m\nMORTGAGE_TRUSTED_PROXIES=10.0.0.0/8, 192.168.1.5 ,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadServerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	// already set in the process, so the file does not override it
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.5"}, cfg.TrustedProxies)
}

func TestLoadServerConfigBadTTL(t *testing.T) {
	t.Setenv("MORTGAGE_CACHE_TTL", "soon")
	_, err := LoadServerConfig()
	assert.Error(t, err)
}
