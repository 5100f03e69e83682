package config_test

import (
	"testing"

	"github.com/phrazzld/taskmgr-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests mutate the process environment, so none of them run in parallel.

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TASKMGR_DATABASE_URL", "postgres://localhost:5432/taskmgr_test")
	t.Setenv("TASKMGR_AUTH_JWT_SECRET", "config-test-signing-key-0000000000000001")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, "taskmgr-api", cfg.Auth.Issuer)
	assert.Equal(t, "taskmgr-clients", cfg.Auth.Audience)
}

func TestLoadEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TASKMGR_SERVER_PORT", "9090")
	t.Setenv("TASKMGR_SERVER_LOG_LEVEL", "debug")
	t.Setenv("TASKMGR_AUTH_TOKEN_LIFETIME_MINUTES", "15")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 15, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoadValidation(t *testing.T) {
	t.Run("missing database URL", func(t *testing.T) {
		t.Setenv("TASKMGR_DATABASE_URL", "")
		t.Setenv("TASKMGR_AUTH_JWT_SECRET", "config-test-signing-key-0000000000000001")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("short jwt secret", func(t *testing.T) {
		t.Setenv("TASKMGR_DATABASE_URL", "postgres://localhost:5432/taskmgr_test")
		t.Setenv("TASKMGR_AUTH_JWT_SECRET", "too-short")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("bad log level", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TASKMGR_SERVER_LOG_LEVEL", "loud")

		_, err := config.Load()
		assert.Error(t, err)
	})
}
