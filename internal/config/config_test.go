package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/hotel-search/internal/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("API_USERNAME", "svc-user")
	t.Setenv("API_PASSWORD", "svc-pass")
	t.Setenv("UPSTREAM_URL", "https://hotels.example.com")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "svc-user", cfg.API.Username)
	assert.Equal(t, "svc-pass", cfg.API.Password)
	assert.Equal(t, "https://hotels.example.com", cfg.Upstream.URL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, "8080", cfg.Server.Port, "port defaults when unset")
}

func TestLoad_PortOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoad_MissingCredentialsFailsFast(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("API_PASSWORD", "")

	_, err := config.Load()
	require.Error(t, err, "missing credentials must fail at startup, not per request")
}

func TestLoad_InvalidUpstreamURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("UPSTREAM_URL", "not a url")

	_, err := config.Load()
	require.Error(t, err)
}
