package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseConfig(t *testing.T) AppConfig {
	t.Helper()
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()
	return cfg
}

func TestConfigDefaults(t *testing.T) {
	cfg := parseConfig(t)

	assert.Equal(t, "http://localhost:5001/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, TokenBackendFile, cfg.Storage.Backend)
	assert.Empty(t, cfg.Storage.TokenFile)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, "inkpost:token", cfg.Storage.Redis.Key)
	assert.Equal(t, time.Duration(0), cfg.Storage.Redis.TokenTTL)
}

func TestConfigEnvOverrides(t *testing.T) {
	t.Setenv("INKPOST_API_URL", "https://blog.example.com/api")
	t.Setenv("INKPOST_API_TIMEOUT", "5s")
	t.Setenv("INKPOST_TOKEN_BACKEND", "redis")
	t.Setenv("INKPOST_REDIS_ADDR", "redis.internal:6380")
	t.Setenv("INKPOST_REDIS_DB", "3")
	t.Setenv("INKPOST_REDIS_KEY", "blog:session")
	t.Setenv("INKPOST_REDIS_TOKEN_TTL", "1h")

	cfg := parseConfig(t)

	assert.Equal(t, "https://blog.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, TokenBackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "redis.internal:6380", cfg.Storage.Redis.Addr)
	assert.Equal(t, 3, cfg.Storage.Redis.DB)
	assert.Equal(t, "blog:session", cfg.Storage.Redis.Key)
	assert.Equal(t, time.Hour, cfg.Storage.Redis.TokenTTL)
}

func TestConfigRejectsInvalidBackend(t *testing.T) {
	t.Setenv("INKPOST_TOKEN_BACKEND", "s3")

	var cfg AppConfig
	err := env.Parse(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid TokenBackend")
}

func TestTokenBackendUnmarshalText(t *testing.T) {
	var b TokenBackend

	require.NoError(t, b.UnmarshalText([]byte("FILE")))
	assert.Equal(t, TokenBackendFile, b)

	require.NoError(t, b.UnmarshalText([]byte("Redis")))
	assert.Equal(t, TokenBackendRedis, b)

	assert.Error(t, b.UnmarshalText([]byte("memory")))
}

func TestSanitizeAppliesGuardrails(t *testing.T) {
	cfg := AppConfig{}
	cfg.API.Timeout = -time.Second
	cfg.Storage.Redis.TokenTTL = -time.Minute
	cfg.Sanitize()

	assert.Equal(t, time.Duration(0), cfg.API.Timeout)
	assert.Equal(t, TokenBackendFile, cfg.Storage.Backend)
	assert.Equal(t, "inkpost:token", cfg.Storage.Redis.Key)
	assert.Equal(t, time.Duration(0), cfg.Storage.Redis.TokenTTL)
}
