package config

import (
	"fmt"
	"strings"
	"time"
)

// TokenBackend selects where the bearer token is persisted.
type TokenBackend string

const (
	// TokenBackendFile stores the token in a file under the user config dir.
	TokenBackendFile TokenBackend = "file"
	// TokenBackendRedis stores the token in Redis (headless deployments).
	TokenBackendRedis TokenBackend = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for TokenBackend.
func (b *TokenBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "file", "redis":
		*b = TokenBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid TokenBackend: %q (valid options: file, redis)", v)
	}
}

// RedisConfig contains connection settings for the Redis token backend.
type RedisConfig struct {
	Addr     string        `env:"ADDR"     envDefault:"localhost:6379"`
	Password string        `env:"PASSWORD" envDefault:""`
	DB       int           `env:"DB"       envDefault:"0"`
	Key      string        `env:"KEY"      envDefault:"inkpost:token"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"0"`
}

// StorageConfig groups all durable token storage configuration.
type StorageConfig struct {
	// Backend determines which token store adapter to use.
	Backend TokenBackend `env:"TOKEN_BACKEND" envDefault:"file"`

	// TokenFile overrides the token file location (file backend).
	// Empty means the conventional path under the user config dir.
	TokenFile string `env:"TOKEN_FILE" envDefault:""`

	// Redis configuration (redis backend).
	Redis RedisConfig `envPrefix:"REDIS_"`
}

// Sanitize applies guardrails to storage configuration values.
func (s *StorageConfig) Sanitize() {
	if s.Backend == "" {
		s.Backend = TokenBackendFile
	}
	if s.Redis.Key == "" {
		s.Redis.Key = "inkpost:token"
	}
	if s.Redis.TokenTTL < 0 {
		s.Redis.TokenTTL = 0
	}
}
