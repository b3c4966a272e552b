package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inkpost/inkpost-go/internal/ports"
)

// Ensure compile-time conformance to the port.
var _ ports.TokenStore = (*RedisStore)(nil)

const defaultRedisKey = "inkpost:token"

// RedisStore persists the token in Redis for headless or shared
// deployments where the client has no stable filesystem. An optional TTL
// bounds how long a token outlives its last write; zero means no expiry,
// matching the remote API's own token lifetime as the only bound.
type RedisStore struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore using the default key and no TTL.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client, key: defaultRedisKey}
}

// NewRedisStoreWithOptions creates a RedisStore with a custom key and TTL.
func NewRedisStoreWithOptions(client redis.UniversalClient, key string, ttl time.Duration) *RedisStore {
	if key == "" {
		key = defaultRedisKey
	}
	return &RedisStore{client: client, key: key, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	if err := s.client.Set(ctx, s.key, token, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set token: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ports.ErrNoToken
		}
		return "", fmt.Errorf("redis get token: %w", err)
	}
	if token == "" {
		return "", ports.ErrNoToken
	}
	return token, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis delete token: %w", err)
	}
	return nil
}
