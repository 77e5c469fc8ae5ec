// Package store provides the key-value persistence layer for encoded OHLC
// aggregates.
//
// Each instrument code maps to exactly one opaque payload; writes overwrite
// unconditionally (last-write-wins, no merge, no versioning). The Redis
// implementation relies on Redis's native single-key atomicity, which is all
// the consistency the service promises.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ErrNotFound reports that no value is stored under the requested code.
// It is a valid "no data" result, distinct from a storage failure.
var ErrNotFound = errors.New("stock code not found")

// Store abstracts the key-value backend holding encoded aggregates.
type Store interface {
	// Save writes the payload as the sole value for the code, overwriting
	// any prior value.
	Save(ctx context.Context, code string, payload string) error

	// Load returns the payload stored under the code, or ErrNotFound.
	Load(ctx context.Context, code string) (string, error)

	// Close releases the backend connection.
	Close() error
}

// RedisStore persists encoded aggregates in Redis, one SET/GET per code.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(redisURL string, password string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	if password != "" {
		opt.Password = password
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	log.Info().Str("addr", opt.Addr).Msg("connected to redis")

	return &RedisStore{client: client}, nil
}

// Save implements Store. Values never expire; an aggregate stays until the
// next batch overwrites it.
func (s *RedisStore) Save(ctx context.Context, code string, payload string) error {
	if err := s.client.Set(ctx, code, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis SET %s failed: %w", code, err)
	}
	return nil
}

// Load implements Store, mapping redis.Nil onto ErrNotFound so callers can
// distinguish absence from failure.
func (s *RedisStore) Load(ctx context.Context, code string) (string, error) {
	payload, err := s.client.Get(ctx, code).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, code)
	}
	if err != nil {
		return "", fmt.Errorf("redis GET %s failed: %w", code, err)
	}
	return payload, nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
