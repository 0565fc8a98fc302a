// Package cache provides a small JSON cache used for per-organization
// reference data. Backed by Redis when configured, otherwise a no-op.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores JSON-encoded values with a TTL.
type Cache interface {
	// GetJSON unmarshals the cached value into dest. The bool reports a hit.
	GetJSON(ctx context.Context, key string, dest any) (bool, error)

	// SetJSON marshals value and stores it under key for ttl.
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete removes key.
	Delete(ctx context.Context, key string) error
}

// redisCache implements Cache on a Redis client.
type redisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Cache backed by the Redis instance at url.
func NewRedisCache(url string) (Cache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &redisCache{client: redis.NewClient(opts)}, nil
}

// NewRedisCacheFromClient wraps an existing client; used by tests with miniredis.
func NewRedisCacheFromClient(client *redis.Client) Cache {
	return &redisCache{client: client}
}

func (c *redisCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *redisCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// noopCache satisfies Cache when no Redis is configured: always a miss.
type noopCache struct{}

// NewNoop returns the no-op Cache.
func NewNoop() Cache { return noopCache{} }

func (noopCache) GetJSON(context.Context, string, any) (bool, error) { return false, nil }

func (noopCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }

func (noopCache) Delete(context.Context, string) error { return nil }
