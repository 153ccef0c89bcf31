package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 5 * time.Minute

// ResourceCache is a JSON read-through cache for id lookups. Entries expire
// after ttl; mutations delete their keys eagerly so the TTL only bounds
// staleness across process boundaries.
type ResourceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResourceCache wraps the given Redis client. A non-positive ttl falls
// back to defaultCacheTTL.
func NewResourceCache(client *redis.Client, ttl time.Duration) *ResourceCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ResourceCache{client: client, ttl: ttl}
}

// Get unmarshals the cached value for key into dest and reports whether the
// key was present.
func (c *ResourceCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

// Set stores value under key with the configured TTL.
func (c *ResourceCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Delete removes the given keys.
func (c *ResourceCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}
