// Package redis backs the optional resource cache. Connect verifies the
// backend; NewResourceCache layers the JSON read-through semantics on top.
// When caching is disabled by configuration, neither is ever constructed.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nzwalks/walks-api/internal/infrastructure/config"
)

// pingTimeout bounds the startup reachability check.
const pingTimeout = 5 * time.Second

// Connect builds a client for the configured cache backend and fails fast
// when it cannot be reached, so a broken cache surfaces at boot rather than
// as per-request fallbacks.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
