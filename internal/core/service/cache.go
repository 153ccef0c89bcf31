package service

import "context"

// ResourceCache abstracts the read-through cache (Redis) used for id lookups.
// Get reports whether the key was present; a nil cache disables caching.
type ResourceCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}
