package cache

import (
	"context"
	"time"
)

// Cache is a best-effort read cache. Get reports whether the key was
// present; misses are not errors.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
