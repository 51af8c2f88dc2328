package cache

import (
	"context"
	"time"
)

// Store is the key-value surface the rotation and quote-of-the-day logic
// needs: SET with TTL, GET, DEL. Backed by Redis in production and by an
// in-memory map in tests and local development.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}
