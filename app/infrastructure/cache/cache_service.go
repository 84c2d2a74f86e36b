package cache

import (
	"context"
	"time"
)

// CacheService is the key/value port shared by the upstream clients.
//
// Implementations must never surface store failures to the request path:
// an unreachable store reads as a miss and writes are dropped.
type CacheService interface {
	// Get returns the stored bytes, or false when the key was never written,
	// has expired, or the store could not be reached.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set overwrites the whole value under key with a time-to-live. Best effort.
	Set(ctx context.Context, key string, value []byte, expiration time.Duration)

	// HealthCheck verifies cache connectivity
	HealthCheck(ctx context.Context) error

	// Close closes the cache connection
	Close() error
}
