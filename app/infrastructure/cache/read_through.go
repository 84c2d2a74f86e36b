package cache

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/singleflight"
	"pokedex.dev/pokedex-api/app/utils/logger"
)

// ReadThrough stores JSON encoded values of T in a CacheService and fills
// misses from a fallback. Concurrent misses on the same key share one
// fallback call. Only successful fallback results are written.
type ReadThrough[T any] struct {
	cache      CacheService
	expiration time.Duration
	group      singleflight.Group
}

func NewReadThrough[T any](cacheService CacheService, expiration time.Duration) *ReadThrough[T] {
	return &ReadThrough[T]{
		cache:      cacheService,
		expiration: expiration,
	}
}

// Get returns the cached value under key, if present and decodable.
func (r *ReadThrough[T]) Get(ctx context.Context, key string) (T, bool) {
	var value T
	data, ok := r.cache.Get(ctx, key)
	if !ok {
		return value, false
	}
	if err := json.Unmarshal(data, &value); err != nil {
		logger.GetLogger().Warnf("cache entry %s is not decodable, treating as miss: %v", key, err)
		var zero T
		return zero, false
	}
	return value, true
}

// Set encodes and stores value under key.
func (r *ReadThrough[T]) Set(ctx context.Context, key string, value T) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.GetLogger().Warnf("cache entry %s is not encodable: %v", key, err)
		return
	}
	r.cache.Set(ctx, key, data, r.expiration)
}

// GetWithFallback retrieves a value from the cache, or executes fallback if not found.
// Errors from fallback are returned unchanged and nothing is cached.
func (r *ReadThrough[T]) GetWithFallback(ctx context.Context, key string, fallback func(ctx context.Context) (T, error)) (T, error) {
	if value, ok := r.Get(ctx, key); ok {
		return value, nil
	}

	// The shared call must not die with whichever caller started it; each
	// caller still stops waiting when its own context ends.
	sharedCtx := context.WithoutCancel(ctx)
	resultCh := r.group.DoChan(key, func() (any, error) {
		value, err := fallback(sharedCtx)
		if err != nil {
			return value, err
		}
		r.Set(sharedCtx, key, value)
		return value, nil
	})

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case result := <-resultCh:
		if result.Err != nil {
			var zero T
			return zero, result.Err
		}
		return result.Val.(T), nil
	}
}
