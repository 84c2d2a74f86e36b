package cache

import (
	"context"
	"time"
)

// NoOpCacheService provides a no-operation cache service for graceful degradation
type NoOpCacheService struct{}

func NewNoOpCacheService() *NoOpCacheService {
	return &NoOpCacheService{}
}

// Get always misses
func (n *NoOpCacheService) Get(ctx context.Context, key string) ([]byte, bool) {
	return nil, false
}

// Set is a no-op implementation
func (n *NoOpCacheService) Set(ctx context.Context, key string, value []byte, expiration time.Duration) {
}

// HealthCheck always returns nil (healthy)
func (n *NoOpCacheService) HealthCheck(ctx context.Context) error {
	return nil
}

// Close is a no-op implementation
func (n *NoOpCacheService) Close() error {
	return nil
}
