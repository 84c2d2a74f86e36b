package cache

import (
	"context"
	"time"

	boolcache "github.com/bool64/cache"
)

// MemoryCacheService keeps entries in process memory. Entries do not survive
// a restart and are not shared between replicas.
type MemoryCacheService struct {
	store *boolcache.ShardedMap
}

func NewMemoryCacheService() *MemoryCacheService {
	return &MemoryCacheService{
		store: boolcache.NewShardedMap(func(cfg *boolcache.Config) {
			cfg.Name = "pokedex"
			cfg.TimeToLive = 24 * time.Hour
		}),
	}
}

func (m *MemoryCacheService) Get(ctx context.Context, key string) ([]byte, bool) {
	// Read reports expired entries as an error alongside the stale value.
	value, err := m.store.Read(ctx, []byte(key))
	if err != nil {
		return nil, false
	}
	data, ok := value.([]byte)
	if !ok {
		return nil, false
	}
	return data, true
}

func (m *MemoryCacheService) Set(ctx context.Context, key string, value []byte, expiration time.Duration) {
	stored := make([]byte, len(value))
	copy(stored, value)
	_ = m.store.Write(boolcache.WithTTL(ctx, expiration, true), []byte(key), stored)
}

func (m *MemoryCacheService) HealthCheck(ctx context.Context) error {
	return nil
}

func (m *MemoryCacheService) Close() error {
	return nil
}
