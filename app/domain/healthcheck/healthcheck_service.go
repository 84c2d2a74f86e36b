package healthcheck

import (
	"context"
	"sync"
	"time"

	"github.com/mileusna/crontab"
	"pokedex.dev/pokedex-api/app/infrastructure/cache"
	"pokedex.dev/pokedex-api/app/utils/httpclients/pokeapi"
	"pokedex.dev/pokedex-api/app/utils/logger"
)

const probeTimeout = 5 * time.Second

type DependencyStatus string

const (
	StatusUnknown DependencyStatus = "unknown"
	StatusUp      DependencyStatus = "up"
	StatusDown    DependencyStatus = "down"
)

type Snapshot struct {
	Cache     DependencyStatus `json:"cache"`
	Catalog   DependencyStatus `json:"catalog"`
	CheckedAt time.Time        `json:"checked_at"`
}

type CatalogPinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckCrontabService probes the cache and the catalog upstream. The
// style upstream is never probed; it has an hourly request quota.
type HealthcheckCrontabService struct {
	cacheService cache.CacheService
	catalog      CatalogPinger

	mu       sync.RWMutex
	snapshot Snapshot
}

func NewService(cacheService cache.CacheService, catalog *pokeapi.Client) *HealthcheckCrontabService {
	return New(cacheService, catalog)
}

func New(cacheService cache.CacheService, catalog CatalogPinger) *HealthcheckCrontabService {
	return &HealthcheckCrontabService{
		cacheService: cacheService,
		catalog:      catalog,
		snapshot: Snapshot{
			Cache:   StatusUnknown,
			Catalog: StatusUnknown,
		},
	}
}

func (hs *HealthcheckCrontabService) Start(ctx context.Context, ctab *crontab.Crontab) error {
	hs.CheckDependencies(ctx)
	return ctab.AddJob("*/2 * * * *", func() {
		hs.CheckDependencies(ctx)
	})
}

func (hs *HealthcheckCrontabService) CheckDependencies(ctx context.Context) Snapshot {
	next := Snapshot{
		Cache:     hs.probe(ctx, "cache", hs.cacheService.HealthCheck),
		Catalog:   hs.probe(ctx, "catalog", hs.catalog.Ping),
		CheckedAt: time.Now().UTC(),
	}

	hs.mu.Lock()
	previous := hs.snapshot
	hs.snapshot = next
	hs.mu.Unlock()

	if previous.Cache != next.Cache || previous.Catalog != next.Catalog {
		logger.GetLogger().Infof("dependency status changed: cache=%s catalog=%s", next.Cache, next.Catalog)
	}
	return next
}

func (hs *HealthcheckCrontabService) Snapshot() Snapshot {
	hs.mu.RLock()
	defer hs.mu.RUnlock()
	return hs.snapshot
}

func (hs *HealthcheckCrontabService) probe(ctx context.Context, name string, check func(context.Context) error) DependencyStatus {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if err := check(probeCtx); err != nil {
		logger.GetLogger().Warnf("%s health check failed: %v", name, err)
		return StatusDown
	}
	return StatusUp
}
