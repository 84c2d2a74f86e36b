package cache

import (
	"strings"

	"pokedex.dev/pokedex-api/app/utils/logger"
	"pokedex.dev/pokedex-api/config/environment_variables"
)

// NewCacheService creates a cache service based on configuration
func NewCacheService() CacheService {
	cacheType := strings.ToLower(environment_variables.EnvironmentVariables.CACHE_TYPE)

	switch cacheType {
	case "", "redis":
		return NewRedisCacheService()
	case "valkey":
		return NewValkeyCacheService()
	case "memory":
		return NewMemoryCacheService()
	case "none":
		return NewNoOpCacheService()
	default:
		logger.GetLogger().Warnf("unknown CACHE_TYPE %q, falling back to redis", cacheType)
		return NewRedisCacheService()
	}
}
