package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"pokedex.dev/pokedex-api/app/utils/logger"
	"pokedex.dev/pokedex-api/config/environment_variables"
)

const storeTimeout = 500 * time.Millisecond

// RedisCacheService provides caching functionality using Redis
type RedisCacheService struct {
	client *redis.Client
}

// NewRedisCacheService creates a new Redis cache service
func NewRedisCacheService() *RedisCacheService {
	env := environment_variables.EnvironmentVariables

	// Parse Redis URL and options
	redisURL := env.CACHE_URL
	if redisURL == "" {
		redisURL = env.REDIS_URL
	}
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.GetLogger().Error(fmt.Sprintf("Failed to parse Redis URL: %v", err))
		// Fallback to default configuration
		opts = &redis.Options{
			Addr: "localhost:6379",
		}
	}

	// Override with environment variables if provided
	if env.CACHE_PASSWORD != "" {
		opts.Password = env.CACHE_PASSWORD
	} else if env.REDIS_PASSWORD != "" {
		opts.Password = env.REDIS_PASSWORD
	}
	if env.CACHE_DB != "" {
		opts.DB = environment_variables.Int("CACHE_DB", env.CACHE_DB, opts.DB)
	} else if env.REDIS_DB != "" {
		opts.DB = environment_variables.Int("REDIS_DB", env.REDIS_DB, opts.DB)
	}

	service := NewRedisCacheServiceWithOptions(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := service.HealthCheck(ctx); err != nil {
		logger.GetLogger().Error(fmt.Sprintf("Failed to connect to Redis, requests will bypass the cache: %v", err))
	} else {
		logger.GetLogger().Info("Successfully connected to Redis")
	}

	return service
}

// NewRedisCacheServiceWithOptions tightens the store timeouts so a slow or
// unreachable Redis costs a request at most a few hundred milliseconds.
func NewRedisCacheServiceWithOptions(opts *redis.Options) *RedisCacheService {
	opts.DialTimeout = storeTimeout
	opts.ReadTimeout = storeTimeout
	opts.WriteTimeout = storeTimeout
	opts.MaxRetries = -1
	return &RedisCacheService{
		client: redis.NewClient(opts),
	}
}

// Get retrieves a value from Redis
func (r *RedisCacheService) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.GetLogger().Warnf("cache get %s failed: %v", key, err)
		}
		return nil, false
	}
	return val, true
}

// Set stores a value in Redis with an expiration time
func (r *RedisCacheService) Set(ctx context.Context, key string, value []byte, expiration time.Duration) {
	if err := r.client.Set(ctx, key, value, expiration).Err(); err != nil {
		logger.GetLogger().Warnf("cache set %s failed: %v", key, err)
	}
}

// Close closes the Redis connection
func (r *RedisCacheService) Close() error {
	return r.client.Close()
}

// HealthCheck verifies Redis connectivity
func (r *RedisCacheService) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
