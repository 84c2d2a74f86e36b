package cache

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"
	"pokedex.dev/pokedex-api/app/utils/logger"
	"pokedex.dev/pokedex-api/config/environment_variables"
)

// ValkeyCacheService provides caching functionality using Valkey
type ValkeyCacheService struct {
	client valkey.Client
}

// parseValkeyURL parses a Valkey URL and returns address, password, database, and error
func parseValkeyURL(valkeyURL string) (address, password string, database int, err error) {
	// -1 means no database specified
	database = -1

	// Handle plain address without protocol
	if !strings.Contains(valkeyURL, "://") {
		return valkeyURL, "", -1, nil
	}

	u, err := url.Parse(valkeyURL)
	if err != nil {
		return "", "", -1, fmt.Errorf("invalid URL format: %w", err)
	}

	address = u.Host
	if address == "" {
		return "", "", -1, fmt.Errorf("no host specified in URL")
	}

	if u.User != nil {
		password, _ = u.User.Password()
	}

	// Extract database from path
	if dbStr := strings.TrimPrefix(u.Path, "/"); dbStr != "" {
		if db, parseErr := strconv.Atoi(dbStr); parseErr == nil {
			database = db
		}
	}

	return address, password, database, nil
}

// NewValkeyCacheService creates a new Valkey cache service. Any setup failure
// yields a no-op cache so the API keeps serving straight from the upstreams.
func NewValkeyCacheService() CacheService {
	env := environment_variables.EnvironmentVariables
	valkeyURL := env.CACHE_URL
	if valkeyURL == "" {
		valkeyURL = "valkey://localhost:6379"
	}

	address, password, db, err := parseValkeyURL(valkeyURL)
	if err != nil {
		logger.GetLogger().Errorf("Failed to parse Valkey URL, cache disabled: %v", err)
		return NewNoOpCacheService()
	}

	opts := valkey.ClientOption{
		InitAddress:      []string{address},
		DisableCache:     true,
		ConnWriteTimeout: storeTimeout,
	}
	if password != "" {
		opts.Password = password
	}
	if db != -1 {
		opts.SelectDB = db
	}

	// Override with environment variables if provided
	if env.CACHE_PASSWORD != "" {
		opts.Password = env.CACHE_PASSWORD
	}
	if env.CACHE_DB != "" {
		opts.SelectDB = environment_variables.Int("CACHE_DB", env.CACHE_DB, opts.SelectDB)
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		logger.GetLogger().Errorf("Failed to connect to Valkey, cache disabled: %v", err)
		return NewNoOpCacheService()
	}

	service := &ValkeyCacheService{client: client}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := service.HealthCheck(ctx); err != nil {
		client.Close()
		logger.GetLogger().Errorf("Valkey ping failed, cache disabled: %v", err)
		return NewNoOpCacheService()
	}
	logger.GetLogger().Info("Successfully connected to Valkey")

	return service
}

// Get retrieves a value from Valkey
func (v *ValkeyCacheService) Get(ctx context.Context, key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	val, err := v.client.Do(ctx, v.client.B().Get().Key(key).Build()).AsBytes()
	if err != nil {
		if !valkey.IsValkeyNil(err) {
			logger.GetLogger().Warnf("cache get %s failed: %v", key, err)
		}
		return nil, false
	}
	return val, true
}

// Set stores a value in Valkey with an expiration time
func (v *ValkeyCacheService) Set(ctx context.Context, key string, value []byte, expiration time.Duration) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	// EX takes whole seconds; anything shorter would be rejected by the server.
	seconds := int64(expiration.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	cmd := v.client.B().Set().Key(key).Value(string(value)).ExSeconds(seconds).Build()
	if err := v.client.Do(ctx, cmd).Error(); err != nil {
		logger.GetLogger().Warnf("cache set %s failed: %v", key, err)
	}
}

// HealthCheck verifies Valkey connectivity
func (v *ValkeyCacheService) HealthCheck(ctx context.Context) error {
	return v.client.Do(ctx, v.client.B().Ping().Build()).Error()
}

// Close closes the Valkey connection
func (v *ValkeyCacheService) Close() error {
	v.client.Close()
	return nil
}
