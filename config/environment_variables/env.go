package environment_variables

import (
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"pokedex.dev/pokedex-api/app/utils/logger"
)

type EnvironmentVariable struct {
	HTTP_PORT string
	LOG_LEVEL string

	POKEAPI_BASE_URL           string
	FUNTRANSLATIONS_BASE_URL   string
	FUNTRANSLATIONS_API_SECRET string
	UPSTREAM_TIMEOUT           string
	STYLE_RATE_LIMIT_PER_HOUR  string

	CATALOG_CACHE_TTL string
	STYLE_CACHE_TTL   string

	CACHE_TYPE     string
	CACHE_URL      string
	CACHE_PASSWORD string
	CACHE_DB       string
	REDIS_URL      string
	REDIS_PASSWORD string
	REDIS_DB       string

	ALLOWED_CORS_HOSTS []string
	PPROF_ADDR         string
}

func (ev *EnvironmentVariable) LoadFromEnv() {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	v := reflect.ValueOf(ev).Elem()
	t := v.Type()
	missing := make([]string, 0)
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		envKey := field.Name
		envValue := os.Getenv(envKey)
		if envValue == "" {
			missing = append(missing, envKey)
			continue
		}
		switch v.Field(i).Kind() {
		case reflect.String:
			v.Field(i).SetString(envValue)
		case reflect.Slice:
			parts := strings.Split(envValue, ",")
			values := make([]string, 0, len(parts))
			for _, part := range parts {
				if trimmed := strings.TrimSpace(part); trimmed != "" {
					values = append(values, trimmed)
				}
			}
			v.Field(i).Set(reflect.ValueOf(values))
		}
	}
	if len(missing) > 0 {
		logger.GetLogger().Debugf("SYSENV not set, using defaults: %s", strings.Join(missing, ", "))
	}
}

// Duration parses a Go duration string, returning fallback when empty or invalid.
func Duration(name string, value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed < 0 {
		logger.GetLogger().Warnf("invalid duration %s=%q, using %s", name, value, fallback)
		return fallback
	}
	return parsed
}

// Int parses a base-10 integer, returning fallback when empty or invalid.
func Int(name string, value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		logger.GetLogger().Warnf("invalid integer %s=%q, using %d", name, value, fallback)
		return fallback
	}
	return parsed
}

func (ev *EnvironmentVariable) PokeAPIBaseURL() string {
	if ev.POKEAPI_BASE_URL == "" {
		return "https://pokeapi.co/api/v2"
	}
	return strings.TrimRight(ev.POKEAPI_BASE_URL, "/")
}

func (ev *EnvironmentVariable) FunTranslationsBaseURL() string {
	if ev.FUNTRANSLATIONS_BASE_URL == "" {
		return "https://api.funtranslations.com/translate"
	}
	return strings.TrimRight(ev.FUNTRANSLATIONS_BASE_URL, "/")
}

func (ev *EnvironmentVariable) UpstreamTimeout() time.Duration {
	return Duration("UPSTREAM_TIMEOUT", ev.UPSTREAM_TIMEOUT, 5*time.Second)
}

func (ev *EnvironmentVariable) CatalogCacheTTL() time.Duration {
	return Duration("CATALOG_CACHE_TTL", ev.CATALOG_CACHE_TTL, 24*time.Hour)
}

func (ev *EnvironmentVariable) StyleCacheTTL() time.Duration {
	return Duration("STYLE_CACHE_TTL", ev.STYLE_CACHE_TTL, 24*time.Hour)
}

func (ev *EnvironmentVariable) StyleRateLimitPerHour() int {
	return Int("STYLE_RATE_LIMIT_PER_HOUR", ev.STYLE_RATE_LIMIT_PER_HOUR, 0)
}

func (ev *EnvironmentVariable) HttpPort() int {
	return Int("HTTP_PORT", ev.HTTP_PORT, 8080)
}

// Singleton
var EnvironmentVariables = EnvironmentVariable{}
