package environment_variables

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("POKEAPI_BASE_URL", "http://pokeapi.local/api/v2/")
	t.Setenv("CACHE_TYPE", "memory")
	t.Setenv("ALLOWED_CORS_HOSTS", "https://a.example, ,https://b.example")
	t.Setenv("STYLE_CACHE_TTL", "90m")

	var ev EnvironmentVariable
	ev.LoadFromEnv()

	require.Equal(t, "memory", ev.CACHE_TYPE)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, ev.ALLOWED_CORS_HOSTS)
	require.Equal(t, "http://pokeapi.local/api/v2", ev.PokeAPIBaseURL())
	require.Equal(t, 90*time.Minute, ev.StyleCacheTTL())
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	var ev EnvironmentVariable
	require.Equal(t, "https://pokeapi.co/api/v2", ev.PokeAPIBaseURL())
	require.Equal(t, "https://api.funtranslations.com/translate", ev.FunTranslationsBaseURL())
	require.Equal(t, 5*time.Second, ev.UpstreamTimeout())
	require.Equal(t, 24*time.Hour, ev.CatalogCacheTTL())
	require.Equal(t, 24*time.Hour, ev.StyleCacheTTL())
	require.Equal(t, 0, ev.StyleRateLimitPerHour())
	require.Equal(t, 8080, ev.HttpPort())
}

func TestTypedParsersFallBack(t *testing.T) {
	t.Parallel()

	require.Equal(t, time.Minute, Duration("X", "soon", time.Minute))
	require.Equal(t, time.Minute, Duration("X", "-5s", time.Minute))
	require.Equal(t, 2*time.Second, Duration("X", "2s", time.Minute))
	require.Equal(t, 7, Int("X", "many", 7))
	require.Equal(t, 12, Int("X", "12", 7))
}
