package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pokedex.dev/pokedex-api/app/domain/common"
	"pokedex.dev/pokedex-api/app/domain/pokemon"
	"pokedex.dev/pokedex-api/app/infrastructure/cache"
	"pokedex.dev/pokedex-api/app/utils/httpclients"
	"pokedex.dev/pokedex-api/app/utils/httpclients/pokeapi"
	"pokedex.dev/pokedex-api/app/utils/logger"
	"pokedex.dev/pokedex-api/config/environment_variables"
)

const (
	descriptionLanguage    = "en"
	descriptionUnavailable = "Description unavailable."
)

type SpeciesUpstream interface {
	GetSpecies(ctx context.Context, name string) (*pokeapi.SpeciesResponse, error)
}

// CatalogClient serves species records from the cache, falling back to PokeAPI.
type CatalogClient struct {
	upstream SpeciesUpstream
	species  *cache.ReadThrough[pokemon.Species]
}

func NewCatalogClient(upstream *pokeapi.Client, cacheService cache.CacheService) *CatalogClient {
	return New(upstream, cacheService, environment_variables.EnvironmentVariables.CatalogCacheTTL())
}

func New(upstream SpeciesUpstream, cacheService cache.CacheService, ttl time.Duration) *CatalogClient {
	return &CatalogClient{
		upstream: upstream,
		species:  cache.NewReadThrough[pokemon.Species](cacheService, ttl),
	}
}

func (c *CatalogClient) FetchSpecies(ctx context.Context, name string) (*pokemon.Species, error) {
	normalized := pokemon.NormalizeName(name)
	if normalized == "" {
		return nil, common.NewInvalidArgumentError("pokemon name must not be empty")
	}

	species, err := c.species.GetWithFallback(ctx, cache.CatalogSpeciesKey(normalized), func(ctx context.Context) (pokemon.Species, error) {
		return c.fetchUpstream(ctx, normalized)
	})
	if err != nil {
		var domainErr *common.Error
		if errors.As(err, &domainErr) {
			return nil, err
		}
		// Only the caller's own cancellation lands here.
		return nil, common.NewUpstreamUnavailableError(fmt.Sprintf("fetching pokemon '%s': %v", normalized, err))
	}
	return &species, nil
}

func (c *CatalogClient) fetchUpstream(ctx context.Context, name string) (pokemon.Species, error) {
	resp, err := c.upstream.GetSpecies(ctx, name)
	if err != nil {
		var statusErr *httpclients.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return pokemon.Species{}, common.NewNotFoundError(fmt.Sprintf("pokemon '%s' not found", name))
		}
		logger.GetLogger().Errorf("pokeapi request for %s failed: %v", name, err)
		return pokemon.Species{}, common.NewUpstreamUnavailableError(fmt.Sprintf("pokeapi request failed: %v", err))
	}

	species, err := normalizeSpecies(resp)
	if err != nil {
		logger.GetLogger().Errorf("pokeapi response for %s rejected: %v", name, err)
		return pokemon.Species{}, common.NewUpstreamUnavailableError(fmt.Sprintf("pokeapi returned an unexpected response: %v", err))
	}
	return species, nil
}

func normalizeSpecies(resp *pokeapi.SpeciesResponse) (pokemon.Species, error) {
	if resp == nil || strings.TrimSpace(resp.Name) == "" {
		return pokemon.Species{}, errors.New("species name missing")
	}

	species := pokemon.Species{
		Name:        pokemon.NormalizeName(resp.Name),
		Description: englishDescription(resp.FlavorTextEntries),
		IsLegendary: resp.IsLegendary,
	}
	if resp.Habitat != nil {
		species.Habitat = resp.Habitat.Name
	}
	return species, nil
}

// englishDescription picks the first English flavor text. PokeAPI text is
// laid out for the game screens, so line and page breaks become spaces.
func englishDescription(entries []pokeapi.FlavorTextEntry) string {
	for _, entry := range entries {
		if entry.Language.Name != descriptionLanguage {
			continue
		}
		text := strings.NewReplacer("\n", " ", "\f", " ", "\r", " ").Replace(entry.FlavorText)
		text = strings.Join(strings.Fields(text), " ")
		if text != "" {
			return text
		}
	}
	return descriptionUnavailable
}
