package style

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"pokedex.dev/pokedex-api/app/domain/common"
	"pokedex.dev/pokedex-api/app/domain/pokemon"
	"pokedex.dev/pokedex-api/app/infrastructure/cache"
	"pokedex.dev/pokedex-api/app/utils/httpclients"
	"pokedex.dev/pokedex-api/app/utils/httpclients/funtranslations"
	"pokedex.dev/pokedex-api/app/utils/logger"
	"pokedex.dev/pokedex-api/config/environment_variables"
)

type TranslationUpstream interface {
	Translate(ctx context.Context, translation string, text string) (*funtranslations.TranslateResponse, error)
}

// StyleClient serves rewrites from the cache, falling back to FunTranslations.
type StyleClient struct {
	upstream TranslationUpstream
	results  *cache.ReadThrough[pokemon.StyleResult]
	limiter  *rate.Limiter
}

func NewStyleClient(upstream *funtranslations.Client, cacheService cache.CacheService) *StyleClient {
	env := environment_variables.EnvironmentVariables
	return New(upstream, cacheService, env.StyleCacheTTL(), NewHourlyLimiter(env.StyleRateLimitPerHour()))
}

// New builds a StyleClient. A nil limiter leaves upstream calls unthrottled.
func New(upstream TranslationUpstream, cacheService cache.CacheService, ttl time.Duration, limiter *rate.Limiter) *StyleClient {
	return &StyleClient{
		upstream: upstream,
		results:  cache.NewReadThrough[pokemon.StyleResult](cacheService, ttl),
		limiter:  limiter,
	}
}

// NewHourlyLimiter allows perHour upstream calls per hour with the whole
// hourly allowance available as burst. Zero or less disables throttling.
func NewHourlyLimiter(perHour int) *rate.Limiter {
	if perHour <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(time.Hour/time.Duration(perHour)), perHour)
}

func (c *StyleClient) Rewrite(ctx context.Context, style pokemon.Style, text string) (*pokemon.StyleResult, error) {
	if !style.IsValid() {
		return nil, common.NewInvalidArgumentError(fmt.Sprintf("unknown translation style '%s'", style))
	}
	if strings.TrimSpace(text) == "" {
		return nil, common.NewInvalidArgumentError("text to translate must not be empty")
	}

	result, err := c.results.GetWithFallback(ctx, cache.StyleRewriteKey(style.String(), text), func(ctx context.Context) (pokemon.StyleResult, error) {
		return c.fetchUpstream(ctx, style, text)
	})
	if err != nil {
		var domainErr *common.Error
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, common.NewUpstreamUnavailableError(fmt.Sprintf("translating with %s: %v", style, err))
	}
	return &result, nil
}

func (c *StyleClient) fetchUpstream(ctx context.Context, style pokemon.Style, text string) (pokemon.StyleResult, error) {
	// Fail fast instead of queueing: the caller degrades to the original text.
	if c.limiter != nil && !c.limiter.Allow() {
		return pokemon.StyleResult{}, common.NewUpstreamUnavailableError("funtranslations local rate limit exhausted")
	}

	resp, err := c.upstream.Translate(ctx, style.String(), text)
	if err != nil {
		detail := err.Error()
		var statusErr *httpclients.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusTooManyRequests {
			detail += ": rate limit exceeded"
		}
		logger.GetLogger().Errorf("funtranslations %s request failed: %s", style, detail)
		return pokemon.StyleResult{}, common.NewUpstreamUnavailableError("funtranslations request failed: " + detail)
	}

	if resp == nil {
		return pokemon.StyleResult{}, common.NewUpstreamUnavailableError("funtranslations returned an empty response")
	}
	if resp.Error != nil {
		logger.GetLogger().Errorf("funtranslations %s returned error %d: %s", style, resp.Error.Code, resp.Error.Message)
		return pokemon.StyleResult{}, common.NewUpstreamUnavailableError(fmt.Sprintf("funtranslations returned error %d: %s", resp.Error.Code, resp.Error.Message))
	}
	translated := strings.TrimSpace(resp.Contents.Translated)
	if translated == "" {
		logger.GetLogger().Errorf("funtranslations %s returned no translated text", style)
		return pokemon.StyleResult{}, common.NewUpstreamUnavailableError("funtranslations returned no translated text")
	}

	return pokemon.StyleResult{Text: translated}, nil
}
