package pokemon

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"pokedex.dev/pokedex-api/app/domain/common"
	"pokedex.dev/pokedex-api/app/domain/pokemon"
	"pokedex.dev/pokedex-api/app/interfaces/http/responses"
)

type stubCatalog struct {
	species map[string]pokemon.Species
	err     error
}

func (s *stubCatalog) FetchSpecies(ctx context.Context, name string) (*pokemon.Species, error) {
	if s.err != nil {
		return nil, s.err
	}
	normalized := pokemon.NormalizeName(name)
	if normalized == "" {
		return nil, common.NewInvalidArgumentError("pokemon name must not be empty")
	}
	species, ok := s.species[normalized]
	if !ok {
		return nil, common.NewNotFoundError("pokemon '" + normalized + "' not found")
	}
	return &species, nil
}

type stubStyler struct {
	err error
}

func (s *stubStyler) Rewrite(ctx context.Context, style pokemon.Style, text string) (*pokemon.StyleResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &pokemon.StyleResult{Text: "[" + style.String() + "] " + text}, nil
}

var metapod = pokemon.Species{
	Name:        "metapod",
	Description: "Its shell is as hard as an iron slab.",
	Habitat:     "forest",
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(catalog pokemon.SpeciesCatalog, styler pokemon.TextStyler) *gin.Engine {
	engine := gin.New()
	NewPokemonRoute(pokemon.NewPokemonService(catalog, styler)).RegisterRouter(engine.Group("/v1"))
	return engine
}

func serve(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var body T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestGetPokemon(t *testing.T) {
	t.Parallel()

	engine := newTestRouter(&stubCatalog{species: map[string]pokemon.Species{"metapod": metapod}}, &stubStyler{})

	recorder := serve(engine, "/v1/pokemon/Metapod")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{
		"name": "metapod",
		"description": "Its shell is as hard as an iron slab.",
		"habitat": "forest",
		"is_legendary": false
	}`, recorder.Body.String())
}

func TestGetTranslatedPokemon(t *testing.T) {
	t.Parallel()

	engine := newTestRouter(&stubCatalog{species: map[string]pokemon.Species{"metapod": metapod}}, &stubStyler{})

	recorder := serve(engine, "/v1/pokemon/metapod/translated")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "shakespeare", recorder.Header().Get(TranslationStyleHeader))

	body := decode[PokemonResponse](t, recorder)
	require.Equal(t, "[shakespeare] Its shell is as hard as an iron slab.", body.Description)
	require.Equal(t, "metapod", body.Name)
	require.Equal(t, "forest", body.Habitat)
}

func TestGetTranslatedPokemonDegraded(t *testing.T) {
	t.Parallel()

	engine := newTestRouter(
		&stubCatalog{species: map[string]pokemon.Species{"metapod": metapod}},
		&stubStyler{err: common.NewUpstreamUnavailableError("rate limit exceeded")},
	)

	translated := serve(engine, "/v1/pokemon/metapod/translated")
	plain := serve(engine, "/v1/pokemon/metapod")

	require.Equal(t, http.StatusOK, translated.Code)
	require.Equal(t, "none", translated.Header().Get(TranslationStyleHeader))
	require.JSONEq(t, plain.Body.String(), translated.Body.String())
}

func TestPokemonRouteErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		catalog *stubCatalog
		path    string
		status  int
		code    string
	}{
		{name: "not found", catalog: &stubCatalog{}, path: "/v1/pokemon/missingno", status: http.StatusNotFound, code: common.CodeNotFound},
		{name: "translated not found", catalog: &stubCatalog{}, path: "/v1/pokemon/missingno/translated", status: http.StatusNotFound, code: common.CodeNotFound},
		{name: "catalog outage", catalog: &stubCatalog{err: common.NewUpstreamUnavailableError("pokeapi returned status 502")}, path: "/v1/pokemon/mewtwo", status: http.StatusServiceUnavailable, code: common.CodeUpstreamUnavailable},
		{name: "translated catalog outage", catalog: &stubCatalog{err: common.NewUpstreamUnavailableError("timeout")}, path: "/v1/pokemon/mewtwo/translated", status: http.StatusServiceUnavailable, code: common.CodeUpstreamUnavailable},
		{name: "blank name", catalog: &stubCatalog{}, path: "/v1/pokemon/%20", status: http.StatusBadRequest, code: common.CodeInvalidArgument},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			engine := newTestRouter(tc.catalog, &stubStyler{})

			recorder := serve(engine, tc.path)
			require.Equal(t, tc.status, recorder.Code)

			body := decode[responses.ErrorResponse](t, recorder)
			require.Equal(t, tc.code, body.Code)
			require.NotEmpty(t, body.Error)
		})
	}
}
