package pokemon

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pokedex.dev/pokedex-api/app/domain/pokemon"
	"pokedex.dev/pokedex-api/app/interfaces/http/responses"
	"pokedex.dev/pokedex-api/app/utils/logger"
)

const TranslationStyleHeader = "X-Translation-Style"

type PokemonRoute struct {
	pokemonService *pokemon.PokemonService
}

func NewPokemonRoute(pokemonService *pokemon.PokemonService) *PokemonRoute {
	return &PokemonRoute{
		pokemonService: pokemonService,
	}
}

func (route *PokemonRoute) RegisterRouter(router gin.IRouter) {
	pokemonRouter := router.Group("/pokemon")
	pokemonRouter.GET("/:name", route.GetPokemon)
	pokemonRouter.GET("/:name/translated", route.GetTranslatedPokemon)
}

type PokemonResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Habitat     string `json:"habitat"`
	IsLegendary bool   `json:"is_legendary"`
}

func newPokemonResponse(species pokemon.Species) PokemonResponse {
	return PokemonResponse{
		Name:        species.Name,
		Description: species.Description,
		Habitat:     species.Habitat,
		IsLegendary: species.IsLegendary,
	}
}

// GetPokemon godoc
// @Summary     Get basic Pokemon information
// @Description Returns name, description, habitat and legendary status for a Pokemon species.
// @Tags        pokemon
// @Produce     json
// @Param       name path     string true "Pokemon species name (case-insensitive)"
// @Success     200  {object} PokemonResponse
// @Failure     400  {object} responses.ErrorResponse
// @Failure     404  {object} responses.ErrorResponse
// @Failure     503  {object} responses.ErrorResponse
// @Router      /v1/pokemon/{name} [get]
func (route *PokemonRoute) GetPokemon(reqCtx *gin.Context) {
	name := reqCtx.Param("name")
	species, err := route.pokemonService.GetPlainInfo(reqCtx.Request.Context(), name)
	if err != nil {
		logger.GetLogger().Infof("pokemon %q lookup failed: %v", name, err)
		responses.AbortWithError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, newPokemonResponse(*species))
}

// GetTranslatedPokemon godoc
// @Summary     Get Pokemon information with a translated description
// @Description Legendary and cave-dwelling Pokemon get a Yoda translation, all others a Shakespeare one.
// @Description When the translation service is unavailable the original description is returned
// @Description and the X-Translation-Style header is "none".
// @Tags        pokemon
// @Produce     json
// @Param       name path     string true "Pokemon species name (case-insensitive)"
// @Success     200  {object} PokemonResponse
// @Header      200  {string} X-Translation-Style "yoda, shakespeare or none"
// @Failure     400  {object} responses.ErrorResponse
// @Failure     404  {object} responses.ErrorResponse
// @Failure     503  {object} responses.ErrorResponse
// @Router      /v1/pokemon/{name}/translated [get]
func (route *PokemonRoute) GetTranslatedPokemon(reqCtx *gin.Context) {
	name := reqCtx.Param("name")
	translated, err := route.pokemonService.GetTranslatedInfo(reqCtx.Request.Context(), name)
	if err != nil {
		logger.GetLogger().Infof("translated pokemon %q lookup failed: %v", name, err)
		responses.AbortWithError(reqCtx, err)
		return
	}

	style := "none"
	if translated.Translated {
		style = translated.Style.String()
	}
	reqCtx.Header(TranslationStyleHeader, style)
	reqCtx.JSON(http.StatusOK, newPokemonResponse(translated.Species))
}
