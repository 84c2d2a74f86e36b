package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pokedex.dev/pokedex-api/app/interfaces/http/routes/v1/pokemon"
	"pokedex.dev/pokedex-api/config"
)

type V1Route struct {
	pokemonRoute *pokemon.PokemonRoute
}

func NewV1Route(pokemonRoute *pokemon.PokemonRoute) *V1Route {
	return &V1Route{
		pokemonRoute,
	}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	v1Router.GET("/version", GetVersion)
	v1Route.pokemonRoute.RegisterRouter(v1Router)
}

// GetVersion godoc
// @Summary     Get API build version
// @Description Returns the current build version of the API server.
// @Tags        system
// @Produce     json
// @Success     200 {object} map[string]string "version info"
// @Router      /v1/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": config.Version,
	})
}
