package routes

import (
	"github.com/google/wire"
	v1 "pokedex.dev/pokedex-api/app/interfaces/http/routes/v1"
	"pokedex.dev/pokedex-api/app/interfaces/http/routes/v1/pokemon"
)

var RouteProvider = wire.NewSet(
	pokemon.NewPokemonRoute,
	v1.NewV1Route,
)
