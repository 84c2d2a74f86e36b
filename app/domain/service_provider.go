package domain

import (
	"github.com/google/wire"
	"pokedex.dev/pokedex-api/app/domain/healthcheck"
	"pokedex.dev/pokedex-api/app/domain/pokemon"
)

var ServiceProvider = wire.NewSet(
	pokemon.NewPokemonService,
	healthcheck.NewService,
)
