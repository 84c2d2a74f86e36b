package infrastructure

import (
	"github.com/google/wire"
	"pokedex.dev/pokedex-api/app/domain/pokemon"
	"pokedex.dev/pokedex-api/app/infrastructure/cache"
	"pokedex.dev/pokedex-api/app/infrastructure/catalog"
	"pokedex.dev/pokedex-api/app/infrastructure/style"
	"pokedex.dev/pokedex-api/app/utils/httpclients/funtranslations"
	"pokedex.dev/pokedex-api/app/utils/httpclients/pokeapi"
)

var InfrastructureProvider = wire.NewSet(
	cache.NewCacheService,
	pokeapi.NewClient,
	funtranslations.NewClient,
	catalog.NewCatalogClient,
	style.NewStyleClient,
	wire.Bind(new(pokemon.SpeciesCatalog), new(*catalog.CatalogClient)),
	wire.Bind(new(pokemon.TextStyler), new(*style.StyleClient)),
)
