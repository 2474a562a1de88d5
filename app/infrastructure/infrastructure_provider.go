package infrastructure

import (
	"github.com/google/wire"
	"pokedex.dev/pokedex-api-gateway/app/domain/pokemon"
	"pokedex.dev/pokedex-api-gateway/app/infrastructure/cache"
	"pokedex.dev/pokedex-api-gateway/app/infrastructure/catalog"
	"pokedex.dev/pokedex-api-gateway/app/utils/httpclients/pokeapi"
)

var InfrastructureProvider = wire.NewSet(
	pokeapi.NewClient,
	cache.NewCacheService,
	catalog.NewCachedCatalog,
	wire.Bind(new(pokemon.Upstream), new(*catalog.CachedCatalog)),
	wire.Bind(new(pokemon.IndexFetcher), new(*catalog.CachedCatalog)),
)
