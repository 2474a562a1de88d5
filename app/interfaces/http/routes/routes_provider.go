package routes

import (
	"github.com/google/wire"
	v1 "pokedex.dev/pokedex-api-gateway/app/interfaces/http/routes/v1"
	"pokedex.dev/pokedex-api-gateway/app/interfaces/http/routes/v1/admin"
	"pokedex.dev/pokedex-api-gateway/app/interfaces/http/routes/v1/mcp"
	mcp_impl "pokedex.dev/pokedex-api-gateway/app/interfaces/http/routes/v1/mcp/mcp_impl"
	"pokedex.dev/pokedex-api-gateway/app/interfaces/http/routes/v1/pokemon"
)

var RouteProvider = wire.NewSet(
	pokemon.NewPokemonRoute,
	v1.NewHealthAPI,
	admin.NewCacheRoute,
	mcp_impl.NewPokedexMCP,
	mcp.NewMCPAPI,
	v1.NewV1Route,
)
