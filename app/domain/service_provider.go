package domain

import (
	"github.com/google/wire"
	"pokedex.dev/pokedex-api-gateway/app/domain/healthcheck"
	"pokedex.dev/pokedex-api-gateway/app/domain/pokemon"
)

var ServiceProvider = wire.NewSet(
	pokemon.NewConfig,
	pokemon.NewIndexCache,
	pokemon.NewListService,
	pokemon.NewDetailService,
	healthcheck.NewService,
)
