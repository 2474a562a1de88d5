package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pokedex.dev/pokedex-api-gateway/app/infrastructure/cache"
	"pokedex.dev/pokedex-api-gateway/app/interfaces/http"
	"pokedex.dev/pokedex-api-gateway/app/utils/httpclients/pokeapi"
	"pokedex.dev/pokedex-api-gateway/app/utils/logger"
	"pokedex.dev/pokedex-api-gateway/config/environment_variables"
	_ "pokedex.dev/pokedex-api-gateway/docs"
)

type Application struct {
	HttpServer   *http.HttpServer
	CacheService cache.CacheService
}

// Start serves until ctx ends and then releases the cache connection.
func (application *Application) Start(ctx context.Context) error {
	err := application.HttpServer.Run(ctx)
	application.Shutdown()
	return err
}

func (application *Application) Shutdown() {
	if err := application.CacheService.Close(); err != nil {
		logger.GetLogger().Errorf("failed to close cache: %v", err)
	}
}

func init() {
	environment_variables.EnvironmentVariables.LoadFromEnv()
	pokeapi.Init()
}

// @title       Pokédex API Gateway
// @version     1.0
// @description Aggregates and caches PokeAPI data into list and detail views.
// @BasePath    /
func main() {
	application, err := CreateApplication()
	if err != nil {
		logger.GetLogger().Fatalf("failed to build application: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Start(ctx); err != nil {
		logger.GetLogger().Fatalf("server stopped: %v", err)
	}
	logger.GetLogger().Info("server stopped")
}
