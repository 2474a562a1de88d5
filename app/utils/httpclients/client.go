package httpclients

import (
	"fmt"

	"pokedex.dev/pokedex-api-gateway/app/utils/logger"
	"pokedex.dev/pokedex-api-gateway/config"
	"pokedex.dev/pokedex-api-gateway/config/environment_variables"
	"resty.dev/v3"
)

const defaultTimeout = "10s"

// NewClient builds a resty client shared by every call to one upstream.
// Requests are single attempts: retries stay disabled so callers own fallback policy.
func NewClient(name string) *resty.Client {
	timeout := environment_variables.Duration(environment_variables.EnvironmentVariables.POKEAPI_TIMEOUT, 0)
	if timeout == 0 {
		timeout = environment_variables.Duration(defaultTimeout, 0)
	}
	return resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetLogger(logger.GetLogger()).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("pokedex-api-gateway/%s (%s)", config.Version, name))
}
