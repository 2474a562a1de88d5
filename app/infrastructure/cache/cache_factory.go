package cache

import (
	"strings"

	"pokedex.dev/pokedex-api-gateway/app/utils/logger"
	"pokedex.dev/pokedex-api-gateway/config/environment_variables"
)

// NewCacheService creates a cache service based on configuration
func NewCacheService() CacheService {
	cacheType := strings.ToLower(environment_variables.EnvironmentVariables.CACHE_TYPE)

	switch cacheType {
	case "redis":
		return NewRedisCacheService()
	case "valkey":
		return NewValkeyCacheService()
	case "memory":
		return NewMemoryCacheService()
	case "", "none", "noop":
		return &NoOpCacheService{}
	default:
		logger.GetLogger().Warnf("unknown CACHE_TYPE %q, record cache disabled", cacheType)
		return &NoOpCacheService{}
	}
}
