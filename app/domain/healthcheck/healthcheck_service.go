package healthcheck

import (
	"context"
	"time"

	"pokedex.dev/pokedex-api-gateway/app/domain/pokemon"
	"pokedex.dev/pokedex-api-gateway/app/infrastructure/cache"
	"pokedex.dev/pokedex-api-gateway/app/utils/logger"
)

const (
	StatusOk       = "ok"
	StatusDegraded = "degraded"
	CacheOk        = "ok"
	CacheDisabled  = "disabled"
	CacheError     = "error"
)

const cacheCheckTimeout = 2 * time.Second

type Report struct {
	Status string                 `json:"status"`
	Cache  string                 `json:"cache"`
	Index  *pokemon.IndexSnapshot `json:"index"`
}

type HealthcheckService struct {
	cacheService cache.CacheService
	indexCache   *pokemon.IndexCache
}

func NewService(cacheService cache.CacheService, indexCache *pokemon.IndexCache) *HealthcheckService {
	return &HealthcheckService{
		cacheService: cacheService,
		indexCache:   indexCache,
	}
}

// Check never refreshes the name index; a cold index reports as null.
func (hs *HealthcheckService) Check(ctx context.Context) Report {
	report := Report{Status: StatusOk, Cache: CacheOk}

	if _, disabled := hs.cacheService.(*cache.NoOpCacheService); disabled {
		report.Cache = CacheDisabled
	} else {
		checkCtx, cancel := context.WithTimeout(ctx, cacheCheckTimeout)
		defer cancel()
		if err := hs.cacheService.HealthCheck(checkCtx); err != nil {
			logger.GetLogger().Warnf("healthcheck: record cache unreachable: %v", err)
			report.Cache = CacheError
			report.Status = StatusDegraded
		}
	}

	if snapshot, ok := hs.indexCache.Snapshot(); ok {
		report.Index = &snapshot
	}
	return report
}
