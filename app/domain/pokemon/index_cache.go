package pokemon

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"pokedex.dev/pokedex-api-gateway/app/utils/functional"
	"pokedex.dev/pokedex-api-gateway/app/utils/httpclients/pokeapi"
	"pokedex.dev/pokedex-api-gateway/app/utils/logger"
)

const indexRefreshKey = "pokemon-index"

type indexCacheEntry struct {
	entries   []NameIndexEntry
	fetchedAt time.Time
}

// IndexCache holds the full name index for the lifetime of the process.
// An expired entry is kept and served when a refresh fails.
type IndexCache struct {
	source  IndexFetcher
	ttl     time.Duration
	now     func() time.Time
	mu      sync.RWMutex
	entry   *indexCacheEntry
	refresh singleflight.Group
}

func NewIndexCache(source IndexFetcher, config Config) *IndexCache {
	return NewIndexCacheWithClock(source, config.IndexTTL, time.Now)
}

func NewIndexCacheWithClock(source IndexFetcher, ttl time.Duration, now func() time.Time) *IndexCache {
	if ttl <= 0 {
		ttl = DefaultIndexTTL
	}
	return &IndexCache{
		source: source,
		ttl:    ttl,
		now:    now,
	}
}

// GetIndex returns a copy of the cached index, refreshing it when expired.
func (c *IndexCache) GetIndex(ctx context.Context) ([]NameIndexEntry, error) {
	c.mu.RLock()
	entry := c.entry
	c.mu.RUnlock()

	if entry != nil && c.now().Sub(entry.fetchedAt) < c.ttl {
		logger.GetLogger().Debug("[INDEX] cache hit")
		return slices.Clone(entry.entries), nil
	}

	logger.GetLogger().Info("[INDEX] cache miss or expired, fetching index from upstream")
	// the shared refresh outlives any single caller; each caller still honours its own ctx
	refreshCtx := context.WithoutCancel(ctx)
	result := c.refresh.DoChan(indexRefreshKey, func() (any, error) {
		return c.load(refreshCtx)
	})

	select {
	case <-ctx.Done():
		if stale, ok := c.stale(); ok {
			return stale, nil
		}
		return nil, newError(ErrIndexUnavailable, "Internal Server Error fetching Pokémon data", ctx.Err())
	case res := <-result:
		if res.Err != nil {
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]NameIndexEntry)), nil
	}
}

func (c *IndexCache) load(ctx context.Context) ([]NameIndexEntry, error) {
	startedAt := c.now()
	resources, err := c.source.GetPokemonIndex(ctx)
	if err != nil {
		if stale, ok := c.stale(); ok {
			logger.GetLogger().Warnf("[INDEX] refresh failed, serving stale index of %d entries: %v", len(stale), err)
			return stale, nil
		}
		logger.GetLogger().Errorf("[INDEX] refresh failed with no cached index: %v", err)
		return nil, newError(ErrIndexUnavailable, "Internal Server Error fetching Pokémon data", fmt.Errorf("fetch index: %w", err))
	}

	entries := functional.Map(resources, func(r pokeapi.NamedAPIResource) NameIndexEntry {
		return NameIndexEntry{Name: r.Name, ResourceURL: r.URL}
	})

	c.mu.Lock()
	c.entry = &indexCacheEntry{entries: entries, fetchedAt: startedAt}
	c.mu.Unlock()

	logger.GetLogger().Infof("[INDEX] fetched and cached %d names", len(entries))
	return entries, nil
}

func (c *IndexCache) stale() ([]NameIndexEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.entry == nil {
		return nil, false
	}
	return slices.Clone(c.entry.entries), true
}
