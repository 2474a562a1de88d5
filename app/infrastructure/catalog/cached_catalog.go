package catalog

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"pokedex.dev/pokedex-api-gateway/app/domain/pokemon"
	"pokedex.dev/pokedex-api-gateway/app/infrastructure/cache"
	"pokedex.dev/pokedex-api-gateway/app/utils/httpclients/pokeapi"
	"pokedex.dev/pokedex-api-gateway/app/utils/logger"
	"pokedex.dev/pokedex-api-gateway/app/utils/stringutils"
	"pokedex.dev/pokedex-api-gateway/config/environment_variables"
)

const defaultRecordTTL = time.Hour

// CachedCatalog keeps hydrated upstream records in the shared cache service.
// The name index is passed straight through: its lifecycle belongs to pokemon.IndexCache.
type CachedCatalog struct {
	upstream pokemon.Upstream
	cache    cache.CacheService
	ttl      time.Duration
}

func NewCachedCatalog(client *pokeapi.Client, cacheService cache.CacheService) *CachedCatalog {
	return NewCachedCatalogWithTTL(
		client,
		cacheService,
		environment_variables.Duration(environment_variables.EnvironmentVariables.RECORD_CACHE_TTL, defaultRecordTTL),
	)
}

func NewCachedCatalogWithTTL(upstream pokemon.Upstream, cacheService cache.CacheService, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{
		upstream: upstream,
		cache:    cacheService,
		ttl:      ttl,
	}
}

// sanitizeKeyPart encodes dynamic key parts to be Redis-key safe
func sanitizeKeyPart(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }

func (c *CachedCatalog) GetPokemonIndex(ctx context.Context) ([]pokeapi.NamedAPIResource, error) {
	return c.upstream.GetPokemonIndex(ctx)
}

// pokemonKey addresses a pokemon record by the reference it was requested with:
// a name from detail lookups, or the numeric id parsed from list entry URLs.
func pokemonKey(ref string) string {
	return fmt.Sprintf(cache.PokemonRecordKeyPattern, sanitizeKeyPart(ref))
}

func (c *CachedCatalog) GetPokemon(ctx context.Context, nameOrID string) (*pokeapi.Pokemon, error) {
	return load(ctx, c, pokemonKey(nameOrID), func() (*pokeapi.Pokemon, error) {
		return c.upstream.GetPokemon(ctx, nameOrID)
	})
}

func (c *CachedCatalog) GetPokemonByURL(ctx context.Context, pokemonURL string) (*pokeapi.Pokemon, error) {
	ref := pokemonURL
	if id, ok := stringutils.LastPathSegmentInt(pokemonURL); ok {
		ref = strconv.Itoa(id)
	}
	return load(ctx, c, pokemonKey(ref), func() (*pokeapi.Pokemon, error) {
		return c.upstream.GetPokemonByURL(ctx, pokemonURL)
	})
}

func (c *CachedCatalog) GetSpecies(ctx context.Context, speciesURL string) (*pokeapi.Species, error) {
	key := fmt.Sprintf(cache.SpeciesRecordKeyPattern, sanitizeKeyPart(speciesURL))
	return load(ctx, c, key, func() (*pokeapi.Species, error) {
		return c.upstream.GetSpecies(ctx, speciesURL)
	})
}

func (c *CachedCatalog) GetEvolutionChain(ctx context.Context, chainURL string) (*pokeapi.EvolutionChain, error) {
	key := fmt.Sprintf(cache.EvolutionChainKeyPattern, sanitizeKeyPart(chainURL))
	return load(ctx, c, key, func() (*pokeapi.EvolutionChain, error) {
		return c.upstream.GetEvolutionChain(ctx, chainURL)
	})
}

// InvalidatePokemon drops the cached record for nameOrID together with the
// aliases it is known by. A record cached only under an alias the caller did
// not name is left to expire.
func (c *CachedCatalog) InvalidatePokemon(ctx context.Context, nameOrID string) error {
	refs := []string{nameOrID}
	var cached pokeapi.Pokemon
	if err := c.cache.Get(ctx, pokemonKey(nameOrID), &cached); err == nil {
		refs = append(refs, strconv.Itoa(cached.ID), cached.Name)
	}

	for _, ref := range refs {
		if ref == "" {
			continue
		}
		if err := c.cache.Delete(ctx, pokemonKey(ref)); err != nil {
			return fmt.Errorf("failed to invalidate pokemon %s: %w", ref, err)
		}
	}
	return nil
}

// InvalidateAll drops every cached upstream record.
func (c *CachedCatalog) InvalidateAll(ctx context.Context) error {
	return c.cache.DeletePattern(ctx, cache.PokeAPIRecordsKeyPattern)
}

// load reads through the cache. Upstream failures are returned unchanged and
// never stored. When the cache itself fails the upstream is still asked at most once.
func load[T any](ctx context.Context, c *CachedCatalog, key string, fetch func() (*T, error)) (*T, error) {
	var (
		upstreamErr error
		fetched     *T
		result      T
	)
	err := c.cache.GetWithFallback(ctx, key, &result, func() (any, error) {
		record, err := fetch()
		if err != nil {
			upstreamErr = err
			return nil, err
		}
		fetched = record
		return record, nil
	}, c.ttl)
	if upstreamErr != nil {
		return nil, upstreamErr
	}
	if err != nil {
		if fetched != nil {
			logger.GetLogger().Warnf("[CATALOG] cache read-through failed for %s, serving fetched record: %v", key, err)
			return fetched, nil
		}
		logger.GetLogger().Warnf("[CATALOG] cache read-through failed for %s, fetching directly: %v", key, err)
		return fetch()
	}
	return &result, nil
}
