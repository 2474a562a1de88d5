package pokemon

import (
	"context"

	"golang.org/x/sync/errgroup"
	"pokedex.dev/pokedex-api-gateway/app/utils/functional"
	"pokedex.dev/pokedex-api-gateway/app/utils/httpclients/pokeapi"
	"pokedex.dev/pokedex-api-gateway/app/utils/logger"
	"pokedex.dev/pokedex-api-gateway/app/utils/stringutils"
)

type ListService struct {
	index    *IndexCache
	upstream Upstream
	config   Config
}

func NewListService(index *IndexCache, upstream Upstream, config Config) *ListService {
	return &ListService{
		index:    index,
		upstream: upstream,
		config:   config,
	}
}

// List runs search, pagination, hydration and type filtering in that order.
// Because the type filter runs on the hydrated page, a page may hold fewer
// than Limit items even when more matches exist further on, and TotalCount
// only reflects the search filter.
func (s *ListService) List(ctx context.Context, query ListQuery) (*ListResult, error) {
	index, err := s.index.GetIndex(ctx)
	if err != nil {
		return nil, err
	}

	filtered := index
	if query.Search != "" {
		filtered = functional.Filter(index, func(entry NameIndexEntry) bool {
			return stringutils.ContainsFold(entry.Name, query.Search)
		})
	}
	totalCount := len(filtered)

	page := functional.Window(filtered, query.Offset, query.Limit)
	records := s.hydrate(ctx, page)

	if query.Type != "" {
		records = functional.Filter(records, func(record *pokeapi.Pokemon) bool {
			return hasType(record, query.Type)
		})
	}

	return &ListResult{
		Pokemon: functional.Map(records, func(record *pokeapi.Pokemon) PokemonSummary {
			return toSummary(record, s.config.PlaceholderImageURL)
		}),
		TotalCount: totalCount,
	}, nil
}

// hydrate fetches full records for the page concurrently. Results keep the
// page order; records that fail to load are dropped.
func (s *ListService) hydrate(ctx context.Context, page []NameIndexEntry) []*pokeapi.Pokemon {
	if len(page) == 0 {
		return []*pokeapi.Pokemon{}
	}

	records := make([]*pokeapi.Pokemon, len(page))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(len(page))
	for i, entry := range page {
		g.Go(func() error {
			record, err := s.upstream.GetPokemonByURL(gctx, entry.ResourceURL)
			if err != nil {
				logger.GetLogger().Warnf("[LIST] dropping %s from page: %v", entry.Name, err)
				return nil
			}
			records[i] = record
			return nil
		})
	}
	_ = g.Wait()

	return functional.Filter(records, func(record *pokeapi.Pokemon) bool { return record != nil })
}
