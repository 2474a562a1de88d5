package pokemon

import (
	"context"
	"errors"
	"strings"

	"pokedex.dev/pokedex-api-gateway/app/utils/httpclients/pokeapi"
	"pokedex.dev/pokedex-api-gateway/app/utils/logger"
)

type DetailService struct {
	upstream Upstream
	config   Config
}

func NewDetailService(upstream Upstream, config Config) *DetailService {
	return &DetailService{
		upstream: upstream,
		config:   config,
	}
}

// speciesResult is the outcome of the best-effort species fetch. When ok is
// false, description already holds the fallback text.
type speciesResult struct {
	description       string
	evolutionChainURL string
	ok                bool
}

// evolutionResult carries nil stages when the chain could not be loaded.
type evolutionResult struct {
	stages []EvolutionStage
	ok     bool
}

// Detail composes the core record, description and evolution chain for one pokemon.
// Only the core record is required; species and chain failures degrade to fallbacks.
func (s *DetailService) Detail(ctx context.Context, nameOrID string) (*PokemonDetail, error) {
	nameOrID = strings.ToLower(strings.TrimSpace(nameOrID))
	if nameOrID == "" {
		return nil, newError(ErrInvalidRequest, "Pokémon name or ID is required", nil)
	}

	record, err := s.upstream.GetPokemon(ctx, nameOrID)
	if err != nil {
		if pokeapi.IsNotFound(err) {
			logger.GetLogger().Debugf("[DETAIL] %s not found upstream", nameOrID)
		} else {
			logger.GetLogger().Warnf("[DETAIL] failed to fetch %s: %v", nameOrID, err)
		}
		return nil, classifyPrimaryFetch(nameOrID, err)
	}
	if record == nil {
		return nil, newError(ErrInternal, "Failed to process Pokémon details.", errors.New("empty upstream record"))
	}

	species := s.fetchSpecies(ctx, record.Species.URL)
	evolution := s.fetchEvolution(ctx, species)

	return &PokemonDetail{
		ID:             record.ID,
		Name:           record.Name,
		ImageURL:       resolveImageURL(record.Sprites, s.config.PlaceholderImageURL),
		Height:         float64(record.Height) / 10,
		Weight:         float64(record.Weight) / 10,
		Stats:          orderedStats(record.Stats),
		Abilities:      orderedAbilities(record.Abilities),
		Types:          orderedTypes(record.Types),
		Description:    species.description,
		EvolutionChain: evolution.stages,
	}, nil
}

func (s *DetailService) fetchSpecies(ctx context.Context, speciesURL string) speciesResult {
	fallback := speciesResult{description: DefaultDescription}
	if speciesURL == "" {
		logger.GetLogger().Warn("[DETAIL] record has no species url")
		return fallback
	}

	species, err := s.upstream.GetSpecies(ctx, speciesURL)
	if err != nil || species == nil {
		logger.GetLogger().Warnf("[DETAIL] species fetch failed for %s: %v", speciesURL, err)
		return fallback
	}

	result := speciesResult{
		description: englishFlavorText(species.FlavorTextEntries),
		ok:          true,
	}
	if species.EvolutionChain != nil {
		result.evolutionChainURL = species.EvolutionChain.URL
	}
	return result
}

func (s *DetailService) fetchEvolution(ctx context.Context, species speciesResult) evolutionResult {
	if !species.ok {
		return evolutionResult{}
	}
	if species.evolutionChainURL == "" {
		logger.GetLogger().Debug("[DETAIL] species has no evolution chain url")
		return evolutionResult{}
	}

	chain, err := s.upstream.GetEvolutionChain(ctx, species.evolutionChainURL)
	if err != nil || chain == nil {
		logger.GetLogger().Warnf("[DETAIL] evolution chain fetch failed for %s: %v", species.evolutionChainURL, err)
		return evolutionResult{}
	}
	return evolutionResult{stages: ParseEvolutionChain(&chain.Chain), ok: true}
}
