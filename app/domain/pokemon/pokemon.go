package pokemon

import (
	"context"
	"time"

	"pokedex.dev/pokedex-api-gateway/app/utils/httpclients/pokeapi"
	"pokedex.dev/pokedex-api-gateway/config/environment_variables"
)

const (
	DefaultIndexTTL            = time.Hour
	DefaultPlaceholderImageURL = "/placeholder.png"
	DefaultDescription         = "No description available."
)

// IndexFetcher loads the bulk name index from the upstream catalog.
type IndexFetcher interface {
	GetPokemonIndex(ctx context.Context) ([]pokeapi.NamedAPIResource, error)
}

// Upstream is the subset of the catalog client the aggregators depend on.
type Upstream interface {
	IndexFetcher
	GetPokemon(ctx context.Context, nameOrID string) (*pokeapi.Pokemon, error)
	GetPokemonByURL(ctx context.Context, pokemonURL string) (*pokeapi.Pokemon, error)
	GetSpecies(ctx context.Context, speciesURL string) (*pokeapi.Species, error)
	GetEvolutionChain(ctx context.Context, chainURL string) (*pokeapi.EvolutionChain, error)
}

type Config struct {
	IndexTTL            time.Duration
	PlaceholderImageURL string
}

func NewConfig() Config {
	placeholder := environment_variables.EnvironmentVariables.PLACEHOLDER_IMAGE_URL
	if placeholder == "" {
		placeholder = DefaultPlaceholderImageURL
	}
	return Config{
		IndexTTL:            environment_variables.Duration(environment_variables.EnvironmentVariables.INDEX_CACHE_TTL, DefaultIndexTTL),
		PlaceholderImageURL: placeholder,
	}
}

type NameIndexEntry struct {
	Name        string `json:"name"`
	ResourceURL string `json:"url"`
}

type PokemonSummary struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	ImageURL string   `json:"imageUrl"`
	Types    []string `json:"types"`
}

type ListQuery struct {
	Limit  int
	Offset int
	Search string
	Type   string
}

type ListResult struct {
	Pokemon []PokemonSummary `json:"pokemon"`
	// TotalCount is the size of the search-filtered index; the type filter is not reflected.
	TotalCount int `json:"totalCount"`
}

type Stat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type Ability struct {
	Name     string `json:"name"`
	IsHidden bool   `json:"isHidden"`
}

type EvolutionStage struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type PokemonDetail struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	ImageURL    string    `json:"imageUrl"`
	Height      float64   `json:"height"` // metres
	Weight      float64   `json:"weight"` // kilograms
	Stats       []Stat    `json:"stats"`
	Abilities   []Ability `json:"abilities"`
	Types       []string  `json:"types"`
	Description string    `json:"description"`
	// EvolutionChain is nil when the species or chain could not be loaded.
	EvolutionChain []EvolutionStage `json:"evolutionChain"`
}
