package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"pokedex.dev/pokedex-api-gateway/app/utils/httpclients"
	"pokedex.dev/pokedex-api-gateway/config/environment_variables"
	"resty.dev/v3"
)

const defaultIndexLimit = 1500

var RestyClient *resty.Client

func Init() {
	RestyClient = httpclients.NewClient("PokeAPIClient")
}

type Client struct {
	resty      *resty.Client
	baseURL    string
	indexLimit int
}

func NewClient() *Client {
	if RestyClient == nil {
		Init()
	}
	return New(
		RestyClient,
		environment_variables.EnvironmentVariables.POKEAPI_BASE_URL,
		environment_variables.Int(environment_variables.EnvironmentVariables.POKEAPI_INDEX_LIMIT, defaultIndexLimit),
	)
}

func New(restyClient *resty.Client, baseURL string, indexLimit int) *Client {
	if baseURL == "" {
		baseURL = "https://pokeapi.co/api/v2"
	}
	if indexLimit <= 0 {
		indexLimit = defaultIndexLimit
	}
	return &Client{
		resty:      restyClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		indexLimit: indexLimit,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchJSON performs a single GET against rawURL and decodes the body into dest.
func (c *Client) FetchJSON(ctx context.Context, rawURL string, dest any) error {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(rawURL)
	if err != nil {
		if resp != nil && resp.RawResponse != nil {
			resp.RawResponse.Body.Close()
		}
		return &FetchError{URL: rawURL, Transport: err}
	}
	if resp.RawResponse == nil {
		return &FetchError{URL: rawURL, Transport: fmt.Errorf("empty response")}
	}
	defer resp.RawResponse.Body.Close()

	status := resp.RawResponse.StatusCode
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.RawResponse.Body)
		return &FetchError{URL: rawURL, Status: status, Message: http.StatusText(status)}
	}

	if err := json.NewDecoder(resp.RawResponse.Body).Decode(dest); err != nil {
		return &FetchError{URL: rawURL, Transport: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// GetPokemonIndex fetches the bulk name index in one request sized to cover the catalog.
func (c *Client) GetPokemonIndex(ctx context.Context) ([]NamedAPIResource, error) {
	var list NamedAPIResourceList
	if err := c.FetchJSON(ctx, fmt.Sprintf("%s/pokemon?limit=%d", c.baseURL, c.indexLimit), &list); err != nil {
		return nil, err
	}
	return list.Results, nil
}

func (c *Client) GetPokemon(ctx context.Context, nameOrID string) (*Pokemon, error) {
	return c.GetPokemonByURL(ctx, c.baseURL+"/pokemon/"+url.PathEscape(nameOrID))
}

func (c *Client) GetPokemonByURL(ctx context.Context, pokemonURL string) (*Pokemon, error) {
	var pokemon Pokemon
	if err := c.FetchJSON(ctx, pokemonURL, &pokemon); err != nil {
		return nil, err
	}
	return &pokemon, nil
}

func (c *Client) GetSpecies(ctx context.Context, speciesURL string) (*Species, error) {
	var species Species
	if err := c.FetchJSON(ctx, speciesURL, &species); err != nil {
		return nil, err
	}
	return &species, nil
}

func (c *Client) GetEvolutionChain(ctx context.Context, chainURL string) (*EvolutionChain, error) {
	var chain EvolutionChain
	if err := c.FetchJSON(ctx, chainURL, &chain); err != nil {
		return nil, err
	}
	return &chain, nil
}
