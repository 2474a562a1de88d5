package pokemon

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"pokedex.dev/pokedex-api-gateway/app/utils/httpclients/pokeapi"
)

const testBase = "https://pokeapi.test/api/v2"

type fakeUpstream struct {
	mu         sync.Mutex
	index      []pokeapi.NamedAPIResource
	indexErr   error
	indexCalls int
	pokemon    map[string]*pokeapi.Pokemon
	species    map[string]*pokeapi.Species
	chains     map[string]*pokeapi.EvolutionChain
	failures   map[string]error
	delays     map[string]time.Duration
	fetched    []string
}

func newFakeUpstream() *fakeUpstream {
	return &fakeUpstream{
		pokemon:  map[string]*pokeapi.Pokemon{},
		species:  map[string]*pokeapi.Species{},
		chains:   map[string]*pokeapi.EvolutionChain{},
		failures: map[string]error{},
		delays:   map[string]time.Duration{},
	}
}

func pokemonURL(name string) string {
	return testBase + "/pokemon/" + name + "/"
}

func notFound(url string) error {
	return &pokeapi.FetchError{URL: url, Status: http.StatusNotFound, Message: "Not Found"}
}

// addPokemon registers a record reachable by name and by its index url.
func (f *fakeUpstream) addPokemon(p *pokeapi.Pokemon) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.index = append(f.index, pokeapi.NamedAPIResource{Name: p.Name, URL: pokemonURL(p.Name)})
	f.pokemon[p.Name] = p
	f.pokemon[fmt.Sprint(p.ID)] = p
	f.pokemon[pokemonURL(p.Name)] = p
}

func (f *fakeUpstream) record(url string) (time.Duration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetched = append(f.fetched, url)
	return f.delays[url], f.failures[url]
}

func (f *fakeUpstream) fetchedURLs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.fetched...)
}

func (f *fakeUpstream) GetPokemonIndex(ctx context.Context) ([]pokeapi.NamedAPIResource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.indexCalls++
	if f.indexErr != nil {
		return nil, f.indexErr
	}
	return append([]pokeapi.NamedAPIResource(nil), f.index...), nil
}

func (f *fakeUpstream) GetPokemon(ctx context.Context, nameOrID string) (*pokeapi.Pokemon, error) {
	return f.GetPokemonByURL(ctx, nameOrID)
}

func (f *fakeUpstream) GetPokemonByURL(ctx context.Context, key string) (*pokeapi.Pokemon, error) {
	delay, failure := f.record(key)
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, &pokeapi.FetchError{URL: key, Transport: ctx.Err()}
		}
	}
	if failure != nil {
		return nil, failure
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.pokemon[key]; ok {
		return p, nil
	}
	return nil, notFound(key)
}

func (f *fakeUpstream) GetSpecies(ctx context.Context, url string) (*pokeapi.Species, error) {
	if _, failure := f.record(url); failure != nil {
		return nil, failure
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.species[url]; ok {
		return s, nil
	}
	return nil, notFound(url)
}

func (f *fakeUpstream) GetEvolutionChain(ctx context.Context, url string) (*pokeapi.EvolutionChain, error) {
	if _, failure := f.record(url); failure != nil {
		return nil, failure
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.chains[url]; ok {
		return c, nil
	}
	return nil, notFound(url)
}

func strPtr(s string) *string { return &s }

func typed(id int, name string, types ...string) *pokeapi.Pokemon {
	p := &pokeapi.Pokemon{ID: id, Name: name}
	for i, t := range types {
		p.Types = append(p.Types, pokeapi.PokemonType{Slot: i + 1, Type: pokeapi.NamedAPIResource{Name: t}})
	}
	p.Sprites.FrontDefault = strPtr(fmt.Sprintf("https://sprites.test/%d.png", id))
	return p
}
