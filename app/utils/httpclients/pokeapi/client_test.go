package pokeapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"resty.dev/v3"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(resty.New().SetRetryCount(0), server.URL+"/api/v2", 50), server
}

func TestGetPokemonIndex(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/pokemon" {
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"count":2,"results":[{"name":"bulbasaur","url":"u1"},{"name":"ivysaur","url":"u2"}]}`)
	})

	index, err := client.GetPokemonIndex(context.Background())
	if err != nil {
		t.Fatalf("GetPokemonIndex: %v", err)
	}
	if gotQuery != "limit=50" {
		t.Errorf("query = %q, want limit=50", gotQuery)
	}
	if len(index) != 2 || index[0].Name != "bulbasaur" || index[1].URL != "u2" {
		t.Errorf("index = %+v", index)
	}
}

func TestGetPokemonDecodesRecord(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/pokemon/pikachu" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{
			"id": 25, "name": "pikachu", "height": 4, "weight": 60,
			"types": [{"slot": 1, "type": {"name": "electric", "url": ""}}],
			"sprites": {"front_default": "front.png", "other": {"official-artwork": {"front_default": "art.png"}}},
			"species": {"name": "pikachu", "url": "https://pokeapi.co/api/v2/pokemon-species/25/"}
		}`)
	})

	pokemon, err := client.GetPokemon(context.Background(), "pikachu")
	if err != nil {
		t.Fatalf("GetPokemon: %v", err)
	}
	if pokemon.ID != 25 || pokemon.Height != 4 || pokemon.Weight != 60 {
		t.Errorf("pokemon = %+v", pokemon)
	}
	if pokemon.Sprites.Other == nil || pokemon.Sprites.Other.OfficialArtwork == nil ||
		*pokemon.Sprites.Other.OfficialArtwork.FrontDefault != "art.png" {
		t.Errorf("sprites = %+v", pokemon.Sprites)
	}
	if pokemon.Species.URL == "" {
		t.Error("species url missing")
	}
}

func TestFetchJSONStatusError(t *testing.T) {
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := client.GetPokemonByURL(context.Background(), server.URL+"/api/v2/pokemon/missingno")
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("err = %v, want *FetchError", err)
	}
	if fetchErr.Status != http.StatusNotFound || !fetchErr.NotFound() || !IsNotFound(err) {
		t.Errorf("fetchErr = %+v", fetchErr)
	}
	if fetchErr.Transport != nil {
		t.Errorf("status errors carry no transport cause, got %v", fetchErr.Transport)
	}
}

func TestFetchJSONServerError(t *testing.T) {
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	err := client.FetchJSON(context.Background(), server.URL+"/anything", &struct{}{})
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) || fetchErr.Status != http.StatusServiceUnavailable {
		t.Fatalf("err = %v", err)
	}
	if IsNotFound(err) {
		t.Error("503 must not be reported as not found")
	}
}

func TestFetchJSONDecodeError(t *testing.T) {
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": "not-a-number"`)
	})

	_, err := client.GetSpecies(context.Background(), server.URL+"/species/1/")
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("err = %v, want *FetchError", err)
	}
	if fetchErr.Status != 0 || fetchErr.Transport == nil {
		t.Errorf("decode failure should be a transport error, got %+v", fetchErr)
	}
}

func TestFetchJSONTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := New(resty.New().SetRetryCount(0), url, 10)
	_, err := client.GetEvolutionChain(context.Background(), url+"/evolution-chain/10/")
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) || fetchErr.Transport == nil {
		t.Fatalf("err = %v, want transport FetchError", err)
	}
}

func TestFetchJSONSingleAttempt(t *testing.T) {
	var calls atomic.Int32
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_ = client.FetchJSON(context.Background(), server.URL+"/x", &struct{}{})
	if n := calls.Load(); n != 1 {
		t.Fatalf("upstream called %d times, want 1", n)
	}
}
