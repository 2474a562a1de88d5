package pokemon

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"pokedex.dev/pokedex-api-gateway/app/utils/functional"
	"pokedex.dev/pokedex-api-gateway/app/utils/httpclients/pokeapi"
)

var testConfig = Config{IndexTTL: time.Hour, PlaceholderImageURL: "/placeholder.png"}

func newListFixture() (*ListService, *fakeUpstream) {
	upstream := newFakeUpstream()
	upstream.addPokemon(typed(1, "bulbasaur", "grass", "poison"))
	upstream.addPokemon(typed(4, "charmander", "fire"))
	upstream.addPokemon(typed(5, "charmeleon", "fire"))
	upstream.addPokemon(typed(7, "squirtle", "water"))
	upstream.addPokemon(typed(25, "pikachu", "electric"))
	upstream.addPokemon(typed(37, "vulpix", "fire"))
	upstream.addPokemon(typed(58, "growlithe", "fire"))
	upstream.addPokemon(typed(172, "pichu", "electric"))
	cache := NewIndexCacheWithClock(upstream, time.Hour, time.Now)
	return NewListService(cache, upstream, testConfig), upstream
}

func names(result *ListResult) []string {
	return functional.Map(result.Pokemon, func(p PokemonSummary) string { return p.Name })
}

func TestListFirstPage(t *testing.T) {
	service, upstream := newListFixture()

	result, err := service.List(context.Background(), ListQuery{Limit: 3})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.TotalCount != 8 {
		t.Errorf("TotalCount = %d, want 8", result.TotalCount)
	}
	if got := names(result); !reflect.DeepEqual(got, []string{"bulbasaur", "charmander", "charmeleon"}) {
		t.Errorf("names = %v", got)
	}
	if got := result.Pokemon[0]; got.ID != 1 || !reflect.DeepEqual(got.Types, []string{"grass", "poison"}) || got.ImageURL != "https://sprites.test/1.png" {
		t.Errorf("summary = %+v", got)
	}
	if n := len(upstream.fetchedURLs()); n != 3 {
		t.Errorf("hydrated %d records, want only the 3 on the page", n)
	}
}

func TestListSearchCountsBeforePagination(t *testing.T) {
	service, _ := newListFixture()

	result, err := service.List(context.Background(), ListQuery{Limit: 1, Offset: 1, Search: "CHU"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.TotalCount != 2 {
		t.Errorf("TotalCount = %d, want 2 (pikachu, pichu)", result.TotalCount)
	}
	if got := names(result); !reflect.DeepEqual(got, []string{"pichu"}) {
		t.Errorf("names = %v", got)
	}
}

func TestListOffsetPastEnd(t *testing.T) {
	service, upstream := newListFixture()

	for _, offset := range []int{8, 9, 1000} {
		result, err := service.List(context.Background(), ListQuery{Limit: 20, Offset: offset})
		if err != nil {
			t.Fatalf("offset %d: %v", offset, err)
		}
		if result.Pokemon == nil || len(result.Pokemon) != 0 {
			t.Errorf("offset %d: pokemon = %#v, want empty", offset, result.Pokemon)
		}
		if result.TotalCount != 8 {
			t.Errorf("offset %d: TotalCount = %d", offset, result.TotalCount)
		}
	}
	if n := len(upstream.fetchedURLs()); n != 0 {
		t.Errorf("hydrated %d records for empty pages", n)
	}
}

func TestListTypeFilterAppliesAfterPagination(t *testing.T) {
	service, _ := newListFixture()

	result, err := service.List(context.Background(), ListQuery{Limit: 4, Type: "FIRE"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	// vulpix and growlithe are fire types too, but sit beyond the first page
	if got := names(result); !reflect.DeepEqual(got, []string{"charmander", "charmeleon"}) {
		t.Errorf("names = %v", got)
	}
	if result.TotalCount != 8 {
		t.Errorf("TotalCount = %d, want 8: the type filter is not counted", result.TotalCount)
	}
}

func TestListDropsFailedHydration(t *testing.T) {
	service, upstream := newListFixture()
	upstream.failures[pokemonURL("charmander")] = &pokeapi.FetchError{Status: 500, Message: "Internal Server Error"}
	upstream.failures[pokemonURL("squirtle")] = &pokeapi.FetchError{Transport: errors.New("timeout")}

	result, err := service.List(context.Background(), ListQuery{Limit: 4})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got := names(result); !reflect.DeepEqual(got, []string{"bulbasaur", "charmeleon"}) {
		t.Errorf("names = %v", got)
	}
}

func TestListKeepsIndexOrderRegardlessOfCompletion(t *testing.T) {
	service, upstream := newListFixture()
	upstream.delays[pokemonURL("bulbasaur")] = 40 * time.Millisecond
	upstream.delays[pokemonURL("charmander")] = 20 * time.Millisecond

	result, err := service.List(context.Background(), ListQuery{Limit: 3})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got := names(result); !reflect.DeepEqual(got, []string{"bulbasaur", "charmander", "charmeleon"}) {
		t.Errorf("names = %v", got)
	}
}

func TestListIdempotentWithinTTL(t *testing.T) {
	service, upstream := newListFixture()
	query := ListQuery{Limit: 5, Search: "char"}

	first, err := service.List(context.Background(), query)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	second, err := service.List(context.Background(), query)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("first = %+v, second = %+v", first, second)
	}
	if upstream.indexCalls != 1 {
		t.Errorf("index fetched %d times, want 1", upstream.indexCalls)
	}
}

func TestListZeroLimit(t *testing.T) {
	service, _ := newListFixture()

	result, err := service.List(context.Background(), ListQuery{Limit: 0})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(result.Pokemon) != 0 || result.TotalCount != 8 {
		t.Errorf("result = %+v", result)
	}
}

func TestListIndexUnavailable(t *testing.T) {
	service, upstream := newListFixture()
	upstream.indexErr = &pokeapi.FetchError{Status: 503, Message: "Service Unavailable"}

	_, err := service.List(context.Background(), ListQuery{Limit: 20})
	if !errors.Is(err, ErrIndexUnavailable) {
		t.Fatalf("err = %v, want ErrIndexUnavailable", err)
	}
}
