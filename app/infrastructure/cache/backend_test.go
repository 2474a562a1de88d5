package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/valkey-io/valkey-go"
)

type backend struct {
	name string
	svc  CacheService
	mr   *miniredis.Miniredis
}

// newBackends starts one in-process Redis per networked backend.
func newBackends(t *testing.T) []backend {
	t.Helper()

	redisServer := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: redisServer.Addr()})

	valkeyServer := miniredis.RunT(t)
	valkeyClient, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:       []string{valkeyServer.Addr()},
		DisableCache:      true,
		ForceSingleClient: true,
	})
	if err != nil {
		t.Fatalf("valkey.NewClient: %v", err)
	}

	backends := []backend{
		{name: "redis", svc: NewRedisCacheServiceWithClient(redisClient), mr: redisServer},
		{name: "valkey", svc: NewValkeyCacheServiceWithClient(valkeyClient), mr: valkeyServer},
	}
	t.Cleanup(func() {
		for _, b := range backends {
			_ = b.svc.Close()
		}
	})
	return backends
}

func TestBackendSetGet(t *testing.T) {
	ctx := context.Background()
	for _, b := range newBackends(t) {
		t.Run(b.name, func(t *testing.T) {
			if err := b.svc.Set(ctx, "v1:pokeapi:pokemon:25", record{ID: 25, Name: "pikachu"}, time.Minute); err != nil {
				t.Fatalf("Set: %v", err)
			}
			var got record
			if err := b.svc.Get(ctx, "v1:pokeapi:pokemon:25", &got); err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.ID != 25 || got.Name != "pikachu" {
				t.Fatalf("got %+v", got)
			}
			if ttl := b.mr.TTL("v1:pokeapi:pokemon:25"); ttl != time.Minute {
				t.Fatalf("ttl = %v, want 1m", ttl)
			}

			var missing record
			if err := b.svc.Get(ctx, "v1:pokeapi:pokemon:0", &missing); !errors.Is(err, ErrKeyNotFound) {
				t.Fatalf("Get missing err = %v, want ErrKeyNotFound", err)
			}
		})
	}
}

func TestBackendSetWithoutExpirationPersists(t *testing.T) {
	ctx := context.Background()
	for _, b := range newBackends(t) {
		t.Run(b.name, func(t *testing.T) {
			if err := b.svc.Set(ctx, "k", record{ID: 1}, 0); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if ttl := b.mr.TTL("k"); ttl != 0 {
				t.Fatalf("ttl = %v, want none", ttl)
			}
		})
	}
}

func TestBackendGetWithFallback(t *testing.T) {
	ctx := context.Background()
	for _, b := range newBackends(t) {
		t.Run(b.name, func(t *testing.T) {
			calls := 0
			load := func() (any, error) {
				calls++
				return record{ID: calls, Name: "eevee"}, nil
			}

			var first, second record
			if err := b.svc.GetWithFallback(ctx, "v1:pokeapi:pokemon:133", &first, load, time.Minute); err != nil {
				t.Fatal(err)
			}
			if err := b.svc.GetWithFallback(ctx, "v1:pokeapi:pokemon:133", &second, load, time.Minute); err != nil {
				t.Fatal(err)
			}
			if calls != 1 || first != second {
				t.Fatalf("calls = %d, first = %+v, second = %+v", calls, first, second)
			}

			b.mr.FastForward(time.Minute)
			var third record
			if err := b.svc.GetWithFallback(ctx, "v1:pokeapi:pokemon:133", &third, load, time.Minute); err != nil {
				t.Fatal(err)
			}
			if calls != 2 || third.ID != 2 {
				t.Fatalf("expired entry served: calls = %d, third = %+v", calls, third)
			}
		})
	}
}

func TestBackendFallbackErrorIsNotCached(t *testing.T) {
	ctx := context.Background()
	sentinel := errors.New("upstream down")
	for _, b := range newBackends(t) {
		t.Run(b.name, func(t *testing.T) {
			var dest record
			err := b.svc.GetWithFallback(ctx, "k", &dest, func() (any, error) { return nil, sentinel }, time.Minute)
			if !errors.Is(err, sentinel) {
				t.Fatalf("err = %v, want wrapped sentinel", err)
			}
			if b.mr.Exists("k") {
				t.Fatal("failed fallback left a key behind")
			}
		})
	}
}

func TestBackendDelete(t *testing.T) {
	ctx := context.Background()
	for _, b := range newBackends(t) {
		t.Run(b.name, func(t *testing.T) {
			_ = b.svc.Set(ctx, "v1:pokeapi:pokemon:1", record{ID: 1}, 0)
			_ = b.svc.Set(ctx, "v1:pokeapi:pokemon:2", record{ID: 2}, 0)

			if err := b.svc.Delete(ctx, "v1:pokeapi:pokemon:1"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if err := b.svc.Delete(ctx, "v1:pokeapi:pokemon:404"); err != nil {
				t.Fatalf("Delete of absent key: %v", err)
			}
			if b.mr.Exists("v1:pokeapi:pokemon:1") || !b.mr.Exists("v1:pokeapi:pokemon:2") {
				t.Fatalf("keys after Delete = %v", b.mr.Keys())
			}
		})
	}
}

func TestBackendDeletePattern(t *testing.T) {
	ctx := context.Background()
	for _, b := range newBackends(t) {
		t.Run(b.name, func(t *testing.T) {
			// More keys than one SCAN page so batching is exercised.
			for i := range scanBatchSize + 20 {
				b.mr.Set(fmt.Sprintf(PokemonRecordKeyPattern, strconv.Itoa(i)), "{}")
			}
			b.mr.Set("v1:pokeapi:species:1", "{}")
			b.mr.Set("v1:index", "{}")

			if err := b.svc.DeletePattern(ctx, PokeAPIRecordsKeyPattern); err != nil {
				t.Fatalf("DeletePattern: %v", err)
			}
			keys := b.mr.Keys()
			if len(keys) != 1 || keys[0] != "v1:index" {
				t.Fatalf("keys after DeletePattern = %v", keys)
			}
		})
	}
}

func TestBackendHealthCheck(t *testing.T) {
	for _, b := range newBackends(t) {
		t.Run(b.name, func(t *testing.T) {
			if err := b.svc.HealthCheck(context.Background()); err != nil {
				t.Fatalf("HealthCheck: %v", err)
			}
		})
	}
}

func TestRedisReadThroughSurvivesServerLoss(t *testing.T) {
	mr := miniredis.RunT(t)
	svc := NewRedisCacheServiceWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1}))
	defer svc.Close()
	mr.Close()

	var got record
	err := svc.GetWithFallback(context.Background(), "k", &got, func() (any, error) {
		return record{ID: 7, Name: "squirtle"}, nil
	}, time.Minute)
	if err != nil {
		t.Fatalf("GetWithFallback: %v", err)
	}
	if got.ID != 7 {
		t.Fatalf("got %+v", got)
	}
	if err := svc.HealthCheck(context.Background()); err == nil {
		t.Fatal("HealthCheck succeeded against a stopped server")
	}
}

func TestRedisCloseReleasesClient(t *testing.T) {
	mr := miniredis.RunT(t)
	svc := NewRedisCacheServiceWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	if err := svc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := svc.HealthCheck(context.Background()); !errors.Is(err, redis.ErrClosed) {
		t.Fatalf("HealthCheck after Close err = %v, want redis.ErrClosed", err)
	}
}
