package cache

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"pokedex.dev/pokedex-api-gateway/app/utils/logger"
	"pokedex.dev/pokedex-api-gateway/config/environment_variables"
)

const scanBatchSize = 500

// RedisCacheService stores JSON-encoded upstream records in Redis.
type RedisCacheService struct {
	client *redis.Client
}

// redisOptions resolves connection settings. CACHE_* variables take
// precedence over the REDIS_* ones.
func redisOptions() *redis.Options {
	env := environment_variables.EnvironmentVariables
	redisURL := cmp.Or(env.CACHE_URL, env.REDIS_URL, "redis://localhost:6379")

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.GetLogger().Errorf("[CACHE] invalid redis url, using localhost:6379: %v", err)
		opts = &redis.Options{Addr: "localhost:6379"}
	}
	if password := cmp.Or(env.CACHE_PASSWORD, env.REDIS_PASSWORD); password != "" {
		opts.Password = password
	}
	if db := cmp.Or(env.CACHE_DB, env.REDIS_DB); db != "" {
		if n, err := strconv.Atoi(db); err == nil {
			opts.DB = n
		}
	}
	return opts
}

// NewRedisCacheService connects using the environment. An unreachable server
// is logged but still returned; reads then fall back to the upstream.
func NewRedisCacheService() CacheService {
	client := redis.NewClient(redisOptions())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.GetLogger().Errorf("[CACHE] redis ping failed: %v", err)
	} else {
		logger.GetLogger().Info("[CACHE] connected to redis")
	}

	return NewRedisCacheServiceWithClient(client)
}

func NewRedisCacheServiceWithClient(client *redis.Client) *RedisCacheService {
	return &RedisCacheService{client: client}
}

func (r *RedisCacheService) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return r.client.Set(ctx, key, jsonValue, expiration).Err()
}

func (r *RedisCacheService) Get(ctx context.Context, key string, dest any) error {
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}
	return json.Unmarshal(raw, dest)
}

func (r *RedisCacheService) GetWithFallback(ctx context.Context, key string, dest any, fallback func() (any, error), expiration time.Duration) error {
	return readThrough(ctx, r, key, dest, fallback, expiration)
}

func (r *RedisCacheService) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// DeletePattern unlinks matching keys in SCAN-sized batches.
func (r *RedisCacheService) DeletePattern(ctx context.Context, pattern string) error {
	batch := make([]string, 0, scanBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := r.client.Unlink(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("failed to unlink keys: %w", err)
		}
		batch = batch[:0]
		return nil
	}

	iter := r.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys: %w", err)
	}
	return flush()
}

func (r *RedisCacheService) Close() error {
	return r.client.Close()
}

func (r *RedisCacheService) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
