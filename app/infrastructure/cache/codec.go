package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pokedex.dev/pokedex-api-gateway/app/utils/logger"
)

// ErrKeyNotFound is returned by Get on a cache miss.
var ErrKeyNotFound = errors.New("key not found")

type getSetter interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// readThrough is the GetWithFallback body shared by the stateful backends.
// A broken backend degrades to the fallback; only fallback errors are returned.
func readThrough(ctx context.Context, c getSetter, key string, dest any, fallback func() (any, error), expiration time.Duration) error {
	err := c.Get(ctx, key, dest)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		logger.GetLogger().Warnf("[CACHE] read of %s failed, using fallback: %v", key, err)
	}

	value, err := fallback()
	if err != nil {
		return fmt.Errorf("fallback function failed: %w", err)
	}
	if err := c.Set(ctx, key, value, expiration); err != nil {
		logger.GetLogger().Errorf("[CACHE] failed to cache %s: %v", key, err)
	}
	return copyValue(value, dest)
}

// copyValue hands a freshly loaded value to the caller through the same JSON
// representation the backends store, so hits and misses decode identically.
func copyValue(value any, dest any) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal fallback value: %w", err)
	}
	return json.Unmarshal(jsonValue, dest)
}
