package cache

import (
	"context"
	"time"
)

// CacheService defines the interface for cache operations
type CacheService interface {
	// Set stores a value in cache as JSON with an expiration time
	Set(ctx context.Context, key string, value any, expiration time.Duration) error

	// Get decodes a cached value into dest, or returns ErrKeyNotFound
	Get(ctx context.Context, key string, dest any) error

	// GetWithFallback retrieves a value from cache, or executes fallback function if not found
	GetWithFallback(ctx context.Context, key string, dest any, fallback func() (any, error), expiration time.Duration) error

	// Delete removes a single key
	Delete(ctx context.Context, key string) error

	// DeletePattern removes all keys matching a glob pattern
	DeletePattern(ctx context.Context, pattern string) error

	// Close releases the backend connection
	Close() error

	// HealthCheck verifies cache connectivity
	HealthCheck(ctx context.Context) error
}
