package cache

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"
	"pokedex.dev/pokedex-api-gateway/app/utils/logger"
	"pokedex.dev/pokedex-api-gateway/config/environment_variables"
)

// ValkeyCacheService stores JSON-encoded upstream records in Valkey.
type ValkeyCacheService struct {
	client valkey.Client
}

// parseValkeyURL accepts either a bare host:port or a valkey:// URL with
// optional password and database path. db is -1 when the URL names none.
func parseValkeyURL(raw string) (address, password string, db int, err error) {
	if !strings.Contains(raw, "://") {
		return raw, "", -1, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", -1, fmt.Errorf("invalid URL format: %w", err)
	}
	if u.Host == "" {
		return "", "", -1, fmt.Errorf("no host specified in URL")
	}
	if u.User != nil {
		password, _ = u.User.Password()
	}
	db = -1
	if n, err := strconv.Atoi(strings.TrimPrefix(u.Path, "/")); err == nil {
		db = n
	}
	return u.Host, password, db, nil
}

// valkeyOptions resolves connection settings from CACHE_URL, with CACHE_PASSWORD
// and CACHE_DB overriding whatever the URL carries.
func valkeyOptions() (valkey.ClientOption, error) {
	env := environment_variables.EnvironmentVariables
	address, password, db, err := parseValkeyURL(cmp.Or(env.CACHE_URL, "valkey://localhost:6379"))
	if err != nil {
		return valkey.ClientOption{}, err
	}

	opts := valkey.ClientOption{
		InitAddress: []string{address},
		Password:    cmp.Or(env.CACHE_PASSWORD, password),
	}
	if db != -1 {
		opts.SelectDB = db
	}
	if env.CACHE_DB != "" {
		if n, err := strconv.Atoi(env.CACHE_DB); err == nil {
			opts.SelectDB = n
		}
	}
	return opts, nil
}

// NewValkeyCacheService connects using the environment. Any connection
// failure disables the record cache instead of failing startup.
func NewValkeyCacheService() CacheService {
	opts, err := valkeyOptions()
	if err != nil {
		logger.GetLogger().Errorf("[CACHE] invalid valkey url, record cache disabled: %v", err)
		return &NoOpCacheService{}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		logger.GetLogger().Errorf("[CACHE] valkey connect failed, record cache disabled: %v", err)
		return &NoOpCacheService{}
	}

	svc := NewValkeyCacheServiceWithClient(client)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := svc.HealthCheck(ctx); err != nil {
		logger.GetLogger().Errorf("[CACHE] valkey ping failed, record cache disabled: %v", err)
		client.Close()
		return &NoOpCacheService{}
	}
	logger.GetLogger().Info("[CACHE] connected to valkey")
	return svc
}

func NewValkeyCacheServiceWithClient(client valkey.Client) *ValkeyCacheService {
	return &ValkeyCacheService{client: client}
}

// Set writes with millisecond precision; a zero expiration keeps the key until deleted.
func (v *ValkeyCacheService) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	set := v.client.B().Set().Key(key).Value(valkey.BinaryString(jsonValue))
	if expiration > 0 {
		return v.client.Do(ctx, set.PxMilliseconds(expiration.Milliseconds()).Build()).Error()
	}
	return v.client.Do(ctx, set.Build()).Error()
}

func (v *ValkeyCacheService) Get(ctx context.Context, key string, dest any) error {
	raw, err := v.client.Do(ctx, v.client.B().Get().Key(key).Build()).AsBytes()
	if valkey.IsValkeyNil(err) {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}
	return json.Unmarshal(raw, dest)
}

func (v *ValkeyCacheService) GetWithFallback(ctx context.Context, key string, dest any, fallback func() (any, error), expiration time.Duration) error {
	return readThrough(ctx, v, key, dest, fallback, expiration)
}

func (v *ValkeyCacheService) Delete(ctx context.Context, key string) error {
	return v.client.Do(ctx, v.client.B().Del().Key(key).Build()).Error()
}

// DeletePattern unlinks matching keys one SCAN page at a time.
func (v *ValkeyCacheService) DeletePattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		entry, err := v.client.Do(ctx, v.client.B().Scan().Cursor(cursor).Match(pattern).Count(scanBatchSize).Build()).AsScanEntry()
		if err != nil {
			return fmt.Errorf("failed to scan keys: %w", err)
		}
		if len(entry.Elements) > 0 {
			if err := v.client.Do(ctx, v.client.B().Unlink().Key(entry.Elements...).Build()).Error(); err != nil {
				return fmt.Errorf("failed to unlink keys: %w", err)
			}
		}
		if entry.Cursor == 0 {
			return nil
		}
		cursor = entry.Cursor
	}
}

func (v *ValkeyCacheService) Close() error {
	v.client.Close()
	return nil
}

func (v *ValkeyCacheService) HealthCheck(ctx context.Context) error {
	return v.client.Do(ctx, v.client.B().Ping().Build()).Error()
}
