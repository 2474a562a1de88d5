package environment_variables

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
)

type EnvironmentVariable struct {
	PORT                  string
	POKEAPI_BASE_URL      string
	POKEAPI_TIMEOUT       string
	POKEAPI_INDEX_LIMIT   string
	INDEX_CACHE_TTL       string
	RECORD_CACHE_TTL      string
	PLACEHOLDER_IMAGE_URL string
	CACHE_TYPE            string
	CACHE_URL             string
	CACHE_PASSWORD        string
	CACHE_DB              string
	REDIS_URL             string
	REDIS_PASSWORD        string
	REDIS_DB              string
	ALLOWED_CORS_HOSTS    []string
	LOG_LEVEL             string
	LOG_FORMAT            string
	ENABLE_PPROF          string
	ADMIN_API_KEY         string
}

// optional keys are not reported when missing
var optionalKeys = map[string]bool{
	"CACHE_URL":          true,
	"CACHE_PASSWORD":     true,
	"CACHE_DB":           true,
	"REDIS_URL":          true,
	"REDIS_PASSWORD":     true,
	"REDIS_DB":           true,
	"ALLOWED_CORS_HOSTS": true,
	"ENABLE_PPROF":       true,
	"ADMIN_API_KEY":      true,
}

func (ev *EnvironmentVariable) LoadFromEnv() {
	// a missing .env file is the normal case outside local development
	_ = godotenv.Load()

	v := reflect.ValueOf(ev).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		envKey := field.Name
		envValue := os.Getenv(envKey)
		if envValue == "" {
			if !optionalKeys[envKey] {
				fmt.Printf("Missing SYSENV: %s, using default\n", envKey)
			}
			continue
		}
		switch v.Field(i).Kind() {
		case reflect.String:
			v.Field(i).SetString(envValue)
		case reflect.Slice:
			if field.Type.Elem().Kind() != reflect.String {
				continue
			}
			parts := make([]string, 0)
			for _, part := range strings.Split(envValue, ",") {
				if trimmed := strings.TrimSpace(part); trimmed != "" {
					parts = append(parts, trimmed)
				}
			}
			v.Field(i).Set(reflect.ValueOf(parts))
		}
	}
	ev.applyDefaults()
}

func (ev *EnvironmentVariable) applyDefaults() {
	if ev.PORT == "" {
		ev.PORT = "8080"
	}
	if ev.POKEAPI_BASE_URL == "" {
		ev.POKEAPI_BASE_URL = "https://pokeapi.co/api/v2"
	}
	if ev.POKEAPI_TIMEOUT == "" {
		ev.POKEAPI_TIMEOUT = "10s"
	}
	if ev.POKEAPI_INDEX_LIMIT == "" {
		ev.POKEAPI_INDEX_LIMIT = "1500"
	}
	if ev.INDEX_CACHE_TTL == "" {
		ev.INDEX_CACHE_TTL = "1h"
	}
	if ev.RECORD_CACHE_TTL == "" {
		ev.RECORD_CACHE_TTL = "1h"
	}
	if ev.PLACEHOLDER_IMAGE_URL == "" {
		ev.PLACEHOLDER_IMAGE_URL = "/placeholder.png"
	}
	if ev.CACHE_TYPE == "" {
		ev.CACHE_TYPE = "none"
	}
	if ev.LOG_LEVEL == "" {
		ev.LOG_LEVEL = "info"
	}
	if ev.LOG_FORMAT == "" {
		ev.LOG_FORMAT = "text"
	}
}

// Singleton
var EnvironmentVariables = EnvironmentVariable{}
