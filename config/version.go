package config

// Version is overridden at build time with -ldflags "-X pokedex.dev/pokedex-api-gateway/config.Version=..."
var Version = "dev"
