package config

// Version is overridden at build time with -ldflags "-X pokedex.dev/pokedex-api/config.Version=..."
var Version = "dev"
