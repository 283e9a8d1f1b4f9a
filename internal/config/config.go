// Package config loads service configuration from environment variables,
// optionally seeded from a local .env file. Credentials are validated at
// load time so a misconfigured deployment fails at startup instead of
// surfacing as upstream authentication errors per request.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration object. Env keys map through the "_"
// delimiter: API_USERNAME -> api.username, UPSTREAM_URL -> upstream.url.
type Config struct {
	API      APIConfig      `koanf:"api"`
	Upstream UpstreamConfig `koanf:"upstream"`
	Redis    RedisConfig    `koanf:"redis"`
	Server   ServerConfig   `koanf:"server"`
}

// APIConfig holds the service credentials for the upstream hotel-search
// API. Both values are required; they are never logged.
type APIConfig struct {
	Username string `koanf:"username" validate:"required"`
	Password string `koanf:"password" validate:"required"`
}

// UpstreamConfig points at the upstream hotel-search service.
type UpstreamConfig struct {
	URL string `koanf:"url" validate:"required,url"`
}

// RedisConfig holds the response-cache connection URL.
type RedisConfig struct {
	URL string `koanf:"url" validate:"required"`
}

// ServerConfig groups HTTP server settings.
type ServerConfig struct {
	Port string `koanf:"port"`
}

const defaultPort = "8080"

// Load reads the environment into a Config, applies defaults, and validates
// required values.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(s), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = defaultPort
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
