// Package config loads process configuration from environment variables so
// main stays lean. Values are read once at startup and passed down; nothing
// reads the environment mid-request.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// RegistryCacheTTL bounds retention of cached registry lookups.
var RegistryCacheTTL = 24 * time.Hour

// Config captures everything the server needs at startup.
type Config struct {
	Addr string

	// StoreURL is the PostgreSQL DSN of the backing store; StoreServiceKey
	// signs and verifies bearer tokens. Both are required outside the local
	// profile.
	StoreURL        string
	StoreServiceKey string

	RegistryBaseURL string
	RedisURL        string

	LogFormat string
	Profile   string
}

// FromEnv builds the config. Missing required values are a fatal startup
// condition reported to the caller.
func FromEnv() (Config, error) {
	cfg := Config{
		Addr:            getOrDefault("DEALERGATE_ADDR", ":8787"),
		StoreURL:        os.Getenv("STORE_URL"),
		StoreServiceKey: os.Getenv("STORE_SERVICE_KEY"),
		RegistryBaseURL: os.Getenv("REGISTRY_BASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		LogFormat:       getOrDefault("LOG_FORMAT", "text"),
		Profile:         os.Getenv("PROFILE"),
	}
	if !cfg.IsLocal() {
		if cfg.StoreURL == "" {
			return Config{}, fmt.Errorf("environment variable STORE_URL is required")
		}
		if cfg.StoreServiceKey == "" {
			return Config{}, fmt.Errorf("environment variable STORE_SERVICE_KEY is required")
		}
	}
	if cfg.StoreServiceKey == "" {
		// Local profile only; never ships.
		cfg.StoreServiceKey = "local-dev-key"
	}
	return cfg, nil
}

// IsLocal reports whether the process runs under the local profile, where
// in-memory stores replace the external collaborators.
func (c Config) IsLocal() bool {
	return strings.EqualFold(c.Profile, "local")
}

func getOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
