// Package config provides configuration management for DotaMeta.
package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the application.
type Config struct {
	// Discord
	DiscordToken string

	// OpenDota API
	OpenDotaBaseURL string

	// Redis
	RedisURL              string
	RedisKeyWatchedHeroes string

	// Steam CDN for hero portraits and item images
	CDNBaseURL string

	// Watch polling
	WatchInterval time.Duration

	// Paths
	DataDir string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		// Discord
		DiscordToken: os.Getenv("DISCORD_TOKEN"),

		// OpenDota API
		OpenDotaBaseURL: getEnvOrDefault("OPENDOTA_BASE_URL", "https://api.opendota.com/api"),

		// Redis
		RedisURL:              os.Getenv("REDIS_URL"),
		RedisKeyWatchedHeroes: getEnvOrDefault("REDIS_KEY_WATCHED_HEROES", "dotameta:watched_heroes"),

		// Steam CDN
		CDNBaseURL: getEnvOrDefault("CDN_BASE_URL", "https://cdn.cloudflare.steamstatic.com"),

		// Watch polling
		WatchInterval: getEnvDuration("WATCH_INTERVAL", 6*time.Hour),

		// Paths
		DataDir: getEnvOrDefault("DATA_DIR", "data"),
	}

	return cfg, nil
}

// Validate checks if all required configuration values are set.
func (c *Config) Validate() error {
	var errs []string

	if c.DiscordToken == "" {
		errs = append(errs, "DISCORD_TOKEN is missing")
	}

	if len(errs) > 0 {
		log.Println("Config errors:")
		for _, e := range errs {
			log.Printf("  - %s", e)
		}
		return errors.New("configuration validation failed")
	}

	return nil
}

// HeroesSnapshotPath returns the path to the bundled heroes constants snapshot.
func (c *Config) HeroesSnapshotPath() string {
	return filepath.Join(c.DataDir, "heroes.json")
}

// ItemsSnapshotPath returns the path to the bundled items constants snapshot.
func (c *Config) ItemsSnapshotPath() string {
	return filepath.Join(c.DataDir, "items.json")
}

// ItemIDsSnapshotPath returns the path to the bundled item_ids constants snapshot.
func (c *Config) ItemIDsSnapshotPath() string {
	return filepath.Join(c.DataDir, "item_ids.json")
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration parses a duration environment variable or returns a default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
