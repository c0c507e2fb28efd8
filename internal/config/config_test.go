package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotameta/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("OPENDOTA_BASE_URL", "")
	t.Setenv("WATCH_INTERVAL", "")
	t.Setenv("DATA_DIR", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.opendota.com/api", cfg.OpenDotaBaseURL)
	assert.Equal(t, "https://cdn.cloudflare.steamstatic.com", cfg.CDNBaseURL)
	assert.Equal(t, "dotameta:watched_heroes", cfg.RedisKeyWatchedHeroes)
	assert.Equal(t, 6*time.Hour, cfg.WatchInterval)
	assert.Equal(t, "data/heroes.json", cfg.HeroesSnapshotPath())
	assert.Equal(t, "data/items.json", cfg.ItemsSnapshotPath())
	assert.Equal(t, "data/item_ids.json", cfg.ItemIDsSnapshotPath())
}

func TestWatchIntervalParsing(t *testing.T) {
	t.Setenv("WATCH_INTERVAL", "90m")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, cfg.WatchInterval)
}

func TestWatchIntervalInvalidFallsBack(t *testing.T) {
	t.Setenv("WATCH_INTERVAL", "soon")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 6*time.Hour, cfg.WatchInterval)
}

func TestValidateRequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())

	cfg.DiscordToken = "token"
	assert.NoError(t, cfg.Validate())
}
