package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotameta/internal/config"
	"github.com/dotameta/internal/storage"
)

// Without REDIS_URL the client degrades to memory-only no-ops; the
// store must still behave correctly in that mode.
func newMemoryStore(t *testing.T) *storage.WatchStore {
	t.Helper()
	redisClient := storage.NewRedisClient(&config.Config{})
	return storage.NewWatchStore(redisClient, "test:watched_heroes")
}

func TestWatchStoreSetGetDelete(t *testing.T) {
	s := newMemoryStore(t)
	require.NoError(t, s.Load())

	s.Set(&storage.WatchedHero{HeroID: 1, HeroName: "Anti-Mage", ChannelID: "ch1", LastWinRate: 53.0})
	s.Set(&storage.WatchedHero{HeroID: 1, HeroName: "Anti-Mage", ChannelID: "ch2", LastWinRate: 53.0})
	s.Set(&storage.WatchedHero{HeroID: 91, HeroName: "Io", ChannelID: "ch1", LastWinRate: 48.5})

	assert.Equal(t, 3, s.Count())

	w, ok := s.Get(1, "ch1")
	require.True(t, ok)
	assert.Equal(t, "Anti-Mage", w.HeroName)

	// Same hero in a different channel is a separate entry
	_, ok = s.Get(1, "ch2")
	assert.True(t, ok)

	s.Delete(1, "ch1")
	_, ok = s.Get(1, "ch1")
	assert.False(t, ok)
	_, ok = s.Get(1, "ch2")
	assert.True(t, ok)
}

func TestWatchStoreGetByChannel(t *testing.T) {
	s := newMemoryStore(t)

	s.Set(&storage.WatchedHero{HeroID: 1, HeroName: "Anti-Mage", ChannelID: "ch1"})
	s.Set(&storage.WatchedHero{HeroID: 91, HeroName: "Io", ChannelID: "ch1"})
	s.Set(&storage.WatchedHero{HeroID: 26, HeroName: "Lion", ChannelID: "ch2"})

	ch1 := s.GetByChannel("ch1")
	assert.Len(t, ch1, 2)
	assert.Len(t, s.GetByChannel("ch2"), 1)
	assert.Empty(t, s.GetByChannel("ch3"))
}

func TestWatchStoreUpdateWinRate(t *testing.T) {
	s := newMemoryStore(t)

	s.Set(&storage.WatchedHero{HeroID: 1, HeroName: "Anti-Mage", ChannelID: "ch1", LastWinRate: 53.0})
	s.UpdateWinRate(1, "ch1", 54.2)

	w, ok := s.Get(1, "ch1")
	require.True(t, ok)
	assert.Equal(t, 54.2, w.LastWinRate)

	// Unknown entries are ignored
	s.UpdateWinRate(999, "ch1", 10.0)
}

func TestWatchStoreSaveLoadMemoryOnly(t *testing.T) {
	s := newMemoryStore(t)

	s.Set(&storage.WatchedHero{HeroID: 1, HeroName: "Anti-Mage", ChannelID: "ch1"})
	require.NoError(t, s.Save())
	require.NoError(t, s.Load())
}
