// Package storage provides Redis persistence for DotaMeta.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dotameta/internal/config"
)

// WatchedHero represents a hero being watched for win rate movement
// in a specific channel.
type WatchedHero struct {
	HeroID      int     `json:"hero_id"`
	HeroName    string  `json:"hero_name"`
	ChannelID   string  `json:"channel_id"`
	LastWinRate float64 `json:"last_win_rate"`
}

// RedisClient wraps go-redis client.
type RedisClient struct {
	client  *redis.Client
	enabled bool
	ctx     context.Context
}

// NewRedisClient creates a new Redis client using go-redis.
func NewRedisClient(cfg *config.Config) *RedisClient {
	redisURL := cfg.RedisURL
	if redisURL == "" {
		log.Println("Redis not configured (REDIS_URL missing), using memory only")
		return &RedisClient{enabled: false, ctx: context.Background()}
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Failed to parse REDIS_URL: %v", err)
		return &RedisClient{enabled: false, ctx: context.Background()}
	}

	// Small footprint, single process
	opt.PoolSize = 5
	opt.MinIdleConns = 1
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection failed: %v", err)
		return &RedisClient{enabled: false, ctx: ctx}
	}

	log.Println("Redis connected successfully")
	return &RedisClient{
		client:  client,
		enabled: true,
		ctx:     ctx,
	}
}

// Get retrieves a value from Redis.
func (r *RedisClient) Get(key string) (string, error) {
	if !r.enabled {
		return "", nil
	}
	val, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

// Set stores a value in Redis (no expiration).
func (r *RedisClient) Set(key string, value string) error {
	if !r.enabled {
		return nil
	}
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// SetTTL stores a value in Redis with an expiration.
func (r *RedisClient) SetTTL(key string, value string, ttl time.Duration) error {
	if !r.enabled {
		return nil
	}
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis.
func (r *RedisClient) Delete(key string) error {
	if !r.enabled {
		return nil
	}
	return r.client.Del(r.ctx, key).Err()
}

// WatchStore manages watched heroes persistence.
type WatchStore struct {
	redis   *RedisClient
	key     string
	watches map[string]*WatchedHero
	mu      sync.RWMutex
}

// NewWatchStore creates a new watched heroes store.
func NewWatchStore(redis *RedisClient, key string) *WatchStore {
	return &WatchStore{
		redis:   redis,
		key:     key,
		watches: make(map[string]*WatchedHero),
	}
}

// watchKey builds the map key for a hero/channel pair.
func watchKey(heroID int, channelID string) string {
	return fmt.Sprintf("%d:%s", heroID, channelID)
}

// Load loads watched heroes from Redis.
func (s *WatchStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.redis.Get(s.key)
	if err != nil {
		return err
	}

	if data == "" {
		s.watches = make(map[string]*WatchedHero)
		return nil
	}

	var watches map[string]*WatchedHero
	if err := json.Unmarshal([]byte(data), &watches); err != nil {
		return err
	}

	s.watches = watches
	log.Printf("Loaded %d watched heroes", len(s.watches))
	return nil
}

// Save saves watched heroes to Redis.
func (s *WatchStore) Save() error {
	s.mu.RLock()
	data, err := json.Marshal(s.watches)
	s.mu.RUnlock()

	if err != nil {
		return fmt.Errorf("failed to marshal watches: %w", err)
	}

	return s.redis.Set(s.key, string(data))
}

// Get returns a watch entry for a hero/channel pair.
func (s *WatchStore) Get(heroID int, channelID string) (*WatchedHero, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.watches[watchKey(heroID, channelID)]
	return w, ok
}

// Set adds or updates a watch entry.
func (s *WatchStore) Set(w *WatchedHero) {
	s.mu.Lock()
	s.watches[watchKey(w.HeroID, w.ChannelID)] = w
	s.mu.Unlock()
}

// Delete removes a watch entry.
func (s *WatchStore) Delete(heroID int, channelID string) {
	s.mu.Lock()
	delete(s.watches, watchKey(heroID, channelID))
	s.mu.Unlock()
}

// GetAll returns all watch entries.
func (s *WatchStore) GetAll() map[string]*WatchedHero {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*WatchedHero, len(s.watches))
	for k, v := range s.watches {
		result[k] = v
	}
	return result
}

// GetByChannel returns all watch entries for a specific channel.
func (s *WatchStore) GetByChannel(channelID string) []*WatchedHero {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*WatchedHero
	for _, w := range s.watches {
		if w.ChannelID == channelID {
			result = append(result, w)
		}
	}
	return result
}

// Count returns the number of watch entries.
func (s *WatchStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.watches)
}

// UpdateWinRate updates the last notified win rate for a watch entry.
func (s *WatchStore) UpdateWinRate(heroID int, channelID string, winRate float64) {
	s.mu.Lock()
	if w, ok := s.watches[watchKey(heroID, channelID)]; ok {
		w.LastWinRate = winRate
	}
	s.mu.Unlock()
}
