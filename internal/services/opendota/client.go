// Package opendota provides the OpenDota API client for DotaMeta.
package opendota

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/dotameta/internal/config"
	"github.com/dotameta/internal/storage"
)

// constantsTTL bounds how long a cached constants payload is reused.
// The tables only change on game patches.
const constantsTTL = 24 * time.Hour

// Client is a client for the OpenDota API.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	redisClient *storage.RedisClient
}

// NewClient creates a new OpenDota API client.
func NewClient(cfg *config.Config, redisClient *storage.RedisClient) *Client {
	// Reuse connections for efficiency
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  false,
	}

	return &Client{
		baseURL: cfg.OpenDotaBaseURL,
		httpClient: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
		redisClient: redisClient,
	}
}

// doRequest makes an HTTP request to the OpenDota API.
func (c *Client) doRequest(reqURL string) ([]byte, error) {
	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

// HeroStats fetches the hero roster with per-bracket pick/win counters.
// Never cached: the roster is the freshest statistical surface we have.
func (c *Client) HeroStats() ([]HeroStats, error) {
	body, err := c.doRequest(c.baseURL + "/heroStats")
	if err != nil {
		log.Printf("Error fetching hero stats: %v", err)
		return nil, err
	}

	var roster []HeroStats
	if err := json.Unmarshal(body, &roster); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return roster, nil
}

// constants fetches a constants table, going through the Redis cache
// first. Constants payloads only move on game patches, so a cache hit
// skips one of the three startup round trips.
func (c *Client) constants(resource string) ([]byte, error) {
	cacheKey := "opendota:constants:" + resource

	if c.redisClient != nil {
		if cached, err := c.redisClient.Get(cacheKey); err == nil && cached != "" {
			log.Printf("Constants cache hit for %s", resource)
			return []byte(cached), nil
		}
	}

	body, err := c.doRequest(c.baseURL + "/constants/" + resource)
	if err != nil {
		log.Printf("Error fetching constants %s: %v", resource, err)
		return nil, err
	}

	if c.redisClient != nil {
		if err := c.redisClient.SetTTL(cacheKey, string(body), constantsTTL); err != nil {
			log.Printf("Failed to cache constants %s: %v", resource, err)
		}
	}

	return body, nil
}

// Heroes fetches hero metadata keyed by hero id.
func (c *Client) Heroes() (map[int]Hero, error) {
	body, err := c.constants("heroes")
	if err != nil {
		return nil, err
	}

	var heroes map[int]Hero
	if err := json.Unmarshal(body, &heroes); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return heroes, nil
}

// Items fetches item metadata keyed by internal item name.
func (c *Client) Items() (map[string]Item, error) {
	body, err := c.constants("items")
	if err != nil {
		return nil, err
	}

	var items map[string]Item
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return items, nil
}

// ItemIDs fetches the item id to internal item name index.
func (c *Client) ItemIDs() (map[int]string, error) {
	body, err := c.constants("item_ids")
	if err != nil {
		return nil, err
	}

	var itemIDs map[int]string
	if err := json.Unmarshal(body, &itemIDs); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return itemIDs, nil
}

// ItemPopularity fetches per-phase purchase counters for one hero.
// Fetched fresh on every hero selection, never cached.
func (c *Client) ItemPopularity(heroID int) (*ItemPopularity, error) {
	body, err := c.doRequest(fmt.Sprintf("%s/heroes/%d/itemPopularity", c.baseURL, heroID))
	if err != nil {
		log.Printf("Error fetching item popularity for hero %d: %v", heroID, err)
		return nil, err
	}

	var pop ItemPopularity
	if err := json.Unmarshal(body, &pop); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &pop, nil
}
