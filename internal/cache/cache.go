package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/neexbeast/hotel-search/internal/hotels"
)

// defaultTTL matches the Cache-Control max-age advertised to callers.
const defaultTTL = 3600 * time.Second

// Connect parses redisURL, creates a client, and verifies connectivity with
// a ping.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return client, nil
}

// Cache wraps a Redis client and provides typed get/set for upstream search
// results, keyed by location identifier — the only variable of the outbound
// request. Caching here is an optimization: callers must treat every cache
// failure as a miss.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache with a 3600-second TTL.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client, ttl: defaultTTL}
}

// key returns the Redis key for the given location.
func key(locationID int) string {
	return "hotels:search:" + strconv.Itoa(locationID)
}

// Get retrieves a cached search result.
// Returns nil, nil on a cache miss (not an error).
func (c *Cache) Get(ctx context.Context, locationID int) (*hotels.SearchResult, error) {
	val, err := c.client.Get(ctx, key(locationID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get for location %d: %w", locationID, err)
	}

	var result hotels.SearchResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return nil, fmt.Errorf("unmarshaling cached result for location %d: %w", locationID, err)
	}

	return &result, nil
}

// Set stores a search result with the configured TTL.
func (c *Cache) Set(ctx context.Context, locationID int, result *hotels.SearchResult) error {
	if result == nil {
		return nil
	}

	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling result for location %d: %w", locationID, err)
	}

	if err := c.client.Set(ctx, key(locationID), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for location %d: %w", locationID, err)
	}

	return nil
}
