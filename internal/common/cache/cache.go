package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"meowtool-backend/internal/platform/redis"
)

// Service is a small JSON cache on top of Redis. Only public place metadata
// is ever stored here; session tokens and account data are never cached.
type Service struct {
	client *redis.Client
}

func NewService(client *redis.Client) *Service {
	return &Service{client: client}
}

// Get reads a cached value into dest. Returns an error on miss.
func (c *Service) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(data), dest)
}

// Set stores a value under key with the given TTL.
func (c *Service) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return c.client.Set(ctx, key, string(data), ttl).Err()
}

// Delete removes a key.
func (c *Service) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// InvalidatePlace drops both cached metadata variants for a place.
func (c *Service) InvalidatePlace(ctx context.Context, placeID int64) error {
	keys := []string{
		fmt.Sprintf("place:gamepasses:%d", placeID),
		fmt.Sprintf("place:badges:%d", placeID),
	}

	return c.client.Del(ctx, keys...).Err()
}
