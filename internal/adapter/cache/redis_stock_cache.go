package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/brinepantry/inventory/internal/domain"
	"github.com/brinepantry/inventory/internal/ports"
)

const stockKeyPrefix = "stock:"

// RedisStockCache implements StockCache backed by Redis. Entries carry a TTL
// and are invalidated after every write, so a stale read window is bounded
// even if an invalidation is lost.
type RedisStockCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStockCache creates a new Redis stock cache
func NewRedisStockCache(client *redis.Client, ttl time.Duration) ports.StockCache {
	return &RedisStockCache{client: client, ttl: ttl}
}

// GetStockLevel returns the cached level and whether it was present
func (c *RedisStockCache) GetStockLevel(ctx context.Context, productID string) (*domain.StockLevel, bool, error) {
	data, err := c.client.Get(ctx, stockKeyPrefix+productID).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read stock cache: %w", err)
	}

	var level domain.StockLevel
	if err := json.Unmarshal(data, &level); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached stock level: %w", err)
	}

	return &level, true, nil
}

// SetStockLevel stores the level for a product
func (c *RedisStockCache) SetStockLevel(ctx context.Context, productID string, level domain.StockLevel) error {
	data, err := json.Marshal(level)
	if err != nil {
		return fmt.Errorf("failed to encode stock level: %w", err)
	}

	if err := c.client.Set(ctx, stockKeyPrefix+productID, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write stock cache: %w", err)
	}

	return nil
}

// Invalidate drops the cached level for a product
func (c *RedisStockCache) Invalidate(ctx context.Context, productID string) error {
	if err := c.client.Del(ctx, stockKeyPrefix+productID).Err(); err != nil {
		return fmt.Errorf("failed to invalidate stock cache: %w", err)
	}
	return nil
}
