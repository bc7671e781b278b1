package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"deliverytech/internal/models"
)

// ProductCache is a read-through Redis cache for catalog products. A miss or
// any Redis failure falls back to the database; writes invalidate.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProductCache creates a product cache with the given TTL.
func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{client: client, ttl: ttl}
}

func (c *ProductCache) key(productID int64) string {
	return "product:" + strconv.FormatInt(productID, 10)
}

// Get returns the cached product, or ok=false on miss or Redis error.
func (c *ProductCache) Get(ctx context.Context, productID int64) (*models.Product, bool) {
	data, err := c.client.Get(ctx, c.key(productID)).Bytes()
	if err != nil {
		return nil, false
	}

	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, false
	}
	return &product, true
}

// Set stores the product with the configured TTL.
func (c *ProductCache) Set(ctx context.Context, product *models.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(product.ID), data, c.ttl).Err()
}

// Invalidate drops the cached entry for a product.
func (c *ProductCache) Invalidate(ctx context.Context, productID int64) error {
	return c.client.Del(ctx, c.key(productID)).Err()
}

// Ping checks the Redis connection.
func (c *ProductCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
