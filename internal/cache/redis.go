package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"food_order/internal/model"

	"github.com/redis/go-redis/v9"
)

const productsKey = "food_order:products:all"

// ProductCache keeps the catalog listing in Redis
type ProductCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// Connect opens a Redis client and checks it answers
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", addr, err)
	}
	return rdb, nil
}

// NewProductCache creates a ProductCache with entries expiring after ttl
func NewProductCache(rdb *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{rdb: rdb, ttl: ttl}
}

// GetProducts returns the cached listing; ok is false on a miss
func (c *ProductCache) GetProducts(ctx context.Context) ([]model.Product, bool, error) {
	data, err := c.rdb.Get(ctx, productsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached products: %w", err)
	}
	return products, true, nil
}

// SetProducts stores the listing
func (c *ProductCache) SetProducts(ctx context.Context, products []model.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, productsKey, data, c.ttl).Err()
}
