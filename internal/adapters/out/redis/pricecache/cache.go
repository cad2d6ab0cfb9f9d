// Package pricecache keeps the fixed unit price of each article in Redis so that
// price reuse lookups can skip the orders table.
package pricecache

import (
	"context"
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const articlePriceKeyPrefix = "sales:article-price:"

type RedisArticlePriceCache struct {
	client *redis.Client
}

func NewRedisArticlePriceCache(client *redis.Client) *RedisArticlePriceCache {
	return &RedisArticlePriceCache{client: client}
}

// Get returns nil on a miss.
func (c *RedisArticlePriceCache) Get(ctx context.Context, articleName string) (*kernel.Price, error) {
	raw, err := c.client.Get(ctx, articlePriceKey(articleName)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("cached price of %q: %w", articleName, err)
	}

	price, err := kernel.NewPrice(amount)
	if err != nil {
		return nil, fmt.Errorf("cached price of %q: %w", articleName, err)
	}

	return &price, nil
}

// Remember stores the price without expiry, keeping an existing entry untouched.
func (c *RedisArticlePriceCache) Remember(ctx context.Context, articleName string, price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}

	return c.client.SetNX(ctx, articlePriceKey(articleName), price.String(), 0).Err()
}

func articlePriceKey(articleName string) string {
	return articlePriceKeyPrefix + articleName
}
