package ports

import (
	"context"

	"sales/internal/core/domain/model/kernel"
)

// ArticlePriceCache keeps the fixed price of articles that already have orders.
// An article's price never changes once set, so entries need no invalidation.
type ArticlePriceCache interface {
	// Get returns the cached price, or nil on a miss.
	Get(ctx context.Context, articleName string) (*kernel.Price, error)

	// Remember stores the price unless the article already has one.
	Remember(ctx context.Context, articleName string, price kernel.Price) error
}
