// Package ports defines the contracts between the sales order core and its
// infrastructure: storage, price cache, event publishing and metrics.
package ports

import (
	"context"

	"sales/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and assigns the storage-generated identifier to it.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the cancelation state of an existing order.
	// Returns an errs.ObjectNotFoundError if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier.
	// Returns an errs.ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// FindFirstByArticle returns the earliest order, canceled or not, with the given
	// article name. Returns (nil, nil) when the article has never been ordered.
	FindFirstByArticle(ctx context.Context, articleName string) (*order.Order, error)

	// LockArticles serializes price resolution for the given articles until the
	// surrounding transaction ends. Callers pass the names in a stable order.
	LockArticles(ctx context.Context, articleNames []string) error
}
