package ports

import (
	"context"

	"sales/internal/core/domain/model/order"
)

// OrderEventPublisher announces committed order changes to other systems.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, kind order.ChangeKind, aggregate *order.Order) error
}
