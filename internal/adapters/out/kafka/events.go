// Package kafka publishes committed order changes to a Kafka topic.
package kafka

import (
	"time"

	"sales/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderChangedEvent is the JSON value of every message on the order-changed topic.
type OrderChangedEvent struct {
	EventID      string    `json:"event_id"`
	EventType    string    `json:"event_type"`
	OrderID      int64     `json:"order_id"`
	ArticleName  string    `json:"article_name"`
	CustomerName string    `json:"customer_name"`
	Price        float64   `json:"price"`
	Quantity     int       `json:"quantity"`
	Total        float64   `json:"total"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// NewOrderChangedEvent snapshots the order at the moment of the change.
func NewOrderChangedEvent(kind order.ChangeKind, o *order.Order, occurredAt time.Time) OrderChangedEvent {
	return OrderChangedEvent{
		EventID:      uuid.NewString(),
		EventType:    string(kind),
		OrderID:      o.ID(),
		ArticleName:  o.ArticleName(),
		CustomerName: o.CustomerName(),
		Price:        o.Price().Amount().InexactFloat64(),
		Quantity:     o.Quantity(),
		Total:        o.Pricing().Total.InexactFloat64(),
		OccurredAt:   occurredAt.UTC(),
	}
}
