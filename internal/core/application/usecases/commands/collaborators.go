package commands

import (
	"context"
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
	"sales/internal/pkg/errs"

	"github.com/sirupsen/logrus"
)

// Optional collaborators fall back to these when the composition root passes nil.
type (
	noPriceCache struct{}
	noPublisher  struct{}
	noMetrics    struct{}
)

func (noPriceCache) Get(context.Context, string) (*kernel.Price, error) { return nil, nil }

func (noPriceCache) Remember(context.Context, string, kernel.Price) error { return nil }

func (noPublisher) PublishOrderChanged(context.Context, order.ChangeKind, *order.Order) error {
	return nil
}

func (noMetrics) OrdersCreated(int) {}

func (noMetrics) PriceReused(bool) {}

func (noMetrics) OrderCanceled() {}

func cacheOrDefault(c ports.ArticlePriceCache) ports.ArticlePriceCache {
	if c == nil {
		return noPriceCache{}
	}
	return c
}

func publisherOrDefault(p ports.OrderEventPublisher) ports.OrderEventPublisher {
	if p == nil {
		return noPublisher{}
	}
	return p
}

func metricsOrDefault(m ports.OrderMetrics) ports.OrderMetrics {
	if m == nil {
		return noMetrics{}
	}
	return m
}

func clockOrDefault(c kernel.Clock) kernel.Clock {
	if c == nil {
		return kernel.SystemClock{}
	}
	return c
}

func loggerOrDefault(l *logrus.Entry) *logrus.Entry {
	if l == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return l
}

// storageError reports infrastructure failures as StorageUnavailable while
// letting not-found and already-classified errors through.
func storageError(operation string, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, errs.ErrStorageIsUnavailable) {
		return err
	}
	return errs.NewStorageUnavailableError(operation, err)
}

// publishAll announces committed changes. Failures are logged, never returned.
func publishAll(
	ctx context.Context,
	publisher ports.OrderEventPublisher,
	logger *logrus.Entry,
	kind order.ChangeKind,
	orders ...*order.Order,
) {
	for _, o := range orders {
		if err := publisher.PublishOrderChanged(ctx, kind, o); err != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"order_id":   o.ID(),
				"event_type": string(kind),
			}).Warn("failed to publish order change")
		}
	}
}
