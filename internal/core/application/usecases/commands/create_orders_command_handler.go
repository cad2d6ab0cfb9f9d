package commands

import (
	"context"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/services"
	"sales/internal/core/ports"

	"github.com/sirupsen/logrus"
)

// CreateOrdersCommandHandler persists a validated batch of orders in one transaction.
//
// Articles of the batch are locked before any price is resolved, so two batches
// naming the same article cannot both become its first order. Each order takes the
// price of the first order ever created for its article, including orders created
// earlier in the same batch.
//
// Example:
//
//	handler := NewCreateOrdersCommandHandler(uowFactory, cache, publisher, metrics, kernel.SystemClock{}, logger)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("batch rejected: %w", err)
//	}
//	for _, o := range created {
//	    fmt.Println(o.ID(), o.Pricing().Total)
//	}
type CreateOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	priceCache ports.ArticlePriceCache
	publisher  ports.OrderEventPublisher
	metrics    ports.OrderMetrics
	clock      kernel.Clock
	pricer     services.ArticlePricer
	logger     *logrus.Entry
}

// NewCreateOrdersCommandHandler creates a handler for batch creation.
// priceCache, publisher, metrics, clock and logger may be nil.
func NewCreateOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	priceCache ports.ArticlePriceCache,
	publisher ports.OrderEventPublisher,
	metrics ports.OrderMetrics,
	clock kernel.Clock,
	logger *logrus.Entry,
) CreateOrdersCommandHandler {
	return CreateOrdersCommandHandler{
		uowFactory: uowFactory,
		priceCache: cacheOrDefault(priceCache),
		publisher:  publisherOrDefault(publisher),
		metrics:    metricsOrDefault(metrics),
		clock:      clockOrDefault(clock),
		pricer:     services.NewArticlePricer(),
		logger:     loggerOrDefault(logger).WithField("handler", "create_orders"),
	}
}

// Handle creates every order of the batch or none of them.
// Returned orders carry their storage-assigned identifiers.
func (h *CreateOrdersCommandHandler) Handle(ctx context.Context, cmd CreateOrdersCommand) ([]*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, storageError("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if err := orderRepo.LockArticles(ctx, cmd.ArticleNames()); err != nil {
		return nil, storageError("lock articles", err)
	}

	today := kernel.Today(h.clock)
	drafts := cmd.Drafts()
	created := make([]*order.Order, 0, len(drafts))
	resolutions := make([]services.PriceResolution, 0, len(drafts))

	for _, d := range drafts {
		precedent, err := h.precedentPrice(ctx, orderRepo, d.ArticleName)
		if err != nil {
			return nil, err
		}

		resolution, err := h.pricer.Resolve(d.Price, precedent)
		if err != nil {
			return nil, err
		}

		o, err := order.NewOrder(d.CustomerName, d.ArticleName, resolution.Price, d.Quantity, today)
		if err != nil {
			return nil, err
		}

		if err = orderRepo.Add(ctx, o); err != nil {
			return nil, storageError("add order", err)
		}

		created = append(created, o)
		resolutions = append(resolutions, resolution)
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, storageError("commit", err)
	}

	h.afterCommit(ctx, uow, created, resolutions)
	return created, nil
}

// precedentPrice consults the cache first and falls back to storage on a miss or a cache failure.
func (h *CreateOrdersCommandHandler) precedentPrice(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	articleName string,
) (*kernel.Price, error) {
	cached, err := h.priceCache.Get(ctx, articleName)
	if err != nil {
		h.logger.WithError(err).WithField("article_name", articleName).Warn("price cache lookup failed")
	} else if cached != nil {
		return cached, nil
	}

	first, err := orderRepo.FindFirstByArticle(ctx, articleName)
	if err != nil {
		return nil, storageError("find first order by article", err)
	}

	return services.PrecedentPrice(first), nil
}

func (h *CreateOrdersCommandHandler) afterCommit(
	ctx context.Context,
	tracker AggregateTracker,
	created []*order.Order,
	resolutions []services.PriceResolution,
) {
	remembered := make(map[string]struct{}, len(created))
	for i, o := range created {
		if resolutions[i].Reused {
			h.metrics.PriceReused(resolutions[i].Overridden)
		}

		if _, ok := remembered[o.ArticleName()]; ok {
			continue
		}
		remembered[o.ArticleName()] = struct{}{}

		if err := h.priceCache.Remember(ctx, o.ArticleName(), o.Price()); err != nil {
			h.logger.WithError(err).WithField("article_name", o.ArticleName()).Warn("failed to cache article price")
		}
	}

	h.metrics.OrdersCreated(len(created))
	publishAll(ctx, h.publisher, h.logger, order.ChangeCreated, tracker.TrackedOrders()...)

	h.logger.WithField("count", len(created)).Info("orders created")
}
