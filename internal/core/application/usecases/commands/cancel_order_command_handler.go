package commands

import (
	"context"
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"

	"github.com/sirupsen/logrus"
)

// CancelOrderCommandHandler moves an Active order to Canceled and stamps today's date.
//
// Errors:
//   - errs.ErrObjectNotFound when the order does not exist
//   - order.ErrOrderIsAlreadyCanceled when it was canceled before
//   - errs.ErrStorageIsUnavailable on storage failures
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	metrics    ports.OrderMetrics
	clock      kernel.Clock
	logger     *logrus.Entry
}

func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	metrics ports.OrderMetrics,
	clock kernel.Clock,
	logger *logrus.Entry,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisherOrDefault(publisher),
		metrics:    metricsOrDefault(metrics),
		clock:      clockOrDefault(clock),
		logger:     loggerOrDefault(logger).WithField("handler", "cancel_order"),
	}
}

// Handle cancels the order and returns it in its new state.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, storageError("get order", err)
	}

	if err = o.Cancel(kernel.Today(h.clock)); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		if errors.Is(err, order.ErrOrderIsAlreadyCanceled) {
			return nil, err
		}
		return nil, storageError("update order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, storageError("commit", err)
	}

	h.metrics.OrderCanceled()
	publishAll(ctx, h.publisher, h.logger, order.ChangeCanceled, uow.TrackedOrders()...)
	h.logger.WithField("order_id", o.ID()).Info("order canceled")

	return o, nil
}
