package queries

import (
	"context"
	"errors"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrCountOrdersByStatusQueryIsNotConstructed = errors.New(
	"CountOrdersByStatusQuery must be created via NewCountOrdersByStatusQuery constructor",
)

// CountOrdersByStatusQuery totals orders per lifecycle status.
type CountOrdersByStatusQuery struct {
	guard guard.ConstructorGuard
}

func NewCountOrdersByStatusQuery() CountOrdersByStatusQuery {
	return CountOrdersByStatusQuery{guard: guard.NewConstructorGuard()}
}

func (q CountOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersByStatusQueryIsNotConstructed)
}

type OrderStatusCounts struct {
	Active   int64
	Canceled int64
}

type CountOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

func NewCountOrdersByStatusQueryHandler(db *gorm.DB) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{db: db}
}

func (h CountOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersByStatusQuery,
) (OrderStatusCounts, error) {
	if err := query.Validate(); err != nil {
		return OrderStatusCounts{}, err
	}

	var counts OrderStatusCounts
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE cancelation_date IS NULL),
			COUNT(*) FILTER (WHERE cancelation_date IS NOT NULL)
		FROM orders
	`).Row().Scan(&counts.Active, &counts.Canceled)
	if err != nil {
		return OrderStatusCounts{}, errs.NewStorageUnavailableError("count orders", err)
	}

	return counts, nil
}
