package queries

import (
	"context"

	"sales/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single presentation record.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order's presentation record.
// Returns an errs.ObjectNotFoundError if the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Rows()
	if err != nil {
		return OrderView{}, errs.NewStorageUnavailableError("get order", err)
	}
	defer rows.Close()

	views, err := scanOrderViews(rows)
	if err != nil {
		return OrderView{}, errs.NewStorageUnavailableError("get order", err)
	}

	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	return views[0], nil
}
