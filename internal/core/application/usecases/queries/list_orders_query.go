package queries

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)

	// ErrInvalidDateFormat is wrapped by every date parsing failure of NewListOrdersQuery.
	ErrInvalidDateFormat = kernel.ErrDateFormatIsInvalid
)

// ListOrdersQuery retrieves all orders, optionally restricted to a closed range
// of creation dates. The range applies only when both bounds are given.
//
// Example:
//
//	query, err := NewListOrdersQuery("01/03/2024", "31/03/2024")
//	if err != nil {
//	    return err // wraps ErrInvalidDateFormat
//	}
//	views, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	startDate string
	endDate   string
	start     kernel.Date
	end       kernel.Date

	guard guard.ConstructorGuard
}

// NewListOrdersQuery validates the optional bounds. An empty string means the
// bound is absent; a present bound must parse as dd/mm/yyyy.
func NewListOrdersQuery(startDate, endDate string) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		startDate: startDate,
		endDate:   endDate,
		guard:     guard.NewConstructorGuard(),
	}

	if startDate != "" {
		d, err := kernel.ParseDate(startDate)
		if err != nil {
			return ListOrdersQuery{}, fmt.Errorf("start_date: %w", err)
		}
		q.start = d
	}

	if endDate != "" {
		d, err := kernel.ParseDate(endDate)
		if err != nil {
			return ListOrdersQuery{}, fmt.Errorf("end_date: %w", err)
		}
		q.end = d
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// HasRange reports whether both bounds were given.
func (q ListOrdersQuery) HasRange() bool {
	return q.startDate != "" && q.endDate != ""
}

// RawBounds returns the bounds exactly as submitted.
func (q ListOrdersQuery) RawBounds() (string, string) {
	return q.startDate, q.endDate
}

// Bounds returns the parsed bounds. They are meaningful only when HasRange is true.
func (q ListOrdersQuery) Bounds() (kernel.Date, kernel.Date) {
	return q.start, q.end
}
