package services

import (
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
)

// PriceResolution is the outcome of resolving the unit price of a new order.
type PriceResolution struct {
	// Price is the unit price the new order must use.
	Price kernel.Price

	// Reused is true when an earlier order of the same article fixed the price.
	Reused bool

	// Overridden is true when the reused price differs from the submitted one.
	Overridden bool
}

// ArticlePricer applies the rule that the first order ever created for an article
// fixes that article's price for every later order. Canceled orders still count as
// precedent. Overrides are silent: they are reported, never rejected.
//
// Example usage:
//
//	pricer := services.NewArticlePricer()
//	precedent, _ := repo.FindFirstByArticle(ctx, "Pen")
//	res, err := pricer.Resolve(submitted, services.PrecedentPrice(precedent))
//	if err != nil {
//	    return err
//	}
//	o, err := order.NewOrder(customer, "Pen", res.Price, qty, today)
type ArticlePricer struct{}

func NewArticlePricer() ArticlePricer {
	return ArticlePricer{}
}

// Resolve returns the precedent price when there is one and the submitted price otherwise.
func (ArticlePricer) Resolve(submitted kernel.Price, precedent *kernel.Price) (PriceResolution, error) {
	if err := submitted.Validate(); err != nil {
		return PriceResolution{}, err
	}

	if precedent == nil {
		return PriceResolution{Price: submitted}, nil
	}

	if err := precedent.Validate(); err != nil {
		return PriceResolution{}, fmt.Errorf("precedent price: %w", err)
	}

	return PriceResolution{
		Price:      *precedent,
		Reused:     true,
		Overridden: !precedent.IsEqual(submitted),
	}, nil
}

// PrecedentPrice extracts the price of an existing order, or nil when there is none.
func PrecedentPrice(existing *order.Order) *kernel.Price {
	if existing == nil {
		return nil
	}
	p := existing.Price()
	return &p
}
