// Package queries contains read-only operations over sales orders.
// Query handlers read straight from the database and return presentation
// records instead of domain aggregates.
package queries

import (
	"database/sql"

	"sales/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// orderColumns lists the columns scanned by scanOrderView, in order.
const orderColumns = `id, creation_date, cancelation_date, customer_name, article_name, price, quantity`

// OrderView is the presentation record of an order: its stored fields plus
// the derived subtotal, tax and total.
type OrderView struct {
	ID              int64
	CreationDate    string
	CancelationDate *string
	CustomerName    string
	ArticleName     string
	Price           decimal.Decimal
	Quantity        int
	Subtotal        decimal.Decimal
	Tax             decimal.Decimal
	Total           decimal.Decimal
}

// NewOrderView builds the presentation record of an order aggregate.
func NewOrderView(o *order.Order) OrderView {
	v := OrderView{
		ID:           o.ID(),
		CreationDate: o.CreationDate().String(),
		CustomerName: o.CustomerName(),
		ArticleName:  o.ArticleName(),
		Price:        o.Price().Amount(),
		Quantity:     o.Quantity(),
	}
	if d := o.CancelationDate(); d != nil {
		s := d.String()
		v.CancelationDate = &s
	}
	v.applyPricing()
	return v
}

// IsCanceled reports whether the order has a cancelation date.
func (v OrderView) IsCanceled() bool {
	return v.CancelationDate != nil
}

func (v *OrderView) applyPricing() {
	p := order.ComputePricing(v.Price, v.Quantity)
	v.Subtotal = p.Subtotal
	v.Tax = p.Tax
	v.Total = p.Total
}

func scanOrderView(rows *sql.Rows) (OrderView, error) {
	var (
		v          OrderView
		cancelDate sql.NullString
	)

	if err := rows.Scan(
		&v.ID,
		&v.CreationDate,
		&cancelDate,
		&v.CustomerName,
		&v.ArticleName,
		&v.Price,
		&v.Quantity,
	); err != nil {
		return OrderView{}, err
	}

	if cancelDate.Valid {
		s := cancelDate.String
		v.CancelationDate = &s
	}
	v.applyPricing()
	return v, nil
}

func scanOrderViews(rows *sql.Rows) ([]OrderView, error) {
	views := make([]OrderView, 0)
	for rows.Next() {
		v, err := scanOrderView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
