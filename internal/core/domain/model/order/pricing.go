package order

import "github.com/shopspring/decimal"

// TaxRatePercent is the fixed tax (IVA) applied to every subtotal.
const TaxRatePercent = 16

var (
	taxRate       = decimal.New(TaxRatePercent, -2)
	taxMultiplier = decimal.NewFromInt(1).Add(taxRate)
)

// Pricing holds the values derived from an order's price and quantity.
// None of them is stored.
type Pricing struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputePricing returns subtotal = price*quantity, tax = subtotal*0.16 and
// total = subtotal*1.16, all exact.
func ComputePricing(price decimal.Decimal, quantity int) Pricing {
	subtotal := price.Mul(decimal.NewFromInt(int64(quantity)))
	return Pricing{
		Subtotal: subtotal,
		Tax:      subtotal.Mul(taxRate),
		Total:    subtotal.Mul(taxMultiplier),
	}
}
