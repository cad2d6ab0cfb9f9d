package kernel

import (
	"fmt"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPriceIsNotConstructed is returned when a zero-value Price is used.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("price must be created via NewPrice")

// Price is a strictly positive unit price held as an exact decimal.
//
// Example:
//
//	p, err := kernel.NewPrice(decimal.RequireFromString("2.50"))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(p.Amount().Mul(decimal.NewFromInt(3))) // 7.5
type Price struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewPrice creates a Price. The amount must be greater than zero.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if !amount.IsPositive() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%s is not greater than 0", amount.String()),
		)
	}

	return Price{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Price was created through NewPrice.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Amount returns the exact decimal amount.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// IsEqual compares amounts numerically, so 2 and 2.00 are equal.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

func (p Price) String() string {
	return p.amount.String()
}
