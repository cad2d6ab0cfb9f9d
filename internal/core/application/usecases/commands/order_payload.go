package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Payload field names.
const (
	FieldCustomerName = "customer_name"
	FieldArticleName  = "article_name"
	FieldPrice        = "price"
	FieldQuantity     = "quantity"
)

var requiredFields = []string{FieldCustomerName, FieldArticleName, FieldPrice, FieldQuantity}

// Validation error kinds of a create batch. Every returned error wraps exactly one of them.
var (
	ErrInvalidFormat = errors.New("invalid data format, expected a non-empty list of orders")
	ErrMissingField  = errors.New("missing required fields in an order")
	ErrInvalidType   = errors.New("price must be a number and quantity must be an integer")
	ErrInvalidValue  = errors.New("price and quantity must be positive numbers")
)

// OrderPayload is one candidate order as decoded from a JSON object.
// Decoders should call json.Decoder.UseNumber so that integer and decimal
// literals can be told apart.
type OrderPayload map[string]any

// OrderDraft is a payload that passed validation.
type OrderDraft struct {
	CustomerName string
	ArticleName  string
	Price        kernel.Price
	Quantity     int
}

// ValidateOrderPayloads checks payloads in order and stops at the first failing one.
// Within a payload missing fields are reported before wrong types, and wrong types
// before invalid values.
func ValidateOrderPayloads(payloads []OrderPayload) ([]OrderDraft, error) {
	if len(payloads) == 0 {
		return nil, ErrInvalidFormat
	}

	drafts := make([]OrderDraft, 0, len(payloads))
	for i, p := range payloads {
		d, err := validateOrderPayload(i, p)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}

	return drafts, nil
}

func validateOrderPayload(index int, p OrderPayload) (OrderDraft, error) {
	if p == nil {
		return OrderDraft{}, fmt.Errorf("%w: item %d is not an object", ErrInvalidFormat, index)
	}

	for _, field := range requiredFields {
		if _, ok := p[field]; !ok {
			return OrderDraft{}, fmt.Errorf("%w: item %d: %w", ErrMissingField, index, errs.NewValueIsRequiredError(field))
		}
	}

	price, err := decimalOf(p[FieldPrice])
	if err != nil {
		return OrderDraft{}, typeError(index, FieldPrice, err)
	}

	quantity, quantityErr := integerOf(p[FieldQuantity])
	if quantityErr != nil && !errors.Is(quantityErr, strconv.ErrRange) {
		return OrderDraft{}, typeError(index, FieldQuantity, quantityErr)
	}

	customer, ok := p[FieldCustomerName].(string)
	if !ok {
		return OrderDraft{}, typeError(index, FieldCustomerName, errors.New("must be a string"))
	}

	article, ok := p[FieldArticleName].(string)
	if !ok {
		return OrderDraft{}, typeError(index, FieldArticleName, errors.New("must be a string"))
	}

	amount, err := kernel.NewPrice(price)
	if err != nil {
		return OrderDraft{}, fmt.Errorf("%w: item %d: %w", ErrInvalidValue, index, err)
	}

	if quantityErr != nil {
		return OrderDraft{}, valueError(index, FieldQuantity, quantityErr)
	}
	if quantity <= 0 {
		return OrderDraft{}, valueError(index, FieldQuantity, fmt.Errorf("%d is not greater than 0", quantity))
	}

	if err := checkRenderable(amount.Amount(), quantity); err != nil {
		return OrderDraft{}, valueError(index, FieldPrice, err)
	}

	if strings.TrimSpace(customer) == "" {
		return OrderDraft{}, valueError(index, FieldCustomerName, errors.New("must not be empty"))
	}
	if strings.TrimSpace(article) == "" {
		return OrderDraft{}, valueError(index, FieldArticleName, errors.New("must not be empty"))
	}

	return OrderDraft{
		CustomerName: customer,
		ArticleName:  article,
		Price:        amount,
		Quantity:     quantity,
	}, nil
}

func typeError(index int, field string, cause error) error {
	return fmt.Errorf("%w: item %d: %w", ErrInvalidType, index, errs.NewValueIsInvalidErrorWithCause(field, cause))
}

func valueError(index int, field string, cause error) error {
	return fmt.Errorf("%w: item %d: %w", ErrInvalidValue, index, errs.NewValueIsInvalidErrorWithCause(field, cause))
}

// checkRenderable rejects prices whose record fields cannot be written as
// finite, non-zero JSON numbers.
func checkRenderable(price decimal.Decimal, quantity int) error {
	p := order.ComputePricing(price, quantity)
	for _, v := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"price", price},
		{"subtotal", p.Subtotal},
		{"tax", p.Tax},
		{"total", p.Total},
	} {
		f := v.value.InexactFloat64()
		if f == 0 || math.IsInf(f, 0) || math.IsNaN(f) {
			return fmt.Errorf("%s %s is out of range", v.name, v.value.String())
		}
	}
	return nil
}

func decimalOf(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case json.Number:
		return decimal.NewFromString(n.String())
	case float64:
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%T is not a number", v)
	}
}

// integerOf accepts integer literals only, so 3.0 and 1e2 are rejected.
// An out-of-range literal yields an error wrapping strconv.ErrRange.
func integerOf(v any) (int, error) {
	switch n := v.(type) {
	case json.Number:
		return strconv.Atoi(n.String())
	case int:
		return n, nil
	case int64:
		if int64(int(n)) != n {
			return 0, fmt.Errorf("%d: %w", n, strconv.ErrRange)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%T is not an integer", v)
	}
}
