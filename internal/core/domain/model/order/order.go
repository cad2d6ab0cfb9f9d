package order

import (
	"errors"
	"fmt"
	"strings"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDIsAlreadyAssigned is returned when storage tries to assign a second identifier.
	ErrOrderIDIsAlreadyAssigned = errors.New("order id is already assigned")
)

// Order is a single customer purchase of one article at a unit price.
//
// Order follows these invariants:
//   - Customer and article names are non-blank
//   - Price and quantity are positive and never change after creation
//   - The identifier is zero until storage assigns it, then immutable
//   - The cancelation date is absent while Active and fixed once Canceled
type Order struct {
	// id is assigned by storage on the first insert
	id int64

	// creationDate is the day the order was created
	creationDate kernel.Date

	// cancelationDate is nil until the order is canceled
	cancelationDate *kernel.Date

	customerName string

	// articleName groups orders that share one price
	articleName string

	// price is the unit price
	price kernel.Price

	quantity int

	status Status

	isConstructed bool
}

// NewOrder creates an Active order that has not been persisted yet.
//
// Example:
//
//	price, _ := kernel.NewPrice(decimal.RequireFromString("2.0"))
//	o, err := order.NewOrder("Ana", "Pen", price, 3, kernel.Today(kernel.SystemClock{}))
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(o.Pricing().Total) // 6.96
func NewOrder(
	customerName string,
	articleName string,
	price kernel.Price,
	quantity int,
	creationDate kernel.Date,
) (*Order, error) {
	o := &Order{
		status:        Active,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerName(customerName),
		o.setArticleName(articleName),
		o.setPrice(price),
		o.setQuantity(quantity),
		o.setCreationDate(creationDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order, including its cancelation state.
// It applies the same validation as NewOrder plus a positive identifier.
func RestoreOrder(
	id int64,
	creationDate kernel.Date,
	cancelationDate *kernel.Date,
	customerName string,
	articleName string,
	price kernel.Price,
	quantity int,
) (*Order, error) {
	o, err := NewOrder(customerName, articleName, price, quantity, creationDate)
	if err != nil {
		return nil, err
	}

	if err = o.AssignID(id); err != nil {
		return nil, err
	}

	if cancelationDate != nil {
		if err = o.Cancel(*cancelationDate); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// ID returns the storage-assigned identifier, or 0 before the first insert.
func (o *Order) ID() int64 {
	return o.id
}

// IsPersisted reports whether storage has assigned an identifier.
func (o *Order) IsPersisted() bool {
	return o.id != 0
}

// AssignID records the identifier chosen by storage. It can be called once.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return fmt.Errorf("%w: %d", ErrOrderIDIsAlreadyAssigned, o.id)
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}

	o.id = id
	return nil
}

func (o *Order) CreationDate() kernel.Date {
	return o.creationDate
}

// CancelationDate returns nil while the order is Active.
func (o *Order) CancelationDate() *kernel.Date {
	if o.cancelationDate == nil {
		return nil
	}
	d := *o.cancelationDate
	return &d
}

func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) ArticleName() string {
	return o.articleName
}

func (o *Order) Price() kernel.Price {
	return o.price
}

func (o *Order) Quantity() int {
	return o.quantity
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) IsCanceled() bool {
	return o.status == Canceled
}

// Pricing returns subtotal, tax and total for the order.
func (o *Order) Pricing() Pricing {
	return ComputePricing(o.price.Amount(), o.quantity)
}

// Cancel moves the order to Canceled and stamps the cancelation date.
//
// Returns ErrOrderIsAlreadyCanceled when the order was canceled before; in that
// case the existing cancelation date is left untouched.
func (o *Order) Cancel(on kernel.Date) error {
	if err := on.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelationDate = &on
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsInvalidErrorWithCause("customer_name is invalid", errors.New("must not be empty"))
	}
	o.customerName = name
	return nil
}

func (o *Order) setArticleName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsInvalidErrorWithCause("article_name is invalid", errors.New("must not be empty"))
	}
	o.articleName = name
	return nil
}

func (o *Order) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	o.price = price
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setCreationDate(d kernel.Date) error {
	if err := d.Validate(); err != nil {
		return err
	}
	o.creationDate = d
	return nil
}
