package order_test

import (
	"testing"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T, s string) kernel.Price {
	t.Helper()
	p, err := kernel.NewPrice(decimal.RequireFromString(s))
	require.NoError(t, err)
	return p
}

func mustDate(t *testing.T, s string) kernel.Date {
	t.Helper()
	d, err := kernel.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestNewOrder(t *testing.T) {
	validPrice := mustPrice(t, "2.0")
	today := mustDate(t, "05/01/2024")

	t.Run("should create active order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder("Ana", "Pen", validPrice, 3, today)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(0), o.ID())
		assert.False(t, o.IsPersisted())
		assert.Equal(t, "Ana", o.CustomerName())
		assert.Equal(t, "Pen", o.ArticleName())
		assert.True(t, o.Price().IsEqual(validPrice))
		assert.Equal(t, 3, o.Quantity())
		assert.True(t, o.CreationDate().IsEqual(today))
		assert.Nil(t, o.CancelationDate())
		assert.Equal(t, order.Active, o.Status())
		assert.False(t, o.IsCanceled())
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		o, err := order.NewOrder("Ana", "Pen", validPrice, 0, today)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		o, err := order.NewOrder("Ana", "Pen", validPrice, -5, today)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "-5 is not greater than 0")
	})

	t.Run("should fail with blank names", func(t *testing.T) {
		o, err := order.NewOrder("  ", "", validPrice, 1, today)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customer_name is invalid")
		assert.Contains(t, err.Error(), "article_name is invalid")
	})

	t.Run("should fail with unconstructed price and date", func(t *testing.T) {
		o, err := order.NewOrder("Ana", "Pen", kernel.Price{}, 1, kernel.Date{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, kernel.ErrPriceIsNotConstructed)
		assert.ErrorIs(t, err, kernel.ErrDateIsNotConstructed)
	})
}

func TestOrder_Validate(t *testing.T) {
	var o *order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

	require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_AssignID(t *testing.T) {
	o, err := order.NewOrder("Ana", "Pen", mustPrice(t, "2"), 1, mustDate(t, "05/01/2024"))
	require.NoError(t, err)

	require.Error(t, o.AssignID(0))
	require.NoError(t, o.AssignID(42))
	assert.Equal(t, int64(42), o.ID())
	assert.True(t, o.IsPersisted())

	err = o.AssignID(43)
	require.ErrorIs(t, err, order.ErrOrderIDIsAlreadyAssigned)
	assert.Equal(t, int64(42), o.ID())
}

func TestOrder_Cancel(t *testing.T) {
	created := mustDate(t, "05/01/2024")
	firstCancel := mustDate(t, "06/01/2024")
	secondCancel := mustDate(t, "07/01/2024")

	t.Run("should cancel an active order once", func(t *testing.T) {
		o, err := order.NewOrder("Ana", "Pen", mustPrice(t, "2"), 1, created)
		require.NoError(t, err)

		require.NoError(t, o.Cancel(firstCancel))

		assert.Equal(t, order.Canceled, o.Status())
		assert.True(t, o.IsCanceled())
		require.NotNil(t, o.CancelationDate())
		assert.Equal(t, "06/01/2024", o.CancelationDate().String())
	})

	t.Run("second cancel keeps the first cancelation date", func(t *testing.T) {
		o, err := order.NewOrder("Ana", "Pen", mustPrice(t, "2"), 1, created)
		require.NoError(t, err)
		require.NoError(t, o.Cancel(firstCancel))

		err = o.Cancel(secondCancel)

		require.ErrorIs(t, err, order.ErrOrderIsAlreadyCanceled)
		assert.Equal(t, "06/01/2024", o.CancelationDate().String())
	})

	t.Run("should reject an unconstructed date", func(t *testing.T) {
		o, err := order.NewOrder("Ana", "Pen", mustPrice(t, "2"), 1, created)
		require.NoError(t, err)

		require.ErrorIs(t, o.Cancel(kernel.Date{}), kernel.ErrDateIsNotConstructed)
		assert.False(t, o.IsCanceled())
	})

	t.Run("returned cancelation date is a copy", func(t *testing.T) {
		o, err := order.NewOrder("Ana", "Pen", mustPrice(t, "2"), 1, created)
		require.NoError(t, err)
		require.NoError(t, o.Cancel(firstCancel))

		d := o.CancelationDate()
		*d = kernel.DateOf(time.Date(2030, time.May, 1, 0, 0, 0, 0, time.UTC))

		assert.Equal(t, "06/01/2024", o.CancelationDate().String())
	})
}

func TestRestoreOrder(t *testing.T) {
	created := mustDate(t, "05/01/2024")
	canceled := mustDate(t, "10/01/2024")

	t.Run("restores an active order", func(t *testing.T) {
		o, err := order.RestoreOrder(7, created, nil, "Lee", "Pen", mustPrice(t, "2"), 1)

		require.NoError(t, err)
		assert.Equal(t, int64(7), o.ID())
		assert.Equal(t, order.Active, o.Status())
	})

	t.Run("restores a canceled order", func(t *testing.T) {
		o, err := order.RestoreOrder(8, created, &canceled, "Lee", "Pen", mustPrice(t, "2"), 1)

		require.NoError(t, err)
		assert.Equal(t, order.Canceled, o.Status())
		assert.Equal(t, "10/01/2024", o.CancelationDate().String())
	})

	t.Run("rejects a non-positive id", func(t *testing.T) {
		o, err := order.RestoreOrder(0, created, nil, "Lee", "Pen", mustPrice(t, "2"), 1)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}
