package services_test

import (
	"testing"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(t *testing.T, s string) kernel.Price {
	t.Helper()
	p, err := kernel.NewPrice(decimal.RequireFromString(s))
	require.NoError(t, err)
	return p
}

func TestArticlePricer_Resolve(t *testing.T) {
	pricer := services.NewArticlePricer()

	t.Run("keeps the submitted price when the article is new", func(t *testing.T) {
		res, err := pricer.Resolve(price(t, "99"), nil)

		require.NoError(t, err)
		assert.True(t, res.Price.IsEqual(price(t, "99")))
		assert.False(t, res.Reused)
		assert.False(t, res.Overridden)
	})

	t.Run("silently overrides with the precedent price", func(t *testing.T) {
		precedent := price(t, "2.0")

		res, err := pricer.Resolve(price(t, "99"), &precedent)

		require.NoError(t, err)
		assert.True(t, res.Price.IsEqual(precedent))
		assert.True(t, res.Reused)
		assert.True(t, res.Overridden)
	})

	t.Run("equal precedent is reused but not an override", func(t *testing.T) {
		precedent := price(t, "2.00")

		res, err := pricer.Resolve(price(t, "2"), &precedent)

		require.NoError(t, err)
		assert.True(t, res.Reused)
		assert.False(t, res.Overridden)
	})

	t.Run("rejects an unconstructed submitted price", func(t *testing.T) {
		_, err := pricer.Resolve(kernel.Price{}, nil)

		require.ErrorIs(t, err, kernel.ErrPriceIsNotConstructed)
	})

	t.Run("rejects an unconstructed precedent", func(t *testing.T) {
		precedent := kernel.Price{}

		_, err := pricer.Resolve(price(t, "1"), &precedent)

		require.ErrorIs(t, err, kernel.ErrPriceIsNotConstructed)
	})
}

func TestPrecedentPrice(t *testing.T) {
	assert.Nil(t, services.PrecedentPrice(nil))

	today, err := kernel.ParseDate("05/01/2024")
	require.NoError(t, err)
	canceled, err := order.NewOrder("Ana", "Pen", price(t, "2"), 1, today)
	require.NoError(t, err)
	require.NoError(t, canceled.Cancel(today))

	p := services.PrecedentPrice(canceled)

	require.NotNil(t, p)
	assert.True(t, p.IsEqual(price(t, "2")))
}
