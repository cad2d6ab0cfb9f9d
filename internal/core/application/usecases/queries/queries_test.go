package queries_test

import (
	"testing"

	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	query := queries.NewGetOrderQuery(5)
	require.NoError(t, query.Validate())
	assert.Equal(t, int64(5), query.OrderID())

	require.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("no bounds", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery("", "")
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.False(t, query.HasRange())
	})

	t.Run("one bound is not a range", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery("01/03/2024", "")
		require.NoError(t, err)
		assert.False(t, query.HasRange())
	})

	t.Run("both bounds", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery("1/3/2024", "31/03/2024")
		require.NoError(t, err)
		assert.True(t, query.HasRange())

		rawStart, rawEnd := query.RawBounds()
		assert.Equal(t, "1/3/2024", rawStart)
		assert.Equal(t, "31/03/2024", rawEnd)

		start, end := query.Bounds()
		assert.Equal(t, "01/03/2024", start.String())
		assert.Equal(t, "31/03/2024", end.String())
	})

	t.Run("invalid bounds", func(t *testing.T) {
		for _, tc := range []struct{ start, end string }{
			{"2024-03-01", ""},
			{"", "31/13/2024"},
			{"01/03/2024", "tomorrow"},
			{"30/02/2024", "01/03/2024"},
		} {
			query, err := queries.NewListOrdersQuery(tc.start, tc.end)
			require.ErrorIs(t, err, queries.ErrInvalidDateFormat, "%q..%q", tc.start, tc.end)
			require.ErrorIs(t, err, kernel.ErrDateFormatIsInvalid)
			require.ErrorIs(t, query.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
		}
	})
}

func TestParseDateRangeMode(t *testing.T) {
	for in, want := range map[string]queries.DateRangeMode{
		"":          queries.DateRangeLexical,
		"lexical":   queries.DateRangeLexical,
		"Calendar":  queries.DateRangeCalendar,
		" calendar": queries.DateRangeCalendar,
	} {
		got, err := queries.ParseDateRangeMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := queries.ParseDateRangeMode("chronological")
	require.Error(t, err)
}

func TestNewCountOrdersByStatusQuery(t *testing.T) {
	require.NoError(t, queries.NewCountOrdersByStatusQuery().Validate())
	require.ErrorIs(t,
		queries.CountOrdersByStatusQuery{}.Validate(),
		queries.ErrCountOrdersByStatusQueryIsNotConstructed,
	)
}
