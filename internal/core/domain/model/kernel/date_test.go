package kernel_test

import (
	"testing"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	t.Run("should create a valid date", func(t *testing.T) {
		d, err := kernel.NewDate(2024, time.January, 5)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, "05/01/2024", d.String())
	})

	t.Run("should reject a day that does not exist", func(t *testing.T) {
		_, err := kernel.NewDate(2023, time.February, 29)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "2023-02-29 is not a calendar day")
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var d kernel.Date

		assert.ErrorIs(t, d.Validate(), errs.ErrValueIsRequired)
	})
}

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "padded", input: "05/01/2024", expected: "05/01/2024"},
		{name: "unpadded day and month", input: "5/1/2024", expected: "05/01/2024"},
		{name: "end of year", input: "31/12/2023", expected: "31/12/2023"},
		{name: "leap day", input: "29/02/2024", expected: "29/02/2024"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := kernel.ParseDate(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, d.String())
		})
	}

	invalid := []string{"", "2024-01-05", "32/01/2024", "05/13/2024", "29/02/2023", "05/01/24", "yesterday"}
	for _, input := range invalid {
		t.Run("invalid "+input, func(t *testing.T) {
			_, err := kernel.ParseDate(input)

			require.ErrorIs(t, err, kernel.ErrDateFormatIsInvalid)
		})
	}
}

func TestDateComparison(t *testing.T) {
	dec, _ := kernel.ParseDate("20/12/2023")
	jan, _ := kernel.ParseDate("05/01/2024")
	janAgain, _ := kernel.NewDate(2024, time.January, 5)

	assert.True(t, dec.Before(jan))
	assert.False(t, jan.Before(dec))
	assert.True(t, jan.IsEqual(janAgain))
	assert.False(t, jan.IsEqual(dec))
	// text order disagrees with calendar order across a year boundary
	assert.Greater(t, dec.String(), jan.String())
}

func TestToday(t *testing.T) {
	clock := kernel.ClockFunc(func() time.Time {
		return time.Date(2024, time.March, 9, 23, 59, 0, 0, time.UTC)
	})

	assert.Equal(t, "09/03/2024", kernel.Today(clock).String())
}
