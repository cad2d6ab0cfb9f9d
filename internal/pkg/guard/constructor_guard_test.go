package guard_test

import (
	"errors"
	"testing"

	"sales/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardEmbedded shows the guard detecting a zero-value command.
func TestConstructorGuardEmbedded(t *testing.T) {
	errCancelNotConstructed := errors.New("cancel command must be created via its constructor")

	type cancelCommand struct {
		orderID int64
		guard   guard.ConstructorGuard
	}

	newCancelCommand := func(orderID int64) (cancelCommand, error) {
		if orderID <= 0 {
			return cancelCommand{}, errors.New("order id must be positive")
		}
		return cancelCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_command_validates", func(t *testing.T) {
		cmd, err := newCancelCommand(7)

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errCancelNotConstructed))
		assert.Equal(t, int64(7), cmd.orderID)
	})

	t.Run("zero_value_command_fails", func(t *testing.T) {
		var cmd cancelCommand

		err := cmd.guard.Validate(errCancelNotConstructed)

		assert.Equal(t, errCancelNotConstructed, err)
	})

	t.Run("copies_keep_their_state", func(t *testing.T) {
		cmd, err := newCancelCommand(1)
		require.NoError(t, err)

		cmdCopy := cmd

		require.NoError(t, cmdCopy.guard.Validate(errCancelNotConstructed))
	})
}
