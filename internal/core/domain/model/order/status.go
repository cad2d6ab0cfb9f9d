package order

import (
	"errors"
	"fmt"

	"sales/internal/pkg/errs"
)

// ErrOrderIsAlreadyCanceled is returned when canceling an order that is already canceled.
var ErrOrderIsAlreadyCanceled = errors.New("the sales order has already been canceled")

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Active ──> Canceled
//
// Canceled is terminal. Status is not stored; it follows from whether the order
// carries a cancelation date.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Active is the state of every order from creation until it is canceled.
	Active

	// Canceled orders have a cancelation date. No further transitions exist.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Active:   "Active",
		Canceled: "Canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:   "Active",
		Canceled: "Canceled",
	}
}

// StatusOf derives the status from the presence of a cancelation date.
func StatusOf(hasCancelationDate bool) Status {
	if hasCancelationDate {
		return Canceled
	}
	return Active
}

// Validate checks if the Status value is Active or Canceled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateCancel checks that the status allows cancelation without performing it.
// Canceled orders yield ErrOrderIsAlreadyCanceled so callers can tell a repeated
// cancel apart from a corrupted status.
func (s Status) ValidateCancel() error {
	switch s { //nolint:exhaustive // only Active may be canceled
	case Active:
		return nil
	case Canceled:
		return ErrOrderIsAlreadyCanceled
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
}

// Cancel transitions Active to Canceled.
func (s Status) Cancel() (Status, error) {
	if err := s.ValidateCancel(); err != nil {
		return 0, err
	}
	return Canceled, nil
}
