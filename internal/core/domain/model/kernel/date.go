package kernel

import (
	"errors"
	"fmt"
	"time"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

// DateLayout is the day/month/year text form used for storage and presentation.
const DateLayout = "02/01/2006"

// dateInputLayout also accepts single-digit days and months, e.g. "5/1/2024".
const dateInputLayout = "2/1/2006"

var (
	// ErrDateIsNotConstructed is returned when a zero-value Date is used.
	ErrDateIsNotConstructed = errs.NewValueIsRequiredError("date must be created via NewDate, ParseDate or DateOf")

	// ErrDateFormatIsInvalid is returned by ParseDate for text that is not a dd/mm/yyyy date.
	ErrDateFormatIsInvalid = errors.New("dates should be in the format dd/mm/yyyy")
)

// Date is a calendar date without a time component. It is an immutable value object;
// the zero value is invalid.
//
// Example:
//
//	d, err := kernel.ParseDate("05/01/2024")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(d) // 05/01/2024
type Date struct { //nolint:recvcheck //using for validation
	year  int
	month time.Month
	day   int
	guard guard.ConstructorGuard
}

// NewDate creates a Date from its parts. Parts that do not name a real day
// (31 February, month 13) are rejected instead of being normalized.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, errs.NewValueIsInvalidErrorWithCause(
			"date",
			fmt.Errorf("%04d-%02d-%02d is not a calendar day", year, month, day),
		)
	}

	return Date{
		year:  year,
		month: month,
		day:   day,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	return Date{
		year:  t.Year(),
		month: t.Month(),
		day:   t.Day(),
		guard: guard.NewConstructorGuard(),
	}
}

// ParseDate parses day/month/year text such as "05/01/2024" or "5/1/2024".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateInputLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrDateFormatIsInvalid, s)
	}
	return DateOf(t), nil
}

// Validate checks that the Date was created through a constructor.
func (d Date) Validate() error {
	return d.guard.Validate(ErrDateIsNotConstructed)
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// String renders the date as dd/mm/yyyy.
func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// IsEqual reports whether both values name the same calendar day.
func (d Date) IsEqual(other Date) bool {
	return d.year == other.year && d.month == other.month && d.day == other.day
}

// Before reports whether d is chronologically earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}
