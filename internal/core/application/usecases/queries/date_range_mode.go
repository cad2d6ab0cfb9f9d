package queries

import (
	"fmt"
	"strings"
)

// DateRangeMode selects how ListOrdersQueryHandler compares creation dates
// against the requested range.
type DateRangeMode string

const (
	// DateRangeLexical compares the stored dd/mm/yyyy text byte by byte.
	// "05/01/2024" sorts before "20/12/2023" in this mode.
	DateRangeLexical DateRangeMode = "lexical"

	// DateRangeCalendar compares the dates chronologically.
	DateRangeCalendar DateRangeMode = "calendar"
)

// ParseDateRangeMode accepts "lexical" and "calendar" in any case. An empty
// string selects DateRangeLexical.
func ParseDateRangeMode(s string) (DateRangeMode, error) {
	switch mode := DateRangeMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return DateRangeLexical, nil
	case DateRangeLexical, DateRangeCalendar:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown date range mode %q", s)
	}
}
