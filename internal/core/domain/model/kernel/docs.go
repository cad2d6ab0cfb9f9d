// Package kernel provides core domain primitives for the sales order service.
//
// The package includes:
//   - Date: a calendar day rendered as dd/mm/yyyy text
//   - Price: a strictly positive decimal unit price
//   - Clock: the source of "today" for creation and cancelation stamps
//
// Every value object has an invalid zero value and must be built through its
// constructor; Validate reports misuse.
package kernel
