// Package order provides the Order aggregate of the sales service and the pricing
// rules applied to it.
//
// The package includes:
//   - Order: customer, article, unit price, quantity and the creation/cancelation dates
//   - Status: the Active -> Canceled state machine derived from the cancelation date
//   - Pricing: subtotal, tax and total computed from price and quantity
//
// Key business rules:
//   - Price and quantity are positive and never change after creation
//   - The identifier is assigned once, by storage, when the order is first persisted
//   - An order is canceled at most once; the cancelation date is never cleared
//   - Tax is a fixed 16% of the subtotal
package order
