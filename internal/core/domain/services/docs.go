// Package services provides domain services of the sales order service: business
// rules that need more than a single Order to decide.
//
// The package includes:
//   - ArticlePricer: decides the unit price of a new order from the price already
//     fixed for its article, if any
package services
