// Package services contains stateless domain services that implement business
// logic spanning value objects without belonging to a single aggregate.
//
// The package includes:
//   - TotalCalculator: computes the tax-inclusive total due for a set of
//     detailed line items using exact decimal arithmetic
package services
