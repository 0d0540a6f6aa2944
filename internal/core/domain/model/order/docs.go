// Package order provides domain entities and business logic for point-of-sale
// order management. It implements the Order aggregate root together with the
// value objects that make up an order.
//
// The package includes:
//   - Order: The aggregate root holding the permanent identity, the optional
//     cyclic display number, and the number assignment timestamp
//   - Number: The small cyclic display number (1 to 100) shown to customers
//   - LineItem: A scanned item on an order with its quantity
//   - DetailedLineItem: A read model enriching a line item with catalog pricing
//   - Tender: The payment recorded for an order
//
// Key business rules:
//   - The display number and its assignment timestamp are set together, exactly
//     once per order; an order without a number has neither
//   - Display numbers cycle through the closed range [1, 100]
//   - Line item quantities are always at least 1; a quantity of zero means the
//     line does not exist
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
