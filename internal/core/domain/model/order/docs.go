// Package order provides domain entities and business logic for customer order
// management in the ordering system. It implements the Order aggregate root
// with price validation and lifecycle state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns line items and enforces price and lifecycle invariants
//   - OrderItem: A line item owned by the aggregate, identified only once its order is initialized
//   - Product: The referenced catalog product carrying the authoritative price
//   - DeliveryAddress: The destination address value object
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - An order is validated before it is initialized: validation requires the
//     identifier and status to still be absent
//   - The declared total price must be positive and equal the sum of line subtotals
//   - Each line's unit price must equal the product's authoritative price and
//     its subtotal must equal unit price times quantity
//   - Order status follows a defined workflow: Pending -> Paid -> Approved, with
//     cancellation paths Paid -> Cancelling -> Cancelled and Pending -> Cancelled
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
