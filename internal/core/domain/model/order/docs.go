// Package order provides domain entities and business logic for delivery
// orders in the butler robot service. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root that manages order identity and lifecycle
//   - Status: a state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier and a destination table
//   - Order status follows the workflow: Pending -> InProgress -> Delivered
//   - Orders can be cancelled from Pending or InProgress
//   - Delivered and Cancelled are terminal statuses
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
