// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the butler robot system.
// It implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - OrderQueue: the concurrent FIFO of pending deliveries with an
//     accepting window tied to the mission state
//   - RecoveryPlanner: decides the retreat waypoint after a cancellation
//     or fatal navigation failure
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
