// Package mission provides the domain model for the butler robot's delivery
// cycle. It implements the Mission aggregate root and the State machine that
// drives the robot from its home position to the kitchen, across the queued
// tables and back home.
//
// The package includes:
//   - Mission: the aggregate root tracking state, navigation goal and
//     operator cancellation requests
//   - State: a state machine enforcing the legal phases of a delivery cycle
//
// Key business rules:
//   - A delivery cycle is Idle -> ToKitchen -> ToTable... -> ToHome -> Idle
//   - Cancellation or a fatal navigation failure diverts any travelling
//     state into CancelRecovery
//   - Recovery ends back at Idle, or resumes ToKitchen when pending orders
//     survived the cancellation
//   - The order queue only accepts modifications while Idle or ToKitchen
package mission
