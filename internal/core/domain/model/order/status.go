package order

import (
	"fmt"

	"butler/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
// It implements a state machine with defined transitions so orders always
// follow the delivery workflow.
//
// State transitions:
//
//	Pending ──> InProgress ──> Delivered
//	   │             │
//	   └──> Cancelled <──┘
//
// Delivered and Cancelled are terminal. Status is a value object that
// validates state transitions and provides string representations for
// persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is queued.
	// Pending orders wait in the queue for the robot to pick them up.
	Pending

	// InProgress indicates the robot is on its way to the order's table.
	InProgress

	// Delivered indicates the order reached its table. Terminal.
	Delivered

	// Cancelled indicates the order was removed by the operator or its
	// delivery was interrupted by a cancellation. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		InProgress: "InProgress",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		InProgress: "InProgress",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, InProgress, Delivered, and Cancelled;
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Pending -> InProgress (robot departs for the table)
//
// Returns (InProgress, nil) on a valid transition, or (0, error) otherwise.
func (s Status) Start() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to start delivery", s))
	}

	return InProgress, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - InProgress -> Delivered (robot arrived at the table)
//
// Returns (Delivered, nil) on a valid transition, or (0, error) otherwise.
func (s Status) Deliver() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to deliver", s))
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled (operator removed the order from the queue)
//   - InProgress -> Cancelled (delivery interrupted by a cancellation)
//
// Returns (Cancelled, nil) on a valid transition, or (0, error) otherwise.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to cancel", s))
	}

	return Cancelled, nil
}
