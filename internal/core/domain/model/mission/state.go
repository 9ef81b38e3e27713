package mission

import (
	"fmt"

	"butler/internal/pkg/errs"
)

// State represents the phase of the robot's delivery cycle.
// It implements a state machine with defined transitions so the mission
// always follows the idle -> kitchen -> tables -> home cycle, with
// CancelRecovery as the escape hatch for cancellations and fatal
// navigation failures.
//
// State transitions:
//
//	Idle ──> ToKitchen ──> ToTable ──> ToHome ──> Idle
//	              │      ┌────┘│  └──────┐
//	              │      └──── ToTable   │
//	              └──────────┐ │         │
//	                         ▼ ▼         ▼
//	                     CancelRecovery ──> Idle | ToKitchen
type State int

const (
	// StateUnknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	StateUnknown State = iota

	// Idle means the robot is parked at home with no active mission.
	// Initial and terminal state of every delivery cycle.
	Idle

	// ToKitchen means the robot is travelling to the kitchen to pick up
	// the queued deliveries. New orders may still be added in this state.
	ToKitchen

	// ToTable means the robot is carrying an order to its table.
	ToTable

	// ToHome means the robot is returning to its home position.
	ToHome

	// CancelRecovery means an operation was cancelled or failed fatally and
	// the robot is heading to a safe recovery waypoint (kitchen or home).
	CancelRecovery
)

// getStateStrings returns a map of State values to their string representations.
func getStateStrings() map[State]string {
	return map[State]string{
		StateUnknown:   "Unknown",
		Idle:           "Idle",
		ToKitchen:      "ToKitchen",
		ToTable:        "ToTable",
		ToHome:         "ToHome",
		CancelRecovery: "CancelRecovery",
	}
}

// getTransitions returns the set of legal state transitions.
func getTransitions() map[State][]State {
	return map[State][]State{
		Idle:      {ToKitchen},
		ToKitchen: {ToTable, ToHome, CancelRecovery},
		// ToTable -> ToTable covers consecutive deliveries in one trip.
		ToTable: {ToTable, ToHome, CancelRecovery},
		ToHome:  {Idle, CancelRecovery},
		// CancelRecovery -> ToKitchen resumes pending work after recovery;
		// CancelRecovery -> CancelRecovery redirects an interrupted recovery.
		CancelRecovery: {Idle, ToKitchen, CancelRecovery},
	}
}

// Validate checks if the State value is valid.
func (s State) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state",
			fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// String returns the human-readable name of the state.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransition reports whether moving from s to next is a legal transition.
func (s State) CanTransition(next State) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTravelling reports whether the robot has a navigation goal in flight
// in this state.
func (s State) IsTravelling() bool {
	return s == ToKitchen || s == ToTable || s == ToHome || s == CancelRecovery
}

// AcceptsOrders reports whether the order queue accepts modifications in
// this state. New orders may only be added while the robot is idle or on
// its way to the kitchen.
func (s State) AcceptsOrders() bool {
	return s == Idle || s == ToKitchen
}
