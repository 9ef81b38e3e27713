package ports

import (
	"context"

	"butler/internal/core/domain/model/waypoint"
)

// GoalOutcome is the terminal result of a navigation goal.
type GoalOutcome int

const (
	// GoalUnknown represents an invalid or undefined outcome.
	GoalUnknown GoalOutcome = iota

	// GoalSucceeded means the robot reached the goal waypoint.
	GoalSucceeded

	// GoalFailed means navigation aborted before reaching the goal.
	GoalFailed

	// GoalPreempted means the goal was cancelled before completion.
	GoalPreempted
)

// String returns the human-readable name of the outcome.
func (o GoalOutcome) String() string {
	switch o {
	case GoalSucceeded:
		return "Succeeded"
	case GoalFailed:
		return "Failed"
	case GoalPreempted:
		return "Preempted"
	default:
		return "Unknown"
	}
}

// GoalHandle tracks one in-flight navigation goal. It allows the mission
// loop to await the terminal outcome and to preempt the goal on
// cancellation.
type GoalHandle interface {
	// Outcome returns a channel that delivers exactly one terminal outcome
	// and is then closed.
	Outcome() <-chan GoalOutcome

	// Cancel requests preemption of the goal. Idempotent; the outcome
	// channel still delivers (typically GoalPreempted).
	Cancel()
}

// NavigationClient abstracts the robot's navigation stack. Implementations
// translate a waypoint into a motion goal and report its terminal result
// asynchronously.
type NavigationClient interface {
	// Goto starts navigation toward the given waypoint and returns a handle
	// for awaiting or cancelling it. The context covers goal submission
	// only, not the travel itself.
	Goto(ctx context.Context, wp waypoint.Waypoint) (GoalHandle, error)

	// Pose returns the robot's current estimated pose.
	Pose() (x, y float64)
}
