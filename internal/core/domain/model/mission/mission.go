package mission

import (
	"errors"
	"fmt"

	"butler/internal/core/domain/model/kernel"
	"butler/internal/pkg/errs"
)

var (
	// ErrMissionIsNotConstructed is returned when a Mission instance was not
	// created through the NewMission factory method.
	ErrMissionIsNotConstructed = errors.New("Mission must be created via NewMission constructor")

	// ErrGoalIsRequired is returned when departing for a travelling state
	// without naming a destination waypoint.
	ErrGoalIsRequired = errs.NewValueIsRequiredError("goal")

	// ErrCancelWhileIdle is returned when a cancel is requested while the
	// robot has no active mission.
	ErrCancelWhileIdle = errors.New("no active mission to cancel")
)

// Mission is the aggregate root tracking the robot's current delivery cycle.
// It owns the mission state machine and the navigation goal, and records
// whether an operator has requested cancellation of the leg in flight.
//
// Mission follows these invariants:
//   - Must have a valid unique identifier
//   - State transitions follow the delivery cycle (see State)
//   - A travelling state always carries a goal waypoint name; Idle never does
//   - Can only be created through the NewMission constructor
//
// A Mission is mutated only by the mission control loop; read access from
// other goroutines goes through snapshots taken under the loop's lock.
type Mission struct {
	// id is the unique identifier for the mission
	id kernel.UUID

	// state is the current phase of the delivery cycle
	state State

	// goal is the waypoint name the robot is travelling to,
	// empty while Idle
	goal string

	// cancelRequested is set when an operator cancels the leg in flight
	// and cleared once recovery begins or the mission returns to Idle
	cancelRequested bool

	// isConstructed ensures the mission was created via NewMission
	isConstructed bool
}

// NewMission creates a new Mission in the Idle state.
// This is the only way to create a valid Mission.
func NewMission(id kernel.UUID) (*Mission, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Mission{
		id:            id,
		state:         Idle,
		isConstructed: true,
	}, nil
}

// Validate ensures the Mission instance was properly constructed through
// NewMission. Returns ErrMissionIsNotConstructed otherwise.
func (m *Mission) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMissionIsNotConstructed
	}

	return nil
}

// ID returns the mission's unique identifier.
func (m *Mission) ID() kernel.UUID {
	return m.id
}

// State returns the current phase of the delivery cycle.
func (m *Mission) State() State {
	return m.state
}

// Goal returns the waypoint name the robot is travelling to.
// Empty while the mission is Idle.
func (m *Mission) Goal() string {
	return m.goal
}

// CancelRequested reports whether an operator has asked to cancel the leg
// currently in flight.
func (m *Mission) CancelRequested() bool {
	return m.cancelRequested
}

// DepartFor moves the mission into a travelling state heading for the named
// waypoint. Returns an error if the transition is illegal or no goal is given.
func (m *Mission) DepartFor(next State, goal string) error {
	if !next.IsTravelling() {
		return errs.NewValueIsInvalidErrorWithCause("state",
			fmt.Errorf("%s is not a travelling state", next))
	}
	if goal == "" {
		return ErrGoalIsRequired
	}
	if !m.state.CanTransition(next) {
		return errs.NewValueIsInvalidErrorWithCause("state",
			fmt.Errorf("cannot transition from %s to %s", m.state, next))
	}

	m.state = next
	m.goal = goal
	return nil
}

// Complete returns the mission to Idle once the robot is parked. The goal
// and any pending cancel request are cleared.
// Returns an error if the current state cannot transition to Idle.
func (m *Mission) Complete() error {
	if !m.state.CanTransition(Idle) {
		return errs.NewValueIsInvalidErrorWithCause("state",
			fmt.Errorf("cannot transition from %s to Idle", m.state))
	}

	m.state = Idle
	m.goal = ""
	m.cancelRequested = false
	return nil
}

// RequestCancel marks the leg in flight for cancellation. The mission loop
// observes the flag, preempts the navigation goal and starts recovery.
// Returns ErrCancelWhileIdle if there is no active mission.
func (m *Mission) RequestCancel() error {
	if m.state == Idle {
		return ErrCancelWhileIdle
	}

	m.cancelRequested = true
	return nil
}

// ClearCancel resets the cancellation flag once recovery has begun.
func (m *Mission) ClearCancel() {
	m.cancelRequested = false
}
