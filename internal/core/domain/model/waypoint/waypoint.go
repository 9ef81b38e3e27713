package waypoint

import (
	"errors"
	"fmt"
	"strings"

	"butler/internal/core/domain/model/kernel"
	"butler/internal/pkg/errs"
	"butler/internal/pkg/guard"
)

// Reserved waypoint names. Every registry must define both; all other
// waypoints are treated as table destinations.
const (
	KitchenName = "kitchen"
	HomeName    = "home"
)

// ErrWaypointIsNotConstructed is returned when a Waypoint instance was not
// created through the NewWaypoint factory method.
var ErrWaypointIsNotConstructed = errors.New("Waypoint must be created via NewWaypoint constructor")

// Waypoint is an immutable value object binding a symbolic location name
// (kitchen, home, or a table) to its navigable goal pose in the cafe map.
//
// Waypoints are loaded once at startup and never mutated at runtime.
type Waypoint struct { //nolint:recvcheck //using for validation
	name  string
	pose  kernel.Pose
	guard guard.ConstructorGuard
}

// NewWaypoint creates a Waypoint with the given symbolic name and goal pose.
// The name must be non-empty and lowercase; the pose must be valid.
func NewWaypoint(name string, pose kernel.Pose) (Waypoint, error) {
	wp := Waypoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(wp.setName(name), wp.setPose(pose)); err != nil {
		return Waypoint{}, err
	}

	return wp, nil
}

// Validate ensures the Waypoint was created through NewWaypoint.
func (w Waypoint) Validate() error {
	return w.guard.Validate(ErrWaypointIsNotConstructed)
}

// Name returns the symbolic location name.
func (w Waypoint) Name() string {
	return w.name
}

// Pose returns the navigable goal pose for this waypoint.
func (w Waypoint) Pose() kernel.Pose {
	return w.pose
}

// IsKitchen reports whether this waypoint is the kitchen.
func (w Waypoint) IsKitchen() bool {
	return w.name == KitchenName
}

// IsHome reports whether this waypoint is the home position.
func (w Waypoint) IsHome() bool {
	return w.name == HomeName
}

// IsTable reports whether this waypoint is a table destination.
func (w Waypoint) IsTable() bool {
	return w.name != KitchenName && w.name != HomeName
}

// String returns "name@pose", useful for logging navigation goals.
func (w Waypoint) String() string {
	return fmt.Sprintf("%s@%s", w.name, w.pose)
}

func (w *Waypoint) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if name != strings.ToLower(name) || strings.ContainsAny(name, " \t") {
		return errs.NewValueIsInvalidErrorWithCause("name",
			fmt.Errorf("%q is not a lowercase identifier", name))
	}

	w.name = name
	return nil
}

func (w *Waypoint) setPose(pose kernel.Pose) error {
	if err := pose.Validate(); err != nil {
		return err
	}

	w.pose = pose
	return nil
}
