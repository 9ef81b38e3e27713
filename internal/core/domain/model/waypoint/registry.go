package waypoint

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"butler/internal/core/domain/model/kernel"
	"butler/internal/pkg/errs"
)

// Registry is the static mapping from symbolic location names to waypoints.
// It is populated at startup and never mutated afterwards, so lookups are
// safe for concurrent use without locking.
type Registry struct {
	byName map[string]Waypoint
}

// NewRegistry builds a registry from the given waypoints.
// The set must contain the reserved kitchen and home waypoints and at least
// one table; duplicate names are rejected.
func NewRegistry(waypoints []Waypoint) (*Registry, error) {
	byName := make(map[string]Waypoint, len(waypoints))
	for _, wp := range waypoints {
		if err := wp.Validate(); err != nil {
			return nil, err
		}
		if _, exists := byName[wp.Name()]; exists {
			return nil, errs.NewValueIsInvalidErrorWithCause("waypoints",
				fmt.Errorf("duplicate waypoint %q", wp.Name()))
		}
		byName[wp.Name()] = wp
	}

	if _, ok := byName[KitchenName]; !ok {
		return nil, errs.NewValueIsRequiredError("kitchen waypoint")
	}
	if _, ok := byName[HomeName]; !ok {
		return nil, errs.NewValueIsRequiredError("home waypoint")
	}
	if len(byName) < 3 {
		return nil, errs.NewValueIsRequiredError("at least one table waypoint")
	}

	return &Registry{byName: byName}, nil
}

// DefaultRegistry returns the built-in cafe layout: kitchen, home, and three
// tables with their surveyed map poses.
func DefaultRegistry() *Registry {
	mustPose := func(x, y, w float64) kernel.Pose {
		pose, err := kernel.NewPose(x, y, w)
		if err != nil {
			panic(err)
		}
		return pose
	}
	mustWaypoint := func(name string, pose kernel.Pose) Waypoint {
		wp, err := NewWaypoint(name, pose)
		if err != nil {
			panic(err)
		}
		return wp
	}

	registry, err := NewRegistry([]Waypoint{
		mustWaypoint(KitchenName, mustPose(7.675238132476807, -6.01118278503418, 1.0)),
		mustWaypoint(HomeName, mustPose(0.0, 0.0, 1.0)),
		mustWaypoint("table1", mustPose(12.085535049438477, 4.3402838706970215, 0.6417557517388287)),
		mustWaypoint("table2", mustPose(-10.501110076904297, 5.375353813171387, 0.8235567479660424)),
		mustWaypoint("table3", mustPose(-7.50412654876709, -9.034976959228516, 0.21287361489247497)),
	})
	if err != nil {
		panic(err)
	}
	return registry
}

// waypointFileEntry is the JSON shape of one waypoint in a registry file.
type waypointFileEntry struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"w"`
}

// LoadRegistry reads a registry from a JSON file containing a list of
// waypoint entries. Used when the deployment map differs from the built-in
// cafe layout.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading waypoints file: %w", err)
	}

	var entries []waypointFileEntry
	if err = json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing waypoints file: %w", err)
	}

	waypoints := make([]Waypoint, 0, len(entries))
	for _, e := range entries {
		pose, poseErr := kernel.NewPose(e.X, e.Y, e.W)
		if poseErr != nil {
			return nil, fmt.Errorf("waypoint %q: %w", e.Name, poseErr)
		}
		wp, wpErr := NewWaypoint(e.Name, pose)
		if wpErr != nil {
			return nil, wpErr
		}
		waypoints = append(waypoints, wp)
	}

	return NewRegistry(waypoints)
}

// Get looks up a waypoint by its symbolic name.
// Returns an ObjectNotFoundError for unknown names.
func (r *Registry) Get(name string) (Waypoint, error) {
	wp, ok := r.byName[name]
	if !ok {
		return Waypoint{}, errs.NewObjectNotFoundError("waypoint", name)
	}
	return wp, nil
}

// Kitchen returns the kitchen waypoint. The registry guarantees it exists.
func (r *Registry) Kitchen() Waypoint {
	return r.byName[KitchenName]
}

// Home returns the home waypoint. The registry guarantees it exists.
func (r *Registry) Home() Waypoint {
	return r.byName[HomeName]
}

// Table looks up a table waypoint by name.
// Reserved names (kitchen, home) are not valid table destinations.
func (r *Registry) Table(name string) (Waypoint, error) {
	wp, err := r.Get(name)
	if err != nil {
		return Waypoint{}, err
	}
	if !wp.IsTable() {
		return Waypoint{}, errs.NewValueIsInvalidErrorWithCause("tableId",
			fmt.Errorf("%q is not a table waypoint", name))
	}
	return wp, nil
}

// TableNames returns the sorted names of all table waypoints.
func (r *Registry) TableNames() []string {
	names := make([]string, 0, len(r.byName))
	for name, wp := range r.byName {
		if wp.IsTable() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
