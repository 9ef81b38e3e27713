package kernel

import (
	"fmt"
	"math"

	"butler/internal/pkg/errs"
	"butler/internal/pkg/guard"
)

// ErrPoseIsNotConstructed is returned when attempting to use an improperly
// initialized Pose. Poses must be created via NewPose to ensure validity.
var ErrPoseIsNotConstructed = errs.NewValueIsRequiredError(
	"pose must be created via NewPose constructor")

// orientationMax bounds the w component of the orientation quaternion.
const (
	orientationMin = -1.0
	orientationMax = 1.0
)

// Pose represents a navigable target in the cafe map frame: a planar position
// plus the w component of the goal orientation quaternion (rotation about the
// vertical axis, as the navigation stack expects).
//
// Pose is an immutable value object. The zero value is invalid and fails
// validation; use NewPose to create instances.
//
// Example:
//
//	pose, err := kernel.NewPose(7.675, -6.011, 1.0)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(pose) // Pose(7.68, -6.01, w=1.00)
type Pose struct { //nolint:recvcheck //using for validation
	x     float64
	y     float64
	w     float64
	guard guard.ConstructorGuard
}

// NewPose creates a Pose at map coordinates (x, y) with orientation w.
// Coordinates must be finite numbers; w must lie within [-1, 1].
//
// Returns:
//   - Pose: a valid pose instance
//   - error: validation error if any component is out of bounds
func NewPose(x, y, w float64) (Pose, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Pose{}, errs.NewValueIsInvalidError("x")
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return Pose{}, errs.NewValueIsInvalidError("y")
	}
	if math.IsNaN(w) || w < orientationMin || w > orientationMax {
		return Pose{}, errs.NewValueIsOutOfRangeError("w", w, orientationMin, orientationMax)
	}

	return Pose{
		x:     x,
		y:     y,
		w:     w,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Pose was properly constructed via NewPose.
// The zero value of Pose fails this validation.
func (p Pose) Validate() error {
	return p.guard.Validate(ErrPoseIsNotConstructed)
}

// X returns the map-frame X coordinate in meters.
func (p Pose) X() float64 {
	return p.x
}

// Y returns the map-frame Y coordinate in meters.
func (p Pose) Y() float64 {
	return p.y
}

// W returns the w component of the goal orientation quaternion.
func (p Pose) W() float64 {
	return p.w
}

// String returns a human-readable representation of the pose.
// Implements the fmt.Stringer interface.
func (p Pose) String() string {
	return fmt.Sprintf("Pose(%.2f, %.2f, w=%.2f)", p.x, p.y, p.w)
}

// IsEqual compares two poses for equality of position and orientation.
// Both poses must be properly constructed for the comparison to succeed.
func (p Pose) IsEqual(other Pose) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return p.x == other.x && p.y == other.y && p.w == other.w, nil
}

// Distance calculates the straight-line distance in meters between two poses.
// Orientation does not contribute to the distance. Both poses must be
// properly constructed for the calculation to succeed.
//
// Example:
//
//	home, _ := kernel.NewPose(0, 0, 1)
//	kitchen, _ := kernel.NewPose(3, 4, 1)
//	d, _ := home.Distance(kitchen) // d == 5
func (p Pose) Distance(other Pose) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := other.Validate(); err != nil {
		return 0, err
	}

	dx := p.x - other.x
	dy := p.y - other.y
	return math.Hypot(dx, dy), nil
}

// Interpolate returns the pose a fraction of the way from p toward other.
// A fraction of 0 yields p, 1 yields other; values are clamped to [0, 1].
// Used by the navigation simulator to estimate the robot position when a
// goal is preempted mid-travel.
func (p Pose) Interpolate(other Pose, fraction float64) (Pose, error) {
	if err := p.Validate(); err != nil {
		return Pose{}, err
	}
	if err := other.Validate(); err != nil {
		return Pose{}, err
	}

	fraction = math.Max(0, math.Min(1, fraction))
	return NewPose(
		p.x+(other.x-p.x)*fraction,
		p.y+(other.y-p.y)*fraction,
		other.w,
	)
}
