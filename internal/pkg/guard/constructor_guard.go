// Package guard makes zero-value instances of value objects and entities
// detectable. Embedding a ConstructorGuard in a struct lets domain objects
// enforce creation through their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided and the object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects created through a constructor from
// zero values. The guard holds an internal flag that is only set by
// NewConstructorGuard; a zero-value struct fails Validate.
//
// Example usage:
//
//	type Pose struct {
//	    x, y, w float64
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewPose(x, y, w float64) Pose {
//	    return Pose{x: x, y: y, w: w, guard: guard.NewConstructorGuard()}
//	}
//
//	func (p Pose) Validate() error {
//	    return p.guard.Validate(ErrPoseIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
