// Package waypoint provides the static mapping from symbolic cafe locations
// to navigable goal poses.
//
// The package includes:
//   - Waypoint: an immutable value object binding a name to a goal pose
//   - Registry: the startup-loaded name → waypoint mapping
//
// The reserved names "kitchen" and "home" anchor the delivery cycle; every
// other waypoint is a table destination. The registry is immutable after
// construction and safe for concurrent reads.
package waypoint
