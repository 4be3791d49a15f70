package control

import "github.com/golang/geo/r2"

// Waypoint is anything a planner hands the controller to steer toward. Only its
// location is read; any other planner metadata is opaque here.
type Waypoint interface {
	Location() r2.Point
}

// Target is a waypoint with no metadata beyond its location.
type Target r2.Point

// NewTarget returns a Target at (x, y).
func NewTarget(x, y float64) Target {
	return Target{X: x, Y: y}
}

// Location returns the target's location.
func (t Target) Location() r2.Point {
	return r2.Point(t)
}
