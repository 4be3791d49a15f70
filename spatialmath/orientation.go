// Package spatialmath holds the orientation types a vehicle pose is expressed in.
package spatialmath

import (
	"gonum.org/v1/gonum/num/quat"

	"github.com/roarracing/purepursuit/utils"
)

// Orientation is an interface used to express the different parameterizations of the orientation
// of a vehicle in 3D Euclidean space.
type Orientation interface {
	Quaternion() quat.Number
	EulerAngles() *EulerAngles
}

// NewZeroOrientation returns an orientatation which signifies no rotation.
func NewZeroOrientation() Orientation {
	return &quaternion{1, 0, 0, 0}
}

// OrientationAlmostEqual will return a bool describing whether 2 orientations are approximately the same.
func OrientationAlmostEqual(o1, o2 Orientation) bool {
	return QuaternionAlmostEqual(o1.Quaternion(), o2.Quaternion(), 1e-5)
}

// QuaternionAlmostEqual is an equality test for all the float components of a quaternion. Quaternions have double coverage,
// the inverse of a quaternion is equivalent to the quaternion itself.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	same := func(x, y quat.Number) bool {
		return utils.Float64AlmostEqual(x.Real, y.Real, tol) &&
			utils.Float64AlmostEqual(x.Imag, y.Imag, tol) &&
			utils.Float64AlmostEqual(x.Jmag, y.Jmag, tol) &&
			utils.Float64AlmostEqual(x.Kmag, y.Kmag, tol)
	}
	return same(a, b) || same(a, quat.Scale(-1, b))
}

// Yaw returns the heading of an orientation, treating nil as no rotation.
func Yaw(o Orientation) float64 {
	if o == nil {
		return 0
	}
	ea := o.EulerAngles()
	if ea == nil {
		return 0
	}
	return ea.Yaw
}
