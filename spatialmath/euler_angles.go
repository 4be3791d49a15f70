package spatialmath

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"
)

// EulerAngles are three angles (in radians) used to represent the rotation of an object in 3D Euclidean space.
// The Tait–Bryan angle formalism is used, with the sequence of rotations being Z -> Y' -> X''.
// As a slice they are ordered roll, pitch, yaw, so yaw sits at index 2.
type EulerAngles struct {
	Roll  float64 `json:"roll"`  // phi
	Pitch float64 `json:"pitch"` // theta
	Yaw   float64 `json:"yaw"`   // psi
}

// NewEulerAngles creates an empty EulerAngles struct.
func NewEulerAngles() *EulerAngles {
	return &EulerAngles{Roll: 0, Pitch: 0, Yaw: 0}
}

// EulerAnglesFromSlice builds EulerAngles from a roll, pitch, yaw triple.
func EulerAnglesFromSlice(rpy []float64) (*EulerAngles, error) {
	if len(rpy) != 3 {
		return nil, errors.Errorf("rotation needs 3 elements (roll, pitch, yaw) got %d", len(rpy))
	}
	return &EulerAngles{Roll: rpy[0], Pitch: rpy[1], Yaw: rpy[2]}, nil
}

// Slice returns the angles ordered roll, pitch, yaw.
func (ea *EulerAngles) Slice() []float64 {
	return []float64{ea.Roll, ea.Pitch, ea.Yaw}
}

// EulerAngles returns orientation in Euler angle representation.
func (ea *EulerAngles) EulerAngles() *EulerAngles {
	return ea
}

// Quaternion returns orientation in quaternion representation.
func (ea *EulerAngles) Quaternion() quat.Number {
	cy := math.Cos(ea.Yaw * 0.5)
	sy := math.Sin(ea.Yaw * 0.5)
	cp := math.Cos(ea.Pitch * 0.5)
	sp := math.Sin(ea.Pitch * 0.5)
	cr := math.Cos(ea.Roll * 0.5)
	sr := math.Sin(ea.Roll * 0.5)

	q := quat.Number{}
	q.Real = cr*cp*cy + sr*sp*sy
	q.Imag = sr*cp*cy - cr*sp*sy
	q.Jmag = cr*sp*cy + sr*cp*sy
	q.Kmag = cr*cp*sy - sr*sp*cy

	return q
}
