package proj

import (
	"math"

	"github.com/golang/geo/r3"
)

// Quaternion is a rotation in 3-D space. W is the scalar part.
type Quaternion struct {
	W float64
	V r3.Vector
}

var (
	axisX = r3.Vector{X: 1}
	axisY = r3.Vector{Y: 1}
)

// IdentityQuaternion is the rotation that leaves every vector unchanged.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// FromAxisAngle returns the right-handed rotation by angle radians around
// axis.
func FromAxisAngle(axis r3.Vector, angle float64) Quaternion {
	s, c := math.Sincos(angle / 2)
	return Quaternion{W: c, V: axis.Normalize().Mul(s)}
}

// Mul returns the rotation that applies o first and then q.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		W: q.W*o.W - q.V.Dot(o.V),
		V: o.V.Mul(q.W).Add(q.V.Mul(o.W)).Add(q.V.Cross(o.V)),
	}
}

// Conjugate returns the inverse of a unit quaternion.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{W: q.W, V: q.V.Mul(-1)}
}

// Norm returns the length of the quaternion.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.V.Dot(q.V))
}

// Normalize scales the quaternion to unit length.
func (q Quaternion) Normalize() Quaternion {
	n := q.Norm()
	if n == 0 {
		return IdentityQuaternion()
	}
	return Quaternion{W: q.W / n, V: q.V.Mul(1 / n)}
}

// Rotate applies the rotation to p.
func (q Quaternion) Rotate(p r3.Vector) r3.Vector {
	t := q.V.Cross(p).Mul(2)
	return p.Add(t.Mul(q.W)).Add(q.V.Cross(t))
}

// OrientationFor returns the globe orientation that brings (lon, lat) to
// the middle of the screen with north up.
func OrientationFor(lon, lat float64) Quaternion {
	return FromAxisAngle(axisY, lon).Mul(FromAxisAngle(axisX, -lat))
}

// unitVector returns the globe-space position of (lon, lat): y through the
// north pole, z through (0, 0) and x through (90°E, 0).
func unitVector(lon, lat float64) r3.Vector {
	sinLon, cosLon := math.Sincos(lon)
	sinLat, cosLat := math.Sincos(lat)
	return r3.Vector{X: cosLat * sinLon, Y: sinLat, Z: cosLat * cosLon}
}

func (v View) orientation() Quaternion {
	if v.Orientation.Norm() == 0 {
		return OrientationFor(v.CenterLon, v.CenterLat)
	}
	return v.Orientation
}
