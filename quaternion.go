package bounding

import "math"

// Quaternion represents a rotation. Like Vectors, Quaternions are value types; methods that
// modify the calling Quaternion return modified copies.
type Quaternion struct {
	X, Y, Z, W float64
}

// NewQuaternion creates a new Quaternion with the given components.
func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{x, y, z, w}
}

// NewQuaternionIdentity returns the identity (no-rotation) Quaternion.
func NewQuaternionIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

// NewQuaternionAxisAngle returns a Quaternion rotating around the given 3D axis by the angle
// given (in radians). The axis does not have to be normalized.
func NewQuaternionAxisAngle(axis Vector, angle float64) Quaternion {
	axis = axis.Unit()
	s := math.Sin(angle / 2)
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math.Cos(angle / 2),
	}
}

// Mult combines the calling Quaternion with the other Quaternion provided (such that the other
// rotation is applied first), returning the combined rotation.
func (quat Quaternion) Mult(other Quaternion) Quaternion {
	return Quaternion{
		X: quat.W*other.X + quat.X*other.W + quat.Y*other.Z - quat.Z*other.Y,
		Y: quat.W*other.Y + quat.Y*other.W + quat.Z*other.X - quat.X*other.Z,
		Z: quat.W*other.Z + quat.Z*other.W + quat.X*other.Y - quat.Y*other.X,
		W: quat.W*other.W - quat.X*other.X - quat.Y*other.Y - quat.Z*other.Z,
	}
}

// Conjugate returns the conjugate (inverse rotation, for unit Quaternions) of the Quaternion.
func (quat Quaternion) Conjugate() Quaternion {
	quat.X = -quat.X
	quat.Y = -quat.Y
	quat.Z = -quat.Z
	return quat
}

// Magnitude returns the length of the Quaternion.
func (quat Quaternion) Magnitude() float64 {
	return math.Sqrt(quat.X*quat.X + quat.Y*quat.Y + quat.Z*quat.Z + quat.W*quat.W)
}

// Normalized returns a copy of the Quaternion scaled to unit length. A zero Quaternion
// normalizes to identity.
func (quat Quaternion) Normalized() Quaternion {
	l := quat.Magnitude()
	if l < 1e-12 {
		return NewQuaternionIdentity()
	}
	quat.X /= l
	quat.Y /= l
	quat.Z /= l
	quat.W /= l
	return quat
}

// Dot returns the dot product of the Quaternion and the other Quaternion provided.
func (quat Quaternion) Dot(other Quaternion) float64 {
	return quat.X*other.X + quat.Y*other.Y + quat.Z*other.Z + quat.W*other.W
}

// RotateVec rotates the Vector provided by the Quaternion, returning the rotated copy.
func (quat Quaternion) RotateVec(vec Vector) Vector {
	// v' = v + 2w(q×v) + 2(q×(q×v))
	qv := NewVector(quat.X, quat.Y, quat.Z)
	t := qv.Cross(vec).Scale(2)
	return vec.Add(t.Scale(quat.W)).Add(qv.Cross(t))
}

// IsIdentity returns true if the Quaternion is (nearly) the no-rotation identity.
func (quat Quaternion) IsIdentity() bool {
	return quat.Equals(NewQuaternionIdentity())
}

// Equals returns true if the two Quaternions represent (nearly) the same orientation; q and -q
// are treated as equal, and both operands are normalized first so that unnormalized rotations
// still compare by orientation.
func (quat Quaternion) Equals(other Quaternion) bool {
	eps := 1e-9
	return math.Abs(math.Abs(quat.Normalized().Dot(other.Normalized()))-1) < eps
}
