package bounding

import (
	"fmt"
	"math"
)

// VecX represents a unit vector in the global +X direction (right, on a right-handed OpenGL-style coordinate system).
var VecX = NewVector(1, 0, 0)

// VecY represents a unit vector in the global +Y direction (upwards).
var VecY = NewVector(0, 1, 0)

// VecZ represents a unit vector in the global +Z direction (backwards, towards you).
var VecZ = NewVector(0, 0, 1)

// VecOne is a vector with 1 on every axis; useful as a neutral scale.
var VecOne = NewVector(1, 1, 1)

// Vector represents a 3D Vector, used for positions, directions, and per-axis scales.
// Vector functions that modify the calling Vector return modified copies, so method-chaining
// works naturally and Vectors can be treated as plain values.
type Vector struct {
	X float64
	Y float64
	Z float64
}

// NewVector creates a new Vector with the specified x, y, and z components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// NewVectorZero creates a new "zero-ed out" Vector.
func NewVectorZero() Vector {
	return Vector{}
}

// Add returns a copy of the calling Vector, added together with the other Vector provided.
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it.
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Cross returns the cross product of the calling Vector and the other Vector provided.
func (vec Vector) Cross(other Vector) Vector {

	ogY := vec.Y
	ogZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogZ*other.X - other.Z*vec.X
	vec.X = ogY*other.Z - other.Y*ogZ

	return vec

}

// Invert returns a copy of the Vector with all components flipped.
func (vec Vector) Invert() Vector {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Magnitude returns the length of the Vector.
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector; this is faster than Magnitude() as it avoids math.Sqrt().
func (vec Vector) MagnitudeSquared() float64 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Distance returns the distance between the calling Vector and the other Vector.
func (vec Vector) Distance(other Vector) float64 {
	return vec.Sub(other).Magnitude()
}

// DistanceSquared returns the squared distance between the calling Vector and the other Vector; faster than Distance().
func (vec Vector) DistanceSquared(other Vector) float64 {
	return vec.Sub(other).MagnitudeSquared()
}

// MultComp multiplies the Vector component-wise by the other Vector provided.
func (vec Vector) MultComp(other Vector) Vector {
	vec.X *= other.X
	vec.Y *= other.Y
	vec.Z *= other.Z
	return vec
}

// Scale scales the Vector by the given scalar.
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Divide divides the Vector by the given scalar.
func (vec Vector) Divide(scalar float64) Vector {
	vec.X /= scalar
	vec.Y /= scalar
	vec.Z /= scalar
	return vec
}

// Dot returns the dot product of the Vector and the other Vector provided.
func (vec Vector) Dot(other Vector) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Unit returns a copy of the Vector, normalized (set to be of unit length).
// A zero-length Vector is returned unmodified.
func (vec Vector) Unit() Vector {
	l := vec.Magnitude()
	if l < 1e-12 {
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Lerp linearly interpolates between the calling Vector and the other Vector by the percentage given.
func (vec Vector) Lerp(other Vector, percent float64) Vector {
	vec.X += (other.X - vec.X) * percent
	vec.Y += (other.Y - vec.Y) * percent
	vec.Z += (other.Z - vec.Z) * percent
	return vec
}

// Min returns a Vector holding the component-wise minimum of the calling Vector and the other provided.
func (vec Vector) Min(other Vector) Vector {
	vec.X = math.Min(vec.X, other.X)
	vec.Y = math.Min(vec.Y, other.Y)
	vec.Z = math.Min(vec.Z, other.Z)
	return vec
}

// Max returns a Vector holding the component-wise maximum of the calling Vector and the other provided.
func (vec Vector) Max(other Vector) Vector {
	vec.X = math.Max(vec.X, other.X)
	vec.Y = math.Max(vec.Y, other.Y)
	vec.Z = math.Max(vec.Z, other.Z)
	return vec
}

// Abs returns a copy of the Vector with every component made non-negative.
func (vec Vector) Abs() Vector {
	vec.X = math.Abs(vec.X)
	vec.Y = math.Abs(vec.Y)
	vec.Z = math.Abs(vec.Z)
	return vec
}

// MaxAxis returns the largest single component of the Vector.
func (vec Vector) MaxAxis() float64 {
	return math.Max(math.Max(vec.X, vec.Y), vec.Z)
}

// Equals returns true if the two Vectors are close enough in all components.
func (vec Vector) Equals(other Vector) bool {

	eps := 1e-9

	if math.Abs(vec.X-other.X) > eps || math.Abs(vec.Y-other.Y) > eps || math.Abs(vec.Z-other.Z) > eps {
		return false
	}

	return true

}

// IsZero returns true if all components of the Vector are extremely close to 0.
func (vec Vector) IsZero() bool {

	eps := 1e-9

	if math.Abs(vec.X) > eps || math.Abs(vec.Y) > eps || math.Abs(vec.Z) > eps {
		return false
	}

	return true

}

// Floats returns a [3]float64 array consisting of the Vector's contents.
func (vec Vector) Floats() [3]float64 {
	return [3]float64{vec.X, vec.Y, vec.Z}
}

// String returns a readable representation of the Vector.
func (vec Vector) String() string {
	return fmt.Sprintf("{%.4f, %.4f, %.4f}", vec.X, vec.Y, vec.Z)
}
