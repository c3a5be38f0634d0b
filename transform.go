package bounding

// Transform represents a local-to-world transform, decomposed into the three components that
// matter independently for bounding-volume staleness: translation, rotation, and per-axis scale.
type Transform struct {
	Position Vector
	Rotation Quaternion
	Scale    Vector
}

// NewTransform returns an identity Transform (no translation, no rotation, scale of 1 on every axis).
func NewTransform() Transform {
	return Transform{
		Rotation: NewQuaternionIdentity(),
		Scale:    VecOne,
	}
}

// Apply transforms the given point by the full Transform, applying scale, then rotation, then
// translation (the usual T * R * S order).
func (t Transform) Apply(point Vector) Vector {
	return t.Rotation.RotateVec(point.MultComp(t.Scale)).Add(t.Position)
}

// ApplyInverseTranslation transforms the point by rotation and scale only, leaving the result
// centered on the mesh origin. Bounding volumes are stored in this origin-centered space to
// keep float error independent of how far the mesh sits from the world origin.
func (t Transform) ApplyInverseTranslation(point Vector) Vector {
	return t.Rotation.RotateVec(point.MultComp(t.Scale))
}

// Moved returns a copy of the Transform with the given translation added.
func (t Transform) Moved(x, y, z float64) Transform {
	t.Position = t.Position.Add(NewVector(x, y, z))
	return t
}

// Rotated returns a copy of the Transform rotated around the given axis by the angle given (in radians).
func (t Transform) Rotated(axis Vector, angle float64) Transform {
	t.Rotation = NewQuaternionAxisAngle(axis, angle).Mult(t.Rotation).Normalized()
	return t
}

// Scaled returns a copy of the Transform with its scale multiplied component-wise by x, y, and z.
func (t Transform) Scaled(x, y, z float64) Transform {
	t.Scale = t.Scale.MultComp(NewVector(x, y, z))
	return t
}
