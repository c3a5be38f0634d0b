package bounding

import "math"

// BoundingAABB represents a 3D axis-aligned bounding box. When built through a VolumeCache,
// the box is stored centered on its mesh's origin with rotation and scale already baked in,
// and the mesh's world translation is added back lazily at query time.
type BoundingAABB struct {
	Min Vector
	Max Vector
}

// NewBoundingAABB returns a new BoundingAABB with the given extents.
func NewBoundingAABB(min, max Vector) BoundingAABB {
	return BoundingAABB{Min: min, Max: max}
}

// NewBoundingAABBFromPoints builds the box from the component-wise extrema of the given points
// in a single pass. Returns ErrNoPoints for an empty point set.
func NewBoundingAABBFromPoints(points []Vector) (BoundingAABB, error) {

	if len(points) == 0 {
		return BoundingAABB{}, ErrNoPoints
	}

	box := BoundingAABB{
		Min: NewVector(math.MaxFloat64, math.MaxFloat64, math.MaxFloat64),
		Max: NewVector(-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64),
	}

	for _, p := range points {
		box.Min = box.Min.Min(p)
		box.Max = box.Max.Max(p)
	}

	return box, nil

}

// Kind returns the VolumeKind for this volume.
func (box BoundingAABB) Kind() VolumeKind {
	return VolumeAABB
}

// Center returns the center point between the box's two corners.
func (box BoundingAABB) Center() Vector {
	return box.Min.Add(box.Max).Scale(0.5)
}

// Size returns the width, height, and depth of the box as a Vector.
func (box BoundingAABB) Size() Vector {
	return box.Max.Sub(box.Min)
}

// Volume returns the enclosed volume of the box.
func (box BoundingAABB) Volume() float64 {
	size := box.Size()
	return size.X * size.Y * size.Z
}

// Moved returns a copy of the box translated by the given offset.
func (box BoundingAABB) Moved(offset Vector) BoundingAABB {
	box.Min = box.Min.Add(offset)
	box.Max = box.Max.Add(offset)
	return box
}

// Vertices returns the 8 corners of the box.
func (box BoundingAABB) Vertices() [8]Vector {
	return [8]Vector{
		{box.Max.X, box.Max.Y, box.Max.Z},
		{box.Max.X, box.Max.Y, box.Min.Z},
		{box.Max.X, box.Min.Y, box.Max.Z},
		{box.Max.X, box.Min.Y, box.Min.Z},
		{box.Min.X, box.Max.Y, box.Max.Z},
		{box.Min.X, box.Max.Y, box.Min.Z},
		{box.Min.X, box.Min.Y, box.Max.Z},
		{box.Min.X, box.Min.Y, box.Min.Z},
	}
}

// PointInside returns whether the given point is inside of the box or not, with a small margin
// to absorb contact-point rounding.
func (box BoundingAABB) PointInside(point Vector) bool {

	margin := 0.01

	if point.X >= box.Min.X-margin && point.X <= box.Max.X+margin &&
		point.Y >= box.Min.Y-margin && point.Y <= box.Max.Y+margin &&
		point.Z >= box.Min.Z-margin && point.Z <= box.Max.Z+margin {
		return true
	}

	return false

}

// OutsidePlane returns true if the box lies entirely on the positive side of the plane defined
// by the point and normal given.
func (box BoundingAABB) OutsidePlane(point, normal Vector) bool {
	for _, vert := range box.Vertices() {
		if normal.Dot(vert.Sub(point)) < 0 {
			return false
		}
	}
	return true
}
