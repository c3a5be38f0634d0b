package bounding

import "errors"

var (
	// ErrNoPoints is returned when a bounding volume build is requested for an empty point set.
	ErrNoPoints = errors.New("bounding: point set is empty")
	// ErrDegenerateGeometry is returned when OBB construction is attempted on a point set with no
	// spatial extent on any axis (all points coincident). Callers may substitute a minimal sphere
	// or box instead.
	ErrDegenerateGeometry = errors.New("bounding: point set has no spatial extent")
	// ErrMeshNotFound is returned when a GeometrySource has no mesh under the requested name.
	ErrMeshNotFound = errors.New("bounding: mesh not found")
)

// VolumeKind identifies one of the supported bounding volume variants. Each kind has its own
// dedicated build and update path; see the dispatch tables in update.go.
type VolumeKind int

const (
	VolumeSphere VolumeKind = iota
	VolumeAABB
	VolumeOBB
)

func (kind VolumeKind) String() string {
	switch kind {
	case VolumeSphere:
		return "Sphere"
	case VolumeAABB:
		return "AABB"
	case VolumeOBB:
		return "OBB"
	}
	return "Unknown"
}

// Volume is the common surface shared by the three bounding volume variants. Consumers that
// don't care which kind they were handed can still run point and plane tests through it.
type Volume interface {
	Kind() VolumeKind
	// PointInside returns whether the given point lies inside the volume.
	PointInside(point Vector) bool
	// OutsidePlane returns true if the volume lies entirely on the far side of the plane
	// defined by a point on the plane and its normal (pointing away from the volume to
	// cull). Useful for frustum culling.
	OutsidePlane(point, normal Vector) bool
}
