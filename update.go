package bounding

// TransformComponents is a bitmask over the independent inputs a cached bounding volume can
// derive from: the mesh geometry itself, plus the three components of the mesh's transform.
// It serves double duty as a change set (which inputs moved since the last build) and as a
// baked mask (which inputs are already folded into a cached volume's coordinates).
type TransformComponents uint8

const (
	ComponentGeometry TransformComponents = 1 << iota
	ComponentScale
	ComponentRotation
	ComponentTranslation
)

// Has returns whether the mask contains all of the given components.
func (c TransformComponents) Has(other TransformComponents) bool {
	return c&other == other
}

// volumePath holds the dedicated build logic for one volume kind: which transform components
// get baked into the cached volume (and therefore force a rebuild when they change), and the
// builder that bakes them.
//
// Per kind:
//   - Sphere bakes geometry and scale. Rotation never changes a sphere's shape, and
//     translation is trivially re-applied, so neither forces a rebuild.
//   - AABB bakes geometry, scale, and rotation: axis-aligned bounds over a rotated point set
//     differ from the bounds over the unrotated set. Only translation stays lazy.
//   - OBB bakes geometry alone. The box is oriented to the mesh's own principal axes, so the
//     whole transform can be applied lazily at query time.
type volumePath struct {
	baked TransformComponents
	build func(points []Vector, t Transform) (Volume, error)
}

var volumePaths = map[VolumeKind]volumePath{

	VolumeSphere: {
		baked: ComponentGeometry | ComponentScale,
		build: func(points []Vector, t Transform) (Volume, error) {
			baked := make([]Vector, len(points))
			for i, p := range points {
				baked[i] = p.MultComp(t.Scale)
			}
			return NewBoundingSphereFromPoints(baked)
		},
	},

	VolumeAABB: {
		baked: ComponentGeometry | ComponentScale | ComponentRotation,
		build: func(points []Vector, t Transform) (Volume, error) {
			baked := make([]Vector, len(points))
			for i, p := range points {
				baked[i] = t.ApplyInverseTranslation(p)
			}
			return NewBoundingAABBFromPoints(baked)
		},
	},

	VolumeOBB: {
		baked: ComponentGeometry,
		build: func(points []Vector, t Transform) (Volume, error) {
			return NewBoundingOBBFromPoints(points)
		},
	},
}

// diffTransforms reports which transform components differ between the transform a volume was
// built against and the current one.
func diffTransforms(old, current Transform) TransformComponents {
	changed := TransformComponents(0)
	if !old.Scale.Equals(current.Scale) {
		changed |= ComponentScale
	}
	if !old.Rotation.Equals(current.Rotation) {
		changed |= ComponentRotation
	}
	if !old.Position.Equals(current.Position) {
		changed |= ComponentTranslation
	}
	return changed
}

// needsRecompute reports whether a cached volume of the given kind must be rebuilt from mesh
// data for the given change set. A change only matters if the changed component is baked into
// the cached coordinates; everything else is re-applied lazily on read.
func needsRecompute(kind VolumeKind, changed TransformComponents) bool {
	return changed&volumePaths[kind].baked != 0
}

// applyRemaining applies the transform components NOT baked into the volume (per the baked
// mask), returning the volume in world space. It is pure and independent of any cache.
func applyRemaining(vol Volume, baked TransformComponents, t Transform) Volume {

	switch v := vol.(type) {

	case BoundingSphere:
		if !baked.Has(ComponentRotation) {
			v.Center = t.Rotation.RotateVec(v.Center)
		}
		v.Center = v.Center.Add(t.Position)
		return v

	case BoundingAABB:
		return v.Moved(t.Position)

	case BoundingOBB:
		return v.Transformed(t)

	}

	return vol

}
