package bounding

// radiusPadding is the relative inflation applied to built sphere radii so that the source
// points stay enclosed despite floating-point rounding in the build.
const radiusPadding = 1e-6

// BoundingSphere represents a 3D sphere enclosing a set of points.
type BoundingSphere struct {
	Center Vector
	Radius float64
}

// NewBoundingSphere returns a new BoundingSphere with the given center and radius.
func NewBoundingSphere(center Vector, radius float64) BoundingSphere {
	return BoundingSphere{Center: center, Radius: radius}
}

// NewBoundingSphereFromPoints builds a sphere enclosing all of the given points. It starts from
// the two mutually-farthest candidate points as poles and then iteratively grows the sphere
// towards any point still outside it, which converges on a near-minimal enclosing sphere
// without being quadratic in the point count. Returns ErrNoPoints for an empty point set.
func NewBoundingSphereFromPoints(points []Vector) (BoundingSphere, error) {

	if len(points) == 0 {
		return BoundingSphere{}, ErrNoPoints
	}

	// Pole selection: y is the point farthest from points[0], z the point farthest from y.
	x := points[0]
	y := farthestFrom(points, x)
	z := farthestFrom(points, y)

	sphere := BoundingSphere{
		Center: y.Lerp(z, 0.5),
		Radius: y.Distance(z) / 2,
	}

	for {

		n := farthestFrom(points, sphere.Center)
		dist := n.Distance(sphere.Center)

		if dist <= sphere.Radius {
			break
		}

		// Grow the sphere to touch both the far point and the previous boundary opposite it.
		newRadius := (sphere.Radius + dist) / 2
		sphere.Center = sphere.Center.Lerp(n, (dist-newRadius)/dist)
		sphere.Radius = newRadius

	}

	sphere.Radius *= 1 + radiusPadding

	return sphere, nil

}

func farthestFrom(points []Vector, target Vector) Vector {
	far := points[0]
	farDist := far.DistanceSquared(target)
	for _, p := range points[1:] {
		if d := p.DistanceSquared(target); d > farDist {
			far = p
			farDist = d
		}
	}
	return far
}

// Kind returns the VolumeKind for this volume.
func (sphere BoundingSphere) Kind() VolumeKind {
	return VolumeSphere
}

// PointInside returns whether the given point is inside of the sphere or not.
func (sphere BoundingSphere) PointInside(point Vector) bool {
	return sphere.Center.Distance(point) <= sphere.Radius
}

// OutsidePlane returns true if the sphere lies entirely on the positive side of the plane
// defined by the point and normal given.
func (sphere BoundingSphere) OutsidePlane(point, normal Vector) bool {
	return normal.Dot(sphere.Center.Sub(point)) >= sphere.Radius
}
