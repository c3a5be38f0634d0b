package bounding

import "math"

// degenerateEpsilon is the spread below which a point set is considered to have no spatial
// extent at all (every point coincident).
const degenerateEpsilon = 1e-9

// BoundingOBB represents a 3D oriented bounding box: a center, three mutually orthogonal unit
// axes, and the box's half-extent along each axis. When built through a VolumeCache the OBB
// stays in mesh space - it is oriented to the mesh's own principal axes, so the mesh's world
// scale, rotation, and translation are all applied lazily at query time rather than baked in.
type BoundingOBB struct {
	Center   Vector
	Axes     [3]Vector
	HalfSize Vector
}

// NewBoundingOBBFromPoints builds an oriented bounding box for the given points. The box axes
// are the principal axes of the point set (eigenvectors of its covariance matrix), and the
// extents come from projecting every point onto those axes. Returns ErrNoPoints for an empty
// point set and ErrDegenerateGeometry when every point is coincident.
func NewBoundingOBBFromPoints(points []Vector) (BoundingOBB, error) {

	if len(points) == 0 {
		return BoundingOBB{}, ErrNoPoints
	}

	centroid := NewVectorZero()
	for _, p := range points {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Divide(float64(len(points)))

	var cov symMatrix3
	spread := 0.0
	for _, p := range points {
		d := p.Sub(centroid)
		cov[0] += d.X * d.X
		cov[1] += d.X * d.Y
		cov[2] += d.X * d.Z
		cov[3] += d.Y * d.Y
		cov[4] += d.Y * d.Z
		cov[5] += d.Z * d.Z
		spread = math.Max(spread, d.MagnitudeSquared())
	}

	if spread < degenerateEpsilon*degenerateEpsilon {
		return BoundingOBB{}, ErrDegenerateGeometry
	}

	n := float64(len(points))
	for i := range cov {
		cov[i] /= n
	}

	axes := cov.principalAxes()

	obb := BoundingOBB{Axes: axes}

	var mins, maxs [3]float64
	for i := 0; i < 3; i++ {
		mins[i] = math.MaxFloat64
		maxs[i] = -math.MaxFloat64
	}
	for _, p := range points {
		for i, axis := range axes {
			proj := axis.Dot(p)
			mins[i] = math.Min(mins[i], proj)
			maxs[i] = math.Max(maxs[i], proj)
		}
	}

	obb.HalfSize = NewVector(
		(maxs[0]-mins[0])/2,
		(maxs[1]-mins[1])/2,
		(maxs[2]-mins[2])/2,
	)

	for i, axis := range axes {
		obb.Center = obb.Center.Add(axis.Scale((maxs[i] + mins[i]) / 2))
	}

	return obb, nil

}

// Kind returns the VolumeKind for this volume.
func (obb BoundingOBB) Kind() VolumeKind {
	return VolumeOBB
}

// Volume returns the enclosed volume of the box.
func (obb BoundingOBB) Volume() float64 {
	return 8 * obb.HalfSize.X * obb.HalfSize.Y * obb.HalfSize.Z
}

// Vertices returns the 8 corners of the oriented box.
func (obb BoundingOBB) Vertices() [8]Vector {
	ex := obb.Axes[0].Scale(obb.HalfSize.X)
	ey := obb.Axes[1].Scale(obb.HalfSize.Y)
	ez := obb.Axes[2].Scale(obb.HalfSize.Z)
	return [8]Vector{
		obb.Center.Add(ex).Add(ey).Add(ez),
		obb.Center.Add(ex).Add(ey).Sub(ez),
		obb.Center.Add(ex).Sub(ey).Add(ez),
		obb.Center.Add(ex).Sub(ey).Sub(ez),
		obb.Center.Sub(ex).Add(ey).Add(ez),
		obb.Center.Sub(ex).Add(ey).Sub(ez),
		obb.Center.Sub(ex).Sub(ey).Add(ez),
		obb.Center.Sub(ex).Sub(ey).Sub(ez),
	}
}

// OuterAABB returns an axis-aligned box that contains the oriented box. This is much cheaper
// than recomputing an AABB of the underlying mesh, at the cost of being more conservative.
func (obb BoundingOBB) OuterAABB() BoundingAABB {
	verts := obb.Vertices()
	box, _ := NewBoundingAABBFromPoints(verts[:])
	return box
}

// PointInside returns whether the given point is inside of the oriented box or not.
func (obb BoundingOBB) PointInside(point Vector) bool {
	margin := 0.01
	d := point.Sub(obb.Center)
	half := obb.HalfSize.Floats()
	for i, axis := range obb.Axes {
		if math.Abs(axis.Dot(d)) > half[i]+margin {
			return false
		}
	}
	return true
}

// OutsidePlane returns true if the oriented box lies entirely on the positive side of the
// plane defined by the point and normal given.
func (obb BoundingOBB) OutsidePlane(point, normal Vector) bool {
	for _, vert := range obb.Vertices() {
		if normal.Dot(vert.Sub(point)) < 0 {
			return false
		}
	}
	return true
}

// Transformed applies a Transform to the oriented box, returning a box that encloses the
// transformed original: the center goes through the full transform and the axes are rotated.
// A non-uniform scale shears the box's edges out of alignment with its axes, so each output
// half-extent takes the summed absolute projections of the three scaled edge vectors onto its
// axis. That keeps the result a true bound in every case, and is exact for uniform scales and
// for boxes axis-aligned in mesh space; consumers needing the exact transformed corners of the
// original should transform Vertices() instead.
func (obb BoundingOBB) Transformed(t Transform) BoundingOBB {

	out := BoundingOBB{Center: t.Apply(obb.Center)}

	half := obb.HalfSize.Floats()
	edges := [3]Vector{}
	for i, axis := range obb.Axes {
		edges[i] = axis.MultComp(t.Scale).Scale(half[i])
		out.Axes[i] = t.Rotation.RotateVec(axis).Unit()
	}

	// Both the edges and the output axes come from the same mesh-space frame, so the
	// projections can be taken before rotating.
	scaled := [3]float64{}
	for j, axis := range obb.Axes {
		for _, edge := range edges {
			scaled[j] += math.Abs(edge.Dot(axis))
		}
	}

	out.HalfSize = NewVector(scaled[0], scaled[1], scaled[2])

	return out

}

// symMatrix3 is a symmetric 3x3 matrix stored as its upper triangle: xx, xy, xz, yy, yz, zz.
type symMatrix3 [6]float64

func (m symMatrix3) at(i, j int) float64 {
	if i > j {
		i, j = j, i
	}
	switch {
	case i == 0 && j == 0:
		return m[0]
	case i == 0 && j == 1:
		return m[1]
	case i == 0 && j == 2:
		return m[2]
	case i == 1 && j == 1:
		return m[3]
	case i == 1 && j == 2:
		return m[4]
	}
	return m[5]
}

// principalAxes diagonalizes the matrix with cyclic Jacobi rotations and returns its unit
// eigenvectors, ordered by descending eigenvalue. Near-equal eigenvalues (within 1e-9) keep
// canonical basis order so that output stays deterministic, and each axis is sign-normalized
// so its largest-magnitude component is positive.
func (m symMatrix3) principalAxes() [3]Vector {

	var a [3][3]float64
	var v [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j] = m.at(i, j)
		}
		v[i][i] = 1
	}

	for sweep := 0; sweep < 32; sweep++ {

		off := a[0][1]*a[0][1] + a[0][2]*a[0][2] + a[1][2]*a[1][2]
		if off < 1e-24 {
			break
		}

		for p := 0; p < 2; p++ {
			for q := p + 1; q < 3; q++ {

				if math.Abs(a[p][q]) < 1e-18 {
					continue
				}

				// Rotation angle that zeroes a[p][q].
				theta := (a[q][q] - a[p][p]) / (2 * a[p][q])
				t := 1 / (math.Abs(theta) + math.Sqrt(theta*theta+1))
				if theta < 0 {
					t = -t
				}
				c := 1 / math.Sqrt(t*t+1)
				s := t * c

				for i := 0; i < 3; i++ {
					aip, aiq := a[i][p], a[i][q]
					a[i][p] = c*aip - s*aiq
					a[i][q] = s*aip + c*aiq
				}
				for i := 0; i < 3; i++ {
					api, aqi := a[p][i], a[q][i]
					a[p][i] = c*api - s*aqi
					a[q][i] = s*api + c*aqi
				}
				for i := 0; i < 3; i++ {
					vip, viq := v[i][p], v[i][q]
					v[i][p] = c*vip - s*viq
					v[i][q] = s*vip + c*viq
				}

			}
		}

	}

	order := [3]int{0, 1, 2}
	eigen := [3]float64{a[0][0], a[1][1], a[2][2]}

	// Insertion sort by descending eigenvalue; ties (within epsilon) keep canonical column order.
	for i := 1; i < 3; i++ {
		for j := i; j > 0 && eigen[order[j]] > eigen[order[j-1]]+1e-9; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	var axes [3]Vector
	for i, col := range order {
		axis := NewVector(v[0][col], v[1][col], v[2][col]).Unit()
		axes[i] = signNormalized(axis)
	}

	return axes

}

func signNormalized(axis Vector) Vector {
	ax, ay, az := math.Abs(axis.X), math.Abs(axis.Y), math.Abs(axis.Z)
	lead := axis.X
	if ay > ax && ay >= az {
		lead = axis.Y
	} else if az > ax && az > ay {
		lead = axis.Z
	}
	if lead < 0 {
		return axis.Invert()
	}
	return axis
}
