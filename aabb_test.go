package bounding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoundingAABBFromPoints(t *testing.T) {

	box, err := NewBoundingAABBFromPoints([]Vector{
		NewVector(0, 0, 0),
		NewVector(2, 0, 0),
		NewVector(0, 2, 0),
		NewVector(0, 0, 2),
	})
	require.NoError(t, err)

	require.True(t, box.Min.Equals(NewVectorZero()))
	require.True(t, box.Max.Equals(NewVector(2, 2, 2)))
	require.True(t, box.Center().Equals(VecOne))
	require.True(t, box.Size().Equals(NewVector(2, 2, 2)))
	require.InDelta(t, 8, box.Volume(), 1e-12)

}

func TestBoundingAABBEnclosesPoints(t *testing.T) {

	for _, seed := range []int64{10, 11, 12} {

		points := randomPoints(300, 15, seed)

		box, err := NewBoundingAABBFromPoints(points)
		require.NoError(t, err)

		require.LessOrEqual(t, box.Min.X, box.Max.X)
		require.LessOrEqual(t, box.Min.Y, box.Max.Y)
		require.LessOrEqual(t, box.Min.Z, box.Max.Z)

		for _, p := range points {
			require.True(t, box.PointInside(p))
			require.GreaterOrEqual(t, p.X, box.Min.X)
			require.LessOrEqual(t, p.X, box.Max.X)
			require.GreaterOrEqual(t, p.Y, box.Min.Y)
			require.LessOrEqual(t, p.Y, box.Max.Y)
			require.GreaterOrEqual(t, p.Z, box.Min.Z)
			require.LessOrEqual(t, p.Z, box.Max.Z)
		}

	}

}

func TestBoundingAABBEmpty(t *testing.T) {
	_, err := NewBoundingAABBFromPoints([]Vector{})
	require.ErrorIs(t, err, ErrNoPoints)
}

func TestBoundingAABBDeterministic(t *testing.T) {

	points := randomPoints(100, 5, 99)

	a, err := NewBoundingAABBFromPoints(points)
	require.NoError(t, err)
	b, err := NewBoundingAABBFromPoints(points)
	require.NoError(t, err)

	require.Equal(t, a, b)

}

func TestBoundingAABBVertices(t *testing.T) {

	box := NewBoundingAABB(NewVector(-1, -2, -3), NewVector(1, 2, 3))
	verts := box.Vertices()
	require.Len(t, verts, 8)

	inner, err := NewBoundingAABBFromPoints(verts[:])
	require.NoError(t, err)
	require.Equal(t, box, inner)

}

func TestBoundingAABBMoved(t *testing.T) {

	box := NewBoundingAABB(NewVector(-1, -1, -1), VecOne).Moved(NewVector(5, 0, 0))
	require.True(t, box.Min.Equals(NewVector(4, -1, -1)))
	require.True(t, box.Max.Equals(NewVector(6, 1, 1)))

}

func TestBoundingAABBOutsidePlane(t *testing.T) {

	box := NewBoundingAABB(NewVector(1, 1, 1), NewVector(2, 2, 2))

	require.True(t, box.OutsidePlane(NewVectorZero(), VecX))
	require.False(t, box.OutsidePlane(NewVectorZero(), VecX.Invert()))
	require.False(t, box.OutsidePlane(NewVector(1.5, 0, 0), VecX))

}
