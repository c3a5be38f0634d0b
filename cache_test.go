package bounding

import (
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// countingSource wraps a GeometrySource and counts how often mesh points are actually read,
// which is exactly how often a volume was rebuilt from geometry.
type countingSource struct {
	GeometrySource
	reads atomic.Int64
}

func (source *countingSource) MeshPoints(name string) ([]Vector, error) {
	source.reads.Add(1)
	return source.GeometrySource.MeshPoints(name)
}

func newTestCache(t *testing.T) (*VolumeCache, *countingSource, *Library) {
	t.Helper()
	library := NewLibrary()
	library.AddMesh(NewCubeMesh("cube", 2))
	library.AddMesh(NewMesh("empty"))
	source := &countingSource{GeometrySource: library}
	return NewVolumeCache(source), source, library
}

func TestCacheSphereDirtyTracking(t *testing.T) {

	cache, source, _ := newTestCache(t)
	tr := NewTransform()

	record, err := cache.GetOrBuild("cube", VolumeSphere, tr)
	require.NoError(t, err)
	require.EqualValues(t, 1, source.reads.Load())

	// Same transform: cached record comes back untouched.
	again, err := cache.GetOrBuild("cube", VolumeSphere, tr)
	require.NoError(t, err)
	require.Same(t, record, again)

	// Rotation-only change: spheres are rotation-invariant, no rebuild.
	rotated := tr.Rotated(VecY, math.Pi/3)
	again, err = cache.GetOrBuild("cube", VolumeSphere, rotated)
	require.NoError(t, err)
	require.Same(t, record, again)
	require.EqualValues(t, 1, source.reads.Load())

	// Translation-only change: no rebuild either.
	_, err = cache.GetOrBuild("cube", VolumeSphere, tr.Moved(100, 0, 0))
	require.NoError(t, err)
	require.EqualValues(t, 1, source.reads.Load())

	// Scale change: the baked extent is stale, forcing a rebuild.
	scaled := tr.Scaled(2, 2, 2)
	rebuilt, err := cache.GetOrBuild("cube", VolumeSphere, scaled)
	require.NoError(t, err)
	require.NotSame(t, record, rebuilt)
	require.EqualValues(t, 2, source.reads.Load())

	world := rebuilt.WorldVolume(scaled).(BoundingSphere)
	require.InDelta(t, 2*math.Sqrt(3), world.Radius, 1e-4)

}

func TestCacheAABBDirtyTracking(t *testing.T) {

	cache, source, _ := newTestCache(t)
	tr := NewTransform()

	_, err := cache.GetOrBuild("cube", VolumeAABB, tr)
	require.NoError(t, err)
	require.EqualValues(t, 1, source.reads.Load())

	// Translation never rebuilds an AABB; it's re-centered at query time.
	world, err := cache.Query("cube", VolumeAABB, tr.Moved(10, 0, 0))
	require.NoError(t, err)
	require.EqualValues(t, 1, source.reads.Load())
	box := world.(BoundingAABB)
	require.True(t, box.Min.Equals(NewVector(9, -1, -1)))
	require.True(t, box.Max.Equals(NewVector(11, 1, 1)))

	// Rotation does rebuild: bounds over a rotated point set differ.
	rotated := tr.Rotated(VecY, math.Pi/4)
	world, err = cache.Query("cube", VolumeAABB, rotated)
	require.NoError(t, err)
	require.EqualValues(t, 2, source.reads.Load())
	box = world.(BoundingAABB)
	require.InDelta(t, math.Sqrt(2), box.Max.X, 1e-6)
	require.InDelta(t, 1, box.Max.Y, 1e-6)

}

func TestCacheOBBDirtyTracking(t *testing.T) {

	cache, source, library := newTestCache(t)
	tr := NewTransform()

	record, err := cache.GetOrBuild("cube", VolumeOBB, tr)
	require.NoError(t, err)
	require.EqualValues(t, 1, source.reads.Load())

	// Neither scale nor rotation rebuilds an OBB; both are applied lazily.
	again, err := cache.GetOrBuild("cube", VolumeOBB, tr.Scaled(3, 1, 1).Rotated(VecZ, 1).Moved(0, 0, 5))
	require.NoError(t, err)
	require.Same(t, record, again)
	require.EqualValues(t, 1, source.reads.Load())

	// A geometry change is the one thing that does.
	library.Meshes["cube"].SetPoints(NewBoxMesh("cube", 6, 2, 2).Points()...)
	rebuilt, err := cache.GetOrBuild("cube", VolumeOBB, tr)
	require.NoError(t, err)
	require.NotSame(t, record, rebuilt)
	require.EqualValues(t, 2, source.reads.Load())
	require.True(t, rebuilt.Volume.(BoundingOBB).HalfSize.Equals(NewVector(3, 1, 1)))

}

func TestCacheErrorPropagation(t *testing.T) {

	cache, _, _ := newTestCache(t)
	tr := NewTransform()

	_, err := cache.Query("missing", VolumeSphere, tr)
	require.ErrorIs(t, err, ErrMeshNotFound)

	_, err = cache.Query("empty", VolumeAABB, tr)
	require.ErrorIs(t, err, ErrNoPoints)

	// A failed build publishes nothing.
	require.Equal(t, 0, cache.Len())

	// Degenerate geometry errors pass through for OBBs specifically.
	library := NewLibrary()
	library.AddMesh(NewMesh("point", NewVectorZero(), NewVectorZero(), NewVectorZero(), NewVectorZero()))
	pointCache := NewVolumeCache(library)
	_, err = pointCache.Query("point", VolumeOBB, tr)
	require.ErrorIs(t, err, ErrDegenerateGeometry)

	// The same mesh still gets a sphere, which callers may fall back to.
	_, err = pointCache.Query("point", VolumeSphere, tr)
	require.NoError(t, err)

}

func TestCacheInvalidateAndEvict(t *testing.T) {

	cache, source, _ := newTestCache(t)
	tr := NewTransform()

	for _, kind := range []VolumeKind{VolumeSphere, VolumeAABB, VolumeOBB} {
		_, err := cache.GetOrBuild("cube", kind, tr)
		require.NoError(t, err)
	}
	require.Equal(t, 3, cache.Len())
	require.EqualValues(t, 3, source.reads.Load())

	cache.Invalidate("cube")
	require.Equal(t, 0, cache.Len())

	// Rebuild after invalidation hits geometry again.
	_, err := cache.GetOrBuild("cube", VolumeSphere, tr)
	require.NoError(t, err)
	require.EqualValues(t, 4, source.reads.Load())

	_, err = cache.GetOrBuild("cube", VolumeOBB, tr)
	require.NoError(t, err)

	cache.EvictUnused(func(meshName string, kind VolumeKind) bool {
		return kind == VolumeOBB
	})
	require.Equal(t, 1, cache.Len())

}

func TestCacheConcurrentQueries(t *testing.T) {

	library := NewLibrary()
	library.AddMesh(NewMesh("blob", randomPoints(2000, 10, 123)...))
	source := &countingSource{GeometrySource: library}
	cache := NewVolumeCache(source)

	tr := NewTransform().Moved(1, 2, 3)

	var wg sync.WaitGroup
	results := make([]Volume, 64)
	errs := make([]error, 64)

	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			kind := []VolumeKind{VolumeSphere, VolumeAABB, VolumeOBB}[i%3]
			results[i], errs[i] = cache.Query("blob", kind, tr)
		}(i)
	}
	wg.Wait()

	for i := range errs {
		require.NoError(t, errs[i])
		require.NotNil(t, results[i])
	}

	// Every caller of the same kind saw an identical world volume.
	for i := 3; i < 64; i++ {
		require.Equal(t, results[i-3], results[i])
	}

	require.Equal(t, 3, cache.Len())

}
