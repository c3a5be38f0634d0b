package bounding

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// VolumeRecord is a cached bounding volume for one (mesh, kind) pair, along with everything
// needed to judge its freshness: the mask of transform components baked into its coordinates,
// the mesh content version, and the transform snapshot it was built against.
//
// Records are immutable once published - a rebuild swaps in a whole new record rather than
// mutating the old one, so a reader never observes a volume mid-recompute.
type VolumeRecord struct {
	Volume      Volume
	Baked       TransformComponents
	MeshVersion uint64
	Transform   Transform
}

// fresh reports whether the record can still stand for the given mesh version and transform.
func (record *VolumeRecord) fresh(kind VolumeKind, version uint64, t Transform) bool {
	if record.MeshVersion != version {
		return false
	}
	return !needsRecompute(kind, diffTransforms(record.Transform, t))
}

// WorldVolume lazily applies the transform components not baked into the record, returning
// the volume in world space.
func (record *VolumeRecord) WorldVolume(t Transform) Volume {
	return applyRemaining(record.Volume, record.Baked, t)
}

type recordKey struct {
	Mesh string
	Kind VolumeKind
}

func (key recordKey) String() string {
	return key.Mesh + "/" + key.Kind.String()
}

// VolumeCache is the single source of truth mapping (mesh, volume kind) pairs to their cached
// bounding volumes. Reads across different pairs proceed concurrently; rebuilds of the same
// pair are collapsed into one in-flight build shared by all callers.
type VolumeCache struct {
	source  GeometrySource
	mu      sync.RWMutex
	records map[recordKey]*VolumeRecord
	builds  singleflight.Group
}

// NewVolumeCache creates a new VolumeCache reading geometry from the given source.
func NewVolumeCache(source GeometrySource) *VolumeCache {
	return &VolumeCache{
		source:  source,
		records: map[recordKey]*VolumeRecord{},
	}
}

// GetOrBuild returns the current record for the named mesh and volume kind, rebuilding it
// first if it is absent, its mesh geometry has changed version, or a transform component baked
// into it has changed. Builder errors (ErrNoPoints, ErrDegenerateGeometry, ErrMeshNotFound)
// propagate unchanged; no record is published for a failed build.
//
// Concurrent callers for the same pair share a single build. The cache assumes one logical
// owner per mesh supplies the transform, so simultaneous callers pass the same transform.
func (cache *VolumeCache) GetOrBuild(meshName string, kind VolumeKind, t Transform) (*VolumeRecord, error) {

	key := recordKey{Mesh: meshName, Kind: kind}

	cache.mu.RLock()
	record := cache.records[key]
	cache.mu.RUnlock()

	if record != nil && record.fresh(kind, cache.source.MeshVersion(meshName), t) {
		return record, nil
	}

	built, err, _ := cache.builds.Do(key.String(), func() (interface{}, error) {

		// Another caller may have finished the rebuild while we waited on the flight group.
		version := cache.source.MeshVersion(meshName)
		cache.mu.RLock()
		record := cache.records[key]
		cache.mu.RUnlock()
		if record != nil && record.fresh(kind, version, t) {
			return record, nil
		}

		points, err := cache.source.MeshPoints(meshName)
		if err != nil {
			return nil, err
		}

		path := volumePaths[kind]
		volume, err := path.build(points, t)
		if err != nil {
			return nil, err
		}

		record = &VolumeRecord{
			Volume:      volume,
			Baked:       path.baked,
			MeshVersion: version,
			Transform:   t,
		}

		cache.mu.Lock()
		cache.records[key] = record
		cache.mu.Unlock()

		return record, nil

	})

	if err != nil {
		return nil, err
	}

	return built.(*VolumeRecord), nil

}

// Query returns the bounding volume of the given kind for the named mesh in world space,
// rebuilding the cached record if needed and then lazily applying whatever transform
// components aren't baked into it (translation always; rotation for spheres; the full
// transform for OBBs).
func (cache *VolumeCache) Query(meshName string, kind VolumeKind, t Transform) (Volume, error) {
	record, err := cache.GetOrBuild(meshName, kind, t)
	if err != nil {
		return nil, err
	}
	return record.WorldVolume(t), nil
}

// Invalidate removes all cached records for the named mesh. Call this when a mesh is removed
// from the geometry source.
func (cache *VolumeCache) Invalidate(meshName string) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	for key := range cache.records {
		if key.Mesh == meshName {
			delete(cache.records, key)
		}
	}
}

// EvictUnused removes every record for which the predicate returns true. This is the bulk
// hook for the host application's scope management (e.g. dropping volumes for meshes no
// longer loaded).
func (cache *VolumeCache) EvictUnused(predicate func(meshName string, kind VolumeKind) bool) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	for key := range cache.records {
		if predicate(key.Mesh, key.Kind) {
			delete(cache.records, key)
		}
	}
}

// Len returns how many records the cache currently holds.
func (cache *VolumeCache) Len() int {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	return len(cache.records)
}
