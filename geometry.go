package bounding

import "fmt"

// GeometrySource supplies vertex positions for meshes by name, along with a monotonically
// increasing content version per mesh so that consumers (the VolumeCache, primarily) can tell
// when a mesh's geometry has changed out from under a cached volume.
type GeometrySource interface {
	// MeshPoints returns the vertex positions of the named mesh in mesh-local space.
	// The returned slice must be treated as read-only. Returns ErrMeshNotFound if no mesh
	// exists under that name.
	MeshPoints(name string) ([]Vector, error)
	// MeshVersion returns the current content version of the named mesh; 0 if unknown.
	MeshVersion(name string) uint64
}

// Mesh is a named set of vertex positions. Its version starts at 1 and advances whenever the
// points are replaced, so cached bounding volumes built against it can detect staleness.
type Mesh struct {
	Name    string
	points  []Vector
	version uint64
}

// NewMesh returns a new Mesh with the name and vertex positions provided.
func NewMesh(name string, points ...Vector) *Mesh {
	return &Mesh{
		Name:    name,
		points:  points,
		version: 1,
	}
}

// Points returns the mesh's vertex positions. The slice must be treated as read-only; use
// SetPoints to change geometry.
func (mesh *Mesh) Points() []Vector {
	return mesh.points
}

// SetPoints replaces the mesh's vertex positions and advances its content version.
func (mesh *Mesh) SetPoints(points ...Vector) {
	mesh.points = points
	mesh.version++
}

// Version returns the mesh's current content version.
func (mesh *Mesh) Version() uint64 {
	return mesh.version
}

// Clone returns a copy of the Mesh with its own point storage and a reset version.
func (mesh *Mesh) Clone() *Mesh {
	points := make([]Vector, len(mesh.points))
	copy(points, mesh.points)
	return NewMesh(mesh.Name, points...)
}

// Library holds meshes by name and implements GeometrySource over them. A Library is what
// LoadGLTFFile and LoadGLTFData return.
type Library struct {
	Meshes map[string]*Mesh
}

// NewLibrary creates a new Library.
func NewLibrary() *Library {
	return &Library{
		Meshes: map[string]*Mesh{},
	}
}

// AddMesh adds the given Mesh to the Library, replacing any existing Mesh of the same name.
func (library *Library) AddMesh(mesh *Mesh) {
	library.Meshes[mesh.Name] = mesh
}

// MeshPoints implements GeometrySource.
func (library *Library) MeshPoints(name string) ([]Vector, error) {
	mesh, ok := library.Meshes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMeshNotFound, name)
	}
	return mesh.Points(), nil
}

// MeshVersion implements GeometrySource.
func (library *Library) MeshVersion(name string) uint64 {
	mesh, ok := library.Meshes[name]
	if !ok {
		return 0
	}
	return mesh.Version()
}
