// Package bounding computes and caches bounding volumes (spheres, axis-aligned boxes, and
// oriented boxes) for 3D meshes.
//
// Each volume kind has a dedicated build path and its own rule for which transform components
// (scale, rotation, translation) get baked into the cached volume versus re-applied lazily at
// query time, so volumes are only rebuilt from vertex data when a baked input actually changes.
// The host application supplies geometry through a GeometrySource (a Library loaded from glTF
// works out of the box) and reads world-space volumes through a VolumeCache.
package bounding
