package bounding

// Mesh constructors for a few primitive shapes. These are handy as stand-in geometry when the
// host application hasn't loaded real assets yet.

// NewCubeMesh returns a Mesh of a cube's 8 corners, centered on the origin, with the given
// edge length.
func NewCubeMesh(name string, size float64) *Mesh {
	h := size / 2
	return NewMesh(name,
		NewVector(h, h, h),
		NewVector(h, h, -h),
		NewVector(h, -h, h),
		NewVector(h, -h, -h),
		NewVector(-h, h, h),
		NewVector(-h, h, -h),
		NewVector(-h, -h, h),
		NewVector(-h, -h, -h),
	)
}

// NewBoxMesh returns a Mesh of a box's 8 corners, centered on the origin, with the given
// width, height, and depth.
func NewBoxMesh(name string, width, height, depth float64) *Mesh {
	w, h, d := width/2, height/2, depth/2
	return NewMesh(name,
		NewVector(w, h, d),
		NewVector(w, h, -d),
		NewVector(w, -h, d),
		NewVector(w, -h, -d),
		NewVector(-w, h, d),
		NewVector(-w, h, -d),
		NewVector(-w, -h, d),
		NewVector(-w, -h, -d),
	)
}

// NewPlaneMesh returns a Mesh of a flat quad's 4 corners on the XZ plane, centered on the
// origin, with the given width and depth.
func NewPlaneMesh(name string, width, depth float64) *Mesh {
	w, d := width/2, depth/2
	return NewMesh(name,
		NewVector(w, 0, d),
		NewVector(w, 0, -d),
		NewVector(-w, 0, d),
		NewVector(-w, 0, -d),
	)
}
