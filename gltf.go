package bounding

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTFFile loads the meshes of a .gltf or .glb file from the filepath given, returning a
// Library of the vertex positions found. Only positions are read - materials, animations, and
// the scene hierarchy are the host application's concern, not the bounding volume engine's.
func LoadGLTFFile(path string) (*Library, error) {

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadGLTFData(file)

}

// LoadGLTFData loads .gltf or .glb data from the reader given, returning a Library containing
// one Mesh per glTF mesh; positions from all of a mesh's primitives are merged, since a
// bounding volume covers the whole mesh. Primitives without a position attribute are skipped
// with a warning.
func LoadGLTFData(data io.Reader) (*Library, error) {

	doc := gltf.NewDocument()

	if err := gltf.NewDecoder(data).Decode(doc); err != nil {
		return nil, err
	}

	library := NewLibrary()

	for meshIndex, m := range doc.Meshes {

		name := m.Name
		if name == "" {
			name = fmt.Sprintf("Mesh.%03d", meshIndex)
		}

		points := []Vector{}

		for primIndex, prim := range m.Primitives {

			posAccessor, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				log.Printf("warning: mesh %s, primitive %d has no position attribute; skipping\n", name, primIndex)
				continue
			}

			vertPos, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], [][3]float32{})
			if err != nil {
				return nil, err
			}

			for _, pos := range vertPos {
				points = append(points, NewVector(float64(pos[0]), float64(pos[1]), float64(pos[2])))
			}

		}

		library.AddMesh(NewMesh(name, points...))

	}

	return library, nil

}
