package geometries

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTFGeometry loads a .gltf or .glb file from the filepath given and merges the triangles of every mesh in it
// into one indexed Geometry named after the file. Node transforms, materials, and other vertex attributes are ignored.
// External buffers are resolved relative to the file.
func LoadGLTFGeometry(path string) (*Geometry, error) {

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf %q: %w", path, err)
	}

	return geometryFromDocument(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), doc)

}

// LoadGLTFGeometryData is LoadGLTFGeometry for .gltf or .glb data already in memory. Buffers must be embedded.
func LoadGLTFGeometryData(name string, data []byte) (*Geometry, error) {

	doc := gltf.NewDocument()

	if err := gltf.NewDecoder(bytes.NewReader(data)).Decode(doc); err != nil {
		return nil, fmt.Errorf("decode gltf %q: %w", name, err)
	}

	return geometryFromDocument(name, doc)

}

func geometryFromDocument(name string, doc *gltf.Document) (*Geometry, error) {

	var positions []float64
	var indices []int

	for _, mesh := range doc.Meshes {

		for p, prim := range mesh.Primitives {

			if prim.Mode != gltf.PrimitiveTriangles {
				Logger().Debug("skipping non-triangle primitive", "mesh", mesh.Name, "primitive", p, "mode", prim.Mode)
				continue
			}

			posAccessor, exists := prim.Attributes[gltf.POSITION]
			if !exists {
				continue
			}

			vertPos, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], [][3]float32{})
			if err != nil {
				return nil, fmt.Errorf("read positions of mesh %q: %w", mesh.Name, err)
			}

			start := len(positions) / 3

			for _, v := range vertPos {
				positions = append(positions, float64(v[0]), float64(v[1]), float64(v[2]))
			}

			if prim.Indices == nil {
				for i := range vertPos {
					indices = append(indices, start+i)
				}
				continue
			}

			primIndices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], []uint32{})
			if err != nil {
				return nil, fmt.Errorf("read indices of mesh %q: %w", mesh.Name, err)
			}

			for _, index := range primIndices {
				indices = append(indices, start+int(index))
			}

		}

	}

	if len(positions) == 0 {
		return nil, fmt.Errorf("%w: %q has no triangle meshes", ErrInvalidGeometry, name)
	}

	geo, err := NewIndexedGeometry(name, positions, indices)
	if err != nil {
		return nil, err
	}

	Logger().Info("loaded gltf geometry", "name", name, "vertices", geo.VertexCount(), "triangles", geo.TriangleCount())

	return geo, nil

}

// SaveGLTFGeometry writes the Geometry as a binary glTF (.glb) file holding a single mesh.
func SaveGLTFGeometry(geo *Geometry, path string) error {

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := EncodeGLTFGeometry(geo, f); err != nil {
		f.Close()
		return err
	}

	return f.Close()

}

// EncodeGLTFGeometry writes the Geometry to w as binary glTF. Unindexed geometry is written with sequential indices.
func EncodeGLTFGeometry(geo *Geometry, w io.Writer) error {

	if geo == nil || geo.VertexCount() == 0 {
		return errors.New("encode gltf: empty geometry")
	}

	positions := make([][3]float32, geo.VertexCount())
	for i := range positions {
		v := geo.Vertex(i)
		positions[i] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
	}

	indices := make([]uint32, 0, geo.TriangleCount()*3)
	for t := 0; t < geo.TriangleCount(); t++ {
		a, b, c := geo.TriangleIndices(t)
		indices = append(indices, uint32(a), uint32(b), uint32(c))
	}

	doc := gltf.NewDocument()

	doc.Meshes = []*gltf.Mesh{{
		Name: geo.Name,
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
			Attributes: gltf.PrimitiveAttributes{
				gltf.POSITION: modeler.WritePosition(doc, positions),
			},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: geo.Name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	enc := gltf.NewEncoder(w)
	enc.AsBinary = true

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode gltf %q: %w", geo.Name, err)
	}

	return nil

}
