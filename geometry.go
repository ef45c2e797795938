package geometries

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is returned when vertex or index data can't describe a set of triangles.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Geometry is a triangle buffer: a flat slice of positions (three values, x, y, and z, per vertex) and an optional
// index slice (three indices per triangle). Without indices, every three vertices form one triangle.
type Geometry struct {
	Name      string
	Positions []float64
	Indices   []int
}

// NewBufferGeometry creates an unindexed Geometry from flat x, y, z position data. The number of values must be
// greater than 0 and divisible by 9 (three vertices per triangle).
func NewBufferGeometry(name string, positions []float64) (*Geometry, error) {

	if len(positions) == 0 || len(positions)%9 != 0 {
		return nil, fmt.Errorf("%w: %q has %d position values; need a non-zero multiple of 9", ErrInvalidGeometry, name, len(positions))
	}

	return &Geometry{
		Name:      name,
		Positions: positions,
	}, nil

}

// NewIndexedGeometry creates a Geometry that shares vertices between triangles through an index slice.
func NewIndexedGeometry(name string, positions []float64, indices []int) (*Geometry, error) {

	if len(positions) == 0 || len(positions)%3 != 0 {
		return nil, fmt.Errorf("%w: %q has %d position values; need a non-zero multiple of 3", ErrInvalidGeometry, name, len(positions))
	}

	if len(indices) == 0 || len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %q has %d indices; need a non-zero multiple of 3", ErrInvalidGeometry, name, len(indices))
	}

	vertexCount := len(positions) / 3

	for i, index := range indices {
		if index < 0 || index >= vertexCount {
			return nil, fmt.Errorf("%w: %q index #%d (%d) is outside of [0, %d)", ErrInvalidGeometry, name, i, index, vertexCount)
		}
	}

	return &Geometry{
		Name:      name,
		Positions: positions,
		Indices:   indices,
	}, nil

}

// Indexed returns true if the Geometry uses an index slice.
func (geo *Geometry) Indexed() bool {
	return len(geo.Indices) > 0
}

// VertexCount returns the number of vertices in the position buffer.
func (geo *Geometry) VertexCount() int {
	return len(geo.Positions) / 3
}

// TriangleCount returns the number of triangles the Geometry draws.
func (geo *Geometry) TriangleCount() int {
	if geo.Indexed() {
		return len(geo.Indices) / 3
	}
	return geo.VertexCount() / 3
}

// Vertex returns the position of the vertex at the index given.
func (geo *Geometry) Vertex(index int) Vector {
	i := index * 3
	return Vector{geo.Positions[i], geo.Positions[i+1], geo.Positions[i+2]}
}

// TriangleIndices returns the vertex indices of the triangle at the index given.
func (geo *Geometry) TriangleIndices(tri int) (int, int, int) {
	if geo.Indexed() {
		return geo.Indices[tri*3], geo.Indices[tri*3+1], geo.Indices[tri*3+2]
	}
	return tri * 3, tri*3 + 1, tri*3 + 2
}

// Triangle returns the three vertex positions of the triangle at the index given.
func (geo *Geometry) Triangle(tri int) (Vector, Vector, Vector) {
	a, b, c := geo.TriangleIndices(tri)
	return geo.Vertex(a), geo.Vertex(b), geo.Vertex(c)
}

// Edge is an undirected pair of vertex indices, stored with A < B.
type Edge struct {
	A, B int
}

// Edges returns each unique edge of the Geometry's triangles once, in first-seen order. This is what a
// wireframe draws.
func (geo *Geometry) Edges() []Edge {

	triCount := geo.TriangleCount()
	edges := make([]Edge, 0, triCount*3)
	seen := make(map[Edge]struct{}, triCount*3)

	add := func(a, b int) {
		if a > b {
			a, b = b, a
		}
		e := Edge{a, b}
		if _, exists := seen[e]; !exists {
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}

	for t := 0; t < triCount; t++ {
		a, b, c := geo.TriangleIndices(t)
		add(a, b)
		add(b, c)
		add(c, a)
	}

	return edges

}

// Bounds returns the minimum and maximum corners of the Geometry's axis-aligned bounding box.
func (geo *Geometry) Bounds() (Vector, Vector) {

	if geo.VertexCount() == 0 {
		return Vector{}, Vector{}
	}

	min := geo.Vertex(0)
	max := min

	for i := 1; i < geo.VertexCount(); i++ {
		v := geo.Vertex(i)
		min = min.Min(v)
		max = max.Max(v)
	}

	return min, max

}
