package geometries

// Mesh places a Geometry in the world and pairs it with a Material.
type Mesh struct {
	Name     string
	Geometry *Geometry
	Material *Material

	Position Vector
	Rotation Matrix4
	Scale    Vector
	Visible  bool
}

// NewMesh creates a new Mesh at the origin with no rotation and a scale of 1. A nil material falls back to a
// white wireframe.
func NewMesh(name string, geometry *Geometry, material *Material) *Mesh {

	if material == nil {
		material = NewWireframeMaterial("default", NewColor(1, 1, 1, 1))
	}

	return &Mesh{
		Name:     name,
		Geometry: geometry,
		Material: material,
		Rotation: NewMatrix4(),
		Scale:    Vector{1, 1, 1},
		Visible:  true,
	}

}

// Transform returns the Mesh's model matrix: scale, then rotation, then translation.
func (mesh *Mesh) Transform() Matrix4 {
	return NewMatrix4Translate(mesh.Position.X, mesh.Position.Y, mesh.Position.Z).
		Mult(mesh.Rotation).
		Mult(NewMatrix4Scale(mesh.Scale.X, mesh.Scale.Y, mesh.Scale.Z))
}
