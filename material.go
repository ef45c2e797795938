package geometries

// Material describes how a Mesh's triangles are drawn.
type Material struct {
	Name  string // Name is the name of the Material.
	Color Color  // The overall color of the Material.

	// Wireframe draws each unique triangle edge as a line instead of filling the triangles.
	Wireframe bool

	// If backface culling is enabled, filled faces turned away from the camera aren't rendered.
	// Wireframes ignore it. Off by default, so that single-sided buffer geometry stays visible from behind.
	BackfaceCulling bool

	// LineWidth is the width of wireframe lines, in pixels.
	LineWidth float32
}

// NewMaterial creates a new, filled, white Material with the name given.
func NewMaterial(name string) *Material {
	return &Material{
		Name:      name,
		Color:     NewColor(1, 1, 1, 1),
		LineWidth: 1,
	}
}

// NewWireframeMaterial creates a new Material that draws triangle edges in the color given.
func NewWireframeMaterial(name string, color Color) *Material {
	mat := NewMaterial(name)
	mat.Color = color
	mat.Wireframe = true
	return mat
}
