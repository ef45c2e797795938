package geometries

// Scene is an ordered collection of Meshes to render, plus the color the screen is cleared to.
type Scene struct {
	Name       string
	ClearColor Color
	meshes     []*Mesh
}

// NewScene creates a new, empty Scene with the name given.
func NewScene(name string) *Scene {
	return &Scene{
		Name:       name,
		ClearColor: NewColor(0.05, 0.05, 0.05, 1),
	}
}

// Add adds Meshes to the Scene. Meshes already in the Scene are skipped.
func (scene *Scene) Add(meshes ...*Mesh) {
	for _, mesh := range meshes {
		if mesh == nil || scene.Contains(mesh) {
			continue
		}
		scene.meshes = append(scene.meshes, mesh)
	}
}

// Remove removes Meshes from the Scene.
func (scene *Scene) Remove(meshes ...*Mesh) {
	for _, mesh := range meshes {
		for i, m := range scene.meshes {
			if m == mesh {
				scene.meshes[i] = nil
				scene.meshes = append(scene.meshes[:i], scene.meshes[i+1:]...)
				break
			}
		}
	}
}

// Clear removes every Mesh from the Scene.
func (scene *Scene) Clear() {
	for i := range scene.meshes {
		scene.meshes[i] = nil
	}
	scene.meshes = scene.meshes[:0]
}

// Contains returns true if the Mesh is in the Scene.
func (scene *Scene) Contains(mesh *Mesh) bool {
	for _, m := range scene.meshes {
		if m == mesh {
			return true
		}
	}
	return false
}

// Meshes returns the Scene's Meshes, in the order they were added. The returned slice must not be modified.
func (scene *Scene) Meshes() []*Mesh {
	return scene.meshes
}

// Len returns the number of Meshes in the Scene.
func (scene *Scene) Len() int {
	return len(scene.meshes)
}
