package geometries

// SceneWatcher watches a Scene for Meshes being added or removed between calls to Update. This is useful when, for
// example, something needs to react to whatever ends up in the scene without being told about it directly.
type SceneWatcher struct {
	scene        *Scene
	elements     []*Mesh
	prevElements []*Mesh
	// WatchFilter is called for each Mesh in the Scene. If it returns true, the Mesh is watched.
	WatchFilter func(mesh *Mesh) bool
	// OnChange is run for every watched Mesh that was added to or removed from the Scene since the last Update.
	OnChange func(mesh *Mesh, added bool)
}

// NewSceneWatcher creates a new SceneWatcher for the Scene given. Meshes already in the Scene are reported as added
// on the first Update.
func NewSceneWatcher(scene *Scene, onChange func(mesh *Mesh, added bool)) *SceneWatcher {
	return &SceneWatcher{
		scene:    scene,
		OnChange: onChange,
	}
}

// Update compares the Scene's contents against the previous Update, and should be run once every game frame.
func (watch *SceneWatcher) Update() {

	if watch.scene == nil {
		return
	}

	watch.elements = make([]*Mesh, 0, cap(watch.prevElements))

	for _, mesh := range watch.scene.meshes {
		if watch.WatchFilter == nil || watch.WatchFilter(mesh) {
			watch.elements = append(watch.elements, mesh)
		}
	}

	if watch.OnChange != nil {

		for _, e := range watch.prevElements {
			if !containsMesh(watch.elements, e) {
				watch.OnChange(e, false)
			}
		}

		for _, e := range watch.elements {
			if !containsMesh(watch.prevElements, e) {
				watch.OnChange(e, true)
			}
		}

	}

	watch.prevElements = watch.elements

}

// SetScene sets the Scene to be watched. The next Update reports the differences against the old Scene's contents.
func (watch *SceneWatcher) SetScene(scene *Scene) {
	watch.scene = scene
}

func containsMesh(list []*Mesh, mesh *Mesh) bool {
	for _, m := range list {
		if m == mesh {
			return true
		}
	}
	return false
}
