package geometries

import (
	"testing"
)

func TestSceneAddRemoveClear(t *testing.T) {

	scene := NewScene("test")

	box := NewMesh("box", NewBoxGeometry(1, 1, 1, 1, 1, 1), nil)
	sphere := NewMesh("sphere", NewSphereGeometry(1, 8, 8), nil)

	scene.Add(box, sphere, box, nil)

	if scene.Len() != 2 {
		t.Fatalf("expected 2 meshes, got %d", scene.Len())
	}

	if scene.Meshes()[0] != box || scene.Meshes()[1] != sphere {
		t.Error("meshes should keep the order they were added in")
	}

	scene.Remove(box)

	if scene.Contains(box) || !scene.Contains(sphere) || scene.Len() != 1 {
		t.Error("Remove should only remove the mesh given")
	}

	scene.Clear()

	if scene.Len() != 0 {
		t.Errorf("expected an empty scene after Clear, got %d meshes", scene.Len())
	}

	scene.Add(box)
	if scene.Len() != 1 {
		t.Error("a cleared scene should accept meshes again")
	}

}

func TestMeshTransform(t *testing.T) {

	mesh := NewMesh("m", NewTriangleGeometry(), nil)

	if !mesh.Transform().IsIdentity() {
		t.Error("a new mesh should have an identity transform")
	}

	if !mesh.Material.Wireframe {
		t.Error("a nil material should fall back to a wireframe")
	}

	mesh.Position = Vector{1, 0, 0}
	mesh.Scale = Vector{2, 2, 2}

	if got := mesh.Transform().MultVec(Vector{0, 1, 0}); !got.Equals(Vector{1, 2, 0}) {
		t.Errorf("expected {1, 2, 0}, got %s", got)
	}

}
