package geometries

import (
	"math"
	"testing"
)

func TestCameraResizeKeepsAspect(t *testing.T) {

	cam := NewCamera(800, 600)

	if math.Abs(cam.AspectRatio()-800.0/600.0) > 1e-9 {
		t.Errorf("expected aspect %f, got %f", 800.0/600.0, cam.AspectRatio())
	}

	sizes := [][2]int{{1920, 1080}, {300, 900}, {1, 1}, {0, -5}}

	for _, size := range sizes {

		cam.Resize(size[0], size[1])

		w, h := cam.Size()
		if w != max(size[0], 1) || h != max(size[1], 1) {
			t.Errorf("Resize(%d, %d): got size %dx%d", size[0], size[1], w, h)
		}

		if math.Abs(cam.AspectRatio()-float64(w)/float64(h)) > 1e-9 {
			t.Errorf("Resize(%d, %d): aspect %f does not match size", size[0], size[1], cam.AspectRatio())
		}

	}

}

func TestCameraDefaults(t *testing.T) {

	cam := NewCamera(640, 360)

	if cam.FieldOfView() != 75 || cam.Near() != 0.1 || cam.Far() != 100 {
		t.Errorf("unexpected defaults: fov %f, near %f, far %f", cam.FieldOfView(), cam.Near(), cam.Far())
	}

	if !cam.Position.Equals(Vector{0, 0, 3}) {
		t.Errorf("expected camera at {0, 0, 3}, got %s", cam.Position)
	}

}

func TestCameraWorldToScreen(t *testing.T) {

	cam := NewCamera(640, 360)

	x, y, visible := cam.WorldToScreen(Vector{})
	if !visible || math.Abs(x-320) > 1e-6 || math.Abs(y-180) > 1e-6 {
		t.Errorf("expected the target in the middle of the screen, got (%f, %f, %v)", x, y, visible)
	}

	// Up in the world is up on screen, which has Y pointing down.
	_, upY, _ := cam.WorldToScreen(Vector{0, 1, 0})
	if upY >= 180 {
		t.Errorf("expected a point above the target to be drawn higher, got y %f", upY)
	}

	if _, _, visible := cam.WorldToScreen(Vector{0, 0, 10}); visible {
		t.Error("a point behind the camera should not be visible")
	}

}

func TestClipLineNear(t *testing.T) {

	near := 0.1

	front := clipVertex{Vector{0, 0, 1}, 2}
	behind := clipVertex{Vector{0, 0, -1}, -2}

	if _, _, visible := clipLineNear(behind, behind, near); visible {
		t.Error("a line fully behind the camera should be dropped")
	}

	a, b, visible := clipLineNear(front, behind, near)
	if !visible {
		t.Fatal("a line crossing the near plane should be kept")
	}

	if a != front {
		t.Error("the end in front of the camera should not move")
	}

	if b.W <= 0 {
		t.Errorf("the clipped end should be in front of the camera, got w %f", b.W)
	}

}
