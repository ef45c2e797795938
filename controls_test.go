package geometries

import (
	"math"
	"testing"
)

func TestOrbitControlsKeepDistanceWhileRotating(t *testing.T) {

	cam := NewCamera(640, 360)
	oc := NewOrbitControls(cam)

	for i := 0; i < 30; i++ {
		oc.Update(PointerInput{DeltaX: 13, DeltaY: -7, ViewportHeight: 360})
		if math.Abs(oc.Distance()-3) > 1e-9 {
			t.Fatal("update", i, ": distance drifted to", oc.Distance())
		}
	}

}

func TestOrbitControlsDampingSettles(t *testing.T) {

	cam := NewCamera(640, 360)
	oc := NewOrbitControls(cam)
	oc.EnableDamping = true

	oc.Update(PointerInput{DeltaX: 100, ViewportHeight: 360})

	if !oc.Moving() {
		t.Fatal("expected damping to keep the camera moving after a drag")
	}

	// Without further input the camera keeps turning for a while, a bit less every frame.
	prev := cam.Position
	prevStep := math.Inf(1)

	for i := 0; i < 20; i++ {
		oc.Update(PointerInput{ViewportHeight: 360})
		step := cam.Position.Distance(prev)
		if step <= 0 || step >= prevStep {
			t.Fatal("frame", i, ": expected a shrinking, non-zero step; got", step, "after", prevStep)
		}
		prev = cam.Position
		prevStep = step
	}

	for i := 0; i < 1000; i++ {
		oc.Update(PointerInput{ViewportHeight: 360})
	}

	if oc.Moving() {
		t.Error("expected damping to settle")
	}

}

func TestOrbitControlsWithoutDampingStopImmediately(t *testing.T) {

	cam := NewCamera(640, 360)
	oc := NewOrbitControls(cam)

	if !oc.Update(PointerInput{DeltaX: 50, ViewportHeight: 360}) {
		t.Fatal("expected the camera to move")
	}

	if oc.Update(PointerInput{ViewportHeight: 360}) {
		t.Error("without damping the camera should stop when input stops")
	}

}

func TestOrbitControlsZoom(t *testing.T) {

	cam := NewCamera(640, 360)
	oc := NewOrbitControls(cam)
	oc.MinDistance = 1
	oc.MaxDistance = 10

	oc.Update(PointerInput{Wheel: 1, ViewportHeight: 360})
	if oc.Distance() >= 3 {
		t.Errorf("scrolling up should move closer, got distance %f", oc.Distance())
	}

	for i := 0; i < 500; i++ {
		oc.Update(PointerInput{Wheel: -1, ViewportHeight: 360})
	}
	if math.Abs(oc.Distance()-10) > 1e-9 {
		t.Errorf("expected distance to clamp at 10, got %f", oc.Distance())
	}

	oc.SetDistance(0.01)
	if math.Abs(oc.Distance()-1) > 1e-9 {
		t.Errorf("expected SetDistance to clamp at 1, got %f", oc.Distance())
	}

}

func TestOrbitControlsStayOffThePoles(t *testing.T) {

	cam := NewCamera(640, 360)
	oc := NewOrbitControls(cam)

	oc.Update(PointerInput{DeltaY: 10000, ViewportHeight: 360})

	offset := cam.Position.Sub(cam.Target).Unit()
	if math.Abs(offset.Y) >= 1 {
		t.Errorf("camera should never sit exactly on a pole, got offset %s", offset)
	}

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.IsNaN(cam.ViewMatrix()[r][c]) {
				t.Fatal("view matrix contains NaN near the pole")
			}
		}
	}

}
