package geometries

import (
	"math"
	"testing"
)

func BenchmarkMatrixMult(b *testing.B) {

	b.ReportAllocs()

	mat := NewMatrix4Rotate(0, 1, 0.2, 0.24)
	other := NewMatrix4Translate(1, 4, -12)

	for i := 0; i < b.N; i++ {
		mat.Mult(other)
	}

}

func TestMatrixRotationTransposeIsInverse(t *testing.T) {

	matrices := []Matrix4{
		NewMatrix4Rotate(0, 1, 0, 0.1),
		NewMatrix4Rotate(1, 0, 0.1, 0.334),
		NewMatrix4Rotate(0, 0, 0, 2),
		NewMatrix4Rotate(-3, 2, 1, -1.5),
	}

	for i, mat := range matrices {
		// Rotation matrices are orthonormal, so the transpose undoes them.
		if !mat.Mult(mat.Transposed()).IsIdentity() {
			t.Fatal("failed on matrix #", i, ": matrix * matrix.Transposed() is not identity")
		}
	}

}

func TestMatrixRotateDirection(t *testing.T) {

	// A quarter turn counter-clockwise around +Y takes +X to -Z.
	got := NewMatrix4Rotate(0, 1, 0, math.Pi/2).MultVec(Vector{1, 0, 0})

	if !got.Equals(Vector{0, 0, -1}) {
		t.Errorf("expected {0, 0, -1}, got %s", got)
	}

}

func TestMatrixMultOrder(t *testing.T) {

	// Scale first, then translate.
	mat := NewMatrix4Translate(1, 2, 3).Mult(NewMatrix4Scale(2, 2, 2))

	got := mat.MultVec(Vector{1, 1, 1})
	if !got.Equals(Vector{3, 4, 5}) {
		t.Errorf("expected {3, 4, 5}, got %s", got)
	}

}

func TestLookAtMatrix(t *testing.T) {

	view := NewLookAtMatrix(Vector{0, 0, 3}, Vector{}, WorldUp)

	// The target ends up straight ahead, down -Z in view space.
	got := view.MultVec(Vector{})
	if !got.Equals(Vector{0, 0, -3}) {
		t.Errorf("expected {0, 0, -3}, got %s", got)
	}

	// Looking straight down must still give a usable matrix.
	down := NewLookAtMatrix(Vector{0, 5, 0}, Vector{}, WorldUp)
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			if math.IsNaN(down[r][c]) {
				t.Fatal("look-at matrix along the up axis contains NaN")
			}
		}
	}

	if !NewLookAtMatrix(Vector{1, 1, 1}, Vector{1, 1, 1}, WorldUp).IsIdentity() {
		t.Error("look-at matrix for identical points should be identity")
	}

}

func TestProjectionPerspective(t *testing.T) {

	proj := NewProjectionPerspective(90, 2, 0.1, 100)

	near, w := proj.MultVecW(Vector{0, 0, -0.1})
	if math.Abs(near.Z/w+1) > 1e-9 {
		t.Errorf("expected near plane at NDC depth -1, got %f", near.Z/w)
	}

	far, w := proj.MultVecW(Vector{0, 0, -100})
	if math.Abs(far.Z/w-1) > 1e-9 {
		t.Errorf("expected far plane at NDC depth 1, got %f", far.Z/w)
	}

	// With a 90 degree vertical FOV, a point at 45 degrees up sits on the top edge.
	top, w := proj.MultVecW(Vector{0, 1, -1})
	if math.Abs(top.Y/w-1) > 1e-9 {
		t.Errorf("expected NDC y of 1, got %f", top.Y/w)
	}

}
