package geometries

import (
	"fmt"
	"math"
)

// WorldUp is +Y, the up direction used by cameras and controls.
var WorldUp = Vector{0, 1, 0}

// Vector represents a 3D Vector (a position, direction, or scale).
// Vector functions return modified copies, so calls can be chained.
type Vector struct {
	X, Y, Z float64
}

// NewVector creates a new Vector with the specified x, y, and z components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// String returns a string representation of the Vector, rounded to two decimal places.
func (vec Vector) String() string {
	return fmt.Sprintf("{%.2f, %.2f, %.2f}", vec.X, vec.Y, vec.Z)
}

// Add returns a copy of the calling Vector with the other Vector added to it.
func (vec Vector) Add(other Vector) Vector {
	return Vector{vec.X + other.X, vec.Y + other.Y, vec.Z + other.Z}
}

// Sub returns a copy of the calling Vector with the other Vector subtracted from it.
func (vec Vector) Sub(other Vector) Vector {
	return Vector{vec.X - other.X, vec.Y - other.Y, vec.Z - other.Z}
}

// Scale returns a copy of the Vector with every component multiplied by scalar.
func (vec Vector) Scale(scalar float64) Vector {
	return Vector{vec.X * scalar, vec.Y * scalar, vec.Z * scalar}
}

// Invert returns a copy of the Vector pointing the opposite way.
func (vec Vector) Invert() Vector {
	return Vector{-vec.X, -vec.Y, -vec.Z}
}

// Dot returns the dot product of the two Vectors.
func (vec Vector) Dot(other Vector) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Cross returns the cross product of the two Vectors.
func (vec Vector) Cross(other Vector) Vector {
	return Vector{
		vec.Y*other.Z - vec.Z*other.Y,
		vec.Z*other.X - vec.X*other.Z,
		vec.X*other.Y - vec.Y*other.X,
	}
}

// Magnitude returns the length of the Vector.
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.Dot(vec))
}

// Distance returns the distance between the two Vectors.
func (vec Vector) Distance(other Vector) float64 {
	return vec.Sub(other).Magnitude()
}

// Unit returns a copy of the Vector with a length of 1. A zero Vector is returned unchanged.
func (vec Vector) Unit() Vector {
	l := vec.Magnitude()
	if l < 1e-12 {
		return vec
	}
	return Vector{vec.X / l, vec.Y / l, vec.Z / l}
}

// Min returns a Vector holding the smallest of each component of the two Vectors.
func (vec Vector) Min(other Vector) Vector {
	return Vector{math.Min(vec.X, other.X), math.Min(vec.Y, other.Y), math.Min(vec.Z, other.Z)}
}

// Max returns a Vector holding the largest of each component of the two Vectors.
func (vec Vector) Max(other Vector) Vector {
	return Vector{math.Max(vec.X, other.X), math.Max(vec.Y, other.Y), math.Max(vec.Z, other.Z)}
}

// Equals returns true if the two Vectors are close enough in all components.
func (vec Vector) Equals(other Vector) bool {
	const eps = 1e-6
	return math.Abs(vec.X-other.X) < eps && math.Abs(vec.Y-other.Y) < eps && math.Abs(vec.Z-other.Z) < eps
}
