package geometries

import (
	"math"
)

// Matrix4 represents a 4x4 matrix for translation, scale, rotation, and projection.
// Matrices are indexed [row][column] and transform column vectors, so a.Mult(b) applies b first, then a.
type Matrix4 [4][4]float64

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4Translate returns a new Matrix4 that moves points by x, y, and z.
func NewMatrix4Translate(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[0][3] = x
	mat[1][3] = y
	mat[2][3] = z
	return mat
}

// NewMatrix4Scale returns a new Matrix4 that scales points by x, y, and z.
func NewMatrix4Scale(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[0][0] = x
	mat[1][1] = y
	mat[2][2] = z
	return mat
}

// NewMatrix4Rotate returns a new Matrix4 that rotates points counter-clockwise around the axis
// given by x, y, and z by angle (in radians).
func NewMatrix4Rotate(x, y, z, angle float64) Matrix4 {

	// Default to spinning on +Y axis if there is no valid axis
	if x == 0 && y == 0 && z == 0 {
		y = 1
	}

	axis := Vector{x, y, z}.Unit()
	s := math.Sin(angle)
	c := math.Cos(angle)
	m := 1 - c

	mat := NewMatrix4()

	mat[0][0] = c + axis.X*axis.X*m
	mat[0][1] = axis.X*axis.Y*m - axis.Z*s
	mat[0][2] = axis.X*axis.Z*m + axis.Y*s

	mat[1][0] = axis.Y*axis.X*m + axis.Z*s
	mat[1][1] = c + axis.Y*axis.Y*m
	mat[1][2] = axis.Y*axis.Z*m - axis.X*s

	mat[2][0] = axis.Z*axis.X*m - axis.Y*s
	mat[2][1] = axis.Z*axis.Y*m + axis.X*s
	mat[2][2] = c + axis.Z*axis.Z*m

	return mat

}

// NewProjectionPerspective generates a perspective frustum Matrix4. fovy is the vertical field of view in degrees,
// aspect is width / height, and near and far are the clipping planes.
func NewProjectionPerspective(fovy, aspect, near, far float64) Matrix4 {

	f := 1 / math.Tan(fovy*math.Pi/360)

	return Matrix4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) / (near - far), (2 * far * near) / (near - far)},
		{0, 0, -1, 0},
	}

}

// NewLookAtMatrix generates a view Matrix4 for an eye at from looking towards to, with up as the rough upward direction.
func NewLookAtMatrix(from, to, up Vector) Matrix4 {

	// If from and to are the same, then an identity Matrix4 should be a sensible default
	if from.Equals(to) {
		return NewMatrix4()
	}

	z := from.Sub(to).Unit()

	up = up.Unit()

	// Looking straight along up leaves the x axis undefined, so swap in another up
	if math.Abs(z.Dot(up)) > 0.999999 {
		up = Vector{0, 0, -1}
		if math.Abs(z.Dot(up)) > 0.999999 {
			up = Vector{1, 0, 0}
		}
	}

	x := up.Cross(z).Unit()
	y := z.Cross(x)

	return Matrix4{
		{x.X, x.Y, x.Z, -x.Dot(from)},
		{y.X, y.Y, y.Z, -y.Dot(from)},
		{z.X, z.Y, z.Z, -z.Dot(from)},
		{0, 0, 0, 1},
	}

}

// Mult multiplies a Matrix4 by another, returning the product. The other Matrix4 is applied first.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	var out Matrix4

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = matrix[r][0]*other[0][c] + matrix[r][1]*other[1][c] + matrix[r][2]*other[2][c] + matrix[r][3]*other[3][c]
		}
	}

	return out

}

// MultVec transforms the point provided by the Matrix4, ignoring the resulting W.
func (matrix Matrix4) MultVec(vec Vector) Vector {
	out, _ := matrix.MultVecW(vec)
	return out
}

// MultVecW transforms the point provided (with an implicit W of 1) by the Matrix4, returning the transformed point
// and its W component. Projection matrices need the W for the perspective divide.
func (matrix Matrix4) MultVecW(vec Vector) (Vector, float64) {
	return Vector{
			matrix[0][0]*vec.X + matrix[0][1]*vec.Y + matrix[0][2]*vec.Z + matrix[0][3],
			matrix[1][0]*vec.X + matrix[1][1]*vec.Y + matrix[1][2]*vec.Z + matrix[1][3],
			matrix[2][0]*vec.X + matrix[2][1]*vec.Y + matrix[2][2]*vec.Z + matrix[2][3],
		},
		matrix[3][0]*vec.X + matrix[3][1]*vec.Y + matrix[3][2]*vec.Z + matrix[3][3]
}

// Transposed returns a copy of the Matrix4 with rows and columns switched.
func (matrix Matrix4) Transposed() Matrix4 {
	var out Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c][r] = matrix[r][c]
		}
	}
	return out
}

// IsIdentity returns true if the matrix is an unmodified identity matrix (within a small tolerance).
func (matrix Matrix4) IsIdentity() bool {
	id := NewMatrix4()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.Abs(matrix[r][c]-id[r][c]) > 1e-9 {
				return false
			}
		}
	}
	return true
}
