package shape

import "github.com/chewxy/math32"

// Mat4 is a 4x4 affine transformation matrix in row-major order.
// Shapes carry two of them: the persistent transform and a per-draw
// transform composed on top of it at draw time. The shape core only
// stores and composes matrices; applying them to vertex buffers is the
// renderer's job.
type Mat4 [16]float32

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate3 creates a translation matrix.
func Translate3(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// Scale3 creates a scaling matrix.
func Scale3(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotateZ creates a rotation matrix about the z axis (angle in radians).
// This is the plane rotation for 2D shapes.
func RotateZ(angle float32) Mat4 {
	cos := math32.Cos(angle)
	sin := math32.Sin(angle)
	return Mat4{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns the matrix product m * n. The combined matrix applies n
// first, then m.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * n[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// TransformPoint applies the matrix to a 2D point (z=0, w=1).
func (m Mat4) TransformPoint(p Point) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[3],
		Y: m[4]*p.X + m[5]*p.Y + m[7],
	}
}

// IsIdentity reports whether the matrix is exactly the identity.
func (m Mat4) IsIdentity() bool {
	return m == Identity4()
}
