package colormath

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

var _ = fmt.Print

// Vec3 is a column vector.
type Vec3 [3]float64

// Mat3 is a 3x3 matrix in row major order.
type Mat3 [3][3]float64

func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Diagonal returns the matrix with d on its diagonal and zeros elsewhere.
func Diagonal(d Vec3) Mat3 {
	return Mat3{
		{d[0], 0, 0},
		{0, d[1], 0},
		{0, 0, d[2]},
	}
}

// Mul returns m * o.
func (m Mat3) Mul(o Mat3) (ans Mat3) {
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += m[i][k] * o[k][j]
			}
			ans[i][j] = sum
		}
	}
	return
}

// MulVec returns m * v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func (m Mat3) Transpose() (ans Mat3) {
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = m[j][i]
		}
	}
	return
}

func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverse of m computed from its adjugate. There is no
// singularity check, a singular matrix gives non-finite entries. See Inverted for
// a checked version.
func (m Mat3) Inverse() (ans Mat3) {
	inv_det := 1 / m.Det()
	adj := Mat3{
		{
			m[1][1]*m[2][2] - m[1][2]*m[2][1],
			m[0][2]*m[2][1] - m[0][1]*m[2][2],
			m[0][1]*m[1][2] - m[0][2]*m[1][1],
		},
		{
			m[1][2]*m[2][0] - m[1][0]*m[2][2],
			m[0][0]*m[2][2] - m[0][2]*m[2][0],
			m[0][2]*m[1][0] - m[0][0]*m[1][2],
		},
		{
			m[1][0]*m[2][1] - m[1][1]*m[2][0],
			m[0][1]*m[2][0] - m[0][0]*m[2][1],
			m[0][0]*m[1][1] - m[0][1]*m[1][0],
		},
	}
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = inv_det * adj[i][j]
		}
	}
	return
}

// Inverted is Inverse but fails with ErrSingular when m has a zero determinant.
func (m Mat3) Inverted() (Mat3, error) {
	if m.Det() == 0 {
		return Mat3{}, fmt.Errorf("cannot invert %v: %w", m, ErrSingular)
	}
	return m.Inverse(), nil
}

func (m Mat3) String() string {
	return fmt.Sprintf("Mat3{%v %v %v}", m[0], m[1], m[2])
}

// F64 converts m to the row major representation used by golang.org/x/image.
func (m Mat3) F64() f64.Mat3 {
	return f64.Mat3{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	}
}

func Mat3FromF64(m f64.Mat3) Mat3 {
	return Mat3{
		{m[0], m[1], m[2]},
		{m[3], m[4], m[5]},
		{m[6], m[7], m[8]},
	}
}

func (v Vec3) F64() f64.Vec3 { return f64.Vec3(v) }

func Vec3FromF64(v f64.Vec3) Vec3 { return Vec3(v) }
