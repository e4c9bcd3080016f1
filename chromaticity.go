package colormath

import (
	"fmt"
)

var _ = fmt.Print

// XY is a CIE 1931 chromaticity.
type XY struct {
	X, Y float64
}

// XYZ is a CIE tristimulus value.
type XYZ struct {
	X, Y, Z float64
}

func (c XY) String() string  { return fmt.Sprintf("XY{%g %g}", c.X, c.Y) }
func (c XYZ) String() string { return fmt.Sprintf("XYZ{%g %g %g}", c.X, c.Y, c.Z) }

func (c XYZ) Vec() Vec3 { return Vec3{c.X, c.Y, c.Z} }

// UV returns the CIE 1960 UCS coordinates of c.
func (c XY) UV() (u, v float64) {
	d := 1.5 - c.X + 6*c.Y
	return 2 * c.X / d, 3 * c.Y / d
}

func xyFromUV(u, v float64) XY {
	d := u - 4*v + 2
	return XY{1.5 * u / d, v / d}
}

// XYToXYZ returns the tristimulus value with Y = 1. Non-finite when c.Y is zero.
func XYToXYZ(c XY) XYZ {
	return XYZ{X: c.X / c.Y, Y: 1, Z: (1 - c.X - c.Y) / c.Y}
}

// XYZToXY projects out luminance. Non-finite when X+Y+Z is zero.
func XYZToXY(c XYZ) XY {
	s := c.X + c.Y + c.Z
	return XY{c.X / s, c.Y / s}
}

func VectorToXY(v Vec3) XY {
	return XYZToXY(VectorToXYZ(v))
}

func VectorToXYZ(v Vec3) XYZ {
	return XYZ{v[0], v[1], v[2]}
}
