// Package srgb implements the sRGB transfer function and conversion between encoded
// sRGB and CIE XYZ (D65) using the matrices from colormath.
package srgb

import (
	"math"

	"github.com/kovidgoyal/colormath"
)

// Decode converts an encoded sRGB component to linear light.
func Decode(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Encode applies the sRGB companding function to a linear component. Negative
// input, usually rounding noise, encodes to zero.
func Encode(c float64) float64 {
	if c <= 0 {
		return 0
	}
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

func ToLinear(c colormath.RGB) colormath.RGB {
	return colormath.RGB{R: Decode(c.R), G: Decode(c.G), B: Decode(c.B)}
}

func FromLinear(c colormath.RGB) colormath.RGB {
	return colormath.RGB{R: Encode(c.R), G: Encode(c.G), B: Encode(c.B)}
}

// ToXYZ converts encoded sRGB to XYZ relative to D65 (Y = 1 for white).
func ToXYZ(c colormath.RGB) colormath.XYZ {
	l := ToLinear(c)
	return colormath.VectorToXYZ(colormath.MatrixSRGBToXYZ.MulVec(colormath.Vec3{l.R, l.G, l.B}))
}

// FromXYZ converts XYZ relative to D65 to encoded sRGB. Channels above 1 are not
// clamped, negative channels encode to zero.
func FromXYZ(c colormath.XYZ) colormath.RGB {
	v := colormath.MatrixXYZToSRGB.MulVec(c.Vec())
	return FromLinear(colormath.RGB{R: v[0], G: v[1], B: v[2]})
}

// Preview is the sRGB color of a light with chromaticity c, scaled so that its
// brightest linear channel is 1. Out of gamut chromaticities lose their negative
// channels.
func Preview(c colormath.XY) colormath.RGB {
	v := colormath.MatrixXYZToSRGB.MulVec(colormath.XYToXYZ(c).Vec())
	m := max(v[0], v[1], v[2])
	if !(m > 0) {
		return colormath.RGB{}
	}
	return FromLinear(colormath.RGB{R: v[0] / m, G: v[1] / m, B: v[2] / m})
}

// Chromaticity is the xy chromaticity of an encoded sRGB color. Black has no
// chromaticity and gives non-finite values.
func Chromaticity(c colormath.RGB) colormath.XY {
	return colormath.XYZToXY(ToXYZ(c))
}
