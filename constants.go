package colormath

import (
	"fmt"
	"strings"
)

// Reference white chromaticities
var (
	WhitePointD50 = XY{0.34567, 0.35850}
	WhitePointD65 = XY{0.31271, 0.32902}
)

// Linear sRGB to XYZ, D65 referenced.
var MatrixSRGBToXYZ = Mat3{
	{0.412424, 0.357579, 0.180464},
	{0.212656, 0.715158, 0.0721856},
	{0.0193324, 0.119193, 0.950444},
}

// XYZ to linear sRGB, D65 referenced. This is the inverse of MatrixSRGBToXYZ and the
// one used by default.
var MatrixXYZToSRGB = Mat3{
	{3.24071, -1.53726, -0.498571},
	{-0.969258, 1.87599, 0.0415557},
	{0.0556352, -0.203996, 1.05707},
}

// XYZ to linear sRGB for XYZ relative to D50, it maps the D50 white to sRGB white.
// Not used by anything in this package, callers can choose it instead of
// MatrixXYZToSRGB.
var MatrixXYZToSRGBD50 = Mat3{
	{3.1338561, -1.6168667, -0.4906146},
	{-0.9787684, 1.9161415, 0.0334540},
	{0.0719453, -0.2289914, 1.4052427},
}

// Linear ProPhoto RGB to XYZ, D50 referenced.
var MatrixProPhotoRGBToXYZ = Mat3{
	{0.797675, 0.135192, 0.0313534},
	{0.288040, 0.711874, 0.000086},
	{0.0, 0.0, 0.825210},
}

var MatrixXYZToProPhotoRGB = Mat3{
	{1.34594, -0.255608, -0.0511118},
	{-0.544599, 1.50817, 0.0205351},
	{0.0, 0.0, 1.21181},
}

// ColorSpace selects one of the RGB spaces with built-in matrices.
type ColorSpace int

const (
	SRGB ColorSpace = iota
	ProPhotoRGB
)

var colorSpaceNames = map[ColorSpace]string{
	SRGB:        "sRGB",
	ProPhotoRGB: "ProPhotoRGB",
}

func (cs ColorSpace) String() string {
	if n, ok := colorSpaceNames[cs]; ok {
		return n
	}
	return fmt.Sprintf("ColorSpace(%d)", int(cs))
}

func ParseColorSpace(name string) (ColorSpace, error) {
	switch strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)) {
	case "srgb":
		return SRGB, nil
	case "prophoto", "prophotorgb", "romm", "rommrgb":
		return ProPhotoRGB, nil
	}
	return SRGB, fmt.Errorf("unknown color space: %q", name)
}

func (cs ColorSpace) RGBToXYZMatrix() Mat3 {
	switch cs {
	case ProPhotoRGB:
		return MatrixProPhotoRGBToXYZ
	default:
		return MatrixSRGBToXYZ
	}
}

func (cs ColorSpace) XYZToRGBMatrix() Mat3 {
	switch cs {
	case ProPhotoRGB:
		return MatrixXYZToProPhotoRGB
	default:
		return MatrixXYZToSRGB
	}
}

// WhitePoint is the reference white of the space's matrices.
func (cs ColorSpace) WhitePoint() XY {
	switch cs {
	case ProPhotoRGB:
		return WhitePointD50
	default:
		return WhitePointD65
	}
}
