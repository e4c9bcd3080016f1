package colormath

import (
	"fmt"
	"image/color"
	"math"
)

// RGB is a color with channels nominally in [0,1]. Values outside that range are
// passed through unchanged by RGBToHSV.
type RGB struct {
	R, G, B float64
}

// HSV has H in degrees, S and V in [0,1].
type HSV struct {
	H, S, V float64
}

var _ color.Color = RGB{}

func clamp(x, lo, hi float64) float64 {
	return max(lo, min(x, hi))
}

func (c RGB) String() string {
	return fmt.Sprintf("RGB{%g %g %g}", c.R, c.G, c.B)
}

// AsSharp returns the color as #RRGGBB, channels clamped to [0,1].
func (c RGB) AsSharp() string {
	r, g, b := c.To8Bit()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func (c RGB) To8Bit() (r, g, b uint8) {
	cvt := func(x float64) uint8 { return uint8(math.Round(clamp(x, 0, 1) * math.MaxUint8)) }
	return cvt(c.R), cvt(c.G), cvt(c.B)
}

// RGBA implements color.Color. The color is opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	cvt := func(x float64) uint32 { return uint32(math.Round(clamp(x, 0, 1) * math.MaxUint16)) }
	return cvt(c.R), cvt(c.G), cvt(c.B), math.MaxUint16
}

// RGBFromColor converts any color to normalized, non-premultiplied channels.
// Fully transparent colors become black.
func RGBFromColor(c color.Color) RGB {
	if q, ok := c.(RGB); ok {
		return q
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGB{}
	}
	fa := float64(a)
	return RGB{float64(r) / fa, float64(g) / fa, float64(b) / fa}
}

func (c HSV) String() string {
	return fmt.Sprintf("HSV{%g %g %g}", c.H, c.S, c.V)
}

// RGBToHSV converts using the six sector formula. Achromatic colors have zero hue
// and saturation. The hue is in [0,360), negative hues are wrapped by adding 360.
func RGBToHSV(c RGB) HSV {
	maxc := max(c.R, c.G, c.B)
	minc := min(c.R, c.G, c.B)
	if maxc == minc {
		return HSV{0, 0, maxc}
	}
	chroma := maxc - minc
	var h float64
	switch maxc {
	case c.R:
		h = (c.G - c.B) / chroma
	case c.G:
		h = (c.B-c.R)/chroma + 2
	case c.B:
		h = (c.R-c.G)/chroma + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return HSV{H: h, S: chroma / maxc, V: maxc}
}

// HSVToRGB converts after clamping H to [0,360] and S, V to [0,1].
func HSVToRGB(c HSV) RGB {
	h := clamp(c.H, 0, 360)
	s := clamp(c.S, 0, 1)
	v := clamp(c.V, 0, 1)
	if s == 0 {
		return RGB{v, v, v}
	}
	h = math.Mod(h, 360) / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch i {
	case 0:
		return RGB{v, t, p}
	case 1:
		return RGB{q, v, p}
	case 2:
		return RGB{p, v, t}
	case 3:
		return RGB{p, q, v}
	case 4:
		return RGB{t, p, v}
	case 5:
		return RGB{v, p, q}
	}
	// only reachable with NaN input
	return RGB{}
}
