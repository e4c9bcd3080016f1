package cli

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/kovidgoyal/colormath"
)

func parseFloats(args []string) ([]float64, error) {
	ans := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", a)
		}
		ans[i] = v
	}
	return ans, nil
}

// parseColor accepts #RGB, #RRGGBB (the # is optional) or an SVG color name.
func parseColor(spec string) (colormath.RGB, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if c, ok := colornames.Map[s]; ok {
		return colormath.RGBFromColor(c), nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return colormath.RGB{}, fmt.Errorf("not a color name or hex color: %q", spec)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return colormath.RGB{}, fmt.Errorf("not a color name or hex color: %q", spec)
	}
	return colormath.RGB{
		R: float64((v>>16)&0xff) / 255,
		G: float64((v>>8)&0xff) / 255,
		B: float64(v&0xff) / 255,
	}, nil
}

// parseWhitePoint accepts d50, d65 or an x,y chromaticity.
func parseWhitePoint(spec string) (colormath.XY, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	switch s {
	case "d50":
		return colormath.WhitePointD50, nil
	case "d65":
		return colormath.WhitePointD65, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return colormath.XY{}, fmt.Errorf("white point must be d50, d65 or x,y: %q", spec)
	}
	vals, err := parseFloats(parts)
	if err != nil {
		return colormath.XY{}, fmt.Errorf("white point %q: %w", spec, err)
	}
	return colormath.XY{X: vals[0], Y: vals[1]}, nil
}
