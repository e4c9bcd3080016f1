package colormath

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestXYToXYZ(t *testing.T) {
	d65 := XYToXYZ(WhitePointD65)
	assert.Equal(t, 1.0, d65.Y)
	assert.InDelta(t, 0.9505, d65.X, 1e-3)
	assert.InDelta(t, 1.0891, d65.Z, 1e-3)

	d50 := XYToXYZ(WhitePointD50)
	assert.InDelta(t, 0.9642, d50.X, 1e-3)
	assert.InDelta(t, 0.8252, d50.Z, 1e-3)

	for _, c := range []XY{WhitePointD50, WhitePointD65, {0.64, 0.33}, {0.15, 0.06}, {0.3, 0.6}} {
		X, Y, Z := colorful.XyyToXyz(c.X, c.Y, 1)
		got := XYToXYZ(c)
		assert.InDelta(t, X, got.X, 1e-12)
		assert.InDelta(t, Y, got.Y, 1e-12)
		assert.InDelta(t, Z, got.Z, 1e-12)
	}
}

func TestXYRoundtrip(t *testing.T) {
	for x := 0.05; x < 0.8; x += 0.05 {
		for y := 0.05; y < 0.85; y += 0.05 {
			c := XY{x, y}
			got := XYZToXY(XYToXYZ(c))
			assert.InDelta(t, c.X, got.X, 1e-12)
			assert.InDelta(t, c.Y, got.Y, 1e-12)
		}
	}
}

func TestXYZToXYScaleInvariant(t *testing.T) {
	got := XYZToXY(XYZ{3, 5, 2})
	assert.InDelta(t, 0.3, got.X, 1e-15)
	assert.InDelta(t, 0.5, got.Y, 1e-15)
}

func TestVectorConversions(t *testing.T) {
	v := Vec3{0.25, 0.5, 0.25}
	assert.Equal(t, XYZ{0.25, 0.5, 0.25}, VectorToXYZ(v))
	assert.Equal(t, XY{0.25, 0.5}, VectorToXY(v))
	assert.Equal(t, v, VectorToXYZ(v).Vec())
}

func TestDegenerateChromaticity(t *testing.T) {
	got := XYToXYZ(XY{0.3, 0})
	assert.True(t, math.IsInf(got.X, 1))
	assert.Equal(t, 1.0, got.Y)
	xy := XYZToXY(XYZ{})
	assert.True(t, math.IsNaN(xy.X))
	assert.True(t, math.IsNaN(xy.Y))
}

func TestUV(t *testing.T) {
	u, v := WhitePointD65.UV()
	assert.InDelta(t, 0.197830, u, 1e-6)
	assert.InDelta(t, 0.312222, v, 1e-6)
	back := xyFromUV(u, v)
	assert.InDelta(t, WhitePointD65.X, back.X, 1e-12)
	assert.InDelta(t, WhitePointD65.Y, back.Y, 1e-12)
}
