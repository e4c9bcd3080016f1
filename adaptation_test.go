package colormath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestWhitePointConvertIdentity(t *testing.T) {
	for _, wp := range []XY{WhitePointD50, WhitePointD65, {0.44757, 0.40745}} {
		w := XYToXYZ(wp)
		if diff := cmp.Diff(Identity(), WhitePointXYZConvertMatrix(w, w), approx); diff != "" {
			t.Fatalf("adapting %v to itself is not identity (-want +got):\n%s", wp, diff)
		}
	}
}

func TestWhitePointConvertD65ToD50(t *testing.T) {
	d50, d65 := XYToXYZ(WhitePointD50), XYToXYZ(WhitePointD65)
	m := WhitePointXYZConvertMatrix(d65, d50)
	expected := Mat3{
		{1.0478526, 0.0229074, -0.0501464},
		{0.0295722, 0.9904667, -0.0170567},
		{-0.0092367, 0.0150463, 0.7520622},
	}
	if diff := cmp.Diff(expected, m, approx); diff != "" {
		t.Fatalf("D65 -> D50 mismatch (-want +got):\n%s", diff)
	}
	// the source white maps onto the target white
	if diff := cmp.Diff(d50, AdaptXYZ(d65, d65, d50), approx); diff != "" {
		t.Fatalf("adapted white (-want +got):\n%s", diff)
	}
	// and the reverse direction is the inverse
	back := WhitePointXYZConvertMatrix(d50, d65)
	if diff := cmp.Diff(Identity(), back.Mul(m), approx); diff != "" {
		t.Fatalf("D50 -> D65 is not the inverse of D65 -> D50 (-want +got):\n%s", diff)
	}
}

func TestAdaptationPreservesNeutrals(t *testing.T) {
	// a gray under D65 becomes a gray of the same luminance ratio under D50
	d50, d65 := XYToXYZ(WhitePointD50), XYToXYZ(WhitePointD65)
	gray := XYZ{d65.X * 0.2, d65.Y * 0.2, d65.Z * 0.2}
	got := AdaptXYZ(gray, d65, d50)
	assert.InDelta(t, d50.X*0.2, got.X, 1e-9)
	assert.InDelta(t, d50.Y*0.2, got.Y, 1e-9)
	assert.InDelta(t, d50.Z*0.2, got.Z, 1e-9)
	xy := XYZToXY(got)
	assert.InDelta(t, WhitePointD50.X, xy.X, 1e-9)
	assert.InDelta(t, WhitePointD50.Y, xy.Y, 1e-9)
}

func TestColorSpaceMatrices(t *testing.T) {
	for _, cs := range []ColorSpace{SRGB, ProPhotoRGB} {
		t.Run(cs.String(), func(t *testing.T) {
			if diff := cmp.Diff(Identity(), cs.RGBToXYZMatrix().Mul(cs.XYZToRGBMatrix()), cmpApprox(1e-5)); diff != "" {
				t.Fatalf("RGB->XYZ * XYZ->RGB is not identity (-want +got):\n%s", diff)
			}
			// RGB white maps to the reference white of the space
			white := XYZToXY(VectorToXYZ(cs.RGBToXYZMatrix().MulVec(Vec3{1, 1, 1})))
			assert.InDelta(t, cs.WhitePoint().X, white.X, 1e-4)
			assert.InDelta(t, cs.WhitePoint().Y, white.Y, 1e-4)
		})
	}
	// the D50 alternative maps the D50 white to RGB white
	white := MatrixXYZToSRGBD50.MulVec(Vec3{0.96422, 1, 0.82521})
	for _, c := range white {
		assert.InDelta(t, 1, c, 1e-6)
	}
}

func TestParseColorSpace(t *testing.T) {
	for name, expected := range map[string]ColorSpace{"sRGB": SRGB, "srgb": SRGB, "ProPhoto": ProPhotoRGB, "prophoto-rgb": ProPhotoRGB, "ROMM RGB": ProPhotoRGB} {
		cs, err := ParseColorSpace(name)
		assert.NoError(t, err, name)
		assert.Equal(t, expected, cs, name)
	}
	_, err := ParseColorSpace("adobe")
	assert.Error(t, err)
	assert.Equal(t, "ColorSpace(7)", ColorSpace(7).String())
}
