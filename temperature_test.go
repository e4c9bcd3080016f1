package colormath

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsothermTableAscending(t *testing.T) {
	table := Isotherms()
	require.Len(t, table, 31)
	assert.Equal(t, 0.0, table[0].R)
	assert.Equal(t, 600.0, table[len(table)-1].R)
	for i := 1; i < len(table); i++ {
		require.Greater(t, table[i].R, table[i-1].R, "row %d", i)
	}
	assert.InDelta(t, 1666.67, MinTemperature, 0.01)
}

func TestTemperatureFromXYKnownValues(t *testing.T) {
	for _, tc := range []struct {
		name              string
		xy                XY
		temperature, tint float64
	}{
		// D65 lies slightly above the Planckian locus, hence the positive tint
		{"D65", WhitePointD65, 6503.01, 9.786},
		{"D50", WhitePointD50, 5001.80, 9.601},
		{"illuminant A", XY{0.44757, 0.40745}, 2855.76, 0.008},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := TemperatureFromXY(tc.xy)
			assert.InDelta(t, tc.temperature, got.Temperature, 0.01)
			assert.InDelta(t, tc.tint, got.Tint, 0.001)
		})
	}
	d65 := TemperatureFromXY(WhitePointD65)
	assert.InDelta(t, 6504, d65.Temperature, 50)
	a := TemperatureFromXY(XY{0.44757, 0.40745})
	assert.InDelta(t, 0, a.Tint, 0.01)
}

func TestXYFromTemperatureKnownValues(t *testing.T) {
	for _, tc := range []struct {
		temperature, tint float64
		x, y              float64
	}{
		{2000, 0, 0.526693, 0.413308},
		{2500, 10, 0.483463, 0.424289},
		{5000, -20, 0.343862, 0.337737},
		{6500, 0, 0.313528, 0.323534},
		{10000, 20, 0.276530, 0.296214},
		{20000, -10, 0.259111, 0.254938},
	} {
		t.Run(fmt.Sprintf("%gK/%g", tc.temperature, tc.tint), func(t *testing.T) {
			got := XYFromTemperature(tc.temperature, tc.tint)
			assert.InDelta(t, tc.x, got.X, 1e-6)
			assert.InDelta(t, tc.y, got.Y, 1e-6)
		})
	}
}

func TestTemperatureRoundtrip(t *testing.T) {
	for _, temperature := range []float64{1700, 2000, 2500, 2856, 3200, 4000, 5000, 5500, 6500, 7500, 10000, 15000, 25000, 50000} {
		for _, tint := range []float64{-50, -20, -10, 0, 10, 20, 50} {
			xy := XYFromTemperature(temperature, tint)
			got := TemperatureFromXY(xy)
			require.InDelta(t, temperature, got.Temperature, 1, "T=%g tint=%g xy=%v", temperature, tint, xy)
			require.InDelta(t, tint, got.Tint, 0.01, "T=%g tint=%g xy=%v", temperature, tint, xy)
		}
	}
}

func TestTemperatureOnTableRows(t *testing.T) {
	// points on the locus at a table row come back as that row
	for _, row := range isotherms[1:] {
		xy := xyFromUV(row.U, row.V)
		got := TemperatureFromXY(xy)
		assert.InDelta(t, 1e6/row.R, got.Temperature, 1e-6*1e6/row.R, "row %v", row)
		assert.InDelta(t, 0, got.Tint, 1e-9)
		back := XYFromTemperature(1e6/row.R, 0)
		assert.InDelta(t, xy.X, back.X, 1e-12)
		assert.InDelta(t, xy.Y, back.Y, 1e-12)
	}
}

func TestTemperatureExtrapolation(t *testing.T) {
	// cooler than the table: the last pair of rows is used, no panic, finite output
	cold := TemperatureFromXY(XY{0.6, 0.38})
	assert.InDelta(t, 1375.35, cold.Temperature, 0.01)
	assert.InDelta(t, -8.062, cold.Tint, 0.001)
	assert.Less(t, cold.Temperature, MinTemperature)

	// bluer than infinite temperature: extrapolated past the first row
	hot := TemperatureFromXY(XY{0.24, 0.22})
	assert.Less(t, hot.Temperature, 0.0)

	xy := XYFromTemperature(1000, 0)
	assert.InDelta(t, 0.686731, xy.X, 1e-6)
	assert.InDelta(t, 0.357668, xy.Y, 1e-6)

	xy = XYFromTemperature(math.Inf(1), 0)
	assert.InDelta(t, 0.239871, xy.X, 1e-6)
	assert.InDelta(t, 0.234036, xy.Y, 1e-6)

	xy = XYFromTemperature(0, 0)
	assert.True(t, math.IsNaN(xy.X))
}
