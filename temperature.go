package colormath

import (
	"fmt"
	"math"
)

var _ = fmt.Print

// Isotherm is one row of Robertson's table: a point on the Planckian locus in CIE
// 1960 UCS and the slope of the isotherm through it.
type Isotherm struct {
	R float64 // reciprocal temperature, 10^6/K
	U float64
	V float64
	T float64 // slope
}

// Rows must stay strictly ascending by R, both scans below depend on it.
var isotherms = [31]Isotherm{
	{0, 0.18006, 0.26352, -0.24341},
	{10, 0.18066, 0.26589, -0.25479},
	{20, 0.18133, 0.26846, -0.26876},
	{30, 0.18208, 0.27119, -0.28539},
	{40, 0.18293, 0.27407, -0.30470},
	{50, 0.18388, 0.27709, -0.32675},
	{60, 0.18494, 0.28021, -0.35156},
	{70, 0.18611, 0.28342, -0.37915},
	{80, 0.18740, 0.28668, -0.40955},
	{90, 0.18880, 0.28997, -0.44278},
	{100, 0.19032, 0.29326, -0.47888},
	{125, 0.19462, 0.30141, -0.58204},
	{150, 0.19962, 0.30921, -0.70471},
	{175, 0.20525, 0.31647, -0.84901},
	{200, 0.21142, 0.32312, -1.01820},
	{225, 0.21807, 0.32909, -1.21680},
	{250, 0.22511, 0.33439, -1.45120},
	{275, 0.23247, 0.33904, -1.72980},
	{300, 0.24010, 0.34308, -2.06370},
	{325, 0.24792, 0.34655, -2.46810},
	{350, 0.25591, 0.34951, -2.96410},
	{375, 0.26400, 0.35200, -3.58140},
	{400, 0.27218, 0.35407, -4.36330},
	{425, 0.28039, 0.35577, -5.37620},
	{450, 0.28863, 0.35714, -6.72620},
	{475, 0.29685, 0.35823, -8.59550},
	{500, 0.30505, 0.35907, -11.3240},
	{525, 0.31320, 0.35968, -15.6280},
	{550, 0.32129, 0.36011, -23.3250},
	{575, 0.32931, 0.36038, -40.7700},
	{600, 0.33724, 0.36051, -116.450},
}

// Scale between an offset from the locus in UCS and tint units.
const tintScale = -3000.0

// Isotherms returns a copy of the table used for temperature calculations.
func Isotherms() [31]Isotherm { return isotherms }

// MinTemperature is the lowest temperature covered by the isotherm table, in kelvin.
// Anything cooler is extrapolated from the last two rows.
var MinTemperature = 1e6 / isotherms[len(isotherms)-1].R

// distance is the signed distance of (u, v) from the isotherm, not normalized.
// Positive on the warm side.
func (iso *Isotherm) distance(u, v float64) float64 {
	return (v - iso.V) - iso.T*(u-iso.U)
}

func (iso *Isotherm) length() float64 {
	return math.Sqrt(1 + iso.T*iso.T)
}

// direction is the unit vector along the isotherm.
func (iso *Isotherm) direction() (tu, tv float64) {
	l := iso.length()
	return 1 / l, iso.T / l
}

// blend_directions interpolates between two isotherm directions, a at f == 0 and b at
// f == 1, and renormalizes the result.
func blend_directions(a, b *Isotherm, f float64) (tu, tv float64) {
	au, av := a.direction()
	bu, bv := b.direction()
	tu = (bu-au)*f + au
	tv = (bv-av)*f + av
	l := math.Sqrt(tu*tu + tv*tv)
	return tu / l, tv / l
}

type Temperature struct {
	Temperature float64 // kelvin
	Tint        float64
}

func (t Temperature) String() string {
	return fmt.Sprintf("Temperature{%gK tint: %g}", t.Temperature, t.Tint)
}

// TemperatureFromXY finds the correlated color temperature and tint of a
// chromaticity using Robertson's method. Chromaticities beyond the coolest isotherm
// are extrapolated from the last two rows of the table.
func TemperatureFromXY(c XY) Temperature {
	us, vs := c.UV()
	last := len(isotherms) - 1
	// find the first pair of isotherms that the point lies between
	i := 1
	dj := isotherms[0].distance(us, vs)
	di := isotherms[i].distance(us, vs)
	for di >= 0 && i < last {
		dj = di
		i++
		di = isotherms[i].distance(us, vs)
	}
	hi, lo := &isotherms[i], &isotherms[i-1]

	di /= hi.length()
	dj /= lo.length()
	f := dj / (dj - di)

	temperature := 1e6 / ((hi.R-lo.R)*f + lo.R)

	ud := us - ((hi.U-lo.U)*f + lo.U)
	vd := vs - ((hi.V-lo.V)*f + lo.V)
	tu, tv := blend_directions(lo, hi, f)
	return Temperature{Temperature: temperature, Tint: (ud*tu + vd*tv) * tintScale}
}

// XYFromTemperature is the inverse of TemperatureFromXY. The bracketing isotherms
// are chosen directly by reciprocal temperature. Temperatures below MinTemperature
// are extrapolated from the last two rows of the table.
func XYFromTemperature(temperature, tint float64) XY {
	r := 1e6 / temperature
	last := len(isotherms) - 1
	i := 1
	for i < last && r >= isotherms[i].R {
		i++
	}
	hi, lo := &isotherms[i], &isotherms[i-1]
	// f is the weight of the lower row
	f := (hi.R - r) / (hi.R - lo.R)

	us := (lo.U-hi.U)*f + hi.U
	vs := (lo.V-hi.V)*f + hi.V
	tu, tv := blend_directions(hi, lo, f)

	us += tu * tint / tintScale
	vs += tv * tint / tintScale
	return xyFromUV(us, vs)
}
