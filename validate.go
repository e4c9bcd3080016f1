package colormath

import (
	"errors"
	"fmt"
	"math"
)

// The conversion functions never fail, they return non-finite or extrapolated
// values for bad input. These checks let callers reject such input up front.
var (
	ErrNonFinite              = errors.New("value is not finite")
	ErrDegenerateChromaticity = errors.New("degenerate chromaticity")
	ErrOutOfRange             = errors.New("temperature outside the isotherm table")
	ErrDegenerateWhitePoint   = errors.New("white point has a zero cone response")
	ErrSingular               = errors.New("matrix is singular")
)

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ValidateXY checks that c can be converted by XYToXYZ and TemperatureFromXY.
func ValidateXY(c XY) error {
	if !finite(c.X, c.Y) {
		return fmt.Errorf("chromaticity %v: %w", c, ErrNonFinite)
	}
	if c.Y == 0 {
		return fmt.Errorf("chromaticity %v has y == 0: %w", c, ErrDegenerateChromaticity)
	}
	return nil
}

// ValidateXYZ checks that c can be converted by XYZToXY.
func ValidateXYZ(c XYZ) error {
	if !finite(c.X, c.Y, c.Z) {
		return fmt.Errorf("tristimulus %v: %w", c, ErrNonFinite)
	}
	if c.X+c.Y+c.Z == 0 {
		return fmt.Errorf("tristimulus %v sums to zero: %w", c, ErrDegenerateChromaticity)
	}
	return nil
}

// ValidateTemperature checks that XYFromTemperature will interpolate rather than
// extrapolate. Infinite temperature is allowed, it is the first row of the table.
func ValidateTemperature(temperature, tint float64) error {
	if math.IsNaN(temperature) || math.IsInf(temperature, -1) || !finite(tint) {
		return fmt.Errorf("temperature %g tint %g: %w", temperature, tint, ErrNonFinite)
	}
	if temperature < MinTemperature {
		return fmt.Errorf("temperature %gK is below %gK: %w", temperature, MinTemperature, ErrOutOfRange)
	}
	return nil
}

// ValidateWhitePoints checks that WhitePointXYZConvertMatrix(source, target) will
// produce a finite matrix.
func ValidateWhitePoints(source, target XYZ) error {
	if err := ValidateXYZ(source); err != nil {
		return fmt.Errorf("source white: %w", err)
	}
	if err := ValidateXYZ(target); err != nil {
		return fmt.Errorf("target white: %w", err)
	}
	cone := Bradford.MulVec(source.Vec())
	for i, c := range cone {
		if math.Abs(c) < 1e-12 {
			return fmt.Errorf("source white %v, cone response %d: %w", source, i, ErrDegenerateWhitePoint)
		}
	}
	return nil
}
