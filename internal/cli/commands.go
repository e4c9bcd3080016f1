package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/kovidgoyal/go-parallel"
	"github.com/spf13/cobra"

	"github.com/kovidgoyal/colormath"
	"github.com/kovidgoyal/colormath/srgb"
)

func (a *app) hsvCmd() *cobra.Command {
	var colorSpec string
	cmd := &cobra.Command{
		Use:   "hsv [R G B]",
		Short: "Convert RGB (channels in [0,1]) to HSV",
		Example: `  colormath hsv 1 0.5 0
  colormath hsv --color teal`,
		Args: cobra.RangeArgs(0, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rgb colormath.RGB
			switch {
			case colorSpec != "" && len(args) == 0:
				c, err := parseColor(colorSpec)
				if err != nil {
					return err
				}
				rgb = c
			case colorSpec == "" && len(args) == 3:
				vals, err := parseFloats(args)
				if err != nil {
					return err
				}
				rgb = colormath.RGB{R: vals[0], G: vals[1], B: vals[2]}
			default:
				return fmt.Errorf("specify either three channels or --color")
			}
			a.logger.Debug("converting to HSV", "rgb", rgb)
			hsv := colormath.RGBToHSV(rgb)
			return a.emit(cmd, hsvResult{H: number(hsv.H), S: number(hsv.S), V: number(hsv.V)}, func(w io.Writer) {
				fmt.Fprintf(w, "h: %g\ns: %g\nv: %g\n", hsv.H, hsv.S, hsv.V)
			})
		},
	}
	cmd.Flags().StringVarP(&colorSpec, "color", "c", "", "color as #RRGGBB or an SVG color name")
	return cmd
}

func (a *app) rgbCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rgb H S V",
		Short: "Convert HSV (hue in degrees, S and V in [0,1]) to RGB",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return err
			}
			hsv := colormath.HSV{H: vals[0], S: vals[1], V: vals[2]}
			if hsv.H < 0 || hsv.H > 360 || hsv.S < 0 || hsv.S > 1 || hsv.V < 0 || hsv.V > 1 {
				a.logger.Warn("HSV components out of range will be clamped", "hsv", hsv)
			}
			rgb := colormath.HSVToRGB(hsv)
			return a.emit(cmd, newRGBResult(rgb), func(w io.Writer) {
				fmt.Fprintf(w, "r: %g\ng: %g\nb: %g\nhex: %s\n", rgb.R, rgb.G, rgb.B, rgb.AsSharp())
			})
		},
	}
}

func (a *app) xyzCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "xyz x y",
		Short: "Convert a CIE xy chromaticity to XYZ with Y = 1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return err
			}
			xy := colormath.XY{X: vals[0], Y: vals[1]}
			if err := colormath.ValidateXY(xy); err != nil {
				a.logger.Warn("result will not be finite", "error", err)
			}
			xyz := colormath.XYToXYZ(xy)
			return a.emit(cmd, xyzResult{X: number(xyz.X), Y: number(xyz.Y), Z: number(xyz.Z)}, func(w io.Writer) {
				fmt.Fprintf(w, "X: %g\nY: %g\nZ: %g\n", xyz.X, xyz.Y, xyz.Z)
			})
		},
	}
}

func (a *app) xyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "xy X Y Z",
		Short: "Convert CIE XYZ to an xy chromaticity",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return err
			}
			xyz := colormath.VectorToXYZ(colormath.Vec3{vals[0], vals[1], vals[2]})
			if err := colormath.ValidateXYZ(xyz); err != nil {
				a.logger.Warn("result will not be finite", "error", err)
			}
			xy := colormath.XYZToXY(xyz)
			return a.emit(cmd, xyResult{X: number(xy.X), Y: number(xy.Y)}, func(w io.Writer) {
				fmt.Fprintf(w, "x: %g\ny: %g\n", xy.X, xy.Y)
			})
		},
	}
}

func (a *app) cctCmd() *cobra.Command {
	var colorSpec string
	cmd := &cobra.Command{
		Use:   "cct [x y]",
		Short: "Correlated color temperature and tint of a chromaticity",
		Example: `  colormath cct 0.31271 0.32902
  colormath cct --color '#ffd8a8'`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var xy colormath.XY
			switch {
			case colorSpec != "" && len(args) == 0:
				c, err := parseColor(colorSpec)
				if err != nil {
					return err
				}
				xy = srgb.Chromaticity(c)
				a.logger.Debug("sRGB color chromaticity", "color", c, "xy", xy)
			case colorSpec == "" && len(args) == 2:
				vals, err := parseFloats(args)
				if err != nil {
					return err
				}
				xy = colormath.XY{X: vals[0], Y: vals[1]}
			default:
				return fmt.Errorf("specify either a chromaticity or --color")
			}
			if err := colormath.ValidateXY(xy); err != nil {
				return err
			}
			t := colormath.TemperatureFromXY(xy)
			res := temperatureResult{Temperature: number(t.Temperature), Tint: number(t.Tint)}
			switch {
			case t.Temperature < 0:
				res.Extrapolated = true
				a.logger.Warn("chromaticity is bluer than the infinite temperature isotherm, result is extrapolated", "xy", xy)
			case !(t.Temperature >= colormath.MinTemperature):
				res.Extrapolated = true
				a.logger.Warn("chromaticity is redder than the isotherm table covers, result is extrapolated", "xy", xy)
			}
			return a.emit(cmd, res, func(w io.Writer) {
				fmt.Fprintf(w, "temperature: %.2f K\ntint: %.3f\n", t.Temperature, t.Tint)
			})
		},
	}
	cmd.Flags().StringVarP(&colorSpec, "color", "c", "", "sRGB color as #RRGGBB or an SVG color name")
	return cmd
}

func chromaticityOf(temperature, tint float64) chromaticityResult {
	xy := colormath.XYFromTemperature(temperature, tint)
	return chromaticityResult{
		Temperature: number(temperature), Tint: number(tint),
		X: number(xy.X), Y: number(xy.Y),
		Preview: srgb.Preview(xy).AsSharp(),
	}
}

func (a *app) tempCmd() *cobra.Command {
	var tint float64
	cmd := &cobra.Command{
		Use:   "temp KELVIN",
		Short: "Chromaticity of a color temperature and tint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return err
			}
			if err := colormath.ValidateTemperature(vals[0], tint); err != nil {
				a.logger.Warn("result is extrapolated", "error", err)
			}
			res := chromaticityOf(vals[0], tint)
			return a.emit(cmd, res, func(w io.Writer) {
				fmt.Fprintf(w, "x: %.6f\ny: %.6f\npreview: %s\n", res.X, res.Y, res.Preview)
			})
		},
	}
	cmd.Flags().Float64Var(&tint, "tint", 0, "tint, positive towards magenta")
	return cmd
}

func (a *app) adaptCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "adapt",
		Short: "Bradford chromatic adaptation matrix between two white points",
		Example: `  colormath adapt --from d65 --to d50
  colormath adapt --from 0.44757,0.40745 --to d65`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseWhitePoint(from)
			if err != nil {
				return err
			}
			dst, err := parseWhitePoint(to)
			if err != nil {
				return err
			}
			sw, dw := colormath.XYToXYZ(src), colormath.XYToXYZ(dst)
			if err := colormath.ValidateWhitePoints(sw, dw); err != nil {
				return err
			}
			a.logger.Debug("adapting", "source", sw, "target", dw)
			m := colormath.WhitePointXYZConvertMatrix(sw, dw)
			res := adaptResult{
				From:   xyResult{number(src.X), number(src.Y)},
				To:     xyResult{number(dst.X), number(dst.Y)},
				Matrix: m,
			}
			return a.emit(cmd, res, func(w io.Writer) { writeMatrix(w, m.F64()) })
		},
	}
	cmd.Flags().StringVar(&from, "from", "d65", "source white point (d50, d65 or x,y)")
	cmd.Flags().StringVar(&to, "to", "d50", "target white point (d50, d65 or x,y)")
	return cmd
}

const maxLocusRows = 1_000_000

func (a *app) locusCmd() *cobra.Command {
	var from, to, step, tint float64
	cmd := &cobra.Command{
		Use:   "locus",
		Short: "Tabulate chromaticities along the Planckian locus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range []struct {
				name string
				val  float64
			}{{"from", from}, {"to", to}, {"step", step}} {
				if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
					return fmt.Errorf("--%s must be finite, not %g", f.name, f.val)
				}
			}
			if !(step > 0) || !(to >= from) {
				return fmt.Errorf("need --step > 0 and --to >= --from")
			}
			span := (to - from) / step
			if span >= maxLocusRows {
				return fmt.Errorf("too many rows: %.0f, at most %d are allowed", span+1, maxLocusRows)
			}
			n := int(span) + 1
			if err := colormath.ValidateTemperature(from, tint); err != nil {
				a.logger.Warn("part of the table is extrapolated", "error", err)
			}
			rows := make([]chromaticityResult, n)
			err := parallel.Run_in_parallel_over_range(0, func(start, limit int) {
				for i := start; i < limit; i++ {
					rows[i] = chromaticityOf(from+float64(i)*step, tint)
				}
			}, 0, n)
			if err != nil {
				return err
			}
			a.logger.Debug("computed locus", "rows", n)
			return a.emit(cmd, rows, func(w io.Writer) {
				fmt.Fprintf(w, "%10s %10s %10s %8s\n", "kelvin", "x", "y", "preview")
				for _, r := range rows {
					fmt.Fprintf(w, "%10.0f %10.6f %10.6f %8s\n", r.Temperature, r.X, r.Y, r.Preview)
				}
			})
		},
	}
	cmd.Flags().Float64Var(&from, "from", 2000, "lowest temperature in kelvin")
	cmd.Flags().Float64Var(&to, "to", 10000, "highest temperature in kelvin")
	cmd.Flags().Float64Var(&step, "step", 500, "temperature step in kelvin")
	cmd.Flags().Float64Var(&tint, "tint", 0, "tint applied to every row")
	return cmd
}
