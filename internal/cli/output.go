package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"
	"golang.org/x/image/math/f64"

	"github.com/kovidgoyal/colormath"
)

// number is a float64 that encodes NaN and the infinities as JSON null, which
// decodes back to NaN.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func (n *number) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = number(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = number(f)
	return nil
}

type rgbResult struct {
	R   number `json:"r"`
	G   number `json:"g"`
	B   number `json:"b"`
	Hex string `json:"hex"`
}

func newRGBResult(c colormath.RGB) rgbResult {
	return rgbResult{R: number(c.R), G: number(c.G), B: number(c.B), Hex: c.AsSharp()}
}

type hsvResult struct {
	H number `json:"h"`
	S number `json:"s"`
	V number `json:"v"`
}

type xyResult struct {
	X number `json:"x"`
	Y number `json:"y"`
}

type xyzResult struct {
	X number `json:"X"`
	Y number `json:"Y"`
	Z number `json:"Z"`
}

type temperatureResult struct {
	Temperature  number `json:"temperature"`
	Tint         number `json:"tint"`
	Extrapolated bool   `json:"extrapolated"`
}

type chromaticityResult struct {
	Temperature number `json:"temperature"`
	Tint        number `json:"tint"`
	X           number `json:"x"`
	Y           number `json:"y"`
	Preview     string `json:"preview"`
}

type adaptResult struct {
	From   xyResult      `json:"from"`
	To     xyResult      `json:"to"`
	Matrix [3][3]float64 `json:"matrix"`
}

// emit writes v as JSON or, in text mode, calls text.
func (a *app) emit(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if a.opts.output == "json" {
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("cannot encode result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
	text(w)
	return nil
}

// writeMatrix prints a row major matrix, one row per line.
func writeMatrix(w io.Writer, m f64.Mat3) {
	for i := 0; i < len(m); i += 3 {
		fmt.Fprintf(w, "%12.7f %12.7f %12.7f\n", m[i], m[i+1], m[i+2])
	}
}
