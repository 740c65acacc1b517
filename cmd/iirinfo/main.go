// Command iirinfo prints the design of an IIR pass filter: section
// coefficients, z-plane poles and zeros, and a magnitude/phase table.
//
// Usage:
//
//	iirinfo [flags]
//
// Examples:
//
//	iirinfo -family butterworth -order 4 -cutoff 1000
//	iirinfo -family chebyshev -ripple 0.5 -order 6 -response highpass
//	iirinfo -family bessel -order 5 -rate 96000 -rows 32
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/design/prototype"
)

func main() {
	var (
		familyName   = flag.String("family", "butterworth", "filter family: butterworth, chebyshev, bessel")
		responseName = flag.String("response", "lowpass", "response type: lowpass, highpass")
		order        = flag.Int("order", 4, "filter order (>= 1)")
		cutoff       = flag.Float64("cutoff", 1000, "cutoff frequency in Hz")
		ripple       = flag.Float64("ripple", 1, "passband ripple in dB (chebyshev only)")
		rate         = flag.Float64("rate", 48000, "sample rate in Hz")
		points       = flag.Int("points", 512, "response grid resolution")
		rows         = flag.Int("rows", 16, "number of response table rows to print")
	)

	flag.Parse()

	family, ok := prototype.ParseFamily(*familyName)
	if !ok {
		fmt.Fprintf(os.Stderr, "iirinfo: unknown family %q\n", *familyName)
		os.Exit(1)
	}

	response, ok := design.ParseResponse(*responseName)
	if !ok {
		fmt.Fprintf(os.Stderr, "iirinfo: unknown response %q\n", *responseName)
		os.Exit(1)
	}

	spec := design.Spec{
		Family:   family,
		Response: response,
		Order:    *order,
		CutoffHz: design.ClampCutoff(*cutoff, *rate),
		RippleDB: *ripple,
	}

	result, err := design.Filter(spec, *rate, *points)
	if err != nil {
		fmt.Fprintf(os.Stderr, "iirinfo: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s %s, order %d, cutoff %g Hz at %g Hz sample rate\n\n",
		family, response, *order, spec.CutoffHz, *rate)

	printSections(result)
	printPoleZeros(result)
	printResponse(result, *rows)
}

func printSections(r design.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "section\tb0\tb1\tb2\ta1\ta2")

	for i, s := range r.Sections {
		fmt.Fprintf(w, "%d\t%.10g\t%.10g\t%.10g\t%.10g\t%.10g\n", i, s.B0, s.B1, s.B2, s.A1, s.A2)
	}

	w.Flush()
	fmt.Println()
}

func printPoleZeros(r design.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tpole\t|pole|\tzero")

	for i := range r.Poles {
		p := r.Poles[i]
		fmt.Fprintf(w, "%d\t%.6f%+.6fi\t%.6f\t%+g\n", i, real(p), imag(p), math.Hypot(real(p), imag(p)), real(r.Zeros[i]))
	}

	w.Flush()
	fmt.Println()
}

func printResponse(r design.Result, rows int) {
	if rows < 2 || len(r.Frequencies) < 2 {
		return
	}

	if rows > len(r.Frequencies) {
		rows = len(r.Frequencies)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "freq (Hz)\tmag (dB)\tphase (rad)")

	for i := 0; i < rows; i++ {
		idx := i * (len(r.Frequencies) - 1) / (rows - 1)
		fmt.Fprintf(w, "%.1f\t%+.3f\t%+.4f\n", r.Frequencies[idx], r.MagnitudeDB[idx], r.Phase[idx])
	}

	w.Flush()
}
