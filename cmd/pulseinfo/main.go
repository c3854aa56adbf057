// Command pulseinfo prints temporal and spectral properties of canonical
// pulse shapes.
//
// Usage:
//
//	pulseinfo [flags] [shape-name ...]
//
// Without arguments it prints info for all known shapes.
//
// Examples:
//
//	pulseinfo gaussian
//	pulseinfo -width 0.5 -chirp 2 gaussian sech
//	pulseinfo -span 32 -points 2048 -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-field/dsp/core"
	"github.com/cwbudde/algo-field/dsp/field"
	"github.com/cwbudde/algo-field/dsp/pulse"
	"github.com/cwbudde/algo-field/measure/width"
)

type shapeEntry struct {
	name     string
	generate func(widthVal, amplitude, chirp, cf, span float64, n int) (*field.Field, error)
}

var registry = []shapeEntry{
	{"gaussian", func(w, a, c, cf, span float64, n int) (*field.Field, error) {
		g := pulse.Gaussian{Width: w, Amplitude: a, Chirp: c, CentralFreq: cf}
		return g.Generate(span, n)
	}},
	{"sech", func(w, a, c, cf, span float64, n int) (*field.Field, error) {
		s := pulse.Sech{Width: w, Amplitude: a, Chirp: c, CentralFreq: cf}
		return s.Generate(span, n)
	}},
}

func lookup(name string) *shapeEntry {
	for i := range registry {
		if registry[i].name == name {
			return &registry[i]
		}
	}
	return nil
}

func main() {
	var (
		span      = flag.Float64("span", 16, "time window span")
		points    = flag.Int("points", 1024, "number of samples (power of two)")
		widthVal  = flag.Float64("width", 1, "pulse width")
		amplitude = flag.Float64("amplitude", 1, "peak amplitude")
		chirp     = flag.Float64("chirp", 0, "linear chirp in rad per unit time squared")
		cf        = flag.Float64("cf", 0, "central frequency tag")
		list      = flag.Bool("list", false, "list known shape names and exit")
	)
	flag.Parse()

	if *list {
		names := make([]string, len(registry))
		for i, e := range registry {
			names[i] = e.name
		}
		fmt.Println(strings.Join(names, "\n"))
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "shape\tpower\tpower-db\tt-fwhm\tt-rms\tchirp-est\tf-fwhm\ttbp")

	for _, name := range names {
		entry := lookup(name)
		if entry == nil {
			fmt.Fprintf(os.Stderr, "pulseinfo: unknown shape %q (use -list)\n", name)
			os.Exit(1)
		}

		if err := printShape(w, entry, *widthVal, *amplitude, *chirp, *cf, *span, *points); err != nil {
			fmt.Fprintf(os.Stderr, "pulseinfo: %s: %v\n", name, err)
			os.Exit(1)
		}
	}

	w.Flush()
}

func printShape(w *tabwriter.Writer, entry *shapeEntry, widthVal, amplitude, chirp, cf, span float64, n int) error {
	f, err := entry.generate(widthVal, amplitude, chirp, cf, span, n)
	if err != nil {
		return err
	}

	timeStats, err := width.Calculate(f.Intensity())
	if err != nil {
		return err
	}

	chirpEst, err := f.EstimateChirp()
	if err != nil {
		return err
	}

	spec, err := f.Forward()
	if err != nil {
		return err
	}

	freqStats, err := width.Calculate(spec.Intensity())
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\n",
		entry.name,
		f.TotalPower(),
		core.LinearPowerToDB(f.TotalPower()),
		timeStats.FWHM,
		timeStats.RMSWidth,
		chirpEst,
		freqStats.FWHM,
		timeStats.FWHM*freqStats.FWHM,
	)

	return nil
}
