package viz

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/unitlab/internal/quantity"
	"github.com/san-kum/unitlab/internal/unit"
)

// RoundTripErrors converts 1..samples (scaled by step) from one unit to
// the other and back in float64 and returns each result's error in ulps.
func RoundTripErrors(from, to unit.Unit, samples int, step float64) ([]float64, error) {
	if samples < 1 {
		return nil, fmt.Errorf("viz: need at least one sample, got %d", samples)
	}
	errs := make([]float64, samples)
	for i := range errs {
		v := float64(i+1) * step
		there, err := quantity.Of(v, from).In(to)
		if err != nil {
			return nil, err
		}
		back, err := there.In(from)
		if err != nil {
			return nil, err
		}
		ulp := math.Nextafter(v, math.Inf(1)) - v
		errs[i] = math.Abs(back.Value()-v) / ulp
	}
	return errs, nil
}

// PlotRoundTrip renders RoundTripErrors as an ascii chart.
func PlotRoundTrip(from, to unit.Unit, samples int, step float64) (string, error) {
	errs, err := RoundTripErrors(from, to, samples, step)
	if err != nil {
		return "", err
	}
	caption := fmt.Sprintf("round-trip error (ulp), %s -> %s -> %s", from, to, from)
	return asciigraph.Plot(errs,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	), nil
}
