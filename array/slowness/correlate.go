package slowness

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-array/dsp/xcorr"
)

// pairResult holds the delay and correlation maximum of one sensor pair.
type pairResult struct {
	// Tau is the arrival-time difference in seconds.
	Tau float64

	// CMax is the maximum of the pair's normalized cross-correlation.
	CMax float64
}

// correlatePair measures the arrival-time difference between two traces at
// the peak of their full cross-correlation, normalized by the geometric
// mean of the trace energies so that the zero-lag autocorrelation of a
// trace with itself is exactly 1.
//
// The delay convention places lag zero at the center of the full
// correlation: with m samples per trace and peak index k (0-based), the
// delay is (m-1-k)/sampleRate. A positive delay means the second trace
// leads the first.
func correlatePair(a, b []float64, energyA, energyB, sampleRate float64) (pairResult, error) {
	c, err := xcorr.Correlate(a, b)
	if err != nil {
		return pairResult{}, fmt.Errorf("slowness: cross-correlation: %w", err)
	}

	idx, peak := xcorr.FindPeak(c)

	m := len(a)
	return pairResult{
		Tau:  float64(m-1-idx) / sampleRate,
		CMax: peak / math.Sqrt(energyA*energyB),
	}, nil
}

// traceEnergies returns the sum of squares of each trace. Traces with zero
// weight never enter a correlation, so their energy is left at zero.
func traceEnergies(traces [][]float64, weights []float64) []float64 {
	energies := make([]float64, len(traces))

	var scratch []float64
	for i, tr := range traces {
		if weights[i] == 0 {
			continue
		}
		if scratch == nil {
			scratch = make([]float64, len(tr))
		}
		vecmath.MulBlock(scratch, tr, tr)

		var sum float64
		for _, v := range scratch {
			sum += v
		}
		energies[i] = sum
	}

	return energies
}
