package slowness_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-array/array/slowness"
)

func ExampleEstimate() {
	// Four sensors on a unit square (km), wave from the northeast at
	// 1/|s| km/s, sampled at 10 Hz. Each trace is a Gaussian pulse
	// delayed according to the plane-wave model.
	coords := [][]float64{
		{0, 0},
		{1, 0},
		{0, 1},
		{1, 1},
	}
	sTrue := []float64{0.2, 0.2}
	sampleRate := 10.0

	m := 64
	traces := make([][]float64, len(coords))
	for i, r := range coords {
		shift := -sampleRate * (r[0]*sTrue[0] + r[1]*sTrue[1])
		center := 32 + int(math.Round(shift))
		tr := make([]float64, m)
		for t := range tr {
			d := float64(t - center)
			tr[t] = math.Exp(-d * d / 8)
		}
		traces[i] = tr
	}

	res, err := slowness.Estimate(traces, coords, sampleRate, nil)
	if err != nil {
		fmt.Println("estimate failed:", err)
		return
	}

	fmt.Printf("velocity: %.2f km/s\n", res.Velocity)
	fmt.Printf("azimuth:  %.1f°\n", res.Azimuth)

	// Output:
	// velocity: 3.54 km/s
	// azimuth:  45.0°
}

func ExampleEstimate_weights() {
	coords := [][]float64{
		{0, 0},
		{1, 0},
		{0, 1},
		{1, 1},
	}
	sampleRate := 10.0

	m := 64
	traces := make([][]float64, len(coords))
	for i, r := range coords {
		shift := -sampleRate * (r[0]*0.2 + r[1]*0.1)
		center := 32 + int(math.Round(shift))
		tr := make([]float64, m)
		for t := range tr {
			d := float64(t - center)
			tr[t] = math.Exp(-d * d / 8)
		}
		traces[i] = tr
	}

	// Exclude the third sensor entirely.
	_, err := slowness.Estimate(traces, coords, sampleRate, []float64{1, 1, 0, 1})
	fmt.Println(err)

	// Output:
	// slowness: delay uncertainty undefined
}
