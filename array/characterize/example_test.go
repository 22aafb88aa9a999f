package characterize_test

import (
	"fmt"

	"github.com/cwbudde/algo-array/array/characterize"
)

func ExampleChi2() {
	// Chi-squared value enclosing 90% confidence in two dimensions.
	x2, _ := characterize.Chi2(2, 0.1)
	fmt.Printf("%.3f\n", x2)

	// Output:
	// 4.605
}

func ExampleArraySig() {
	// Four sensors on a unit square (km).
	coords := [][]float64{
		{0, 0},
		{0, 1},
		{1, 0},
		{1, 1},
	}

	opts := &characterize.SigOptions{
		NumVelocities:  3,
		NumAzimuths:    4,
		NumWavenumbers: 5,
	}

	res, err := characterize.ArraySig(coords, 5, 0.01, opts)
	if err != nil {
		fmt.Println("characterization failed:", err)
		return
	}

	fmt.Printf("velocity grid: %d points\n", len(res.Velocities))
	fmt.Printf("azimuth grid:  %d points\n", len(res.Azimuths))

	// Output:
	// velocity grid: 3 points
	// azimuth grid:  4 points
}
