// Command arrayinfo prints geometry and uncertainty properties of sensor
// arrays.
//
// Usage:
//
//	arrayinfo [flags] north,east [north,east ...]
//
// Each positional argument is one sensor position in km. The tool prints a
// geometry summary and, for a grid of arrival velocities and azimuths, the
// trace-velocity and back-azimuth uncertainties implied by the assumed
// time-delay uncertainty.
//
// Examples:
//
//	arrayinfo 0,0 0,1 1,0 1,1
//	arrayinfo -sigma 0.005 -confidence 0.95 0,0 0,1 1,0 1,1
//	arrayinfo -vmin 0.3 -vmax 0.5 -nvel 3 -naz 8 0,0 0,1 1,0 1,1
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-array/array/characterize"
	"github.com/cwbudde/algo-array/array/geom"
)

func main() {
	sigma := flag.Float64("sigma", 0.01, "assumed time-delay uncertainty in seconds")
	confidence := flag.Float64("confidence", 0.9, "enclosed probability of the uncertainty estimates")
	vmin := flag.Float64("vmin", 0.27, "minimum trace velocity in km/s")
	vmax := flag.Float64("vmax", 0.36, "maximum trace velocity in km/s")
	nvel := flag.Int("nvel", 4, "number of velocity grid points")
	naz := flag.Int("naz", 8, "number of azimuth grid points")
	kmax := flag.Float64("kmax", 5, "wavenumber bound of the impulse response grid, 1/km")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: arrayinfo [flags] north,east [north,east ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints geometry and uncertainty properties of sensor arrays.\n")
		fmt.Fprintf(os.Stderr, "Each positional argument is one sensor position in km.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  arrayinfo 0,0 0,1 1,0 1,1\n")
		fmt.Fprintf(os.Stderr, "  arrayinfo -sigma 0.005 -confidence 0.95 0,0 0,1 1,0 1,1\n")
	}
	flag.Parse()

	coords, err := parseCoords(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if len(coords) < 3 {
		fmt.Fprintf(os.Stderr, "error: need at least 3 sensors, got %d\n", len(coords))
		os.Exit(1)
	}

	opts := &characterize.SigOptions{
		Confidence:    *confidence,
		VelocityMin:   *vmin,
		VelocityMax:   *vmax,
		NumVelocities: *nvel,
		NumAzimuths:   *naz,
	}

	res, err := characterize.ArraySig(coords, *kmax, *sigma, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printGeometry(coords)
	fmt.Println()
	printUncertainty(res)
}

// parseCoords converts "north,east" argument strings into sensor positions.
func parseCoords(args []string) ([][]float64, error) {
	coords := make([][]float64, 0, len(args))
	for _, arg := range args {
		parts := strings.Split(arg, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed coordinate %q, want north,east", arg)
		}
		north, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed northing in %q: %v", arg, err)
		}
		east, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed easting in %q: %v", arg, err)
		}
		coords = append(coords, []float64{north, east})
	}
	return coords, nil
}

func printGeometry(coords [][]float64) {
	dij, err := geom.CoArray(coords)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	aperture := 0.0
	for _, d := range dij {
		aperture = math.Max(aperture, math.Hypot(d[0], d[1]))
	}

	fmt.Printf("Sensors:  %d\n", len(coords))
	fmt.Printf("Pairs:    %d\n", len(dij))
	fmt.Printf("Aperture: %.3f km\n", aperture)
}

func printUncertainty(res *characterize.SigResult) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Vel [km/s]")
	for _, az := range res.Azimuths {
		fmt.Fprintf(tw, "\t%.0f°", az)
	}
	fmt.Fprintln(tw)

	for vi, vel := range res.Velocities {
		fmt.Fprintf(tw, "σv %.3f", vel)
		for ti := range res.Azimuths {
			fmt.Fprintf(tw, "\t%.4f", res.VelocitySigma[vi][ti])
		}
		fmt.Fprintln(tw)
	}
	for vi, vel := range res.Velocities {
		fmt.Fprintf(tw, "σθ %.3f", vel)
		for ti := range res.Azimuths {
			fmt.Fprintf(tw, "\t%.2f", res.AzimuthSigma[vi][ti])
		}
		fmt.Fprintln(tw)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
