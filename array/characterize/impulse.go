package characterize

import (
	"errors"
	"math"
)

// Errors returned by impulse-response and signature functions.
var (
	ErrEmptyCoArray = errors.New("characterize: empty co-array")
	ErrBadGrid      = errors.New("characterize: grid size must be at least 2")
	ErrNot2D        = errors.New("characterize: 2D sensor coordinates required")
)

// ImpulseResponse evaluates the wavenumber response of an array with the
// given co-array over the square k-space region [-kmax, kmax]².
//
// dij holds the per-pair separation vectors as produced by geom.CoArray;
// kmax and the separations share reciprocal units (1/km against km). The
// response at each gridpoint is the beam power sum over all sensor
// pairings,
//
//	2·Σ cos(k · d_ij) + n
//
// where the final n accounts for the cos(0) contribution of each sensor's
// pairing with itself. The sensor count is recovered from the pair count.
//
// The returned grid has ngrid rows indexed by the northing wavenumber and
// ngrid columns indexed by the easting wavenumber; kvec holds the
// wavenumber axis shared by both. Choose an odd ngrid to sample k = 0
// exactly, where the response peaks at n².
func ImpulseResponse(dij [][]float64, kmax float64, ngrid int) (resp [][]float64, kvec []float64, err error) {
	if len(dij) == 0 {
		return nil, nil, ErrEmptyCoArray
	}
	for _, d := range dij {
		if len(d) != 2 {
			return nil, nil, ErrNot2D
		}
	}
	if ngrid < 2 {
		return nil, nil, ErrBadGrid
	}

	numSensors := sensorsFromPairs(len(dij))

	kvec = linspace(-kmax, kmax, ngrid)
	resp = make([][]float64, ngrid)
	for r := range resp {
		row := make([]float64, ngrid)
		for c := range row {
			sum := float64(numSensors)
			for _, d := range dij {
				sum += 2 * math.Cos(kvec[r]*d[0]+kvec[c]*d[1])
			}
			row[c] = sum
		}
		resp[r] = row
	}

	return resp, kvec, nil
}

// sensorsFromPairs inverts numPairs = n(n-1)/2.
func sensorsFromPairs(numPairs int) int {
	return int(math.Round((1 + math.Sqrt(1+8*float64(numPairs))) / 2))
}

// linspace returns num evenly spaced values from start to stop inclusive.
func linspace(start, stop float64, num int) []float64 {
	out := make([]float64, num)
	step := (stop - start) / float64(num-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}
