package geom

import "errors"

// Errors returned by geometry functions.
var (
	ErrNoSensors     = errors.New("geom: no sensor coordinates")
	ErrRaggedCoords  = errors.New("geom: sensor coordinates differ in dimension")
	ErrBadDimension  = errors.New("geom: coordinate dimension must be 2 or 3")
	ErrTooFewSensors = errors.New("geom: at least two sensors required")
)

// Pair identifies an unordered sensor pairing (I, J) with I < J.
type Pair struct {
	I, J int
}

// Pairs enumerates all unordered sensor pairings over n sensors in canonical
// order: outer index ascending, inner index ascending. For n sensors the
// result has n(n-1)/2 entries.
//
// The canonical order is a contract: pair-indexed vectors elsewhere in this
// module (delays, correlation maxima, co-array columns) follow it exactly.
func Pairs(n int) []Pair {
	if n < 2 {
		return nil
	}

	pairs := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{I: i, J: j})
		}
	}

	return pairs
}

// NumPairs returns the number of unordered pairings over n sensors.
func NumPairs(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// CoArray forms the co-array of a sensor layout: for each canonical pair
// (i, j) the separation vector coords[i] - coords[j]. coords holds one
// position per sensor as [northing, easting] or [northing, easting,
// elevation]. The result has NumPairs(len(coords)) entries in canonical
// pair order.
func CoArray(coords [][]float64) ([][]float64, error) {
	n := len(coords)
	if n == 0 {
		return nil, ErrNoSensors
	}
	if n < 2 {
		return nil, ErrTooFewSensors
	}

	dim := len(coords[0])
	if dim != 2 && dim != 3 {
		return nil, ErrBadDimension
	}
	for _, c := range coords {
		if len(c) != dim {
			return nil, ErrRaggedCoords
		}
	}

	pairs := Pairs(n)
	dij := make([][]float64, len(pairs))
	for k, p := range pairs {
		sep := make([]float64, dim)
		for d := 0; d < dim; d++ {
			sep[d] = coords[p.I][d] - coords[p.J][d]
		}
		dij[k] = sep
	}

	return dij, nil
}
