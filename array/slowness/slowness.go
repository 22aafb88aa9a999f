package slowness

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-array/array/geom"
)

// Errors returned by Estimate. Validation errors are reported before any
// computation starts; ErrDegenerateGeometry and ErrUndefinedUncertainty
// arise from the numerical stages.
var (
	// ErrShapeMismatch indicates inconsistent trace, coordinate, or weight
	// counts, or ragged trace lengths.
	ErrShapeMismatch = errors.New("slowness: shape mismatch")

	// ErrInvalidDimension indicates sensor coordinates that are neither 2D
	// nor 3D.
	ErrInvalidDimension = errors.New("slowness: coordinate dimension must be 2 or 3")

	// ErrInsufficientSensors indicates fewer sensors (or fewer
	// nonzero-weight sensors) than the dimensionality requires.
	ErrInsufficientSensors = errors.New("slowness: insufficient sensors")

	// ErrDegenerateGeometry indicates a singular or near-singular
	// least-squares system, typically collinear sensors in 2D or coplanar
	// sensors in 3D.
	ErrDegenerateGeometry = errors.New("slowness: degenerate sensor geometry")

	// ErrUndefinedUncertainty indicates an array with no redundant sensors:
	// the delay uncertainty has no degrees of freedom to be estimated from.
	// The accompanying Result is complete except for SigTau.
	ErrUndefinedUncertainty = errors.New("slowness: delay uncertainty undefined")
)

// Result holds the outputs of a slowness estimation. All pair-indexed
// slices (Tau, CMax, CoArray) follow the canonical pair order of
// [geom.Pairs]: (0,1), (0,2), ..., (1,2), ...
type Result struct {
	// Velocity is the apparent signal velocity across the array, the
	// reciprocal of the slowness magnitude. +Inf when the estimated
	// slowness is zero (no discernible delay across the array).
	Velocity float64

	// Azimuth is the back azimuth in degrees clockwise from north,
	// in [0, 360).
	Azimuth float64

	// Elevation is the elevation angle in degrees from the horizontal
	// plane. Only meaningful for 3D arrays; HasElevation reports whether
	// it was computed.
	Elevation    float64
	HasElevation bool

	// Tau holds the per-pair arrival-time differences in seconds. Entries
	// for pairs with an excluded sensor are zero.
	Tau []float64

	// CMax holds the per-pair cross-correlation maxima, normalized so that
	// the zero-lag autocorrelation of a trace with itself is 1. Entries
	// for pairs with an excluded sensor are zero.
	CMax []float64

	// SigTau is the uncertainty estimate for the delays in seconds,
	// derived from the weighted least-squares residual. NaN when the
	// estimation returned ErrUndefinedUncertainty.
	SigTau float64

	// Slowness is the estimated slowness vector in [northing, easting]
	// or [northing, easting, elevation] components.
	Slowness []float64

	// CoArray holds the per-pair sensor separation vectors r_i - r_j.
	CoArray [][]float64
}

// Estimate computes the slowness vector of a plane wave crossing the array.
//
// traces holds one time series per sensor, all of equal length. coords
// holds one position per sensor as [northing, easting] or [northing,
// easting, elevation]; a 2D array needs at least 3 sensors, a 3D array at
// least 4. sampleRate is in Hz. weights holds one non-negative relative
// weight per sensor, zero meaning "exclude"; nil means equal weights.
//
// When the effective array has no redundant sensors the returned error is
// ErrUndefinedUncertainty and the Result is still populated, with SigTau
// set to NaN. All other errors return a nil Result.
func Estimate(traces, coords [][]float64, sampleRate float64, weights []float64) (*Result, error) {
	n := len(traces)
	if n != len(coords) {
		return nil, fmt.Errorf("%w: %d traces, %d sensor coordinates", ErrShapeMismatch, n, len(coords))
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: no traces", ErrShapeMismatch)
	}

	dim := len(coords[0])
	for i, c := range coords {
		if len(c) != dim {
			return nil, fmt.Errorf("%w: coordinate %d has %d components, expected %d", ErrShapeMismatch, i, len(c), dim)
		}
	}
	if n < dim+1 {
		return nil, fmt.Errorf("%w: %d sensors, need at least %d for a %dD array", ErrInsufficientSensors, n, dim+1, dim)
	}
	if dim != 2 && dim != 3 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimension, dim)
	}

	m := len(traces[0])
	for i, tr := range traces {
		if len(tr) != m {
			return nil, fmt.Errorf("%w: trace %d has %d samples, expected %d", ErrShapeMismatch, i, len(tr), m)
		}
	}
	if m < 2 {
		return nil, fmt.Errorf("%w: traces need at least 2 samples, got %d", ErrShapeMismatch, m)
	}

	numActive := n
	if weights != nil {
		if len(weights) != n {
			return nil, fmt.Errorf("%w: %d weights for %d traces", ErrShapeMismatch, len(weights), n)
		}
		numActive = 0
		for _, w := range weights {
			if w != 0 {
				numActive++
			}
		}
		if numActive < dim+1 {
			return nil, fmt.Errorf("%w: %d nonzero-weight sensors, need at least %d", ErrInsufficientSensors, numActive, dim+1)
		}
	} else {
		weights = make([]float64, n)
		for i := range weights {
			weights[i] = 1
		}
	}

	pairs := geom.Pairs(n)
	coArray, err := geom.CoArray(coords)
	if err != nil {
		return nil, fmt.Errorf("slowness: co-array: %w", err)
	}

	numPairs := len(pairs)
	pairWeights := make([]float64, numPairs)
	for k, p := range pairs {
		pairWeights[k] = weights[p.I] * weights[p.J]
	}

	energies := traceEnergies(traces, weights)

	tau := make([]float64, numPairs)
	cmax := make([]float64, numPairs)
	for k, p := range pairs {
		if pairWeights[k] == 0 {
			continue
		}
		pk, err := correlatePair(traces[p.I], traces[p.J], energies[p.I], energies[p.J], sampleRate)
		if err != nil {
			return nil, err
		}
		tau[k] = pk.Tau
		cmax[k] = pk.CMax
	}

	s, residual, err := solveSlowness(coArray, tau, pairWeights, dim)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Tau:      tau,
		CMax:     cmax,
		Slowness: s,
		CoArray:  coArray,
	}
	res.Velocity, res.Azimuth, res.Elevation, res.HasElevation = toGeographic(s)

	// Delay uncertainty from the residual. An array at the minimum sensor
	// count carries only dim independent delays, so the residual has no
	// degrees of freedom and the uncertainty is undefined.
	effPairs := numActive * (numActive - 1) / 2
	dof := float64(effPairs - dim)
	if numActive == dim+1 || dof <= 0 {
		res.SigTau = math.NaN()
		return res, ErrUndefinedUncertainty
	}
	res.SigTau = math.Sqrt(residual / dof)

	return res, nil
}

// solveSlowness solves the weighted least-squares plane-wave system
// W·xijᵀ·s = W·tau and returns the slowness vector along with the squared
// residual norm of the weighted system.
func solveSlowness(coArray [][]float64, tau, pairWeights []float64, dim int) ([]float64, float64, error) {
	numPairs := len(coArray)

	design := mat.NewDense(numPairs, dim, nil)
	rhs := mat.NewVecDense(numPairs, nil)
	for k := range coArray {
		w := pairWeights[k]
		for d := 0; d < dim; d++ {
			design.Set(k, d, w*coArray[k][d])
		}
		rhs.SetVec(k, w*tau[k])
	}

	var qr mat.QR
	qr.Factorize(design)

	sol := mat.NewVecDense(dim, nil)
	if err := qr.SolveVecTo(sol, false, rhs); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrDegenerateGeometry, err)
	}

	s := make([]float64, dim)
	for d := 0; d < dim; d++ {
		v := sol.AtVec(d)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, 0, fmt.Errorf("%w: non-finite solution", ErrDegenerateGeometry)
		}
		s[d] = v
	}

	var fitted mat.VecDense
	fitted.MulVec(design, sol)

	var residual float64
	for k := 0; k < numPairs; k++ {
		r := rhs.AtVec(k) - fitted.AtVec(k)
		residual += r * r
	}

	return s, residual, nil
}
