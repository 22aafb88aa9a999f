package characterize

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-array/array/geom"
)

// ErrDegenerateArray indicates sensor geometry whose co-array does not span
// the plane (collinear sensors), for which slowness uncertainties are
// unbounded.
var ErrDegenerateArray = errors.New("characterize: degenerate array geometry")

// SigOptions configures ArraySig. Zero-valued fields fall back to the
// defaults of DefaultSigOptions.
type SigOptions struct {
	// Confidence is the enclosed probability of the uncertainty estimates.
	Confidence float64

	// VelocityMin and VelocityMax bound the trace velocities (km/s) the
	// uncertainties are evaluated over. Equal values collapse the velocity
	// axis to a single sample.
	VelocityMin, VelocityMax float64

	// NumVelocities, NumAzimuths, and NumWavenumbers are the grid sizes of
	// the velocity axis, the azimuth axis, and each k-space axis.
	NumVelocities, NumAzimuths, NumWavenumbers int
}

// DefaultSigOptions returns the default ArraySig configuration: 90%
// confidence, the stratospheric infrasound velocity band, and 100-point
// grids.
func DefaultSigOptions() SigOptions {
	return SigOptions{
		Confidence:     0.9,
		VelocityMin:    0.27,
		VelocityMax:    0.36,
		NumVelocities:  100,
		NumAzimuths:    100,
		NumWavenumbers: 100,
	}
}

// SigResult holds the uncertainty grids and impulse response of an array.
type SigResult struct {
	// VelocitySigma[i][j] is the trace-velocity uncertainty (km/s) at
	// Velocities[i] and Azimuths[j]; AzimuthSigma is the back-azimuth
	// uncertainty in degrees on the same grid.
	VelocitySigma [][]float64
	AzimuthSigma  [][]float64

	// Velocities (km/s) and Azimuths (degrees) are the grid axes.
	Velocities []float64
	Azimuths   []float64

	// ImpulseResponse is the array's wavenumber response over the
	// Wavenumbers × Wavenumbers grid.
	ImpulseResponse [][]float64
	Wavenumbers     []float64
}

// ArraySig estimates the trace-velocity and back-azimuth uncertainties of a
// 2D array as functions of arrival velocity and azimuth, and calculates the
// array's impulse response.
//
// coords holds one [northing, easting] position (km) per sensor. kmax
// (1/km) bounds the impulse-response grid. sigLevel is the assumed
// time-delay uncertainty in seconds, typically the SigTau of a slowness
// estimate. opts may be nil for defaults.
//
// For each gridpoint the assumed delay uncertainty is projected through
// the co-array design matrix into a confidence ellipse around the arrival
// slowness vector; the ellipse's extremal radii bound the velocity error
// and its subtended angle bounds the azimuth error.
func ArraySig(coords [][]float64, kmax, sigLevel float64, opts *SigOptions) (*SigResult, error) {
	for _, c := range coords {
		if len(c) != 2 {
			return nil, ErrNot2D
		}
	}

	o := DefaultSigOptions()
	if opts != nil {
		if opts.Confidence != 0 {
			o.Confidence = opts.Confidence
		}
		if opts.VelocityMin != 0 || opts.VelocityMax != 0 {
			o.VelocityMin = opts.VelocityMin
			o.VelocityMax = opts.VelocityMax
		}
		if opts.NumVelocities != 0 {
			o.NumVelocities = opts.NumVelocities
		}
		if opts.NumAzimuths != 0 {
			o.NumAzimuths = opts.NumAzimuths
		}
		if opts.NumWavenumbers != 0 {
			o.NumWavenumbers = opts.NumWavenumbers
		}
	}
	if o.Confidence <= 0 || o.Confidence >= 1 {
		return nil, fmt.Errorf("%w: confidence %v", ErrInvalidConfidence, o.Confidence)
	}

	dij, err := geom.CoArray(coords)
	if err != nil {
		return nil, fmt.Errorf("characterize: co-array: %w", err)
	}

	// Design matrix eigenstructure, one-time.
	var c00, c01, c11 float64
	for _, d := range dij {
		c00 += d[0] * d[0]
		c01 += d[0] * d[1]
		c11 += d[1] * d[1]
	}

	sym := mat.NewSymDense(2, []float64{c00, c01, c01, c11})
	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return nil, fmt.Errorf("%w: eigendecomposition failed", ErrDegenerateArray)
	}

	vals := eig.Values(nil)
	if vals[0] <= 0 {
		return nil, fmt.Errorf("%w: co-array does not span the plane", ErrDegenerateArray)
	}

	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Rotation into the eigenbasis; the confidence ellipse is
	// coordinate-aligned there.
	thEig := math.Atan2(vecs.At(1, 0), vecs.At(0, 0))
	r00, r01 := math.Cos(thEig), math.Sin(thEig)
	r10, r11 := -math.Sin(thEig), math.Cos(thEig)

	x2, err := Chi2(2, 1-o.Confidence)
	if err != nil {
		return nil, err
	}
	semiA := math.Sqrt(x2) * sigLevel / math.Sqrt(vals[0])
	semiB := math.Sqrt(x2) * sigLevel / math.Sqrt(vals[1])

	velocities := linspace(o.VelocityMin, o.VelocityMax, o.NumVelocities)
	if o.VelocityMin == o.VelocityMax {
		velocities = []float64{o.VelocityMin}
	}
	azimuths := make([]float64, o.NumAzimuths)
	for i := range azimuths {
		azimuths[i] = 360 * float64(i) / float64(o.NumAzimuths)
	}

	sigV := make([][]float64, len(velocities))
	sigTh := make([][]float64, len(velocities))
	for vi, vel := range velocities {
		sigV[vi] = make([]float64, len(azimuths))
		sigTh[vi] = make([]float64, len(azimuths))

		for ti, azDeg := range azimuths {
			th := azDeg * math.Pi / 180
			sNorth := math.Cos(th) / vel
			sEast := math.Sin(th) / vel

			// Slowness vector in the eigenbasis.
			so0 := r00*sNorth + r01*sEast
			so1 := r10*sNorth + r11*sEast

			ext, err := REllipse(semiA, semiB, so0, so1)
			if err != nil {
				return nil, fmt.Errorf("characterize: velocity %v azimuth %v: %w", vel, azDeg, err)
			}

			// Rotate the tangency points back to world coordinates.
			t1 := rotateBack(ext.Tangency1, r00, r01, r10, r11)
			t2 := rotateBack(ext.Tangency2, r00, r01, r10, r11)

			sigTh[vi][ti] = azimuthSpread(t1, t2)
			sigV[vi][ti] = math.Abs(1/ext.MinDist - 1/ext.MaxDist)
		}
	}

	resp, kvec, err := ImpulseResponse(dij, kmax, o.NumWavenumbers)
	if err != nil {
		return nil, err
	}

	return &SigResult{
		VelocitySigma:   sigV,
		AzimuthSigma:    sigTh,
		Velocities:      velocities,
		Azimuths:        azimuths,
		ImpulseResponse: resp,
		Wavenumbers:     kvec,
	}, nil
}

// rotateBack applies the transpose of the eigenbasis rotation to a point.
func rotateBack(p [2]float64, r00, r01, r10, r11 float64) [2]float64 {
	return [2]float64{
		p[0]*r00 + p[1]*r10,
		p[0]*r01 + p[1]*r11,
	}
}

// azimuthSpread returns the absolute azimuthal separation in degrees of two
// direction vectors in [northing, easting] components, wrapped to [0, 180].
func azimuthSpread(p, q [2]float64) float64 {
	azP := math.Mod(math.Atan2(p[1], p[0])*180/math.Pi+360, 360)
	azQ := math.Mod(math.Atan2(q[1], q[0])*180/math.Pi+360, 360)

	spread := math.Abs(azP - azQ)
	if spread > 180 {
		spread = 360 - spread
	}
	return spread
}
