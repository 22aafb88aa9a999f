package characterize

import (
	"errors"
	"math"
	"sort"

	"github.com/cwbudde/algo-array/internal/polyroot"
)

// ErrNoEllipseSolution is returned when no real extremal point survives the
// quartic solution filtering, which indicates pathological ellipse
// parameters.
var ErrNoEllipseSolution = errors.New("characterize: no real ellipse extremum found")

// EllipseExtrema describes the extremal distances from the origin to a
// coordinate-aligned ellipse, and the angles the ellipse subtends as seen
// from the origin.
type EllipseExtrema struct {
	// MinDist and MaxDist are the extremal origin distances.
	MinDist, MaxDist float64

	// MinAngle and MaxAngle bound the subtended angular interval in
	// degrees, sorted ascending.
	MinAngle, MaxAngle float64

	// MinDistPoint and MaxDistPoint are the ellipse points attaining the
	// extremal distances.
	MinDistPoint, MaxDistPoint [2]float64

	// Tangency1 and Tangency2 are the points where sight lines from the
	// origin graze the ellipse.
	Tangency1, Tangency2 [2]float64
}

// Numerical classification tolerances, in units of machine epsilon (and one
// relative magnification bound for accepting quartic solutions).
const (
	circTol = 1e8
	zeroTol = 1e4
	magTol  = 1e-5
)

// REllipse calculates the extremal distances from the origin to the ellipse
//
//	(x-x0)²/a² + (y-y0)²/b² = 1
//
// and the angular interval it subtends from the origin. a and b are the
// semi-axes along x and y. Distance extrema fall into three regimes —
// circular, center on a coordinate axis, and the general case solved
// through dual quartics — mirroring the increasing degeneracy of the
// governing polynomial system.
func REllipse(a, b, x0, y0 float64) (*EllipseExtrema, error) {
	// Conic coefficients of the ellipse scaled for the gradient system.
	bigA := 2 / (a * a)
	bigB := 2 * x0 / (a * a)
	bigC := 2 / (b * b)
	bigD := 2 * y0 / (b * b)
	bigE := (bigB*x0+bigD*y0)/2 - 1
	bigF := bigC - bigA
	bigG := bigA / 2
	bigH := bigC / 2

	eps := math.Nextafter(1, 2) - 1
	ext := &EllipseExtrema{}

	switch {
	case math.Abs(bigF) <= circTol*eps:
		// Circle: extrema lie on the line through the origin and center.
		cent := math.Hypot(x0, y0)
		ext.MinDist = cent - a
		ext.MaxDist = cent + a
		ext.MinDistPoint = [2]float64{x0 - a*x0/cent, y0 - a*y0/cent}
		ext.MaxDistPoint = [2]float64{x0 + a*x0/cent, y0 + a*y0/cent}

	case math.Abs(y0) < zeroTol*eps:
		// Center on the x axis.
		ext.MinDist = x0 - a
		ext.MaxDist = x0 + a
		ext.MinDistPoint = [2]float64{x0 - a, 0}
		ext.MaxDistPoint = [2]float64{x0 + a, 0}

	case math.Abs(x0) < zeroTol*eps:
		// Center on the y axis.
		ext.MinDist = y0 - b
		ext.MaxDist = y0 + b
		ext.MinDistPoint = [2]float64{0, y0 - b}
		ext.MaxDistPoint = [2]float64{0, y0 + b}

	default:
		if err := generalExtrema(ext, a, b, x0, y0, bigB, bigD, bigE, bigF, bigG, bigH); err != nil {
			return nil, err
		}
	}

	tangencyPoints(ext, x0, bigB, bigD, bigE, bigG, bigH, a)

	angles := []float64{
		math.Atan2(ext.Tangency1[1], ext.Tangency1[0]) * 180 / math.Pi,
		math.Atan2(ext.Tangency2[1], ext.Tangency2[0]) * 180 / math.Pi,
	}
	sort.Float64s(angles)
	ext.MinAngle = angles[0]
	ext.MaxAngle = angles[1]

	return ext, nil
}

// generalExtrema solves the general-position distance extrema through the
// dual quartic formulation: one quartic in y and one in x, each yielding
// candidate stationary points whose union is filtered against the feasible
// distance band around the ellipse.
func generalExtrema(ext *EllipseExtrema, a, b, x0, y0, bigB, bigD, bigE, bigF, bigG, bigH float64) error {
	realTol := 1e-9

	// Quartic in y.
	fy := bigF * bigF * bigH
	yRoots := polyroot.Quartic(
		complex(-bigD*bigF*(2*bigH+bigF)/fy, 0),
		complex((bigB*bigB*(bigG+bigF)+bigE*bigF*bigF+bigD*bigD*(bigH+2*bigF))/fy, 0),
		complex(-bigD*(bigB*bigB+2*bigE*bigF+bigD*bigD)/fy, 0),
		complex(bigD*bigD*bigE/fy, 0),
	)
	ys := polyroot.RealRoots(yRoots[:], realTol)

	// Quartic in x.
	fx := bigF * bigF * bigG
	xRoots := polyroot.Quartic(
		complex(bigB*bigF*(2*bigG-bigF)/fx, 0),
		complex((bigB*bigB*(bigG-2*bigF)+bigE*bigF*bigF+bigD*bigD*(bigH-bigF))/fx, 0),
		complex(bigB*(2*bigE*bigF-bigB*bigB-bigD*bigD)/fx, 0),
		complex(bigB*bigB*bigE/fx, 0),
	)
	xs := polyroot.RealRoots(xRoots[:], realTol)

	type candidate struct {
		point [2]float64
		dist  float64
	}

	cands := make([]candidate, 0, len(xs)+len(ys))
	for _, x := range xs {
		y := bigD * x / (bigF*x + bigB)
		cands = append(cands, candidate{[2]float64{x, y}, math.Hypot(x, y)})
	}
	for _, y := range ys {
		x := bigB * y / (bigD - bigF*y)
		cands = append(cands, candidate{[2]float64{x, y}, math.Hypot(x, y)})
	}

	// Trap real but bogus solutions (especially near a 180° aspect): keep
	// only candidates within the reachable distance band around the
	// center.
	cent := math.Hypot(x0, y0)
	reach := math.Max(a, b) * (1 + magTol)

	minDist := math.Inf(1)
	maxDist := math.Inf(-1)
	found := false
	for _, c := range cands {
		if c.dist > cent+reach || c.dist < cent-reach {
			continue
		}
		found = true
		if c.dist < minDist {
			minDist = c.dist
			ext.MinDistPoint = c.point
		}
		if c.dist > maxDist {
			maxDist = c.dist
			ext.MaxDistPoint = c.point
		}
	}
	if !found {
		return ErrNoEllipseSolution
	}

	ext.MinDist = minDist
	ext.MaxDist = maxDist
	return nil
}

// tangencyPoints finds the two points where sight lines from the origin
// graze the ellipse. The quadratic is solved in the right half plane and
// mirrored back for centers left of the y axis.
func tangencyPoints(ext *EllipseExtrema, x0, bigB, bigD, bigE, bigG, bigH, a float64) {
	roots, err := polyroot.Quadratic(
		complex(bigD*bigD+bigB*bigB*bigH/bigG, 0),
		complex(4*bigD*bigE, 0),
		complex(4*bigE*bigE-bigB*bigB*bigE/bigG, 0),
	)
	if err != nil {
		// Leading coefficient vanishes only for a degenerate conic; the
		// axis-aligned branches above handle every such input.
		return
	}

	mirrored := x0 < 0
	xc := math.Abs(x0)

	var pts [2][2]float64
	for i, r := range roots {
		y := -real(r)
		x := math.Sqrt(bigE/bigG - bigH/bigG*y*y)
		if mirrored {
			x = -x
		}
		pts[i] = [2]float64{x, y}
	}

	// Quadrant fix for origins enclosed by the ellipse's x extent.
	if xc == 0 || xc-a < 0 {
		pts[0][0] = -pts[0][0]
	}

	ext.Tangency1 = pts[0]
	ext.Tangency2 = pts[1]
}
