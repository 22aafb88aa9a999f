// Package polyroot provides stable closed-form roots of quadratic, cubic,
// and quartic equations, shared by the array characterization package.
//
// The formulas follow Numerical Recipes 2nd ed. §5.6 (quadratic, cubic) and
// the CRC Standard Mathematical Tables quartic resolvent. They remain stable
// for b² >> ac and for complex coefficients, cases where naive textbook
// formulas or companion-matrix eigenvalue methods lose accuracy.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrDegeneratePolynomial is returned when the leading coefficient is zero.
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// isReal reports whether every coefficient has zero imaginary part.
func isReal(cs ...complex128) bool {
	for _, c := range cs {
		if imag(c) != 0 {
			return false
		}
	}
	return true
}

// Quadratic returns both roots of a*x² + b*x + c = 0.
func Quadratic(a, b, c complex128) ([2]complex128, error) {
	if a == 0 {
		return [2]complex128{}, ErrDegeneratePolynomial
	}

	var q complex128
	if isReal(a, b, c) {
		br := real(b)
		if br != 0 {
			// Standard stable form: q carries the sign of b so the
			// larger-magnitude root is computed without cancellation.
			sq := cmplx.Sqrt(b*b - 4*a*c)
			if br < 0 {
				sq = -sq
			}
			q = -0.5 * (b + sq)
		} else {
			q = -cmplx.Sqrt(-a * c)
		}
	} else {
		sq := cmplx.Sqrt(b*b - 4*a*c)
		if real(cmplx.Conj(b)*sq) >= 0 {
			q = -0.5 * (b + sq)
		} else {
			q = -0.5 * (b - sq)
		}
	}

	return [2]complex128{q / a, c / q}, nil
}

// Cubic returns all three roots of the monic cubic x³ + a*x² + b*x + c = 0.
func Cubic(a, b, c complex128) [3]complex128 {
	q := a*a/9 - b/3
	r := (3*c-a*b)/6 + a*a*a/27
	ao3 := a / 3

	if isReal(a, b, c) {
		qr := real(q)
		rr := real(r)
		q3 := qr * qr * qr
		r2 := rr * rr

		if r2 < q3 {
			// Three real roots, Viète's trigonometric solution.
			sqQ := -2 * math.Sqrt(qr)
			theta := math.Acos(rr / math.Sqrt(q3))
			return [3]complex128{
				complex(sqQ*math.Cos(theta/3)-real(ao3), 0),
				complex(sqQ*math.Cos((theta+2*math.Pi)/3)-real(ao3), 0),
				complex(sqQ*math.Cos((theta-2*math.Pi)/3)-real(ao3), 0),
			}
		}

		// One real root, two complex conjugates.
		var bigA float64
		if rr != 0 {
			bigA = -sign(rr) * math.Cbrt(math.Abs(rr)+math.Sqrt(r2-q3))
		} else {
			bigA = -math.Cbrt(math.Sqrt(-q3))
		}
		var bigB float64
		if bigA != 0 {
			bigB = qr / bigA
		}

		sum := bigA + bigB
		diff := (bigA - bigB) * math.Sqrt(3) / 2
		return [3]complex128{
			complex(sum-real(ao3), 0),
			complex(-0.5*sum-real(ao3), diff),
			complex(-0.5*sum-real(ao3), -diff),
		}
	}

	// Complex coefficients: one root via the stable branch of the radical,
	// remaining pair from A and B.
	sqR2mQ3 := cmplx.Sqrt(r*r - q*q*q)
	var bigA complex128
	if real(cmplx.Conj(r)*sqR2mQ3) >= 0 {
		bigA = -cmplx.Pow(r+sqR2mQ3, 1.0/3.0)
	} else {
		bigA = -cmplx.Pow(r-sqR2mQ3, 1.0/3.0)
	}
	var bigB complex128
	if bigA != 0 {
		bigB = q / bigA
	}

	i := complex(0, 1)
	return [3]complex128{
		(bigA + bigB) - ao3,
		-0.5*(bigA+bigB) + i*complex(math.Sqrt(3)/2, 0)*(bigA-bigB) - ao3,
		-0.5*(bigA+bigB) - i*complex(math.Sqrt(3)/2, 0)*(bigA-bigB) - ao3,
	}
}

// Quartic returns all four roots of the monic quartic
// x⁴ + a*x³ + b*x² + c*x + d = 0 via a resolvent cubic.
func Quartic(a, b, c, d complex128) [4]complex128 {
	a2 := a * a

	// Any root of the resolvent cubic will do.
	y := Cubic(-b, a*c-4*d, (4*b-a2)*d - c*c)[0]

	r := cmplx.Sqrt(a2/4 - b + y)
	foo := 3*a2/4 - r*r - 2*b

	var bigD, bigE complex128
	if r != 0 {
		bigD = cmplx.Sqrt(foo + (a*b-2*c-a2*a/4)/r)
		bigE = cmplx.Sqrt(foo - (a*b-2*c-a2*a/4)/r)
	} else {
		sqrtTerm := 2 * cmplx.Sqrt(y*y-4*d)
		bigD = cmplx.Sqrt(foo + sqrtTerm)
		bigE = cmplx.Sqrt(foo - sqrtTerm)
	}

	return [4]complex128{
		-a/4 + r/2 + bigD/2,
		-a/4 + r/2 - bigD/2,
		-a/4 - r/2 + bigE/2,
		-a/4 - r/2 - bigE/2,
	}
}

// RealRoots filters roots whose imaginary part is negligible relative to
// tol, returning their real parts.
func RealRoots(roots []complex128, tol float64) []float64 {
	out := make([]float64, 0, len(roots))
	for _, z := range roots {
		if math.Abs(imag(z)) <= tol {
			out = append(out, real(z))
		}
	}
	return out
}

func sign(x float64) float64 {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
