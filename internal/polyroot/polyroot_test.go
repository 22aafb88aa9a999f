package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"
	"testing"
)

func sortedReal(roots []complex128) []float64 {
	out := make([]float64, len(roots))
	for i, z := range roots {
		out[i] = real(z)
	}
	sort.Float64s(out)
	return out
}

func TestQuadraticRealRoots(t *testing.T) {
	// (x-2)(x-3) = x² - 5x + 6
	roots, err := Quadratic(1, -5, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := sortedReal(roots[:])
	want := []float64{2, 3}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("root %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestQuadraticLargeB(t *testing.T) {
	// b² >> ac: the naive formula loses the small root to cancellation.
	roots, err := Quadratic(1, 1e8, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := sortedReal(roots[:])
	if math.Abs(got[1]-(-1e-8)) > 1e-20 {
		t.Errorf("small root: got %v, want -1e-8", got[1])
	}
	if math.Abs(got[0]-(-1e8)) > 1e-2 {
		t.Errorf("large root: got %v, want -1e8", got[0])
	}
}

func TestQuadraticComplexPair(t *testing.T) {
	// x² + 1 = 0
	roots, err := Quadratic(1, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, z := range roots {
		if cmplx.Abs(z*z+1) > 1e-12 {
			t.Errorf("root %v does not satisfy x²+1=0", z)
		}
	}
}

func TestQuadraticDegenerate(t *testing.T) {
	_, err := Quadratic(0, 1, 2)
	if !errors.Is(err, ErrDegeneratePolynomial) {
		t.Errorf("expected ErrDegeneratePolynomial, got %v", err)
	}
}

func TestCubicThreeRealRoots(t *testing.T) {
	// (x-1)(x-2)(x-3) = x³ - 6x² + 11x - 6
	roots := Cubic(-6, 11, -6)

	got := sortedReal(roots[:])
	want := []float64{1, 2, 3}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-10 {
			t.Errorf("root %d: got %v, want %v", i, got[i], want[i])
		}
	}
	for _, z := range roots {
		if math.Abs(imag(z)) > 1e-12 {
			t.Errorf("root %v should be real", z)
		}
	}
}

func TestCubicRepeatedRoot(t *testing.T) {
	// x³ - 5x² + 8x - 4 = (x-1)(x-2)² — the case where generic root
	// finders wobble.
	roots := Cubic(-5, 8, -4)

	got := sortedReal(roots[:])
	want := []float64{1, 2, 2}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-6 {
			t.Errorf("root %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCubicOneRealRoot(t *testing.T) {
	// x³ + x + 10 = (x+2)(x² - 2x + 5): real root -2, complex pair 1±2i.
	roots := Cubic(0, 1, 10)

	for _, z := range roots {
		residual := z*z*z + z + 10
		if cmplx.Abs(residual) > 1e-9 {
			t.Errorf("root %v residual %v", z, residual)
		}
	}
}

func TestQuarticKnownRoots(t *testing.T) {
	// (x-1)(x+1)(x-2)(x+2) = x⁴ - 5x² + 4
	roots := Quartic(0, -5, 0, 4)

	got := sortedReal(roots[:])
	want := []float64{-2, -1, 1, 2}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("root %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestQuarticResiduals(t *testing.T) {
	a, b, c, d := complex128(2), complex128(-3), complex128(1), complex128(-7)
	roots := Quartic(a, b, c, d)

	for _, z := range roots {
		residual := z*z*z*z + a*z*z*z + b*z*z + c*z + d
		if cmplx.Abs(residual) > 1e-8 {
			t.Errorf("root %v residual %v", z, residual)
		}
	}
}

func TestRealRoots(t *testing.T) {
	roots := []complex128{
		complex(1, 0),
		complex(2, 1e-14),
		complex(3, 0.5),
	}

	got := RealRoots(roots, 1e-9)
	if len(got) != 2 {
		t.Fatalf("got %d real roots, want 2", len(got))
	}
	if got[0] != 1 || math.Abs(got[1]-2) > 1e-12 {
		t.Errorf("real roots = %v, want [1 2]", got)
	}
}
