package xcorr

import (
	"errors"
	"math"
	"testing"
)

func TestCorrelateDirect(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected []float64
	}{
		{
			name:     "identical impulses",
			a:        []float64{0, 1, 0},
			b:        []float64{0, 1, 0},
			expected: []float64{0, 0, 1, 0, 0},
		},
		{
			name: "shifted impulse",
			// a leads b by one sample: peak at positive lag +1
			a:        []float64{0, 0, 1, 0},
			b:        []float64{0, 1, 0, 0},
			expected: []float64{0, 0, 0, 0, 1, 0, 0},
		},
		{
			name:     "ramp against ones",
			a:        []float64{1, 2, 3},
			b:        []float64{1, 1, 1},
			expected: []float64{1, 3, 6, 5, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CorrelateDirect(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(result) != len(tt.expected) {
				t.Fatalf("length mismatch: got %d, expected %d", len(result), len(tt.expected))
			}
			for i := range result {
				if math.Abs(result[i]-tt.expected[i]) > 1e-12 {
					t.Errorf("result[%d] = %v, expected %v", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestCorrelateFFTMatchesDirect(t *testing.T) {
	n := 300
	a := make([]float64, n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		a[i] = math.Sin(2*math.Pi*float64(i)/37) + 0.5*math.Cos(2*math.Pi*float64(i)/11)
		b[i] = math.Sin(2*math.Pi*float64(i)/37 + 0.3)
	}

	direct, err := CorrelateDirect(a, b)
	if err != nil {
		t.Fatalf("direct: %v", err)
	}

	fft, err := CorrelateFFT(a, b)
	if err != nil {
		t.Fatalf("fft: %v", err)
	}

	if len(direct) != len(fft) {
		t.Fatalf("length mismatch: direct %d, fft %d", len(direct), len(fft))
	}
	for i := range direct {
		if math.Abs(direct[i]-fft[i]) > 1e-8 {
			t.Fatalf("index %d: direct %v, fft %v", i, direct[i], fft[i])
		}
	}
}

func TestCorrelateAutoSelection(t *testing.T) {
	// Short input goes through the direct path; both must agree anyway.
	a := []float64{1, -2, 3, -4, 5}
	b := []float64{2, 0, -1, 1, 0}

	auto, err := Correlate(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	direct, err := CorrelateDirect(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range direct {
		if math.Abs(auto[i]-direct[i]) > 1e-12 {
			t.Errorf("index %d: auto %v, direct %v", i, auto[i], direct[i])
		}
	}
}

func TestCorrelateErrors(t *testing.T) {
	if _, err := Correlate(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := Correlate([]float64{1}, nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := CorrelateFFT(nil, nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestFindPeak(t *testing.T) {
	idx, val := FindPeak([]float64{0, 3, 1, 3, 0})
	if idx != 1 || val != 3 {
		t.Errorf("FindPeak tie: got (%d, %v), want first occurrence (1, 3)", idx, val)
	}

	idx, val = FindPeak(nil)
	if idx != -1 || val != 0 {
		t.Errorf("FindPeak(nil): got (%d, %v), want (-1, 0)", idx, val)
	}
}

func TestLagConversions(t *testing.T) {
	// For equal-length signals of length 5, lag zero sits at index 4.
	if got := LagFromIndex(4, 5); got != 0 {
		t.Errorf("LagFromIndex(4, 5) = %d, want 0", got)
	}
	if got := IndexFromLag(0, 5); got != 4 {
		t.Errorf("IndexFromLag(0, 5) = %d, want 4", got)
	}
	if got := LagFromIndex(IndexFromLag(-3, 8), 8); got != -3 {
		t.Errorf("round trip lag -3: got %d", got)
	}
}
