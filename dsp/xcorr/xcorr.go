package xcorr

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrEmptyInput is returned when either input signal is empty.
var ErrEmptyInput = errors.New("xcorr: empty input")

// fftThreshold is the signal length above which the FFT path wins over the
// direct O(N*M) computation. Determined from the convolution crossover
// measurements; correlation inherits the same arithmetic.
const fftThreshold = 128

// Correlate computes the full cross-correlation of a and b.
// The result has length len(a) + len(b) - 1.
// Output index k corresponds to lag k - (len(b) - 1).
//
// The implementation is selected automatically: direct computation for
// short inputs, FFT-based otherwise. Both paths produce identical results
// up to floating-point rounding.
func Correlate(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	if len(a) < fftThreshold || len(b) < fftThreshold {
		return CorrelateDirect(a, b)
	}

	return CorrelateFFT(a, b)
}

// CorrelateDirect computes cross-correlation directly in the time domain.
// Cross-correlation is convolution with the time-reversed second signal.
func CorrelateDirect(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(a)
	m := len(b)

	bReversed := make([]float64, m)
	for i := range b {
		bReversed[i] = b[m-1-i]
	}

	result := make([]float64, n+m-1)

	// Convolve a with the reversed b. For kernels of a few samples the
	// scalar loop beats the vectorized one.
	const simdThreshold = 4
	if m >= simdThreshold {
		temp := make([]float64, m)
		for i := 0; i < n; i++ {
			vecmath.ScaleBlock(temp, bReversed, a[i])
			vecmath.AddBlockInPlace(result[i:i+m], temp)
		}
	} else {
		for i := 0; i < n; i++ {
			for j := 0; j < m; j++ {
				result[i+j] += a[i] * bReversed[j]
			}
		}
	}

	return result, nil
}

// CorrelateFFT computes cross-correlation via the frequency domain:
// IFFT(FFT(a) * conj(FFT(b))), zero-padded to avoid circular wrap-around.
func CorrelateFFT(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(a)
	m := len(b)
	fftSize := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("xcorr: failed to create FFT plan: %w", err)
	}

	aPadded := make([]complex128, fftSize)
	bPadded := make([]complex128, fftSize)
	for i := 0; i < n; i++ {
		aPadded[i] = complex(a[i], 0)
	}
	for i := 0; i < m; i++ {
		bPadded[i] = complex(b[i], 0)
	}

	aFreq := make([]complex128, fftSize)
	bFreq := make([]complex128, fftSize)

	if err := plan.Forward(aFreq, aPadded); err != nil {
		return nil, fmt.Errorf("xcorr: forward FFT failed: %w", err)
	}
	if err := plan.Forward(bFreq, bPadded); err != nil {
		return nil, fmt.Errorf("xcorr: forward FFT failed: %w", err)
	}

	resultFreq := make([]complex128, fftSize)
	for i := range resultFreq {
		bConj := complex(real(bFreq[i]), -imag(bFreq[i]))
		resultFreq[i] = aFreq[i] * bConj
	}

	resultTime := make([]complex128, fftSize)
	if err := plan.Inverse(resultTime, resultFreq); err != nil {
		return nil, fmt.Errorf("xcorr: inverse FFT failed: %w", err)
	}

	// The spectral product yields circular correlation: non-negative lags
	// at the front of the buffer, negative lags wrapped to the back.
	// Unwrap into linear-correlation order.
	result := make([]float64, n+m-1)
	for i := 0; i < n; i++ {
		result[m-1+i] = real(resultTime[i])
	}
	for i := 0; i < m-1; i++ {
		result[i] = real(resultTime[fftSize-m+1+i])
	}

	return result, nil
}

// FindPeak returns the index and value of the maximum in a correlation
// result. Ties resolve to the lowest index. Returns (-1, 0) for an empty
// input.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index = 0
	value = corr[0]

	for i, v := range corr {
		if v > value {
			index = i
			value = v
		}
	}

	return index, value
}

// LagFromIndex converts a correlation result index to a lag value.
// For a correlation of signals with lengths lenA and lenB,
// the lag at index i is i - (lenB - 1).
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}

// IndexFromLag converts a lag value to a correlation result index.
func IndexFromLag(lag, lenB int) int {
	return lag + (lenB - 1)
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
