package testutil

import (
	"math"
	"math/rand"
)

// GaussianPulse generates a unit-amplitude Gaussian pulse centered at the
// given sample position.
func GaussianPulse(length, center int, width float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		d := float64(i - center)
		out[i] = math.Exp(-d * d / (2 * width * width))
	}
	return out
}

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}
