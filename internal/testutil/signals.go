package testutil

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// DeterministicSine generates a float32 sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// DeterministicNoise generates white noise in [-amplitude, amplitude] with a
// fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// DeterministicComplexNoise generates complex white noise with a fixed seed.
func DeterministicComplexNoise(seed int64, amplitude float64, length int) []complex64 {
	out := make([]complex64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(float32(re), float32(im))
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float32 {
	out := make([]float32, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float32, length int) []float32 {
	out := make([]float32, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// NaiveDFT computes the first n/2+1 bins of the unnormalized DFT of x in
// float64. It is the O(n^2) reference the fast paths are checked against.
func NaiveDFT(x []float32) []complex64 {
	out := make([]complex64, len(x)/2+1)
	for k := range out {
		out[k] = NaiveDFTBin(x, k)
	}
	return out
}

// NaiveDFTBin computes bin k of the unnormalized DFT of x in float64.
func NaiveDFTBin(x []float32, k int) complex64 {
	n := len(x)
	var sum complex128
	for j, v := range x {
		angle := -2 * math.Pi * float64(k*j%n) / float64(n)
		sum += complex(float64(v), 0) * cmplx.Exp(complex(0, angle))
	}
	return complex64(sum)
}

// NaiveComplexDFT computes the full unnormalized DFT of x in float64.
func NaiveComplexDFT(x []complex64) []complex64 {
	out := make([]complex64, len(x))
	for k := range out {
		out[k] = NaiveComplexDFTBin(x, k)
	}
	return out
}

// NaiveComplexDFTBin computes bin k of the unnormalized DFT of x in float64.
func NaiveComplexDFTBin(x []complex64, k int) complex64 {
	n := len(x)
	var sum complex128
	for j, v := range x {
		angle := -2 * math.Pi * float64(k*j%n) / float64(n)
		sum += complex128(v) * cmplx.Exp(complex(0, angle))
	}
	return complex64(sum)
}
