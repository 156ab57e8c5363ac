package transform

import "github.com/cwbudde/algo-spectral/dsp/spectrum"

// Magnitude returns |X[k]| for each bin.
func Magnitude(s []complex64) []float32 { return spectrum.Magnitude(s) }

// Phase returns arg(X[k]) in radians, in (-pi, pi], for each bin.
func Phase(s []complex64) []float32 { return spectrum.Phase(s) }

// Power returns |X[k]|^2 for each bin.
func Power(s []complex64) []float32 { return spectrum.Power(s) }
