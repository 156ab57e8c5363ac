// Package spectrum derives real-valued views of complex DFT bins.
//
// The package does not transform. It works on []complex64 spectra produced by
// the transform engine (or any other source) and returns []float32 slices of
// the same length: magnitude, phase, power, their decibel forms and unwrapped
// phase. Goertzel evaluates single bins directly from time-domain samples.
package spectrum
