// Package fftkernel defines the Transform Kernel contract consumed by the
// transform engine and ships two implementations of it.
//
// A Kernel validates sizes and builds Plans. A Plan transforms one fixed
// size and kind between float32 buffers in the kernel-native layout:
//
//	Real, n floats:     re(X0), re(X[n/2]), re(X1), im(X1), ..., re(X[n/2-1]), im(X[n/2-1])
//	Complex, 2n floats: re(X0), im(X0), re(X1), im(X1), ...
//
// Inverse transforms are unnormalized: Inverse(Forward(x)) == n*x. Scaling
// belongs to the caller.
//
// AlgoFFT (the Default kernel) is backed by github.com/MeKo-Christian/algo-fft
// and works in float32. Gonum is backed by gonum.org/v1/gonum/dsp/fourier and
// runs the transform in float64. AlgoFFT serves sizes the library
// mis-transforms with Gonum plans; see AlgoFFT.Native.
package fftkernel
