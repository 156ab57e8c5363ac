package fftkernel

// PackReal writes a half spectrum into the native real layout.
//
// dst holds n floats and spectrum at least n/2+1 bins. The imaginary parts of
// the DC and Nyquist bins are dropped; the layout has no slot for them.
func PackReal(dst []float32, spectrum []complex64) {
	half := len(dst) / 2
	if half == 0 {
		return
	}
	dst[0] = real(spectrum[0])
	dst[1] = real(spectrum[half])
	for k := 1; k < half; k++ {
		dst[2*k] = real(spectrum[k])
		dst[2*k+1] = imag(spectrum[k])
	}
}

// UnpackReal reads the native real layout of src (n floats) into a half
// spectrum of at least n/2+1 bins. DC and Nyquist bins get zero imaginary parts.
func UnpackReal(dst []complex64, src []float32) {
	half := len(src) / 2
	if half == 0 {
		return
	}
	dst[0] = complex(src[0], 0)
	dst[half] = complex(src[1], 0)
	for k := 1; k < half; k++ {
		dst[k] = complex(src[2*k], src[2*k+1])
	}
}

func packReal128(dst []float32, spectrum []complex128) {
	half := len(dst) / 2
	dst[0] = float32(real(spectrum[0]))
	dst[1] = float32(real(spectrum[half]))
	for k := 1; k < half; k++ {
		dst[2*k] = float32(real(spectrum[k]))
		dst[2*k+1] = float32(imag(spectrum[k]))
	}
}

func unpackReal128(dst []complex128, src []float32) {
	half := len(src) / 2
	dst[0] = complex(float64(src[0]), 0)
	dst[half] = complex(float64(src[1]), 0)
	for k := 1; k < half; k++ {
		dst[k] = complex(float64(src[2*k]), float64(src[2*k+1]))
	}
}
