package transform

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/buffer"
	"github.com/cwbudde/algo-spectral/dsp/fftkernel"
	"github.com/cwbudde/algo-spectral/internal/align"
)

// ForwardReal returns the N/2+1 bin spectrum of input, which must hold
// exactly N samples. The spectrum is not scaled.
func (e *Engine) ForwardReal(input []float32) ([]complex64, error) {
	if err := e.require(fftkernel.Real); err != nil {
		return nil, err
	}
	out := make([]complex64, e.SpectrumSize())
	if err := e.ForwardRealInto(out, input); err != nil {
		return nil, err
	}
	return out, nil
}

// ForwardRealInto writes the spectrum of src (N samples) into dst (N/2+1
// bins). It does not allocate. dst is left untouched on error.
func (e *Engine) ForwardRealInto(dst []complex64, src []float32) error {
	if err := e.require(fftkernel.Real); err != nil {
		return err
	}
	if len(src) != e.n {
		return fmt.Errorf("%w: input has %d samples, want %d", ErrSizeMismatch, len(src), e.n)
	}
	if bins := e.SpectrumSize(); len(dst) != bins {
		return fmt.Errorf("%w: spectrum has %d bins, want %d", ErrSizeMismatch, len(dst), bins)
	}

	copy(e.stageIn, src)
	if err := e.forward(e.stageIn, e.stageOut); err != nil {
		return err
	}
	fftkernel.UnpackReal(dst, e.stageOut)
	return nil
}

// InverseReal returns the N samples whose spectrum is the given N/2+1 bins,
// scaled by 1/N. The imaginary parts of the DC and Nyquist bins are ignored.
func (e *Engine) InverseReal(spectrum []complex64) ([]float32, error) {
	if err := e.require(fftkernel.Real); err != nil {
		return nil, err
	}
	out := make([]float32, e.n)
	if err := e.InverseRealInto(out, spectrum); err != nil {
		return nil, err
	}
	return out, nil
}

// InverseRealInto writes the inverse of src (N/2+1 bins) into dst (N
// samples). It does not allocate. dst is left untouched on error.
func (e *Engine) InverseRealInto(dst []float32, src []complex64) error {
	if err := e.require(fftkernel.Real); err != nil {
		return err
	}
	if bins := e.SpectrumSize(); len(src) != bins {
		return fmt.Errorf("%w: spectrum has %d bins, want %d", ErrSizeMismatch, len(src), bins)
	}
	if len(dst) != e.n {
		return fmt.Errorf("%w: output has %d samples, want %d", ErrSizeMismatch, len(dst), e.n)
	}

	fftkernel.PackReal(e.stageIn, src)
	if err := e.inverse(e.stageIn, e.stageOut); err != nil {
		return err
	}
	copy(dst, e.stageOut)
	return nil
}

// ForwardRealBuffer transforms in into out using the kernel-native layout
// (see fftkernel). Both buffers must hold exactly N samples and be distinct.
func (e *Engine) ForwardRealBuffer(in, out *buffer.Buffer) error {
	src, dst, err := e.bufferArgs(fftkernel.Real, in, out)
	if err != nil {
		return err
	}
	return e.forward(src, dst)
}

// InverseRealBuffer inverts the native-layout spectrum in into out and scales
// out by 1/N in place.
func (e *Engine) InverseRealBuffer(in, out *buffer.Buffer) error {
	src, dst, err := e.bufferArgs(fftkernel.Real, in, out)
	if err != nil {
		return err
	}
	return e.inverse(src, dst)
}

// bufferArgs validates a buffer pair for kind and returns their storage.
func (e *Engine) bufferArgs(kind fftkernel.Kind, in, out *buffer.Buffer) ([]float32, []float32, error) {
	if err := e.require(kind); err != nil {
		return nil, nil, err
	}
	if in == nil || out == nil {
		return nil, nil, fmt.Errorf("%w: nil buffer", ErrInvalidParameter)
	}

	want := kind.FloatLen(e.n)
	if in.Len() != want || out.Len() != want {
		return nil, nil, fmt.Errorf("%w: buffers hold %d and %d floats, want %d",
			ErrSizeMismatch, in.Len(), out.Len(), want)
	}

	src, dst := in.Samples(), out.Samples()
	if in == out || align.Overlaps(src, dst) {
		return nil, nil, fmt.Errorf("%w: input and output must be distinct buffers", ErrInvalidParameter)
	}

	a := e.Kernel().Alignment()
	if !align.IsAligned(src, a) || !align.IsAligned(dst, a) {
		return nil, nil, fmt.Errorf("%w: buffers must be aligned to %d bytes", ErrInvalidParameter, a)
	}
	return src, dst, nil
}
