package transform

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/buffer"
	"github.com/cwbudde/algo-spectral/dsp/fftkernel"
)

// ForwardComplex returns the N bin spectrum of the N complex samples in input.
func (e *Engine) ForwardComplex(input []complex64) ([]complex64, error) {
	if err := e.require(fftkernel.Complex); err != nil {
		return nil, err
	}
	out := make([]complex64, e.n)
	if err := e.ForwardComplexInto(out, input); err != nil {
		return nil, err
	}
	return out, nil
}

// ForwardComplexInto writes the spectrum of src into dst. Both hold N values.
func (e *Engine) ForwardComplexInto(dst, src []complex64) error {
	if err := e.complexArgs(dst, src); err != nil {
		return err
	}
	interleave(e.stageIn, src)
	if err := e.forward(e.stageIn, e.stageOut); err != nil {
		return err
	}
	deinterleave(dst, e.stageOut)
	return nil
}

// InverseComplex returns the N samples whose spectrum is given, scaled by 1/N.
func (e *Engine) InverseComplex(spectrum []complex64) ([]complex64, error) {
	if err := e.require(fftkernel.Complex); err != nil {
		return nil, err
	}
	out := make([]complex64, e.n)
	if err := e.InverseComplexInto(out, spectrum); err != nil {
		return nil, err
	}
	return out, nil
}

// InverseComplexInto writes the scaled inverse of src into dst.
func (e *Engine) InverseComplexInto(dst, src []complex64) error {
	if err := e.complexArgs(dst, src); err != nil {
		return err
	}
	interleave(e.stageIn, src)
	if err := e.inverse(e.stageIn, e.stageOut); err != nil {
		return err
	}
	deinterleave(dst, e.stageOut)
	return nil
}

// ForwardComplexBuffer transforms interleaved in (2N floats) into out.
func (e *Engine) ForwardComplexBuffer(in, out *buffer.Buffer) error {
	src, dst, err := e.bufferArgs(fftkernel.Complex, in, out)
	if err != nil {
		return err
	}
	return e.forward(src, dst)
}

// InverseComplexBuffer inverts interleaved in into out, scaled by 1/N.
func (e *Engine) InverseComplexBuffer(in, out *buffer.Buffer) error {
	src, dst, err := e.bufferArgs(fftkernel.Complex, in, out)
	if err != nil {
		return err
	}
	return e.inverse(src, dst)
}

func (e *Engine) complexArgs(dst, src []complex64) error {
	if err := e.require(fftkernel.Complex); err != nil {
		return err
	}
	if len(src) != e.n || len(dst) != e.n {
		return fmt.Errorf("%w: got %d in and %d out values, want %d", ErrSizeMismatch, len(src), len(dst), e.n)
	}
	return nil
}

func interleave(dst []float32, src []complex64) {
	for i, c := range src {
		dst[2*i] = real(c)
		dst[2*i+1] = imag(c)
	}
}

func deinterleave(dst []complex64, src []float32) {
	for i := range dst {
		dst[i] = complex(src[2*i], src[2*i+1])
	}
}
