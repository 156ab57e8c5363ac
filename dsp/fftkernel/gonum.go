package fftkernel

import (
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-spectral/internal/align"
)

// Gonum is the Kernel backed by gonum.org/v1/gonum/dsp/fourier.
//
// It converts to float64 for the transform itself, trading speed for
// precision. fourier's inverse is unnormalized, matching the Plan contract.
type Gonum struct {
	sizeRules
}

// Name returns "gonum".
func (Gonum) Name() string { return "gonum" }

// Alignment returns the SIMD alignment of the running CPU.
func (Gonum) Alignment() int { return align.Default() }

// NewPlan creates a fourier plan for (n, kind).
func (k Gonum) NewPlan(n int, kind Kind) (Plan, error) {
	if err := checkPlanArgs(k, n, kind); err != nil {
		return nil, err
	}

	if kind == Real {
		return &gonumRealPlan{
			planState: planState{n: n, kind: Real},
			fft:       fourier.NewFFT(n),
			seq:       make([]float64, n),
			coeff:     make([]complex128, n/2+1),
		}, nil
	}

	return &gonumComplexPlan{
		planState: planState{n: n, kind: Complex},
		fft:       fourier.NewCmplxFFT(n),
		src:       make([]complex128, n),
		dst:       make([]complex128, n),
	}, nil
}

type gonumRealPlan struct {
	planState
	fft   *fourier.FFT
	seq   []float64
	coeff []complex128
}

func (p *gonumRealPlan) Forward(in, out, _ []float32) error {
	if err := p.check(in, out); err != nil {
		return err
	}
	for i := range p.seq {
		p.seq[i] = float64(in[i])
	}
	p.fft.Coefficients(p.coeff, p.seq)
	packReal128(out[:p.n], p.coeff)
	return nil
}

func (p *gonumRealPlan) Inverse(in, out, _ []float32) error {
	if err := p.check(in, out); err != nil {
		return err
	}
	unpackReal128(p.coeff, in[:p.n])
	p.fft.Sequence(p.seq, p.coeff)
	for i, v := range p.seq {
		out[i] = float32(v)
	}
	return nil
}

func (p *gonumRealPlan) Close() error {
	p.closed = true
	p.fft, p.seq, p.coeff = nil, nil, nil
	return nil
}

type gonumComplexPlan struct {
	planState
	fft      *fourier.CmplxFFT
	src, dst []complex128
}

func (p *gonumComplexPlan) load(in []float32) {
	for i := range p.src {
		p.src[i] = complex(float64(in[2*i]), float64(in[2*i+1]))
	}
}

func (p *gonumComplexPlan) store(out []float32) {
	for i, c := range p.dst {
		out[2*i] = float32(real(c))
		out[2*i+1] = float32(imag(c))
	}
}

func (p *gonumComplexPlan) Forward(in, out, _ []float32) error {
	if err := p.check(in, out); err != nil {
		return err
	}
	p.load(in)
	p.fft.Coefficients(p.dst, p.src)
	p.store(out)
	return nil
}

func (p *gonumComplexPlan) Inverse(in, out, _ []float32) error {
	if err := p.check(in, out); err != nil {
		return err
	}
	p.load(in)
	p.fft.Sequence(p.dst, p.src)
	p.store(out)
	return nil
}

func (p *gonumComplexPlan) Close() error {
	p.closed = true
	p.fft, p.src, p.dst = nil, nil, nil
	return nil
}
