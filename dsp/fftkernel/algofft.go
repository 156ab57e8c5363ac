package fftkernel

import (
	"fmt"
	"sync"
	"unsafe"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-spectral/internal/align"
)

// AlgoFFT is the Kernel backed by github.com/MeKo-Christian/algo-fft.
//
// The library normalizes its inverse transforms by 1/n. The plans undo that
// so AlgoFFT honours the unnormalized Plan contract like every other kernel.
//
// algo-fft mis-transforms some mixed-radix sizes (factor 5 combined with
// larger powers of two, e.g. 40, 80 or 400). Every (n, kind) is therefore
// checked once against the Gonum kernel when it is first planned; sizes the
// library gets wrong are served by Gonum plans instead. Native reports which
// path a size takes.
type AlgoFFT struct {
	sizeRules
}

// Name returns "algofft".
func (AlgoFFT) Name() string { return "algofft" }

// Alignment returns the SIMD alignment of the running CPU.
func (AlgoFFT) Alignment() int { return align.Default() }

type planKey struct {
	n    int
	kind Kind
}

// nativeSizes caches the reference check per planKey.
var nativeSizes sync.Map

// NewPlan creates a plan for (n, kind): an algo-fft plan when the library
// transforms that size correctly, a Gonum plan otherwise.
func (k AlgoFFT) NewPlan(n int, kind Kind) (Plan, error) {
	if err := checkPlanArgs(k, n, kind); err != nil {
		return nil, err
	}

	key := planKey{n: n, kind: kind}
	known, seen := nativeSizes.Load(key)
	if seen && !known.(bool) {
		return Gonum{}.NewPlan(n, kind)
	}

	p, err := newAlgoPlan(n, kind)
	if err != nil {
		nativeSizes.Store(key, false)
		return Gonum{}.NewPlan(n, kind)
	}
	if seen {
		return p, nil
	}

	ok, err := agreesWithReference(p)
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	nativeSizes.Store(key, ok)
	if !ok {
		_ = p.Close()
		return Gonum{}.NewPlan(n, kind)
	}
	return p, nil
}

// Native reports whether plans for (n, kind) run on algo-fft itself. It is
// false for invalid sizes and for sizes served by the Gonum fallback.
func (k AlgoFFT) Native(n int, kind Kind) bool {
	p, err := k.NewPlan(n, kind)
	if err != nil {
		return false
	}
	defer p.Close()
	switch p.(type) {
	case *algoRealPlan, *algoComplexPlan:
		return true
	default:
		return false
	}
}

func newAlgoPlan(n int, kind Kind) (Plan, error) {
	if kind == Real {
		p, err := algofft.NewPlanReal32(n)
		if err != nil {
			return nil, fmt.Errorf("fftkernel: algofft real plan %d: %w", n, err)
		}
		return &algoRealPlan{
			planState: planState{n: n, kind: Real},
			plan:      p,
			spectrum:  make([]complex64, n/2+1),
		}, nil
	}

	p, err := algofft.NewPlanT[complex64](n)
	if err != nil {
		return nil, fmt.Errorf("fftkernel: algofft complex plan %d: %w", n, err)
	}
	return &algoComplexPlan{
		planState: planState{n: n, kind: Complex},
		plan:      p,
	}, nil
}

type algoRealPlan struct {
	planState
	plan     *algofft.PlanRealT[float32, complex64]
	spectrum []complex64
}

func (p *algoRealPlan) Forward(in, out, _ []float32) error {
	if err := p.check(in, out); err != nil {
		return err
	}
	if err := p.plan.Forward(p.spectrum, in[:p.n]); err != nil {
		return fmt.Errorf("fftkernel: algofft forward: %w", err)
	}
	PackReal(out[:p.n], p.spectrum)
	return nil
}

func (p *algoRealPlan) Inverse(in, out, _ []float32) error {
	if err := p.check(in, out); err != nil {
		return err
	}
	UnpackReal(p.spectrum, in[:p.n])
	if err := p.plan.Inverse(out[:p.n], p.spectrum); err != nil {
		return fmt.Errorf("fftkernel: algofft inverse: %w", err)
	}
	scaleInPlace(out[:p.n], float32(p.n))
	return nil
}

func (p *algoRealPlan) Close() error {
	p.closed = true
	p.plan = nil
	p.spectrum = nil
	return nil
}

type algoComplexPlan struct {
	planState
	plan *algofft.Plan[complex64]
}

func (p *algoComplexPlan) Forward(in, out, _ []float32) error {
	if err := p.check(in, out); err != nil {
		return err
	}
	if err := p.plan.Forward(asComplex64(out, p.n), asComplex64(in, p.n)); err != nil {
		return fmt.Errorf("fftkernel: algofft forward: %w", err)
	}
	return nil
}

func (p *algoComplexPlan) Inverse(in, out, _ []float32) error {
	if err := p.check(in, out); err != nil {
		return err
	}
	if err := p.plan.Inverse(asComplex64(out, p.n), asComplex64(in, p.n)); err != nil {
		return fmt.Errorf("fftkernel: algofft inverse: %w", err)
	}
	scaleInPlace(out[:2*p.n], float32(p.n))
	return nil
}

func (p *algoComplexPlan) Close() error {
	p.closed = true
	p.plan = nil
	return nil
}

// asComplex64 views the first 2n floats of s as n interleaved complex64 values.
func asComplex64(s []float32, n int) []complex64 {
	return unsafe.Slice((*complex64)(unsafe.Pointer(&s[0])), n)
}
