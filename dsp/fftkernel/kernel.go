package fftkernel

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnsupportedSize is returned by NewPlan for sizes the kernel rejects.
	ErrUnsupportedSize = errors.New("fftkernel: unsupported transform size")

	// ErrLength is returned when a buffer passed to a Plan is too short.
	ErrLength = errors.New("fftkernel: buffer length mismatch")

	// ErrPlanClosed is returned when a closed Plan is used.
	ErrPlanClosed = errors.New("fftkernel: plan closed")

	// ErrUnknownKernel is returned by Lookup for unregistered names.
	ErrUnknownKernel = errors.New("fftkernel: unknown kernel")
)

// Plan is precomputed state for transforms of one size and kind.
//
// in, out and scratch hold kind.FloatLen(Size()) floats in the native layout
// and must not overlap. Plans keep their own work memory; scratch is offered
// to kernels that need extra room and may be ignored.
type Plan interface {
	Size() int
	Kind() Kind

	// Forward computes the unscaled forward transform of in into out.
	Forward(in, out, scratch []float32) error

	// Inverse computes the unnormalized inverse transform of in into out.
	Inverse(in, out, scratch []float32) error

	// Close releases the plan. Further transforms return ErrPlanClosed.
	Close() error
}

// Kernel builds Plans and answers size-validity questions.
type Kernel interface {
	// Name identifies the kernel, e.g. "algofft".
	Name() string

	// Alignment is the byte alignment buffers passed to Plans must satisfy.
	Alignment() int

	IsValidSize(n int, kind Kind) bool
	NearestValidSize(n int, kind Kind, roundUp bool) int

	// NewPlan creates a plan for (n, kind).
	NewPlan(n int, kind Kind) (Plan, error)
}

// Default is the kernel used when none is configured.
var Default Kernel = AlgoFFT{}

var registry = map[string]Kernel{
	"algofft": AlgoFFT{},
	"gonum":   Gonum{},
}

// Lookup returns the kernel registered under name (case-insensitive).
func Lookup(name string) (Kernel, error) {
	k, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownKernel, name, strings.Join(Names(), ", "))
	}
	return k, nil
}

// Names returns the registered kernel names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// planState carries the fields and checks every Plan implementation shares.
type planState struct {
	n      int
	kind   Kind
	closed bool
}

func (s *planState) Size() int  { return s.n }
func (s *planState) Kind() Kind { return s.kind }

func (s *planState) check(in, out []float32) error {
	if s.closed {
		return ErrPlanClosed
	}
	need := s.kind.FloatLen(s.n)
	if len(in) < need || len(out) < need {
		return fmt.Errorf("%w: need %d floats, got in=%d out=%d", ErrLength, need, len(in), len(out))
	}
	return nil
}

func checkPlanArgs(k Kernel, n int, kind Kind) error {
	if reason := Constraint(n, kind); reason != "" {
		return fmt.Errorf("%w: %s kernel: %s", ErrUnsupportedSize, k.Name(), reason)
	}
	return nil
}

func scaleInPlace(x []float32, s float32) {
	for i := range x {
		x[i] *= s
	}
}
