package transform

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-spectral/dsp/fftkernel"
	"github.com/cwbudde/algo-spectral/internal/align"
)

// Engine performs forward and inverse DFTs of one configured size and kind.
//
// The zero value is an unconfigured engine using fftkernel.Default and the
// standard logrus logger.
type Engine struct {
	kernel fftkernel.Kernel
	log    logrus.FieldLogger

	plan    fftkernel.Plan
	scratch []float32

	// stageIn and stageOut hold the native layout for the slice API.
	stageIn  []float32
	stageOut []float32

	n     int
	kind  fftkernel.Kind
	scale float32
}

// New returns an unconfigured engine. Call Setup before transforming.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// NewEngine returns an engine configured for (n, kind).
func NewEngine(n int, kind fftkernel.Kind, opts ...Option) (*Engine, error) {
	e := New(opts...)
	if err := e.Setup(n, kind); err != nil {
		return nil, err
	}
	return e, nil
}

// Setup configures the engine for transforms of size n and the given kind.
//
// Any previous plan and memory are released first, so a failed Setup leaves
// the engine unconfigured. Rejected sizes return ErrInvalidParameter, kernel
// refusals ErrCannotCreatePlan and allocation failures ErrOutOfMemory.
func (e *Engine) Setup(n int, kind fftkernel.Kind) error {
	e.teardown()

	k := e.Kernel()
	fields := logrus.Fields{
		"size":   n,
		"kind":   kind.String(),
		"kernel": k.Name(),
	}

	if reason := rejectReason(k, n, kind); reason != "" {
		fields["constraint"] = reason
		e.logger().WithFields(fields).Warn("transform size rejected")
		return fmt.Errorf("%w: %s", ErrInvalidParameter, reason)
	}

	plan, err := k.NewPlan(n, kind)
	if err != nil {
		e.logger().WithFields(fields).WithError(err).Error("kernel refused transform plan")
		return fmt.Errorf("%w: %w", ErrCannotCreatePlan, err)
	}

	floats := kind.FloatLen(n)
	scratch, err := align.Float32(floats, k.Alignment())
	if err == nil {
		e.stageIn, err = align.Float32(floats, k.Alignment())
	}
	if err == nil {
		e.stageOut, err = align.Float32(floats, k.Alignment())
	}
	if err != nil {
		_ = plan.Close()
		e.stageIn, e.stageOut = nil, nil
		e.logger().WithFields(fields).WithError(err).Error("transform memory allocation failed")
		return fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}

	e.plan = plan
	e.scratch = scratch
	e.n = n
	e.kind = kind
	e.scale = 1 / float32(n)

	e.logger().WithFields(fields).WithField("bins", kind.SpectrumLen(n)).Debug("transform engine configured")
	return nil
}

// rejectReason returns the first size rule (n, kind) violates for k, or "".
func rejectReason(k fftkernel.Kernel, n int, kind fftkernel.Kind) string {
	if reason := fftkernel.Constraint(n, kind); reason != "" {
		return reason
	}
	if !k.IsValidSize(n, kind) {
		return fmt.Sprintf("size %d is not supported by the %s kernel", n, k.Name())
	}
	return ""
}

func (e *Engine) teardown() {
	if e.plan != nil {
		_ = e.plan.Close()
	}
	e.plan = nil
	e.scratch = nil
	e.stageIn = nil
	e.stageOut = nil
	e.n = 0
	e.kind = fftkernel.Real
	e.scale = 0
}

// Close releases the plan and all engine memory. The engine may be
// configured again with Setup.
func (e *Engine) Close() error {
	var err error
	if e.plan != nil {
		err = e.plan.Close()
		e.plan = nil
	}
	e.teardown()
	return err
}

// IsValid reports whether the engine holds a plan.
func (e *Engine) IsValid() bool { return e.plan != nil }

// Size returns the configured transform size, or 0.
func (e *Engine) Size() int { return e.n }

// Kind returns the configured transform kind. It is only meaningful while
// IsValid reports true.
func (e *Engine) Kind() fftkernel.Kind { return e.kind }

// Kernel returns the kernel the engine builds plans with.
func (e *Engine) Kernel() fftkernel.Kernel {
	if e.kernel == nil {
		return fftkernel.Default
	}
	return e.kernel
}

// SpectrumSize returns the number of complex bins of the configured
// transform: N/2+1 for Real, N for Complex and 0 when unconfigured.
func (e *Engine) SpectrumSize() int {
	if e.plan == nil {
		return 0
	}
	return e.kind.SpectrumLen(e.n)
}

func (e *Engine) logger() logrus.FieldLogger {
	if e.log == nil {
		return logrus.StandardLogger()
	}
	return e.log
}

func (e *Engine) require(kind fftkernel.Kind) error {
	if e.plan == nil {
		return ErrNotConfigured
	}
	if e.kind != kind {
		return fmt.Errorf("%w: configured for %s, not %s", ErrNotConfigured, e.kind, kind)
	}
	return nil
}

// forward runs the kernel forward transform over native-layout buffers.
func (e *Engine) forward(in, out []float32) error {
	return e.plan.Forward(in, out, e.scratch)
}

// inverse runs the kernel inverse transform and applies the 1/N scaling.
// Every inverse path goes through here.
func (e *Engine) inverse(in, out []float32) error {
	if err := e.plan.Inverse(in, out, e.scratch); err != nil {
		return err
	}
	s := e.scale
	out = out[:e.kind.FloatLen(e.n)]
	for i := range out {
		out[i] *= s
	}
	return nil
}

// IsValidSize reports whether n is a valid transform size for kind under the
// default kernel's rules: n >= MinimumSize(kind) with no prime factor other
// than 2, 3 and 5. Real sizes must also be even, since the packed spectrum
// keeps the Nyquist bin in its own slot; 45 and 75 are valid Complex sizes
// but not valid Real ones.
func IsValidSize(n int, kind fftkernel.Kind) bool {
	return fftkernel.Default.IsValidSize(n, kind)
}

// NearestValidSize returns the closest valid size >= n (roundUp) or <= n,
// or 0 when none exists in that direction.
func NearestValidSize(n int, kind fftkernel.Kind, roundUp bool) int {
	return fftkernel.Default.NearestValidSize(n, kind, roundUp)
}

// MinimumSize returns the smallest size Setup accepts for kind.
func MinimumSize(kind fftkernel.Kind) int {
	return kind.MinimumSize()
}
