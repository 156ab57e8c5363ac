// Package analysis turns time-domain frames into calibrated level spectra by
// composing a window, the transform engine and the spectrum helpers.
package analysis

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/fftkernel"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
	"github.com/cwbudde/algo-spectral/dsp/transform"
	"github.com/cwbudde/algo-spectral/dsp/window"
)

// Analyzer computes dBFS magnitude spectra of fixed-size real frames.
//
// Levels are corrected for the window's coherent gain so a bin-centred sine
// of amplitude A reads 20*log10(A) at its bin. Analyzer is not safe for
// concurrent use.
type Analyzer struct {
	cfg      core.ProcessorConfig
	settings settings
	engine   *transform.Engine

	coeffs   []float32
	windowed []float32
	spec     []complex64

	// edgeScale applies to the DC and Nyquist bins, binScale to the rest.
	edgeScale float32
	binScale  float32
}

type settings struct {
	window  window.Type
	floorDB float64
	kernel  fftkernel.Kernel
	logger  logrus.FieldLogger
}

// Option configures an Analyzer.
type Option func(*settings)

// WithWindow selects the analysis window. The default is Hann.
func WithWindow(t window.Type) Option {
	return func(s *settings) { s.window = t }
}

// WithFloorDB sets the level reported for silent bins. The default is
// spectrum.DefaultFloorDB.
func WithFloorDB(db float64) Option {
	return func(s *settings) { s.floorDB = db }
}

// WithKernel selects the transform kernel.
func WithKernel(k fftkernel.Kernel) Option {
	return func(s *settings) { s.kernel = k }
}

// WithLogger sets the logger handed to the transform engine.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *settings) { s.logger = l }
}

// New returns an Analyzer for frames of cfg.FrameSize samples
// (core.WithFrameSize). The frame size must be a valid real transform size.
func New(coreOpts []core.ProcessorOption, opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		cfg: core.ApplyProcessorOptions(coreOpts...),
		settings: settings{
			window:  window.TypeHann,
			floorDB: spectrum.DefaultFloorDB,
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&a.settings)
		}
	}

	n := a.cfg.FrameSize
	engine, err := transform.NewEngine(n, fftkernel.Real,
		transform.WithKernel(a.settings.kernel),
		transform.WithLogger(a.settings.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("analysis: frame size %d: %w", n, err)
	}

	a.coeffs = window.Generate(a.settings.window, n, window.WithPeriodic())
	cg, err := window.CoherentGain(a.coeffs)
	if err != nil {
		_ = engine.Close()
		return nil, fmt.Errorf("analysis: %s window: %w", a.settings.window, err)
	}

	a.engine = engine
	a.windowed = make([]float32, n)
	a.spec = make([]complex64, engine.SpectrumSize())
	a.edgeScale = float32(1 / (float64(n) * cg))
	a.binScale = 2 * a.edgeScale
	return a, nil
}

// Size returns the frame size.
func (a *Analyzer) Size() int { return a.cfg.FrameSize }

// SampleRate returns the sample rate levels and bin frequencies refer to.
func (a *Analyzer) SampleRate() float64 { return a.cfg.SampleRate }

// Window returns the analysis window type.
func (a *Analyzer) Window() window.Type { return a.settings.window }

// Bins returns the number of spectrum bins, N/2+1.
func (a *Analyzer) Bins() int { return len(a.spec) }

// Analyze returns the dBFS level of each of the N/2+1 bins of frame.
func (a *Analyzer) Analyze(frame []float32) ([]float32, error) {
	out := make([]float32, len(a.spec))
	if err := a.AnalyzeInto(out, frame); err != nil {
		return nil, err
	}
	return out, nil
}

// AnalyzeInto writes the dBFS levels of frame into dst (N/2+1 values)
// without allocating.
func (a *Analyzer) AnalyzeInto(dst, frame []float32) error {
	if len(dst) != len(a.spec) {
		return fmt.Errorf("analysis: %w: dst has %d bins, want %d", transform.ErrSizeMismatch, len(dst), len(a.spec))
	}
	if len(frame) != len(a.windowed) {
		return fmt.Errorf("analysis: %w: frame has %d samples, want %d", transform.ErrSizeMismatch, len(frame), len(a.windowed))
	}

	if err := window.ApplyTo(a.windowed, frame, a.coeffs); err != nil {
		return err
	}
	if err := a.engine.ForwardRealInto(a.spec, a.windowed); err != nil {
		return err
	}

	spectrum.MagnitudeInto(dst, a.spec)
	last := len(dst) - 1
	for k := range dst {
		if k == 0 || k == last {
			dst[k] *= a.edgeScale
		} else {
			dst[k] *= a.binScale
		}
	}
	spectrum.ToDB(dst, a.settings.floorDB)
	return nil
}

// BinFrequency returns the centre frequency of bin k in Hz.
func (a *Analyzer) BinFrequency(k int) float64 {
	return core.BinFrequency(k, a.cfg.FrameSize, a.cfg.SampleRate)
}

// Close releases the transform engine.
func (a *Analyzer) Close() error {
	return a.engine.Close()
}

// PeakBin returns the index of the largest value in levels, or -1 when
// levels is empty. Ties resolve to the lowest index.
func PeakBin(levels []float32) int {
	if len(levels) == 0 {
		return -1
	}
	best := 0
	for k, v := range levels {
		if v > levels[best] {
			best = k
		}
	}
	return best
}
