// Package signal provides the per-sample test oscillator used to drive the
// transform engine with known tones.
package signal

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-spectral/dsp/core"
)

// Waveform selects the oscillator shape.
type Waveform int

const (
	Sine Waveform = iota
	Saw
	Square
)

// Frequency and gain ranges accepted by the oscillator. Values outside are
// clamped.
const (
	MinFrequency = 20.0
	MaxFrequency = 20000.0
	MinGainDB    = -60.0
	MaxGainDB    = 0.0
)

// Default oscillator settings.
const (
	DefaultFrequency = 440.0
	DefaultGainDB    = -6.0
)

// String returns the lower-case waveform name.
func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Saw:
		return "saw"
	case Square:
		return "square"
	default:
		return fmt.Sprintf("waveform(%d)", int(w))
	}
}

// ParseWaveform parses "sine", "saw" or "square" (case-insensitive).
func ParseWaveform(s string) (Waveform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sine", "sin":
		return Sine, nil
	case "saw", "sawtooth":
		return Saw, nil
	case "square", "sqr":
		return Square, nil
	default:
		return Sine, fmt.Errorf("signal: unknown waveform %q", s)
	}
}

// Oscillator is a phase-accumulating sine, saw or square generator.
//
// Phase runs in [0, 1) and advances by frequency/sampleRate per sample. The
// output amplitude is 10^(gainDB/20). Oscillator is not safe for concurrent use.
type Oscillator struct {
	cfg       core.ProcessorConfig
	waveform  Waveform
	frequency float64
	gainDB    float64
	amplitude float64
	phase     float64
}

// Option configures an Oscillator.
type Option func(*Oscillator)

// WithWaveform sets the waveform.
func WithWaveform(w Waveform) Option {
	return func(o *Oscillator) { o.SetWaveform(w) }
}

// WithFrequency sets the frequency in Hz.
func WithFrequency(hz float64) Option {
	return func(o *Oscillator) { o.SetFrequency(hz) }
}

// WithGainDB sets the output gain in dB.
func WithGainDB(db float64) Option {
	return func(o *Oscillator) { o.SetGainDB(db) }
}

// NewOscillator returns a 440 Hz sine at -6 dB.
func NewOscillator(opts ...core.ProcessorOption) *Oscillator {
	return NewOscillatorWithOptions(opts)
}

// NewOscillatorWithOptions returns an oscillator with processor and
// oscillator-specific options applied.
func NewOscillatorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Oscillator {
	o := &Oscillator{
		cfg:      core.ApplyProcessorOptions(coreOpts...),
		waveform: Sine,
	}
	o.SetFrequency(DefaultFrequency)
	o.SetGainDB(DefaultGainDB)
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// Config returns the processor configuration.
func (o *Oscillator) Config() core.ProcessorConfig { return o.cfg }

// Waveform returns the current waveform.
func (o *Oscillator) Waveform() Waveform { return o.waveform }

// Frequency returns the frequency in Hz after clamping.
func (o *Oscillator) Frequency() float64 { return o.frequency }

// GainDB returns the gain in dB after clamping.
func (o *Oscillator) GainDB() float64 { return o.gainDB }

// Amplitude returns the linear output amplitude.
func (o *Oscillator) Amplitude() float64 { return o.amplitude }

// SetWaveform selects the waveform. Unknown values fall back to Sine.
func (o *Oscillator) SetWaveform(w Waveform) {
	if w < Sine || w > Square {
		w = Sine
	}
	o.waveform = w
}

// SetFrequency sets the frequency, clamped to [MinFrequency, MaxFrequency].
func (o *Oscillator) SetFrequency(hz float64) {
	o.frequency = core.Clamp(hz, MinFrequency, MaxFrequency)
}

// SetGainDB sets the gain, clamped to [MinGainDB, MaxGainDB].
func (o *Oscillator) SetGainDB(db float64) {
	o.gainDB = core.Clamp(db, MinGainDB, MaxGainDB)
	o.amplitude = core.DBToLinear(o.gainDB)
}

// Reset returns the phase to zero.
func (o *Oscillator) Reset() { o.phase = 0 }

// Next returns the current sample and advances the phase.
func (o *Oscillator) Next() float32 {
	s := o.sample()
	o.advance(o.frequency / o.cfg.SampleRate)
	return s
}

// Fill writes consecutive samples into dst.
func (o *Oscillator) Fill(dst []float32) {
	o.FillScaled(dst, 1)
}

// FillScaled writes consecutive samples into dst with the frequency
// multiplied by rateScale, as a host resampling the stream would request.
func (o *Oscillator) FillScaled(dst []float32, rateScale float64) {
	inc := o.frequency * rateScale / o.cfg.SampleRate
	for i := range dst {
		dst[i] = o.sample()
		o.advance(inc)
	}
}

func (o *Oscillator) sample() float32 {
	switch o.waveform {
	case Saw:
		return float32(o.amplitude * (2*o.phase - 1))
	case Square:
		if o.phase < 0.5 {
			return float32(o.amplitude)
		}
		return float32(-o.amplitude)
	default:
		return float32(o.amplitude * math.Sin(2*math.Pi*o.phase))
	}
}

func (o *Oscillator) advance(inc float64) {
	o.phase += inc
	if o.phase >= 1 {
		o.phase -= math.Floor(o.phase)
	}
}
