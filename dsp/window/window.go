// Package window generates analysis windows as float32 coefficients for
// framing audio ahead of a DFT.
package window

import (
	"fmt"
	"math"
	"strings"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris4Term
	TypeFlatTop
)

// Metadata holds the spectral properties of a window type.
type Metadata struct {
	Name string
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// HighestSidelobe is the peak sidelobe level relative to DC in dB.
	HighestSidelobe     float64
	CoherentGain        float64
	CoherentGainSquared float64
}

var (
	hannCoeffs            = []float64{0.5, -0.5}
	hammingCoeffs         = []float64{0.54, -0.46}
	blackmanCoeffs        = []float64{0.42, -0.5, 0.08}
	blackmanHarris4Coeffs = []float64{0.35875, -0.48829, 0.14128, -0.01168}
	flatTopCoeffs         = []float64{0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368}
)

var metadataByType = map[Type]Metadata{
	TypeRectangular:         meta("Rectangular", 1.0, -13.26, 1.0),
	TypeHann:                meta("Hann", 1.5, -31.47, 0.5),
	TypeHamming:             meta("Hamming", 1.3628, -42.68, 0.54),
	TypeBlackman:            meta("Blackman", 1.7268, -58.11, 0.42),
	TypeBlackmanHarris4Term: meta("Blackman-Harris", 2.0044, -92.01, 0.35875),
	TypeFlatTop:             meta("Flat Top", 3.7702, -93.6, 0.21557895),
}

var names = map[string]Type{
	"rectangular":     TypeRectangular,
	"rect":            TypeRectangular,
	"none":            TypeRectangular,
	"hann":            TypeHann,
	"hanning":         TypeHann,
	"hamming":         TypeHamming,
	"blackman":        TypeBlackman,
	"blackman-harris": TypeBlackmanHarris4Term,
	"blackmanharris":  TypeBlackmanHarris4Term,
	"bh4":             TypeBlackmanHarris4Term,
	"flattop":         TypeFlatTop,
	"flat-top":        TypeFlatTop,
}

func meta(name string, enbw, sidelobe, cg float64) Metadata {
	return Metadata{
		Name:                name,
		ENBW:                enbw,
		HighestSidelobe:     sidelobe,
		CoherentGain:        cg,
		CoherentGainSquared: cg * cg,
	}
}

// Types returns every supported window type in declaration order.
func Types() []Type {
	return []Type{
		TypeRectangular,
		TypeHann,
		TypeHamming,
		TypeBlackman,
		TypeBlackmanHarris4Term,
		TypeFlatTop,
	}
}

// String returns the display name of t.
func (t Type) String() string {
	if m, ok := metadataByType[t]; ok {
		return m.Name
	}
	return fmt.Sprintf("window(%d)", int(t))
}

// Parse returns the window type for a name such as "hann" or "flat-top".
func Parse(name string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "-")
	if t, ok := names[key]; ok {
		return t, nil
	}
	return TypeRectangular, fmt.Errorf("%w: %q", errUnknownType, name)
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic selects the periodic form used for DFT framing instead of the
// symmetric form used for filter design.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns length window coefficients, or nil for length <= 0.
func Generate(t Type, length int, opts ...Option) []float32 {
	if length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float32, length)
	for i := range out {
		out[i] = float32(evalWindow(t, samplePosition(i, length, cfg.periodic)))
	}
	return out
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}
	return Metadata{}
}

// Apply multiplies samples in place by coeffs.
func Apply(coeffs, samples []float32) error {
	return ApplyTo(samples, samples, coeffs)
}

// ApplyTo writes samples[i]*coeffs[i] into dst. All three slices must have
// the same length; dst may alias samples.
func ApplyTo(dst, samples, coeffs []float32) error {
	if len(samples) != len(coeffs) || len(dst) != len(samples) {
		return fmt.Errorf("%w: samples=%d coeffs=%d dst=%d", errMismatchedLength, len(samples), len(coeffs), len(dst))
	}
	for i, c := range coeffs {
		dst[i] = samples[i] * c
	}
	return nil
}

func evalWindow(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	case TypeBlackmanHarris4Term:
		return cosineFromCoeffs(x, blackmanHarris4Coeffs)
	case TypeFlatTop:
		return cosineFromCoeffs(x, flatTopCoeffs)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x
	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}
	return sum
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}
	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}
	return float64(n) / den
}
