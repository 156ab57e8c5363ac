package transform

import (
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-spectral/dsp/fftkernel"
)

// Option configures an Engine.
type Option func(*Engine)

// WithKernel selects the transform kernel. A nil kernel keeps the default.
func WithKernel(k fftkernel.Kernel) Option {
	return func(e *Engine) {
		if k != nil {
			e.kernel = k
		}
	}
}

// WithLogger sets the logger Setup reports diagnostics to. A nil logger keeps
// logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}
