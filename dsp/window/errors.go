package window

import "errors"

var (
	errEmptyCoeffs      = errors.New("window: coefficients must not be empty")
	errZeroCoherentGain = errors.New("window: coherent gain is zero")
	errMismatchedLength = errors.New("window: samples and coefficients must have the same length")
	errUnknownType      = errors.New("window: unknown window type")
)
