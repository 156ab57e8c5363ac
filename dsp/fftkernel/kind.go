package fftkernel

import (
	"fmt"
	"strings"
)

// Kind selects a real-input or complex-input transform.
type Kind int

const (
	// Real transforms n real samples into n/2+1 complex bins.
	Real Kind = iota
	// Complex transforms n complex samples into n complex bins.
	Complex
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Real:
		return "real"
	case Complex:
		return "complex"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == Real || k == Complex
}

// MinimumSize returns the smallest transform size the mixed-radix
// decomposition accepts for k: 32 for Real, 16 for Complex.
func (k Kind) MinimumSize() int {
	if k == Complex {
		return 16
	}
	return 32
}

// FloatLen returns the number of float32 values a size-n buffer of kind k
// holds in the native layout.
func (k Kind) FloatLen(n int) int {
	if k == Complex {
		return 2 * n
	}
	return n
}

// SpectrumLen returns the number of complex bins of a size-n transform.
func (k Kind) SpectrumLen(n int) int {
	if n <= 0 {
		return 0
	}
	if k == Complex {
		return n
	}
	return n/2 + 1
}

// ParseKind parses "real" or "complex" (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "real", "r":
		return Real, nil
	case "complex", "c":
		return Complex, nil
	default:
		return Real, fmt.Errorf("fftkernel: unknown transform kind %q", s)
	}
}
