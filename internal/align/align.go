// Package align allocates float32 storage whose first element sits on a
// fixed byte boundary.
//
// The Go heap does not move objects, so an over-allocated slice trimmed to an
// aligned offset stays aligned for its whole lifetime.
package align

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/cwbudde/algo-spectral/internal/cpu"
)

const floatBytes = int(unsafe.Sizeof(float32(0)))

// MaxSamples bounds a single allocation. Requests above it fail with
// ErrTooLarge instead of aborting the process inside the runtime.
const MaxSamples = math.MaxInt32 / floatBytes

// ErrTooLarge is returned when an allocation request exceeds MaxSamples.
var ErrTooLarge = errors.New("align: allocation too large")

// Default returns the alignment in bytes every buffer in this module uses.
func Default() int {
	return cpu.DetectFeatures().Alignment()
}

// Float32 returns n zeroed float32 values aligned to alignment bytes.
// alignment must be a power of two >= 4; smaller values are raised to 4.
// A request for n <= 0 returns nil.
func Float32(n, alignment int) ([]float32, error) {
	if n <= 0 {
		return nil, nil
	}
	if n > MaxSamples {
		return nil, fmt.Errorf("%w: %d samples", ErrTooLarge, n)
	}
	if alignment < floatBytes {
		alignment = floatBytes
	}
	if alignment&(alignment-1) != 0 {
		return nil, fmt.Errorf("align: alignment must be a power of two: %d", alignment)
	}

	pad := alignment/floatBytes - 1
	raw := make([]float32, n+pad)

	addr := uintptr(unsafe.Pointer(&raw[0]))
	off := 0
	if rem := int(addr % uintptr(alignment)); rem != 0 {
		off = (alignment - rem) / floatBytes
	}

	return raw[off : off+n : off+n], nil
}

// IsAligned reports whether the first element of s sits on an alignment
// boundary. Empty slices are considered aligned.
func IsAligned(s []float32, alignment int) bool {
	if len(s) == 0 || alignment <= 1 {
		return true
	}
	return uintptr(unsafe.Pointer(&s[0]))%uintptr(alignment) == 0
}

// Overlaps reports whether a and b share any backing memory.
func Overlaps(a, b []float32) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(&a[0]))
	b0 := uintptr(unsafe.Pointer(&b[0]))
	a1 := a0 + uintptr(len(a)*floatBytes)
	b1 := b0 + uintptr(len(b)*floatBytes)
	return a0 < b1 && b0 < a1
}
