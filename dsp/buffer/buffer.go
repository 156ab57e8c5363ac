package buffer

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-spectral/internal/align"
)

// ErrIndexOutOfRange is returned by element access outside [0, Len()).
var ErrIndexOutOfRange = errors.New("buffer: index out of range")

// ErrAllocation is returned when aligned storage cannot be allocated.
var ErrAllocation = errors.New("buffer: cannot allocate aligned storage")

// Buffer is a fixed-length, aligned array of float32 samples.
//
// The zero value is an empty buffer using the default alignment. Buffer is
// not safe for concurrent use; resizing while another goroutine reads is a
// caller error.
type Buffer struct {
	samples   []float32
	alignment int
	aligned   bool
}

// New returns a zero-filled Buffer of the given length with the default
// alignment. Allocation failures leave the buffer empty; callers that need
// the error should use NewWithAlignment(length, 0), where 0 selects the
// default alignment.
func New(length int) *Buffer {
	b := &Buffer{}
	_ = b.Resize(length)
	return b
}

// NewWithAlignment returns a zero-filled Buffer whose storage is aligned to
// alignment bytes (a power of two, or 0 for the default).
func NewWithAlignment(length, alignment int) (*Buffer, error) {
	b := &Buffer{alignment: alignment}
	if err := b.Resize(length); err != nil {
		return nil, err
	}
	return b, nil
}

// FromSlice returns a Buffer holding a copy of s in aligned storage.
func FromSlice(s []float32) (*Buffer, error) {
	b := &Buffer{}
	if err := b.SetData(s); err != nil {
		return nil, err
	}
	return b, nil
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Alignment returns the byte alignment used for allocations.
func (b *Buffer) Alignment() int {
	if b.alignment <= 0 {
		return align.Default()
	}
	return b.alignment
}

// Aligned reports whether an aligned allocation has been made.
func (b *Buffer) Aligned() bool {
	return b.aligned
}

// Samples returns the raw aligned storage. The slice is valid until the next
// call to Resize, SetData, or Release.
func (b *Buffer) Samples() []float32 {
	return b.samples
}

// Resize sets the length to n. Equal lengths are a no-op. Any other length
// discards the old contents and, for n > 0, allocates n zeroed samples.
func (b *Buffer) Resize(n int) error {
	if n < 0 {
		n = 0
	}
	if n == len(b.samples) {
		return nil
	}

	b.samples = nil
	if n == 0 {
		return nil
	}

	s, err := align.Float32(n, b.Alignment())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAllocation, err)
	}

	b.samples = s
	b.aligned = true
	return nil
}

// SetData copies values into the buffer, resizing first when the length
// differs. An empty input leaves the buffer empty and deallocated.
func (b *Buffer) SetData(values []float32) error {
	if err := b.Resize(len(values)); err != nil {
		return err
	}
	copy(b.samples, values)
	return nil
}

// Data returns a copy of the current contents.
func (b *Buffer) Data() []float32 {
	out := make([]float32, len(b.samples))
	copy(out, b.samples)
	return out
}

// CopyTo copies the contents into dst and returns the number of samples copied.
func (b *Buffer) CopyTo(dst []float32) int {
	return copy(dst, b.samples)
}

// At returns sample i. Out-of-range indices return 0 and ErrIndexOutOfRange.
func (b *Buffer) At(i int) (float32, error) {
	if i < 0 || i >= len(b.samples) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(b.samples))
	}
	return b.samples[i], nil
}

// Set stores v at index i. Out-of-range indices leave the buffer unchanged.
func (b *Buffer) Set(i int, v float32) error {
	if i < 0 || i >= len(b.samples) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(b.samples))
	}
	b.samples[i] = v
	return nil
}

// Clear sets all samples to 0 without changing the length.
func (b *Buffer) Clear() {
	clear(b.samples)
}

// Fill sets every sample to v.
func (b *Buffer) Fill(v float32) {
	for i := range b.samples {
		b.samples[i] = v
	}
}

// Release drops the storage and leaves an empty buffer.
func (b *Buffer) Release() {
	b.samples = nil
}

// Copy returns a deep copy with the same alignment.
func (b *Buffer) Copy() *Buffer {
	c := &Buffer{alignment: b.alignment}
	if err := c.SetData(b.samples); err != nil {
		return &Buffer{alignment: b.alignment}
	}
	return c
}
