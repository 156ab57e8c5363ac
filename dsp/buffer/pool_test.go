package buffer

import (
	"sync"
	"testing"

	"github.com/cwbudde/algo-spectral/internal/align"
)

func TestPoolGet(t *testing.T) {
	p := NewPool(256)
	if p.Len() != 256 {
		t.Fatalf("Len() = %d, want 256", p.Len())
	}

	b := p.Get()
	if b == nil {
		t.Fatal("Get() = nil")
	}
	defer p.Put(b)

	if b.Len() != 256 {
		t.Fatalf("buffer Len() = %d, want 256", b.Len())
	}
	if !b.Aligned() || !align.IsAligned(b.Samples(), b.Alignment()) {
		t.Fatal("pooled buffer is not aligned")
	}
	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v, want 0", i, v)
		}
	}
}

func TestPoolReuseIsCleared(t *testing.T) {
	p := NewPool(64)

	b := p.Get()
	b.Fill(0.75)
	p.Put(b)

	b2 := p.Get()
	defer p.Put(b2)
	for i, v := range b2.Samples() {
		if v != 0 {
			t.Fatalf("reused Samples()[%d] = %v, want 0", i, v)
		}
	}
}

func TestPoolDropsForeignBuffers(t *testing.T) {
	p := NewPool(32)

	foreign := New(48)
	foreign.Fill(1)
	p.Put(foreign)
	p.Put(&Buffer{})
	p.Put(nil)

	for range 4 {
		b := p.Get()
		if b.Len() != 32 {
			t.Fatalf("Get() returned length %d, want 32", b.Len())
		}
	}
}

func TestPoolZeroLength(t *testing.T) {
	p := NewPool(-5)
	if p.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", p.Len())
	}
	b := p.Get()
	if b == nil || b.Len() != 0 {
		t.Fatalf("Get() = %v, want empty buffer", b)
	}
}

func TestPoolConcurrentUse(t *testing.T) {
	p := NewPool(128)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func(v float32) {
			defer wg.Done()
			for range 50 {
				b := p.Get()
				if b.Len() != 128 {
					t.Errorf("Len() = %d, want 128", b.Len())
					return
				}
				b.Fill(v)
				p.Put(b)
			}
		}(float32(g))
	}
	wg.Wait()
}
