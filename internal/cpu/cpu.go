// Package cpu provides CPU feature detection for transform buffer alignment.
//
// The widest SIMD register set available on the current processor decides the
// byte alignment that transform kernels and sample buffers agree on. Detection
// runs lazily on the first call to DetectFeatures and is cached.
package cpu

import (
	"sync"
)

// SIMDLevel represents a SIMD instruction set extension level.
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD support (pure Go fallback).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (baseline for amd64).
	SIMDSSE2

	// SIMDAVX indicates x86-64 AVX.
	SIMDAVX

	// SIMDAVX2 indicates x86-64 AVX2.
	SIMDAVX2

	// SIMDAVX512 indicates x86-64 AVX-512.
	SIMDAVX512

	// SIMDNEON indicates ARM NEON / Advanced SIMD.
	SIMDNEON
)

// MinAlignment is the alignment used when no SIMD extension is detected.
// Sixteen bytes keeps four float32 lanes together, which every kernel accepts.
const MinAlignment = 16

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// VectorBytes returns the register width in bytes of the SIMD level.
func (s SIMDLevel) VectorBytes() int {
	switch s {
	case SIMDAVX, SIMDAVX2:
		return 32
	case SIMDAVX512:
		return 64
	default:
		return MinAlignment
	}
}

// Features describes CPU capabilities relevant to buffer alignment.
type Features struct {
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool

	// ForceGeneric disables SIMD-derived alignment (testing/debugging).
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

// Level returns the widest SIMD level present in f.
func (f Features) Level() SIMDLevel {
	switch {
	case f.ForceGeneric:
		return SIMDNone
	case f.HasAVX512:
		return SIMDAVX512
	case f.HasAVX2:
		return SIMDAVX2
	case f.HasAVX:
		return SIMDAVX
	case f.HasSSE2:
		return SIMDSSE2
	case f.HasNEON:
		return SIMDNEON
	default:
		return SIMDNone
	}
}

// Alignment returns the buffer alignment in bytes for f.
func (f Features) Alignment() int {
	return f.Level().VectorBytes()
}

var (
	detectedFeatures Features
	detectOnce       sync.Once

	// forcedFeatures overrides hardware detection in tests.
	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
// It is safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})

	return detectedFeatures
}

// SetForcedFeatures overrides CPU feature detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()

	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()
}
