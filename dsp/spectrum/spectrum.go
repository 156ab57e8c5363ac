package spectrum

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// DefaultFloorDB is the level MagnitudeDB and PowerDB report for silent bins.
const DefaultFloorDB = -240

// scratchBuf holds pooled float64 scratch for the vectorized kernels.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

// getScratch returns re, im and out slices of length n backed by one pooled
// allocation.
func getScratch(n int) (re, im, out []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 3 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n : 2*n], buf.data[2*n : need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

func split(re, im []float64, in []complex64) {
	for i, c := range in {
		re[i] = float64(real(c))
		im[i] = float64(imag(c))
	}
}

func narrow(dst []float32, src []float64) {
	for i, v := range src {
		dst[i] = float32(v)
	}
}

// Magnitude returns |X[k]| = sqrt(re^2 + im^2) for each bin.
func Magnitude(in []complex64) []float32 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float32, len(in))
	MagnitudeInto(out, in)
	return out
}

// MagnitudeInto writes |X[k]| into dst, which must be at least len(in) long.
//
// The work runs through algo-vecmath, which dispatches to SIMD where the CPU
// supports it. Scratch is pooled, so steady state does not allocate.
func MagnitudeInto(dst []float32, in []complex64) {
	if len(in) == 0 {
		return
	}
	re, im, out, buf := getScratch(len(in))
	split(re, im, in)
	vecmath.Magnitude(out, re, im)
	narrow(dst[:len(in)], out)
	putScratch(buf)
}

// Power returns |X[k]|^2 = re^2 + im^2 for each bin.
func Power(in []complex64) []float32 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float32, len(in))
	PowerInto(out, in)
	return out
}

// PowerInto writes |X[k]|^2 into dst, which must be at least len(in) long.
func PowerInto(dst []float32, in []complex64) {
	if len(in) == 0 {
		return
	}
	re, im, out, buf := getScratch(len(in))
	split(re, im, in)
	vecmath.Power(out, re, im)
	narrow(dst[:len(in)], out)
	putScratch(buf)
}

// Phase returns atan2(im, re) in radians for each bin.
func Phase(in []complex64) []float32 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float32, len(in))
	PhaseInto(out, in)
	return out
}

// PhaseInto writes atan2(im, re) into dst, which must be at least len(in) long.
func PhaseInto(dst []float32, in []complex64) {
	for i, c := range in {
		dst[i] = float32(math.Atan2(float64(imag(c)), float64(real(c))))
	}
}

// MagnitudeDB returns 20*log10(|X[k]|) for each bin. Bins at or below the
// floor's linear equivalent report floorDB.
func MagnitudeDB(in []complex64, floorDB float64) []float32 {
	out := Magnitude(in)
	toDB(out, 20, floorDB)
	return out
}

// PowerDB returns 10*log10(|X[k]|^2) for each bin, clamped at floorDB.
func PowerDB(in []complex64, floorDB float64) []float32 {
	out := Power(in)
	toDB(out, 10, floorDB)
	return out
}

// ToDB converts linear magnitudes in place to 20*log10(v), clamped at floorDB.
func ToDB(values []float32, floorDB float64) {
	toDB(values, 20, floorDB)
}

func toDB(values []float32, factor, floorDB float64) {
	for i, v := range values {
		if v <= 0 {
			values[i] = float32(floorDB)
			continue
		}
		db := factor * math.Log10(float64(v))
		if db < floorDB {
			db = floorDB
		}
		values[i] = float32(db)
	}
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float32) []float32 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float32, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := float64(phase[i]) - float64(phase[i-1])
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = float32(float64(phase[i]) + offset)
	}
	return out
}
