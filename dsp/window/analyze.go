package window

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the 3 dB (half-power) main lobe width in bins.
	Bandwidth3dB float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// FirstMinimumBins is the first null (minimum) position in bins.
	FirstMinimumBins float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin signal.
	ScallopLossdB float64
}

// CoherentGain returns sum(w[n]) / N. Spectra of windowed frames are divided
// by N*CoherentGain to read sinusoid amplitudes directly.
func CoherentGain(coeffs []float32) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}
	sum := 0.0
	for _, c := range coeffs {
		sum += float64(c)
	}
	if sum == 0 {
		return 0, errZeroCoherentGain
	}
	return sum / float64(len(coeffs)), nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float32) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}
	sum, sumSq := 0.0, 0.0
	for _, c := range coeffs {
		v := float64(c)
		sum += v
		sumSq += v * v
	}
	if sum == 0 {
		return 0, errZeroCoherentGain
	}
	return float64(len(coeffs)) * sumSq / (sum * sum), nil
}

// analysisOversample is the zero-padding factor Analyze applies; the response
// is sampled every 1/analysisOversample bins. It must stay even so the half
// bin offset used for scallop loss falls on the grid.
const analysisOversample = 16

// maxAnalysisLen bounds the padded transform length.
const maxAnalysisLen = 1 << 22

// Analyze measures the spectral properties of window w from a dense,
// zero-padded power response. An empty or zero-sum window yields the zero
// Analysis.
func Analyze(w []float32) Analysis {
	n := len(w)
	if n == 0 {
		return Analysis{}
	}

	cg, err := CoherentGain(w)
	if err != nil {
		return Analysis{}
	}
	enbw, err := EquivalentNoiseBandwidth(w)
	if err != nil {
		return Analysis{}
	}

	pad := analysisOversample
	for pad > 2 && n*pad > maxAnalysisLen {
		pad /= 2
	}
	resp := powerResponse(w, n*pad)
	if resp == nil {
		return Analysis{}
	}
	perBin := float64(pad)

	a := Analysis{
		CoherentGain:  cg,
		ENBW:          enbw,
		ScallopLossdB: powerDB(resp[pad/2]),
		Bandwidth3dB:  2 * halfPowerIndex(resp) / perBin,
	}

	null := firstNullIndex(resp)
	if null < 0 {
		a.HighestSidelobedB = math.Inf(-1)
		return a
	}
	a.FirstMinimumBins = (float64(null) + nullOffset(resp, null)) / perBin
	a.HighestSidelobedB = highestSidelobe(resp, null)
	return a
}

// powerResponse returns |W(k)|^2 / |W(0)|^2 for the first m/2+1 bins of the
// m-point transform of w zero-padded to m, or nil when W(0) is zero.
func powerResponse(w []float32, m int) []float64 {
	seq := make([]float64, m)
	for i, v := range w {
		seq[i] = float64(v)
	}
	coeff := fourier.NewFFT(m).Coefficients(nil, seq)

	resp := make([]float64, len(coeff))
	for k, c := range coeff {
		resp[k] = real(c)*real(c) + imag(c)*imag(c)
	}
	ref := resp[0]
	if ref == 0 {
		return nil
	}
	for k := range resp {
		resp[k] /= ref
	}
	return resp
}

// halfPowerIndex returns the fractional index where resp first drops to 0.5.
func halfPowerIndex(resp []float64) float64 {
	for k := 1; k < len(resp); k++ {
		if resp[k] <= 0.5 {
			prev := resp[k-1]
			return float64(k-1) + (prev-0.5)/(prev-resp[k])
		}
	}
	return float64(len(resp) - 1)
}

// firstNullIndex returns the first local minimum of resp below -10 dB, or -1.
// The threshold skips the plateau of flat-top main lobes.
func firstNullIndex(resp []float64) int {
	for k := 1; k < len(resp)-1; k++ {
		if resp[k] < 0.1 && resp[k+1] > resp[k] && resp[k] <= resp[k-1] {
			return k
		}
	}
	return -1
}

// highestSidelobe returns the largest response beyond the first null in dB,
// refined between grid points.
func highestSidelobe(resp []float64, null int) float64 {
	peak := null
	for k := null + 1; k < len(resp); k++ {
		if resp[k] > resp[peak] {
			peak = k
		}
	}
	if peak == null || resp[peak] <= 0 {
		return math.Inf(-1)
	}
	if peak == len(resp)-1 {
		return powerDB(resp[peak])
	}

	a, b, c := powerDB(resp[peak-1]), powerDB(resp[peak]), powerDB(resp[peak+1])
	den := a - 2*b + c
	if den == 0 || math.IsInf(a, 0) || math.IsInf(c, 0) {
		return b
	}
	p := 0.5 * (a - c) / den
	return b - 0.25*(a-c)*p
}

// nullOffset locates the null near grid index k to sub-grid precision on the
// magnitude response, which is V-shaped around a null. The lines through the
// two samples on each side are intersected. A sample that is already orders
// of magnitude below its neighbours is taken as the null itself.
func nullOffset(resp []float64, k int) float64 {
	if k < 2 || k > len(resp)-3 {
		return 0
	}
	m := func(i int) float64 { return math.Sqrt(resp[i]) }
	a2, a, b, c, c2 := m(k-2), m(k-1), m(k), m(k+1), m(k+2)
	if b <= 1e-3*min(a, c) {
		return 0
	}

	left := a - a2
	right := c2 - c
	if left >= 0 || right <= 0 {
		return 0
	}
	// a + left*(u+1) == c + right*(u-1)
	u := (c - a - right - left) / (left - right)
	return max(-1, min(1, u))
}

func powerDB(p float64) float64 {
	if p <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(p)
}
