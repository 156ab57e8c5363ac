package fftkernel

import "math"

// referenceTolerance is the largest error accepted against the reference,
// relative to the peak magnitude of the expected output.
const referenceTolerance = 1e-3

// agreesWithReference runs p forward and back on a fixed pseudo-random
// signal and compares the result with a Gonum plan of the same size. A plan
// that fails to transform counts as a mismatch; only a failure of the
// reference itself is returned as an error.
func agreesWithReference(p Plan) (bool, error) {
	n, kind := p.Size(), p.Kind()
	ref, err := Gonum{}.NewPlan(n, kind)
	if err != nil {
		return false, err
	}
	defer ref.Close()

	floats := kind.FloatLen(n)
	in := referenceSignal(floats)
	want := make([]float32, floats)
	got := make([]float32, floats)
	back := make([]float32, floats)

	if err := ref.Forward(in, want, nil); err != nil {
		return false, err
	}
	if p.Forward(in, got, nil) != nil || p.Inverse(got, back, nil) != nil {
		return false, nil
	}
	if !withinTolerance(got, want) {
		return false, nil
	}

	for i := range in {
		in[i] *= float32(n)
	}
	return withinTolerance(back, in), nil
}

// referenceSignal returns n deterministic values in [-1, 1).
func referenceSignal(n int) []float32 {
	out := make([]float32, n)
	state := uint32(0x9e3779b9)
	for i := range out {
		state = state*1664525 + 1013904223
		out[i] = float32(state>>8)/float32(1<<23) - 1
	}
	return out
}

func withinTolerance(got, want []float32) bool {
	peak := 1.0
	for _, v := range want {
		peak = math.Max(peak, math.Abs(float64(v)))
	}
	limit := referenceTolerance * peak
	for i, v := range got {
		d := math.Abs(float64(v) - float64(want[i]))
		if d > limit || math.IsNaN(d) {
			return false
		}
	}
	return true
}
