package fftkernel

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cwbudde/algo-spectral/internal/testutil"
)

// corruptPlan perturbs one output value of a correct plan.
type corruptPlan struct {
	Plan
}

func (p corruptPlan) Forward(in, out, scratch []float32) error {
	if err := p.Plan.Forward(in, out, scratch); err != nil {
		return err
	}
	out[3] += 0.5
	return nil
}

// failingPlan refuses every transform.
type failingPlan struct {
	Plan
}

func (failingPlan) Forward(_, _, _ []float32) error { return errors.New("boom") }

func TestAgreesWithReference(t *testing.T) {
	for _, kind := range []Kind{Real, Complex} {
		good, err := Gonum{}.NewPlan(40, kind)
		if err != nil {
			t.Fatalf("NewPlan(40, %s): %v", kind, err)
		}
		defer good.Close()

		tests := []struct {
			name string
			plan Plan
			want bool
		}{
			{"reference", good, true},
			{"corrupt", corruptPlan{good}, false},
			{"failing", failingPlan{good}, false},
		}
		for _, tt := range tests {
			ok, err := agreesWithReference(tt.plan)
			if err != nil {
				t.Fatalf("%s/%s error = %v", kind, tt.name, err)
			}
			if ok != tt.want {
				t.Fatalf("%s/%s agreesWithReference = %v, want %v", kind, tt.name, ok, tt.want)
			}
		}
	}
}

func TestReferenceSignalRange(t *testing.T) {
	s := referenceSignal(4096)
	if testutil.MaxAbs(s) > 1 {
		t.Fatalf("MaxAbs = %v, want <= 1", testutil.MaxAbs(s))
	}
	again := referenceSignal(4096)
	for i := range s {
		if s[i] != again[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
	}
}

func validSizes(kind Kind, limit int) []int {
	var sizes []int
	for n := kind.MinimumSize(); n <= limit; n++ {
		if IsValidSize(n, kind) {
			sizes = append(sizes, n)
		}
	}
	return sizes
}

// AlgoFFT plans must agree with Gonum at every valid size, including the
// sizes it serves through the fallback.
func TestAlgoFFTMatchesGonumAtEveryValidSize(t *testing.T) {
	for _, kind := range []Kind{Real, Complex} {
		for _, n := range validSizes(kind, 4096) {
			t.Run(fmt.Sprintf("%s/%d", kind, n), func(t *testing.T) {
				floats := kind.FloatLen(n)
				in := testutil.DeterministicNoise(int64(n), 1, floats)

				outs := make([][]float32, 0, 2)
				for _, k := range kernels() {
					plan, err := k.NewPlan(n, kind)
					if err != nil {
						t.Fatalf("%s NewPlan: %v", k.Name(), err)
					}
					out := make([]float32, floats)
					if err := plan.Forward(in, out, nil); err != nil {
						t.Fatalf("%s Forward: %v", k.Name(), err)
					}
					outs = append(outs, out)
					_ = plan.Close()
				}
				testutil.RequireSliceNearlyEqual(t, outs[0], outs[1], 1e-4)
			})
		}
	}
}

func TestAlgoFFTNative(t *testing.T) {
	k := AlgoFFT{}
	for _, n := range []int{0, 31, 45} {
		if k.Native(n, Real) {
			t.Fatalf("Native(%d, real) = true for an invalid size", n)
		}
	}

	for _, kind := range []Kind{Real, Complex} {
		for _, n := range []int{64, 400, 1024} {
			plan, err := k.NewPlan(n, kind)
			if err != nil {
				t.Fatalf("NewPlan(%d, %s): %v", n, kind, err)
			}
			_, isGonum := plan.(*gonumRealPlan)
			if !isGonum {
				_, isGonum = plan.(*gonumComplexPlan)
			}
			if k.Native(n, kind) == isGonum {
				t.Fatalf("Native(%d, %s) = %v, plan %T", n, kind, k.Native(n, kind), plan)
			}
			_ = plan.Close()
		}
	}
}
