package fftkernel

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cwbudde/algo-spectral/internal/testutil"
)

func kernels() []Kernel {
	return []Kernel{AlgoFFT{}, Gonum{}}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"algofft", "gonum", " GONUM "} {
		k, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", name, err)
		}
		if k == nil {
			t.Fatalf("Lookup(%q) = nil", name)
		}
	}

	if _, err := Lookup("fftw"); !errors.Is(err, ErrUnknownKernel) {
		t.Fatalf("Lookup(fftw) error = %v, want ErrUnknownKernel", err)
	}

	names := Names()
	if len(names) != 2 || names[0] != "algofft" || names[1] != "gonum" {
		t.Fatalf("Names() = %v", names)
	}
	if Default.Name() != "algofft" {
		t.Fatalf("Default.Name() = %q", Default.Name())
	}
}

func TestKernelAlignment(t *testing.T) {
	for _, k := range kernels() {
		a := k.Alignment()
		if a < 16 || a&(a-1) != 0 {
			t.Fatalf("%s alignment = %d", k.Name(), a)
		}
	}
}

func TestNewPlanRejectsInvalidSize(t *testing.T) {
	for _, k := range kernels() {
		for _, n := range []int{0, 31, 45, 7 * 32} {
			if _, err := k.NewPlan(n, Real); !errors.Is(err, ErrUnsupportedSize) {
				t.Fatalf("%s NewPlan(%d) error = %v, want ErrUnsupportedSize", k.Name(), n, err)
			}
		}
	}
}

func TestRealForwardMatchesNaiveDFT(t *testing.T) {
	for _, k := range kernels() {
		for _, n := range []int{32, 64, 96, 100, 480} {
			t.Run(fmt.Sprintf("%s/%d", k.Name(), n), func(t *testing.T) {
				plan, err := k.NewPlan(n, Real)
				if err != nil {
					t.Fatalf("NewPlan: %v", err)
				}
				defer plan.Close()

				in := testutil.DeterministicNoise(int64(n), 1, n)
				out := make([]float32, n)
				if err := plan.Forward(in, out, nil); err != nil {
					t.Fatalf("Forward: %v", err)
				}

				got := make([]complex64, n/2+1)
				UnpackReal(got, out)
				want := testutil.NaiveDFT(in)
				want[0] = complex(real(want[0]), 0)
				want[n/2] = complex(real(want[n/2]), 0)
				testutil.RequireSpectrumNearlyEqual(t, got, want, 1e-4)
			})
		}
	}
}

func TestRealRoundTripIsScaledByN(t *testing.T) {
	for _, k := range kernels() {
		for _, n := range []int{32, 64, 512, 1024} {
			plan, err := k.NewPlan(n, Real)
			if err != nil {
				t.Fatalf("%s NewPlan(%d): %v", k.Name(), n, err)
			}

			in := testutil.DeterministicNoise(3, 1, n)
			freq := make([]float32, n)
			back := make([]float32, n)
			if err := plan.Forward(in, freq, nil); err != nil {
				t.Fatalf("Forward: %v", err)
			}
			if err := plan.Inverse(freq, back, nil); err != nil {
				t.Fatalf("Inverse: %v", err)
			}

			want := make([]float32, n)
			for i, v := range in {
				want[i] = v * float32(n)
			}
			testutil.RequireSliceNearlyEqual(t, back, want, 1e-4)
			_ = plan.Close()
		}
	}
}

func TestComplexForwardMatchesNaiveDFT(t *testing.T) {
	for _, k := range kernels() {
		for _, n := range []int{16, 45, 64, 120} {
			t.Run(fmt.Sprintf("%s/%d", k.Name(), n), func(t *testing.T) {
				plan, err := k.NewPlan(n, Complex)
				if err != nil {
					t.Fatalf("NewPlan: %v", err)
				}
				defer plan.Close()

				x := testutil.DeterministicComplexNoise(int64(n), 1, n)
				in := make([]float32, 2*n)
				for i, c := range x {
					in[2*i], in[2*i+1] = real(c), imag(c)
				}
				out := make([]float32, 2*n)
				if err := plan.Forward(in, out, nil); err != nil {
					t.Fatalf("Forward: %v", err)
				}

				got := make([]complex64, n)
				for i := range got {
					got[i] = complex(out[2*i], out[2*i+1])
				}
				testutil.RequireSpectrumNearlyEqual(t, got, testutil.NaiveComplexDFT(x), 1e-4)

				back := make([]float32, 2*n)
				if err := plan.Inverse(out, back, nil); err != nil {
					t.Fatalf("Inverse: %v", err)
				}
				want := make([]float32, 2*n)
				for i, v := range in {
					want[i] = v * float32(n)
				}
				testutil.RequireSliceNearlyEqual(t, back, want, 1e-4)
			})
		}
	}
}

func TestKernelsAgree(t *testing.T) {
	const n = 240
	in := testutil.DeterministicSine(1000, 48000, 0.5, n)

	outs := make([][]float32, 0, 2)
	for _, k := range kernels() {
		plan, err := k.NewPlan(n, Real)
		if err != nil {
			t.Fatalf("%s NewPlan: %v", k.Name(), err)
		}
		out := make([]float32, n)
		if err := plan.Forward(in, out, nil); err != nil {
			t.Fatalf("%s Forward: %v", k.Name(), err)
		}
		outs = append(outs, out)
		_ = plan.Close()
	}
	testutil.RequireSliceNearlyEqual(t, outs[0], outs[1], 1e-4)
}

func TestPlanLengthAndClose(t *testing.T) {
	for _, k := range kernels() {
		plan, err := k.NewPlan(64, Complex)
		if err != nil {
			t.Fatalf("%s NewPlan: %v", k.Name(), err)
		}
		if plan.Size() != 64 || plan.Kind() != Complex {
			t.Fatalf("%s plan = (%d, %s)", k.Name(), plan.Size(), plan.Kind())
		}

		short := make([]float32, 64)
		full := make([]float32, 128)
		if err := plan.Forward(short, full, nil); !errors.Is(err, ErrLength) {
			t.Fatalf("%s Forward(short) error = %v, want ErrLength", k.Name(), err)
		}

		if err := plan.Close(); err != nil {
			t.Fatalf("%s Close: %v", k.Name(), err)
		}
		if err := plan.Forward(full, make([]float32, 128), nil); !errors.Is(err, ErrPlanClosed) {
			t.Fatalf("%s Forward after Close error = %v, want ErrPlanClosed", k.Name(), err)
		}
		if err := plan.Inverse(full, make([]float32, 128), nil); !errors.Is(err, ErrPlanClosed) {
			t.Fatalf("%s Inverse after Close error = %v, want ErrPlanClosed", k.Name(), err)
		}
	}
}
