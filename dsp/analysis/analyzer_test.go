package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/fftkernel"
	"github.com/cwbudde/algo-spectral/dsp/signal"
	"github.com/cwbudde/algo-spectral/dsp/transform"
	"github.com/cwbudde/algo-spectral/dsp/window"
	"github.com/cwbudde/algo-spectral/internal/testutil"
)

const (
	testRate = 48000.0
	testSize = 1024
)

func newAnalyzer(t *testing.T, opts ...Option) *Analyzer {
	t.Helper()
	logger, _ := test.NewNullLogger()
	opts = append([]Option{WithLogger(logger)}, opts...)
	a, err := New([]core.ProcessorOption{core.WithSampleRate(testRate), core.WithFrameSize(testSize)}, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestBinCentredTonePeak(t *testing.T) {
	const bin = 32
	freq := core.BinFrequency(bin, testSize, testRate)

	for _, wt := range window.Types() {
		t.Run(wt.String(), func(t *testing.T) {
			a := newAnalyzer(t, WithWindow(wt))
			frame := testutil.DeterministicSine(freq, testRate, 0.5, testSize)

			levels, err := a.Analyze(frame)
			if err != nil {
				t.Fatalf("Analyze: %v", err)
			}
			if len(levels) != testSize/2+1 {
				t.Fatalf("len = %d, want %d", len(levels), testSize/2+1)
			}
			if got := PeakBin(levels); got != bin {
				t.Fatalf("PeakBin = %d, want %d", got, bin)
			}
			if got := float64(levels[bin]); math.Abs(got-(-6.0206)) > 0.05 {
				t.Fatalf("peak level = %.3f dBFS, want -6.02", got)
			}
		})
	}
}

func TestOscillatorToneWithBothKernels(t *testing.T) {
	for _, k := range []fftkernel.Kernel{fftkernel.AlgoFFT{}, fftkernel.Gonum{}} {
		a := newAnalyzer(t, WithKernel(k), WithWindow(window.TypeBlackmanHarris4Term))

		osc := signal.NewOscillatorWithOptions(
			[]core.ProcessorOption{core.WithSampleRate(testRate)},
			signal.WithFrequency(a.BinFrequency(100)),
			signal.WithGainDB(-12),
		)
		frame := make([]float32, testSize)
		osc.Fill(frame)

		levels, err := a.Analyze(frame)
		if err != nil {
			t.Fatalf("%s Analyze: %v", k.Name(), err)
		}
		if got := PeakBin(levels); got != 100 {
			t.Fatalf("%s PeakBin = %d, want 100", k.Name(), got)
		}
		if got := float64(levels[100]); math.Abs(got+12) > 0.05 {
			t.Fatalf("%s level = %.3f, want -12", k.Name(), got)
		}
		if levels[300] > -100 {
			t.Fatalf("%s leakage at bin 300 = %.1f dB", k.Name(), levels[300])
		}
	}
}

func TestDCLevel(t *testing.T) {
	a := newAnalyzer(t, WithWindow(window.TypeRectangular))
	levels, err := a.Analyze(testutil.DC(0.25, testSize))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got := float64(levels[0]); math.Abs(got-core.LinearToDB(0.25)) > 0.01 {
		t.Fatalf("DC level = %v, want %v", got, core.LinearToDB(0.25))
	}
}

func TestSilenceReportsFloor(t *testing.T) {
	a := newAnalyzer(t, WithFloorDB(-150))
	levels, err := a.Analyze(make([]float32, testSize))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	for k, v := range levels {
		if v != -150 {
			t.Fatalf("bin %d = %v, want -150", k, v)
		}
	}
}

func TestAnalyzeSizeMismatch(t *testing.T) {
	a := newAnalyzer(t)
	if _, err := a.Analyze(make([]float32, testSize-1)); !errors.Is(err, transform.ErrSizeMismatch) {
		t.Fatalf("error = %v, want ErrSizeMismatch", err)
	}
	if err := a.AnalyzeInto(make([]float32, 3), make([]float32, testSize)); !errors.Is(err, transform.ErrSizeMismatch) {
		t.Fatalf("AnalyzeInto error = %v, want ErrSizeMismatch", err)
	}
}

func TestNewRejectsInvalidFrameSize(t *testing.T) {
	logger, hook := test.NewNullLogger()
	_, err := New([]core.ProcessorOption{core.WithFrameSize(1000 + 1)}, WithLogger(logger))
	if !errors.Is(err, transform.ErrInvalidParameter) {
		t.Fatalf("New error = %v, want ErrInvalidParameter", err)
	}
	if hook.LastEntry() == nil {
		t.Fatal("expected engine diagnostic")
	}
}

func TestAccessors(t *testing.T) {
	a := newAnalyzer(t, WithWindow(window.TypeFlatTop))
	if a.Size() != testSize || a.Bins() != testSize/2+1 || a.SampleRate() != testRate || a.Window() != window.TypeFlatTop {
		t.Fatalf("accessors = %d %d %v %s", a.Size(), a.Bins(), a.SampleRate(), a.Window())
	}
	if got := a.BinFrequency(10); got != 468.75 {
		t.Fatalf("BinFrequency(10) = %v, want 468.75", got)
	}
}

func TestPeakBin(t *testing.T) {
	if PeakBin(nil) != -1 {
		t.Fatal("PeakBin(nil) must be -1")
	}
	if got := PeakBin([]float32{-3, 1, 1, 0}); got != 1 {
		t.Fatalf("PeakBin = %d, want 1", got)
	}
}

func TestAnalyzeIntoDoesNotAllocate(t *testing.T) {
	a := newAnalyzer(t, WithKernel(fftkernel.Gonum{}))
	frame := testutil.DeterministicNoise(2, 0.5, testSize)
	dst := make([]float32, a.Bins())

	allocs := testing.AllocsPerRun(10, func() {
		_ = a.AnalyzeInto(dst, frame)
	})
	if allocs != 0 {
		t.Fatalf("allocs per run = %v, want 0", allocs)
	}
}
