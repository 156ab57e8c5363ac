package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-spectral/dsp/analysis"
	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/fftkernel"
	"github.com/cwbudde/algo-spectral/dsp/signal"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
	"github.com/cwbudde/algo-spectral/dsp/transform"
	"github.com/cwbudde/algo-spectral/dsp/window"
)

// goertzelTolerance is the relative level difference, in dB, at which the
// Goertzel cross-check still counts as agreeing with the FFT peak.
const goertzelTolerance = 0.01

// maxListSpan bounds --list so a typo does not print millions of rows.
const maxListSpan = 100000

// parseRange parses "lo:hi" (inclusive) or a single size.
func parseRange(s string) (int, int, error) {
	loStr, hiStr, found := strings.Cut(s, ":")
	lo, err := strconv.Atoi(strings.TrimSpace(loStr))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range %q: %w", s, err)
	}
	hi := lo
	if found {
		if hi, err = strconv.Atoi(strings.TrimSpace(hiStr)); err != nil {
			return 0, 0, fmt.Errorf("invalid range %q: %w", s, err)
		}
	}
	if hi < lo {
		return 0, 0, fmt.Errorf("invalid range %q: end before start", s)
	}
	if hi-lo > maxListSpan {
		return 0, 0, fmt.Errorf("invalid range %q: more than %d sizes", s, maxListSpan)
	}
	return lo, hi, nil
}

func printSizes(w io.Writer, k fftkernel.Kernel, kind fftkernel.Kind, lo, hi int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Size\tKind\tValid\tBins\tDown\tUp\tFactors\tConstraint\n")
	fmt.Fprintf(tw, "----\t----\t-----\t----\t----\t--\t-------\t----------\n")

	for n := lo; n <= hi; n++ {
		valid := k.IsValidSize(n, kind)
		bins := 0
		if valid {
			bins = kind.SpectrumLen(n)
		}
		constraint := fftkernel.Constraint(n, kind)
		if constraint == "" && !valid {
			constraint = "rejected by " + k.Name()
		}
		if constraint == "" {
			constraint = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%t\t%d\t%s\t%s\t%s\t%s\n",
			n, kind, valid, bins,
			sizeOrDash(k.NearestValidSize(n, kind, false)),
			sizeOrDash(k.NearestValidSize(n, kind, true)),
			formatFactors(n),
			constraint,
		)
	}
	return tw.Flush()
}

func sizeOrDash(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n)
}

func formatFactors(n int) string {
	factors, rest := fftkernel.Factorize(n)
	if len(factors) == 0 && rest <= 1 {
		return "-"
	}
	parts := make([]string, 0, len(factors)+1)
	for _, f := range factors {
		parts = append(parts, strconv.Itoa(f))
	}
	if rest > 1 {
		parts = append(parts, strconv.Itoa(rest))
	}
	return strings.Join(parts, "x")
}

func printTone(w io.Writer, p Profile, k fftkernel.Kernel, logger logrus.FieldLogger) error {
	wt, err := window.Parse(p.Window)
	if err != nil {
		return err
	}
	wf, err := signal.ParseWaveform(p.Tone.Waveform)
	if err != nil {
		return err
	}

	coreOpts := []core.ProcessorOption{
		core.WithSampleRate(p.SampleRate),
		core.WithFrameSize(p.Size),
	}
	a, err := analysis.New(coreOpts,
		analysis.WithWindow(wt),
		analysis.WithKernel(k),
		analysis.WithLogger(logger),
	)
	if err != nil {
		if up := transform.NearestValidSize(p.Size, fftkernel.Real, true); up != 0 {
			return fmt.Errorf("%w (try --size %d)", err, up)
		}
		return err
	}
	defer a.Close()

	osc := signal.NewOscillatorWithOptions(coreOpts,
		signal.WithWaveform(wf),
		signal.WithFrequency(p.Tone.Frequency),
		signal.WithGainDB(p.Tone.GainDB),
	)
	frame := make([]float32, a.Size())
	osc.Fill(frame)

	levels, err := a.Analyze(frame)
	if err != nil {
		return err
	}
	peak := analysis.PeakBin(levels)

	power, err := spectrum.BinPower(frame, peak)
	if err != nil {
		return err
	}
	// A bin-centred sinusoid of amplitude A has |X|^2 = (N*A/2)^2.
	n := float64(a.Size())
	goertzelDB := core.LinearPowerToDB(4 * power / (n * n))
	agreement := "matches FFT"
	if peakDB := float64(levels[peak]); !core.NearlyEqual(goertzelDB, peakDB, goertzelTolerance) {
		agreement = fmt.Sprintf("differs from FFT by %.2f dB", goertzelDB-peakDB)
	}
	expected := core.FrequencyBin(osc.Frequency(), a.Size(), a.SampleRate())

	wa := window.Analyze(window.Generate(wt, a.Size(), window.WithPeriodic()))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "tone\t%.2f Hz %s %.2f dB (amplitude %.4f)\n", osc.Frequency(), osc.Waveform(), osc.GainDB(), osc.Amplitude())
	fmt.Fprintf(tw, "window\t%s (ENBW %.2f bins, scallop %.2f dB)\n", wt, wa.ENBW, wa.ScallopLossdB)
	fmt.Fprintf(tw, "resolution\t%.3f Hz/bin, %d bins\n", a.BinFrequency(1), a.Bins())
	fmt.Fprintf(tw, "expected\tbin %d (%.2f Hz)\n", expected, a.BinFrequency(expected))
	fmt.Fprintf(tw, "peak\tbin %d (%.2f Hz) %.2f dBFS\n", peak, a.BinFrequency(peak), levels[peak])
	fmt.Fprintf(tw, "goertzel\tbin %d %.2f dBFS (rectangular, %s)\n", peak, goertzelDB, agreement)
	return tw.Flush()
}
