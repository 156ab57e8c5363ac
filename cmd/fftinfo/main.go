// Command fftinfo reports transform size validity and analyses a test tone
// with the spectral transform engine.
//
// Usage:
//
//	fftinfo [flags]
//
// Examples:
//
//	fftinfo --size 1000
//	fftinfo --kind complex --list 90:130
//	fftinfo --size 4096 --tone 1000 --window blackman-harris
//	fftinfo --config profile.yaml --kernel gonum --verbose
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-spectral/dsp/fftkernel"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var v flagValues
	fs := newFlagSet(&v)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fftinfo [flags]\n\n")
		fmt.Fprintf(stderr, "Reports transform size validity and analyses a test tone.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	p, err := resolve(fs, v)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, p.Verbose)

	kind, err := fftkernel.ParseKind(p.Kind)
	if err != nil {
		return err
	}
	kernel, err := fftkernel.Lookup(p.Kernel)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"kernel":      kernel.Name(),
		"alignment":   kernel.Alignment(),
		"kind":        kind.String(),
		"sample_rate": p.SampleRate,
	}).Debug("fftinfo starting")

	if algo, ok := kernel.(fftkernel.AlgoFFT); ok && p.Verbose && algo.IsValidSize(p.Size, kind) {
		logger.WithFields(logrus.Fields{
			"size":   p.Size,
			"native": algo.Native(p.Size, kind),
		}).Debug("algofft plan path")
	}

	lo, hi := p.Size, p.Size
	if p.List != "" {
		if lo, hi, err = parseRange(p.List); err != nil {
			return err
		}
	}
	if err := printSizes(stdout, kernel, kind, lo, hi); err != nil {
		return err
	}

	if p.Tone.Frequency <= 0 {
		return nil
	}
	if kind != fftkernel.Real {
		return fmt.Errorf("tone report needs a real transform, got %s", kind)
	}
	fmt.Fprintln(stdout)
	return printTone(stdout, p, kernel, logger)
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.InfoLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
