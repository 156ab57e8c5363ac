package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Profile holds every fftinfo setting. It is read from YAML with --config
// and then overridden by any flag given explicitly.
type Profile struct {
	Size       int     `yaml:"size"`
	Kind       string  `yaml:"kind"`
	Kernel     string  `yaml:"kernel"`
	List       string  `yaml:"list"`
	SampleRate float64 `yaml:"sample_rate"`
	Window     string  `yaml:"window"`
	Tone       Tone    `yaml:"tone"`
	Verbose    bool    `yaml:"verbose"`
}

// Tone describes the test oscillator. A zero frequency disables the tone report.
type Tone struct {
	Frequency float64 `yaml:"frequency"`
	Waveform  string  `yaml:"waveform"`
	GainDB    float64 `yaml:"gain_db"`
}

func defaultProfile() Profile {
	return Profile{
		Size:       1024,
		Kind:       "real",
		Kernel:     "algofft",
		SampleRate: 48000,
		Window:     "hann",
		Tone: Tone{
			Waveform: "sine",
			GainDB:   -6,
		},
	}
}

// loadProfile decodes path over base. Keys missing from the file keep the
// values of base.
func loadProfile(path string, base Profile) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read profile: %w", err)
	}
	p := base
	if err := yaml.Unmarshal(data, &p); err != nil {
		return base, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return p, nil
}

type flagValues struct {
	configPath string
	profile    Profile
}

func newFlagSet(v *flagValues) *pflag.FlagSet {
	d := defaultProfile()
	fs := pflag.NewFlagSet("fftinfo", pflag.ContinueOnError)
	fs.StringVarP(&v.configPath, "config", "c", "", "YAML profile with default settings")
	fs.IntVarP(&v.profile.Size, "size", "n", d.Size, "transform size to inspect")
	fs.StringVarP(&v.profile.Kind, "kind", "k", d.Kind, "transform kind (real, complex)")
	fs.StringVar(&v.profile.Kernel, "kernel", d.Kernel, "transform kernel (algofft, gonum)")
	fs.StringVarP(&v.profile.List, "list", "l", d.List, "print validity for a size range, e.g. 90:130")
	fs.Float64VarP(&v.profile.SampleRate, "sample-rate", "r", d.SampleRate, "sample rate in Hz")
	fs.StringVarP(&v.profile.Window, "window", "w", d.Window, "analysis window for the tone report")
	fs.Float64VarP(&v.profile.Tone.Frequency, "tone", "t", d.Tone.Frequency, "test tone frequency in Hz (0 disables)")
	fs.StringVar(&v.profile.Tone.Waveform, "waveform", d.Tone.Waveform, "test tone waveform (sine, saw, square)")
	fs.Float64Var(&v.profile.Tone.GainDB, "gain-db", d.Tone.GainDB, "test tone gain in dB")
	fs.BoolVarP(&v.profile.Verbose, "verbose", "v", d.Verbose, "enable debug logging")
	return fs
}

// resolve merges defaults, the optional profile and explicitly set flags,
// in increasing priority.
func resolve(fs *pflag.FlagSet, v flagValues) (Profile, error) {
	p := defaultProfile()
	if v.configPath != "" {
		var err error
		if p, err = loadProfile(v.configPath, p); err != nil {
			return p, err
		}
	}

	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("size", func() { p.Size = v.profile.Size })
	set("kind", func() { p.Kind = v.profile.Kind })
	set("kernel", func() { p.Kernel = v.profile.Kernel })
	set("list", func() { p.List = v.profile.List })
	set("sample-rate", func() { p.SampleRate = v.profile.SampleRate })
	set("window", func() { p.Window = v.profile.Window })
	set("tone", func() { p.Tone.Frequency = v.profile.Tone.Frequency })
	set("waveform", func() { p.Tone.Waveform = v.profile.Tone.Waveform })
	set("gain-db", func() { p.Tone.GainDB = v.profile.Tone.GainDB })
	set("verbose", func() { p.Verbose = v.profile.Verbose })
	return p, nil
}
