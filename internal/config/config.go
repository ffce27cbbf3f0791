// Package config resolves the widget configuration from presets, an
// optional YAML file, and environment overrides. Command-line flags are
// applied on top by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"counterapp/internal/counter"
)

// Environment variables consulted by Resolve.
const (
	EnvPreset = "COUNTER_APP_PRESET"
	EnvLocale = "COUNTER_APP_LOCALE"
	EnvTheme  = "COUNTER_APP_THEME"
)

// DefaultPreset is used when neither file nor environment names one.
const DefaultPreset = "classic"

// ErrUnknownPreset is returned for preset names not in Presets.
var ErrUnknownPreset = errors.New("unknown preset")

// Config is the fully resolved configuration of one widget instance.
type Config struct {
	Preset               string
	Value                int
	Min                  int
	Max                  int
	Target               int
	AllowOutOfRangeStart bool
	Locale               string // empty: detect from environment
	Theme                string // empty: default theme
}

// Presets are the two reference configurations. Both start at 0, which lies
// below the classic minimum, so they allow an out-of-range start.
var Presets = map[string]Config{
	"classic": {Preset: "classic", Value: 0, Min: 1, Max: 9, Target: 7, AllowOutOfRangeStart: true},
	"wide":    {Preset: "wide", Value: 0, Min: -3, Max: 30, Target: 21, AllowOutOfRangeStart: true},
}

// PresetNames returns the preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for n := range Presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Preset returns the named preset.
func Preset(name string) (Config, error) {
	c, ok := Presets[name]
	if !ok {
		return Config{}, fmt.Errorf("preset %q: %w", name, ErrUnknownPreset)
	}
	return c, nil
}

// File is the YAML document layout. Absent fields leave the preset untouched.
type File struct {
	Preset               string `yaml:"preset"`
	Value                *int   `yaml:"value"`
	Min                  *int   `yaml:"min"`
	Max                  *int   `yaml:"max"`
	Target               *int   `yaml:"target"`
	AllowOutOfRangeStart *bool  `yaml:"allow_out_of_range_start"`
	Locale               string `yaml:"locale"`
	Theme                string `yaml:"theme"`
}

// LoadFile reads a YAML config file. Unknown fields are rejected.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config file: %w", err)
	}
	return ParseFile(data)
}

// ParseFile decodes a YAML config document.
func ParseFile(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("config file: %w", err)
	}
	return f, nil
}

// Apply overlays the file onto base. Overriding value, min or max makes the
// start strict unless the file opts back in.
func (f File) Apply(base Config) Config {
	c := base
	if f.Value != nil || f.Min != nil || f.Max != nil {
		c.AllowOutOfRangeStart = false
	}
	if f.Value != nil {
		c.Value = *f.Value
	}
	if f.Min != nil {
		c.Min = *f.Min
	}
	if f.Max != nil {
		c.Max = *f.Max
	}
	if f.Target != nil {
		c.Target = *f.Target
	}
	if f.AllowOutOfRangeStart != nil {
		c.AllowOutOfRangeStart = *f.AllowOutOfRangeStart
	}
	if f.Locale != "" {
		c.Locale = f.Locale
	}
	if f.Theme != "" {
		c.Theme = f.Theme
	}
	return c
}

// Resolve builds a Config from the optional file at path and the environment
// (looked up through getenv). A non-empty preset names the base preset and
// wins over COUNTER_APP_PRESET and the file's preset field. File fields are
// applied over the chosen preset either way.
// Precedence: environment > file > preset.
func Resolve(path, preset string, getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	var f File
	if path != "" {
		var err error
		if f, err = LoadFile(path); err != nil {
			return Config{}, err
		}
	}

	name := DefaultPreset
	if f.Preset != "" {
		name = f.Preset
	}
	if v := getenv(EnvPreset); v != "" {
		name = v
	}
	if preset != "" {
		name = preset
	}
	base, err := Preset(name)
	if err != nil {
		return Config{}, err
	}
	c := f.Apply(base)

	if v := getenv(EnvLocale); v != "" {
		c.Locale = v
	}
	if v := getenv(EnvTheme); v != "" {
		c.Theme = v
	}
	return c, nil
}

// Counter returns the counter construction config.
func (c Config) Counter() counter.Config {
	return counter.Config{Value: c.Value, Min: c.Min, Max: c.Max}
}

// CounterOptions returns the construction options implied by c.
func (c Config) CounterOptions() []counter.Option {
	if c.AllowOutOfRangeStart {
		return []counter.Option{counter.AllowOutOfRangeStart()}
	}
	return nil
}

// Validate fails fast on configurations the counter would reject.
func (c Config) Validate() error {
	if c.AllowOutOfRangeStart {
		if c.Min > c.Max {
			return fmt.Errorf("config: min %d > max %d: %w", c.Min, c.Max, counter.ErrInvalidBounds)
		}
		return nil
	}
	if err := c.Counter().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Warnings lists configuration that is valid but probably unintended.
func (c Config) Warnings() []string {
	var out []string
	if c.Target < c.Min || c.Target > c.Max {
		out = append(out, fmt.Sprintf("target %d outside [%d, %d]; celebration can never fire", c.Target, c.Min, c.Max))
	}
	return out
}
