// Package config resolves the settings of a wildfire run from defaults, an
// optional YAML file, command-line flags and, for the density, the user.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"wildfire/internal/sims/wildfire"
)

// Viewer selects the display sink.
type Viewer string

const (
	ViewerText Viewer = "text"
	ViewerTUI  Viewer = "tui"
	ViewerGUI  Viewer = "gui"
)

var (
	// ErrUnknownViewer is returned for viewer names other than text, tui and gui.
	ErrUnknownViewer = errors.New("unknown viewer")
	// ErrNegativeDelay is returned for negative pacing delays.
	ErrNegativeDelay = errors.New("delays must not be negative")
)

// Config is everything a run needs.
type Config struct {
	Forest        wildfire.Config `yaml:",inline"`
	CycleDelay    time.Duration   `yaml:"cycle_delay"`
	IgnitionDelay time.Duration   `yaml:"ignition_delay"`
	Viewer        Viewer          `yaml:"viewer"`
	Color         bool            `yaml:"color"`
	Scale         int             `yaml:"scale"`
	LogLevel      string          `yaml:"log_level"`

	// DensitySet records whether a file or flag supplied the density. When it
	// is false the user is asked.
	DensitySet bool `yaml:"-"`
}

// Default returns the settings of the classic terminal run.
func Default() Config {
	return Config{
		Forest:        wildfire.DefaultConfig(),
		CycleDelay:    250 * time.Millisecond,
		IgnitionDelay: 1500 * time.Millisecond,
		Viewer:        ViewerText,
		Scale:         8,
		LogLevel:      "warn",
	}
}

// Validate checks every field, density included.
func (c Config) Validate() error {
	if err := c.ValidateSettings(); err != nil {
		return err
	}
	return wildfire.ValidateDensity(c.Forest.Density)
}

// ValidateSettings checks every field except the density, so bad flags are
// reported before the user is asked for one.
func (c Config) ValidateSettings() error {
	forest := c.Forest
	forest.Density = 1
	if err := forest.Validate(); err != nil {
		return err
	}
	if c.CycleDelay < 0 || c.IgnitionDelay < 0 {
		return ErrNegativeDelay
	}
	switch c.Viewer {
	case ViewerText, ViewerTUI, ViewerGUI:
	default:
		return fmt.Errorf("%w %q", ErrUnknownViewer, c.Viewer)
	}
	return nil
}

// LoadFile overlays the YAML file at path onto c. Keys missing from the file
// keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return c.decode(data, path)
}

func (c *Config) decode(data []byte, name string) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", name, err)
	}
	var probe struct {
		Density *float64 `yaml:"density"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("parse config %s: %w", name, err)
	}
	if probe.Density != nil {
		c.DensitySet = true
	}
	return nil
}

// Flags holds the command-line overrides registered by Bind.
type Flags struct {
	fs     *pflag.FlagSet
	v      Config
	viewer string
	path   string
}

// Bind registers the run flags on fs.
func Bind(fs *pflag.FlagSet) *Flags {
	d := Default()
	f := &Flags{fs: fs}
	fs.StringVar(&f.path, "config", "", "YAML file with run settings")
	fs.IntVar(&f.v.Forest.Width, "width", d.Forest.Width, "grid width in cells")
	fs.IntVar(&f.v.Forest.Height, "height", d.Forest.Height, "grid height in cells")
	fs.Float64Var(&f.v.Forest.Density, "density", 0, "chance that a cell holds a tree, in (0, 1]; asked for when unset")
	fs.Int64Var(&f.v.Forest.Seed, "seed", 0, "seed for planting the forest (0 picks one from the clock)")
	fs.IntVar(&f.v.Forest.MaxCycles, "max-cycles", 0, "stop after this many cycles (0 sizes the bound from the grid)")
	fs.DurationVar(&f.v.CycleDelay, "cycle-delay", d.CycleDelay, "pause between cycles")
	fs.DurationVar(&f.v.IgnitionDelay, "ignition-delay", d.IgnitionDelay, "pause between planting and ignition")
	fs.StringVar(&f.viewer, "viewer", string(d.Viewer), "display: text, tui or gui")
	fs.BoolVar(&f.v.Color, "color", false, "color the text viewer")
	fs.IntVar(&f.v.Scale, "scale", d.Scale, "pixels per cell in the gui viewer")
	fs.StringVar(&f.v.LogLevel, "log-level", d.LogLevel, "debug, info, warn or error")
	return f
}

// Resolve builds the final configuration: defaults, then the config file,
// then every flag given explicitly. The result is not validated.
func (f *Flags) Resolve() (Config, error) {
	cfg := Default()
	if f.path != "" {
		if err := cfg.LoadFile(f.path); err != nil {
			return cfg, err
		}
	}
	fs := f.fs
	if fs.Changed("width") {
		cfg.Forest.Width = f.v.Forest.Width
	}
	if fs.Changed("height") {
		cfg.Forest.Height = f.v.Forest.Height
	}
	if fs.Changed("density") {
		cfg.Forest.Density = f.v.Forest.Density
		cfg.DensitySet = true
	}
	if fs.Changed("seed") {
		cfg.Forest.Seed = f.v.Forest.Seed
	}
	if fs.Changed("max-cycles") {
		cfg.Forest.MaxCycles = f.v.Forest.MaxCycles
	}
	if fs.Changed("cycle-delay") {
		cfg.CycleDelay = f.v.CycleDelay
	}
	if fs.Changed("ignition-delay") {
		cfg.IgnitionDelay = f.v.IgnitionDelay
	}
	if fs.Changed("viewer") {
		cfg.Viewer = Viewer(f.viewer)
	}
	if fs.Changed("color") {
		cfg.Color = f.v.Color
	}
	if fs.Changed("scale") {
		cfg.Scale = f.v.Scale
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.v.LogLevel
	}
	return cfg, nil
}
