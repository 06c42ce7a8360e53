package wildfire

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"wildfire/internal/core"
)

// ErrDensityRange is returned for densities outside (0, 1].
var ErrDensityRange = errors.New("density must be greater than 0 and at most 1")

// ErrNegativeCycles is returned for a negative cycle bound.
var ErrNegativeCycles = errors.New("max cycles must not be negative")

// ErrUnknownKey is returned by FromMap for keys it does not recognise.
var ErrUnknownKey = errors.New("unknown setting")

var mapKeys = []string{"w", "h", "density", "seed", "max_cycles"}

// Config controls the forest dimensions, seeding and cycle bound.
type Config struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Density float64 `yaml:"density"`
	Seed    int64   `yaml:"seed"`

	// MaxCycles bounds the run. Zero picks a bound every fire on the grid
	// is guaranteed to finish within.
	MaxCycles int `yaml:"max_cycles"`
}

// DefaultConfig returns the classic 90x30 board.
func DefaultConfig() Config {
	return Config{
		Width:   90,
		Height:  30,
		Density: 0.6,
	}
}

// Size returns the configured grid dimensions.
func (c Config) Size() core.Size { return core.Size{W: c.Width, H: c.Height} }

// CycleLimit resolves MaxCycles. A fire lasts at most one cycle per
// flammable cell plus the fuse and burn of the last one, so W*H+2 always
// suffices.
func (c Config) CycleLimit() int {
	if c.MaxCycles > 0 {
		return c.MaxCycles
	}
	return c.Width*c.Height + 2
}

// Validate reports the first problem with the configuration.
func (c Config) Validate() error {
	if err := checkSize(c.Size()); err != nil {
		return err
	}
	if err := ValidateDensity(c.Density); err != nil {
		return err
	}
	if c.MaxCycles < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCycles, c.MaxCycles)
	}
	return nil
}

// ValidateDensity rejects densities outside (0, 1]. NaN is rejected too.
func ValidateDensity(d float64) error {
	if !(d > 0 && d <= 1) {
		return fmt.Errorf("%w: got %v", ErrDensityRange, d)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value
// pairs) on top of the defaults. Unknown keys and malformed values are
// errors.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	for k := range cfg {
		if !slices.Contains(mapKeys, k) {
			return c, fmt.Errorf("%w %q (known: %s)", ErrUnknownKey, k, strings.Join(mapKeys, ", "))
		}
	}
	if v, ok := cfg["w"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("parse w: %w", err)
		}
		c.Width = parsed
	}
	if v, ok := cfg["h"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("parse h: %w", err)
		}
		c.Height = parsed
	}
	if v, ok := cfg["density"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("parse density: %w", err)
		}
		c.Density = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("parse seed: %w", err)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["max_cycles"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("parse max_cycles: %w", err)
		}
		c.MaxCycles = parsed
	}
	return c, c.Validate()
}
