// SPDX-License-Identifier: MIT

// Package config loads the linmath CLI configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid value")

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Config holds the complete CLI configuration.
type Config struct {
	General     GeneralConfig     `toml:"general"`
	Output      OutputConfig      `toml:"output"`
	Determinant DeterminantConfig `toml:"determinant"`
	Render      RenderConfig      `toml:"render"`
}

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format    string `toml:"format"`    // text | yaml | toml
	Precision int    `toml:"precision"` // digits after the decimal point for text output; -1 = shortest
}

// DeterminantConfig controls the determinant and comparison policy.
type DeterminantConfig struct {
	LegacySign bool    `toml:"legacy_sign"` // skip the -1-per-swap correction
	Epsilon    float64 `toml:"epsilon"`     // tolerance for approximate comparisons
}

// RenderConfig controls heat-map output.
type RenderConfig struct {
	WidthCM     float64 `toml:"width_cm"`
	HeightCM    float64 `toml:"height_cm"`
	PaletteSize int     `toml:"palette_size"`
	Title       string  `toml:"title"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	// zero is a meaningful precision and epsilon, so these are seeded
	// before decoding instead of being filled in afterwards
	cfg := &Config{
		Output:      OutputConfig{Precision: -1},
		Determinant: DeterminantConfig{Epsilon: 1e-9},
	}
	cfg.applyDefaults()

	return cfg
}

// Load reads a TOML file. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills values for which zero means unset.
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.Render.WidthCM == 0 {
		c.Render.WidthCM = 12
	}
	if c.Render.HeightCM == 0 {
		c.Render.HeightCM = 12
	}
	if c.Render.PaletteSize == 0 {
		c.Render.PaletteSize = 32
	}
}

// Validate checks ranges after defaults were applied.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatYAML, FormatTOML:
	default:
		return fmt.Errorf("output.format %q: %w", c.Output.Format, ErrInvalid)
	}
	if c.Output.Precision < -1 {
		return fmt.Errorf("output.precision %d: %w", c.Output.Precision, ErrInvalid)
	}
	if c.Determinant.Epsilon < 0 {
		return fmt.Errorf("determinant.epsilon %g: %w", c.Determinant.Epsilon, ErrInvalid)
	}
	if c.Render.WidthCM < 0 || c.Render.HeightCM < 0 {
		return fmt.Errorf("render size: %w", ErrInvalid)
	}
	if c.Render.PaletteSize < 2 {
		return fmt.Errorf("render.palette_size %d: %w", c.Render.PaletteSize, ErrInvalid)
	}

	return nil
}
