// Package config loads plot settings from a TOML file.
//
//	paper = "letter"
//	orientation = "landscape"
//	margin = 1.5
//	pen_width = 0.03
//	seed = 2
//
//	[params.noise-lines]
//	lines = 120
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"plotsketch/internal/paper"
)

type Config struct {
	Paper       string             `toml:"paper"`
	Orientation *paper.Orientation `toml:"orientation"`
	Margin      *float64           `toml:"margin"`
	PenWidth    float64            `toml:"pen_width"`
	Seed        *uint64            `toml:"seed"`
	ClosePaths  *bool              `toml:"close_paths"`
	Simplify    float64            `toml:"simplify"`
	Optimize    bool               `toml:"optimize"`
	PixelsPerCm float64            `toml:"pixels_per_cm"`
	LogLevel    string             `toml:"log_level"`

	Params map[string]map[string]float64 `toml:"params"`
}

// Default is used when no file is given.
func Default() Config {
	return Config{
		Paper:       paper.Letter.Name,
		PenWidth:    0.03,
		PixelsPerCm: 40,
		LogLevel:    "info",
	}
}

// Read decodes TOML from r on top of Default. Unknown keys are an error.
func Read(r io.Reader) (Config, error) {
	c := Default()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) {
			return Config{}, fmt.Errorf("config: %s", sme.String())
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads the file at path. An empty path yields Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Read(bytes.NewReader(data))
}

func (c Config) Validate() error {
	if _, err := paper.Lookup(c.Paper); err != nil {
		return err
	}
	if c.Margin != nil && *c.Margin < 0 {
		return fmt.Errorf("config: negative margin %g", *c.Margin)
	}
	if c.PenWidth <= 0 {
		return fmt.Errorf("config: pen_width must be positive, got %g", c.PenWidth)
	}
	if c.Simplify < 0 {
		return fmt.Errorf("config: negative simplify tolerance %g", c.Simplify)
	}
	if c.PixelsPerCm <= 0 {
		return fmt.Errorf("config: pixels_per_cm must be positive, got %g", c.PixelsPerCm)
	}
	return nil
}

// SketchParams returns the overrides for one sketch, never nil.
func (c Config) SketchParams(name string) map[string]float64 {
	out := map[string]float64{}
	for k, v := range c.Params[name] {
		out[k] = v
	}
	return out
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
