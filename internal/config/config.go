// Package config loads the optional gallery configuration file.
//
// Every field is optional and falls back to Default. The command only
// reads a file when -config is given.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned for configurations that parse but cannot be used.
var ErrInvalid = errors.New("config: invalid configuration")

// Camera is the viewing direction in degrees.
type Camera struct {
	Azimuth   float64 `yaml:"azimuth"`
	Elevation float64 `yaml:"elevation"`
}

// Config models the gallery YAML file.
type Config struct {
	OutputDir string `yaml:"output_dir"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Camera    Camera `yaml:"camera"`
	Only      []int  `yaml:"only,omitempty"`
}

// Default returns the configuration the gallery runs with when no file is
// given.
func Default() Config {
	return Config{
		OutputDir: "images",
		Width:     400,
		Height:    350,
		Camera:    Camera{Azimuth: 45, Elevation: 54.7356},
	}
}

// Load reads path over the defaults and validates the result against the
// known figure ids.
func Load(path string, knownIDs []int) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, knownIDs)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte, knownIDs []int) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(knownIDs); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks sizes, the output directory and the figure subset.
func (c Config) Validate(knownIDs []int) error {
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir is empty", ErrInvalid)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	known := make(map[int]bool, len(knownIDs))
	for _, id := range knownIDs {
		known[id] = true
	}
	for _, id := range c.Only {
		if !known[id] {
			return fmt.Errorf("%w: unknown figure %d", ErrInvalid, id)
		}
	}
	return nil
}
