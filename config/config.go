// SPDX-License-Identifier: MIT
// Package: quadfield/config
//
// config.go — YAML configuration of the quadfield command.

package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quadfield/builder"
)

// Mesh kinds understood by the fixture builder.
const (
	MeshGrid     = "grid"
	MeshCylinder = "cylinder"
	MeshDisk     = "disk"
	MeshSphere   = "sphere"
)

// Sphere base solids.
const (
	SolidTetrahedron = "tetrahedron"
	SolidOctahedron  = "octahedron"
	SolidIcosahedron = "icosahedron"
)

// Logging formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidConfig is returned by Validate (and Load) for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full command configuration.
type Config struct {
	Mesh      MeshConfig      `yaml:"mesh"`
	Hierarchy HierarchyConfig `yaml:"hierarchy"`
	Optimizer OptimizerConfig `yaml:"optimizer"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// MeshConfig selects the fixture surface. Rows and Cols are rings and
// segments for a cylinder; Cols is the rim segment count of a disk.
type MeshConfig struct {
	Kind         string  `yaml:"kind"`
	Rows         int     `yaml:"rows"`
	Cols         int     `yaml:"cols"`
	Spacing      float64 `yaml:"spacing"`
	Radius       float64 `yaml:"radius"`
	Height       float64 `yaml:"height"`
	Solid        string  `yaml:"solid"`
	Subdivisions int     `yaml:"subdivisions"`
}

// HierarchyConfig drives the coarsener.
type HierarchyConfig struct {
	Levels int     `yaml:"levels"`
	Seed   int64   `yaml:"seed"`
	Scale  float64 `yaml:"scale"`
}

// OptimizerConfig mirrors the optimizer options.
type OptimizerConfig struct {
	Iterations int  `yaml:"iterations"`
	Workers    int  `yaml:"workers"`
	Validate   bool `yaml:"validate"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Mesh: MeshConfig{
			Kind:         MeshGrid,
			Rows:         32,
			Cols:         32,
			Spacing:      1,
			Radius:       1,
			Height:       4,
			Solid:        SolidIcosahedron,
			Subdivisions: 3,
		},
		Hierarchy: HierarchyConfig{Levels: 4, Seed: 1, Scale: 1},
		Optimizer: OptimizerConfig{Iterations: 6, Workers: 1},
		Logging:   LoggingConfig{Level: "info", Format: FormatText},
	}
}

// Load reads path over Default. Environment references ($VAR, ${VAR}) are
// expanded before decoding and unknown keys are rejected. An empty path
// returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %q: %w", path, err)
	}

	dec := yaml.NewDecoder(strings.NewReader(os.ExpandEnv(string(data))))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %q: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %q: %w", path, err)
	}

	return cfg, nil
}

// Validate reports the first out-of-range value, wrapped with ErrInvalidConfig.
func (c Config) Validate() error {
	switch c.Mesh.Kind {
	case MeshGrid:
		if c.Mesh.Rows < 2 || c.Mesh.Cols < 2 {
			return fmt.Errorf("%w: grid needs rows, cols >= 2 (got %d×%d)", ErrInvalidConfig, c.Mesh.Rows, c.Mesh.Cols)
		}
		if !positive(c.Mesh.Spacing) {
			return fmt.Errorf("%w: spacing must be positive (got %v)", ErrInvalidConfig, c.Mesh.Spacing)
		}
	case MeshCylinder:
		if c.Mesh.Rows < 2 || c.Mesh.Cols < 3 {
			return fmt.Errorf("%w: cylinder needs rows >= 2, cols >= 3 (got %d×%d)", ErrInvalidConfig, c.Mesh.Rows, c.Mesh.Cols)
		}
		if !positive(c.Mesh.Radius) || !positive(c.Mesh.Height) {
			return fmt.Errorf("%w: radius and height must be positive", ErrInvalidConfig)
		}
	case MeshDisk:
		if c.Mesh.Cols < 3 {
			return fmt.Errorf("%w: disk needs cols >= 3 (got %d)", ErrInvalidConfig, c.Mesh.Cols)
		}
		if !positive(c.Mesh.Radius) {
			return fmt.Errorf("%w: radius must be positive (got %v)", ErrInvalidConfig, c.Mesh.Radius)
		}
	case MeshSphere:
		switch c.Mesh.Solid {
		case SolidTetrahedron, SolidOctahedron, SolidIcosahedron:
		default:
			return fmt.Errorf("%w: unknown solid %q", ErrInvalidConfig, c.Mesh.Solid)
		}
		if c.Mesh.Subdivisions < 0 || c.Mesh.Subdivisions > builder.MaxSphereSubdivisions {
			return fmt.Errorf("%w: subdivisions must be in [0, %d] (got %d)",
				ErrInvalidConfig, builder.MaxSphereSubdivisions, c.Mesh.Subdivisions)
		}
		if !positive(c.Mesh.Radius) {
			return fmt.Errorf("%w: radius must be positive (got %v)", ErrInvalidConfig, c.Mesh.Radius)
		}
	default:
		return fmt.Errorf("%w: unknown mesh kind %q", ErrInvalidConfig, c.Mesh.Kind)
	}

	if c.Hierarchy.Levels < 1 {
		return fmt.Errorf("%w: levels must be >= 1 (got %d)", ErrInvalidConfig, c.Hierarchy.Levels)
	}
	if !positive(c.Hierarchy.Scale) {
		return fmt.Errorf("%w: scale must be positive (got %v)", ErrInvalidConfig, c.Hierarchy.Scale)
	}
	if c.Optimizer.Iterations < 1 || c.Optimizer.Workers < 1 {
		return fmt.Errorf("%w: iterations and workers must be >= 1", ErrInvalidConfig)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch c.Logging.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}

func positive(x float64) bool { return x > 0 && !math.IsInf(x, 1) }
