package main

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/matrix"

	"github.com/osuushi/gridcover/advanced"
)

// SweepConfig is the YAML form of a verification sweep. The inverse transform
// maps destination pixels into source space. It is either given as a raw
// matrix, or built from its parts, applied in the order scale, shear,
// rotate, translate.
type SweepConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Capacity  int     `yaml:"capacity"`
	Tolerance float64 `yaml:"tolerance"`
	Workers   int     `yaml:"workers"`

	Matrix    []float64 `yaml:"matrix,omitempty"`
	Scale     Pair      `yaml:"scale"`
	Shear     float64   `yaml:"shear"`
	Rotate    float64   `yaml:"rotate"` // degrees, counterclockwise
	Translate Pair      `yaml:"translate"`
}

type Pair struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		Width:     64,
		Height:    64,
		Tolerance: advanced.DefaultTolerance,
		Scale:     Pair{X: 1, Y: 1},
	}
}

// LoadSweepConfig reads a YAML file over the defaults. Keys missing from the
// file keep their default values.
func LoadSweepConfig(path string) (SweepConfig, error) {
	cfg := DefaultSweepConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading sweep config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing sweep config %s", path)
	}
	return cfg, cfg.Validate()
}

func (cfg SweepConfig) Validate() error {
	if cfg.Width < 0 || cfg.Height < 0 {
		return errors.Errorf("image size must not be negative, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Capacity < 0 {
		return errors.Errorf("capacity must not be negative, got %d", cfg.Capacity)
	}
	if cfg.Matrix != nil && len(cfg.Matrix) != 6 {
		return errors.Errorf("matrix needs 6 entries [a b c d e f], got %d", len(cfg.Matrix))
	}
	m := cfg.Inverse()
	if det := m[0]*m[3] - m[1]*m[2]; det == 0 || math.IsNaN(det) {
		return errors.New("inverse transform is singular")
	}
	return nil
}

func (cfg SweepConfig) Inverse() matrix.Matrix {
	if len(cfg.Matrix) == 6 {
		var m matrix.Matrix
		copy(m[:], cfg.Matrix)
		return m
	}
	return matrix.Scale(cfg.Scale.X, cfg.Scale.Y).
		Mul(matrix.Matrix{1, 0, cfg.Shear, 1, 0, 0}).
		RotateDeg(cfg.Rotate).
		Translate(cfg.Translate.X, cfg.Translate.Y)
}

func (cfg SweepConfig) Sweep() advanced.Sweep {
	return advanced.Sweep{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Inverse:   cfg.Inverse(),
		Capacity:  cfg.Capacity,
		Tolerance: cfg.Tolerance,
		Workers:   cfg.Workers,
	}
}

// Dump renders the effective configuration, for --verbose runs.
func (cfg SweepConfig) Dump() string {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err.Error()
	}
	return string(data)
}
