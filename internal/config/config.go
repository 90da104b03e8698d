package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/san-kum/sortviz/internal/sorts"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth        = 100
	DefaultHeight       = 1
	DefaultSpeed        = 1
	DefaultAlgorithm    = "Bubble sort"
	DefaultShrinkFactor = 1.3
	DefaultBase         = 10
	DefaultZoom         = 4
	DefaultCaptures     = 100
)

const (
	GenerateIncreasing = "Increasing"
	GenerateDecreasing = "Decreasing"
)

// Generators lists the initial row orders.
var Generators = []string{GenerateIncreasing, GenerateDecreasing}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Width        int                `yaml:"width" toml:"width" env:"SORTVIZ_WIDTH"`
	Height       int                `yaml:"height" toml:"height" env:"SORTVIZ_HEIGHT"`
	Speed        int                `yaml:"speed" toml:"speed" env:"SORTVIZ_SPEED"`
	Algorithm    string             `yaml:"algorithm" toml:"algorithm" env:"SORTVIZ_ALGORITHM"`
	Pivot        string             `yaml:"pivot" toml:"pivot" env:"SORTVIZ_PIVOT"`
	ShrinkFactor float64            `yaml:"shrink_factor" toml:"shrink_factor" env:"SORTVIZ_SHRINK_FACTOR"`
	Base         int                `yaml:"base" toml:"base" env:"SORTVIZ_BASE"`
	Distribution DistributionConfig `yaml:"distribution" toml:"distribution"`
	Generate     string             `yaml:"generate" toml:"generate" env:"SORTVIZ_GENERATE"`
	Zoom         int                `yaml:"zoom" toml:"zoom" env:"SORTVIZ_ZOOM"`
	Captures     int                `yaml:"captures" toml:"captures" env:"SORTVIZ_CAPTURES"`
	Seed         uint64             `yaml:"seed" toml:"seed" env:"SORTVIZ_SEED"`
}

// DistributionConfig holds the Beta shape parameters biasing the shuffle.
type DistributionConfig struct {
	Alpha float64 `yaml:"alpha" toml:"alpha" env:"SORTVIZ_ALPHA"`
	Beta  float64 `yaml:"beta" toml:"beta" env:"SORTVIZ_BETA"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Speed:        DefaultSpeed,
		Algorithm:    DefaultAlgorithm,
		Pivot:        string(sorts.PivotStart),
		ShrinkFactor: DefaultShrinkFactor,
		Base:         DefaultBase,
		Distribution: DistributionConfig{Alpha: 1, Beta: 1},
		Generate:     GenerateIncreasing,
		Zoom:         DefaultZoom,
		Captures:     DefaultCaptures,
	}
}

// Load reads a yaml or toml file over the defaults. The format follows the
// file extension; anything but .toml is parsed as yaml.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto decodes the file over cfg. Keys absent from the file keep their
// current values, so a file can refine a preset.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if isTOML(path) {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	if isTOML(path) {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return toml.NewEncoder(f).Encode(cfg)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from SORTVIZ_* environment variables. Unset
// variables leave the field alone.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Validate rejects configurations a session cannot run. Non-positive Beta
// shapes are rejected here because they never terminate in the sampler.
func (c *Config) Validate() error {
	switch {
	case c.Width < 1:
		return fmt.Errorf("%w: width must be at least 1, got %d", ErrInvalid, c.Width)
	case c.Height < 1:
		return fmt.Errorf("%w: height must be at least 1, got %d", ErrInvalid, c.Height)
	case c.Speed < 1:
		return fmt.Errorf("%w: speed must be at least 1, got %d", ErrInvalid, c.Speed)
	case c.Zoom < 1:
		return fmt.Errorf("%w: zoom must be at least 1, got %d", ErrInvalid, c.Zoom)
	case c.Captures < 2:
		return fmt.Errorf("%w: captures must be at least 2, got %d", ErrInvalid, c.Captures)
	case !(c.ShrinkFactor > 1):
		return fmt.Errorf("%w: shrink_factor must be greater than 1, got %v", ErrInvalid, c.ShrinkFactor)
	case c.Base < 2:
		return fmt.Errorf("%w: base must be at least 2, got %d", ErrInvalid, c.Base)
	case !(c.Distribution.Alpha > 0) || !(c.Distribution.Beta > 0):
		return fmt.Errorf("%w: distribution alpha and beta must be positive, got %v and %v",
			ErrInvalid, c.Distribution.Alpha, c.Distribution.Beta)
	case !sorts.Has(c.Algorithm):
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalid, c.Algorithm)
	}
	if _, err := sorts.ParsePivot(c.Pivot); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	for _, g := range Generators {
		if c.Generate == g {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown generate policy %q", ErrInvalid, c.Generate)
}

// Params converts the algorithm knobs for the sorts registry. The random
// source is left for the session to fill in.
func (c *Config) Params() sorts.Params {
	return sorts.Params{
		Pivot:        sorts.PivotPolicy(c.Pivot),
		ShrinkFactor: c.ShrinkFactor,
		Base:         c.Base,
	}
}

// Row builds one unshuffled row according to the generate policy.
func (c *Config) Row() []float64 {
	row := make([]float64, c.Width)
	for x := range row {
		if c.Generate == GenerateDecreasing {
			row[x] = float64(c.Width - 1 - x)
		} else {
			row[x] = float64(x)
		}
	}
	return row
}
