package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/bouncelab/internal/world"
)

const (
	DefaultCount        = 24
	DefaultMinRadius    = 8.0
	DefaultMaxRadius    = 22.0
	DefaultWidth        = 640.0
	DefaultHeight       = 400.0
	DefaultFriction     = 0.997
	DefaultBounceEnergy = 1.06
	DefaultRepelRadius  = 120.0
	DefaultRepelForce   = 8.0
	DefaultVelocity     = 2.5
	DefaultFPS          = 60
)

type Config struct {
	Count        int       `yaml:"count"`
	SizeRange    SizeRange `yaml:"size_range"`
	Viewport     Viewport  `yaml:"viewport"`
	Friction     float64   `yaml:"friction"`
	BounceEnergy float64   `yaml:"bounce_energy"`
	Repulsion    Repulsion `yaml:"repulsion"`
	Velocity     float64   `yaml:"velocity"`
	FPS          int       `yaml:"fps"`
	Seed         int64     `yaml:"seed"`
	RetryLimit   int       `yaml:"retry_limit"`
}

type SizeRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Repulsion struct {
	Radius   float64 `yaml:"radius"`
	MaxForce float64 `yaml:"max_force"`
}

func DefaultConfig() *Config {
	return &Config{
		Count:        DefaultCount,
		SizeRange:    SizeRange{Min: DefaultMinRadius, Max: DefaultMaxRadius},
		Viewport:     Viewport{Width: DefaultWidth, Height: DefaultHeight},
		Friction:     DefaultFriction,
		BounceEnergy: DefaultBounceEnergy,
		Repulsion:    Repulsion{Radius: DefaultRepelRadius, MaxForce: DefaultRepelForce},
		Velocity:     DefaultVelocity,
		FPS:          DefaultFPS,
		RetryLimit:   world.DefaultRetryLimit,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate fails fast on configuration that indicates a mistake rather
// than a runtime condition. world.New re-checks the core subset.
func (c *Config) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}
	if c.SizeRange.Min <= 0 {
		return fmt.Errorf("size_range.min must be positive, got %g", c.SizeRange.Min)
	}
	if c.SizeRange.Min > c.SizeRange.Max {
		return fmt.Errorf("size_range.min %g > size_range.max %g", c.SizeRange.Min, c.SizeRange.Max)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %gx%g", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Friction <= 0 {
		return fmt.Errorf("friction must be positive, got %g", c.Friction)
	}
	if c.BounceEnergy <= 0 {
		return fmt.Errorf("bounce_energy must be positive, got %g", c.BounceEnergy)
	}
	if c.Repulsion.Radius < 0 || c.Repulsion.MaxForce < 0 {
		return fmt.Errorf("repulsion parameters must be non-negative")
	}
	if c.Velocity < 0 {
		return fmt.Errorf("velocity must be non-negative, got %g", c.Velocity)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.RetryLimit < 1 {
		return fmt.Errorf("retry_limit must be at least 1, got %d", c.RetryLimit)
	}
	return nil
}

// Tunables maps the config onto the world's physics constants.
func (c *Config) Tunables() world.Tunables {
	return world.Tunables{
		Friction:     c.Friction,
		BounceEnergy: c.BounceEnergy,
		RepelRadius:  c.Repulsion.Radius,
		RepelForce:   c.Repulsion.MaxForce,
	}
}

// SpawnParams maps the config onto the spawner's parameters.
func (c *Config) SpawnParams() world.SpawnParams {
	return world.SpawnParams{
		Count:      c.Count,
		MinRadius:  c.SizeRange.Min,
		MaxRadius:  c.SizeRange.Max,
		Velocity:   c.Velocity,
		RetryLimit: c.RetryLimit,
	}
}
