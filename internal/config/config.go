package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/trimesh/internal/motion"
	"github.com/san-kum/trimesh/internal/sim"
)

const (
	DefaultWidth     = 1080.0
	DefaultHeight    = 720.0
	DefaultFramerate = 60.0
	DefaultPoints    = 500
	DefaultFPS       = 30
)

var (
	ErrFramerate = errors.New("config: framerate must be positive")
	ErrDomain    = errors.New("config: width and height must be positive")
	ErrPoints    = errors.New("config: point count must not be negative")
)

type Config struct {
	Width     float64            `yaml:"width" toml:"width"`
	Height    float64            `yaml:"height" toml:"height"`
	Framerate float64            `yaml:"framerate" toml:"framerate"`
	Points    int                `yaml:"points" toml:"points"`
	Corners   bool               `yaml:"corners" toml:"corners"`
	Seed      int64              `yaml:"seed" toml:"seed"`
	FPS       int                `yaml:"fps" toml:"fps"`
	Speed     motion.VariedValue `yaml:"speed" toml:"speed"`
	Retarget  motion.VariedValue `yaml:"retarget" toml:"retarget"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Framerate: DefaultFramerate,
		Points:    DefaultPoints,
		FPS:       DefaultFPS,
		Speed:     motion.VariedValue{Mean: 50, Variance: 0.2},
		Retarget:  motion.VariedValue{Mean: 5, Variance: 0.5},
	}
}

// Load reads a YAML file, or TOML when the extension is .toml, over the
// defaults.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path over a copy of base. Keys missing from the file keep
// the base values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := *base
	cfg := &c
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
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

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Validate guards the CLI against values the simulation cannot step with.
// The simulation itself accepts anything.
func (c *Config) Validate() error {
	if c.Framerate <= 0 {
		return fmt.Errorf("%w, got %g", ErrFramerate, c.Framerate)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w, got %gx%g", ErrDomain, c.Width, c.Height)
	}
	if c.Points < 0 {
		return fmt.Errorf("%w, got %d", ErrPoints, c.Points)
	}
	return nil
}

func (c *Config) Settings() motion.Settings {
	return motion.Settings{Speed: c.Speed, Retarget: c.Retarget}
}

// NewSimulation builds and populates a simulation: corner anchors first
// when enabled, then the random movers.
func (c *Config) NewSimulation(opts ...sim.Option) *sim.Simulation {
	opts = append([]sim.Option{sim.WithSeed(c.Seed)}, opts...)
	s := sim.New(c.Width, c.Height, c.Framerate, c.Settings(), opts...)
	if c.Corners {
		s.AddCorners()
	}
	s.Populate(c.Points)
	return s
}
