// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen Screen `yaml:"screen"`
	Grid   Grid   `yaml:"grid"`
	Game   Game   `yaml:"game"`
	Grass  Grass  `yaml:"grass"`
	Font   Font   `yaml:"font"`
	Audio  Audio  `yaml:"audio"`

	// Derived values computed after loading
	Derived Derived `yaml:"-"`
}

// Screen holds display settings. The window is fixed-size; there is no
// resize handling.
type Screen struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// Grid holds board geometry. CellSize is the movement step in pixels;
// all entity coordinates are multiples of it.
type Grid struct {
	CellSize int `yaml:"cell_size"`
}

// Game holds gameplay tunables. The config menu mutates these in place at
// runtime, so they double as the live settings.
type Game struct {
	TickIntervalMS   int `yaml:"tick_interval_ms"`   // ms per snake move; smaller = faster
	FoodCount        int `yaml:"food_count"`         // food cells per spawn wave
	ObstacleCount    int `yaml:"obstacle_count"`     // obstacles at game start
	ObstaclesPerFood int `yaml:"obstacles_per_food"` // obstacles added on each food eaten
	MaxObstacles     int `yaml:"max_obstacles"`      // cap on total obstacles (0 = unlimited)
	FlashlightRadius int `yaml:"flashlight_radius"`  // visible disk radius in cells
	SparkleBurst     int `yaml:"sparkle_burst"`      // sparkles emitted per collision
}

// Grass holds the procedural grass field parameters.
type Grass struct {
	BladeCount    int     `yaml:"blade_count"`
	WaveSpeed     float64 `yaml:"wave_speed"`
	WaveAmplitude float64 `yaml:"wave_amplitude"`
}

// Font holds text rendering settings. An empty path uses raylib's built-in
// font; a missing file degrades the same way.
type Font struct {
	Path      string `yaml:"path"`
	MenuSize  int    `yaml:"menu_size"`
	ScoreSize int    `yaml:"score_size"`
}

// Audio holds sound effect settings.
type Audio struct {
	Enabled   bool    `yaml:"enabled"`
	SFXVolume float64 `yaml:"sfx_volume"`
}

// Derived holds computed values derived from the loaded config.
type Derived struct {
	Cols int // Screen.Width / Grid.CellSize
	Rows int // Screen.Height / Grid.CellSize
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.Grid.CellSize <= 0 {
		c.Grid.CellSize = 20
	}
	c.Derived.Cols = c.Screen.Width / c.Grid.CellSize
	c.Derived.Rows = c.Screen.Height / c.Grid.CellSize
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
