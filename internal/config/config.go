// Package config loads the YAML configuration. Embedded defaults are
// applied first; a user file only overrides the keys it sets.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/ambient-field/internal/field"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable of the app.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Theme  Theme        `yaml:"theme"`
	Field  FieldConfig  `yaml:"field"`
	Burst  BurstConfig  `yaml:"burst"`
	Layer  LayerConfig  `yaml:"layer"`
	Audio  AudioConfig  `yaml:"audio"`
	Seed   int64        `yaml:"seed"`
}

// WindowConfig holds the initial window settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// FieldConfig tunes the steady field.
type FieldConfig struct {
	Density           float64 `yaml:"density"`
	InteractionRadius float64 `yaml:"interaction_radius"`
	ForceDivisor      float64 `yaml:"force_divisor"`
	MaxSpeed          float64 `yaml:"max_speed"`
	LinkDistance      float64 `yaml:"link_distance"`
	SpatialIndex      bool    `yaml:"spatial_index"`
}

// BurstConfig tunes the easter-egg explosion.
type BurstConfig struct {
	Count  int `yaml:"count"`
	Frames int `yaml:"frames"`
}

// LayerConfig controls how the field layer is composited over the page.
type LayerConfig struct {
	Opacity       float64 `yaml:"opacity"`
	FadeFrequency float64 `yaml:"fade_frequency"` // spring angular frequency
	FadeDamping   float64 `yaml:"fade_damping"`   // 1 = critically damped
}

// AudioConfig controls the burst chime.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
	ChimeFile  string  `yaml:"chime_file"`
}

// Default returns the embedded defaults.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parse embedded defaults: %w", err)
	}
	return cfg, nil
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the engine cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.Window.TPS)
	case !c.Theme.valid():
		return fmt.Errorf("%w: theme %q", ErrInvalidConfig, c.Theme)
	case c.Field.Density <= 0:
		return fmt.Errorf("%w: density %v", ErrInvalidConfig, c.Field.Density)
	case c.Field.InteractionRadius < 0 || c.Field.ForceDivisor <= 0 || c.Field.MaxSpeed <= 0:
		return fmt.Errorf("%w: pointer interaction (radius %v, divisor %v, max speed %v)",
			ErrInvalidConfig, c.Field.InteractionRadius, c.Field.ForceDivisor, c.Field.MaxSpeed)
	case c.Field.LinkDistance <= 0:
		return fmt.Errorf("%w: link distance %v", ErrInvalidConfig, c.Field.LinkDistance)
	case c.Burst.Count < 0 || c.Burst.Frames <= 0:
		return fmt.Errorf("%w: burst count %d frames %d", ErrInvalidConfig, c.Burst.Count, c.Burst.Frames)
	case c.Layer.Opacity < 0 || c.Layer.Opacity > 1:
		return fmt.Errorf("%w: layer opacity %v", ErrInvalidConfig, c.Layer.Opacity)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.Audio.SampleRate)
	}
	return nil
}

// Params converts the field and burst sections to engine parameters.
func (c *Config) Params() field.Params {
	return field.Params{
		Density:           c.Field.Density,
		InteractionRadius: c.Field.InteractionRadius,
		ForceDivisor:      c.Field.ForceDivisor,
		MaxSpeed:          c.Field.MaxSpeed,
		LinkDistance:      c.Field.LinkDistance,
		SpatialIndex:      c.Field.SpatialIndex,
		BurstCount:        c.Burst.Count,
		BurstFrames:       c.Burst.Frames,
	}
}
