package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/log"
	"github.com/df07/go-sdf-raymarcher/pkg/renderer"
	"gopkg.in/yaml.v2"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config represents the main configuration
type Config struct {
	Render RenderConfig `yaml:"render"`
	Output OutputConfig `yaml:"output"`
	Scene  SceneConfig  `yaml:"scene"`
	Log    LogConfig    `yaml:"log"`
}

// RenderConfig contains image and parallelism settings
type RenderConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	FOV      float64 `yaml:"fov"`       // Vertical field of view in degrees
	Workers  int     `yaml:"workers"`   // 0 means one per CPU
	SpanSize int     `yaml:"span_size"` // Pixels per task, 0 means one row
}

// OutputConfig contains where the image goes
type OutputConfig struct {
	Path string `yaml:"path"` // Extension selects ppm, png or bmp
}

// SceneConfig selects a built-in scene
type SceneConfig struct {
	Name string `yaml:"name"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, notice, warning, error
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Width:    1024,
			Height:   768,
			FOV:      60,
			Workers:  0,
			SpanSize: 0,
		},
		Output: OutputConfig{
			Path: "out.ppm",
		},
		Scene: SceneConfig{
			Name: "default",
		},
		Log: LogConfig{
			Level: "notice",
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values; unknown keys are an error.
func Load(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	if err := yaml.UnmarshalStrict(data, config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return config, nil
}

// Marshal serializes the configuration to YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("error serializing config: %w", err)
	}
	return data, nil
}

// Save writes the configuration to a YAML file
func Save(config *Config, filePath string) error {
	data, err := config.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate checks every field; the error lists the first problem found
func (c *Config) Validate() error {
	r := c.Render
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("%w: render size %dx%d", ErrInvalidConfig, r.Width, r.Height)
	case !(r.FOV > 0 && r.FOV < 180):
		return fmt.Errorf("%w: fov %g is not in (0, 180) degrees", ErrInvalidConfig, r.FOV)
	case r.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, r.Workers)
	case r.SpanSize < 0:
		return fmt.Errorf("%w: span_size %d", ErrInvalidConfig, r.SpanSize)
	case c.Output.Path == "":
		return fmt.Errorf("%w: empty output path", ErrInvalidConfig)
	case c.Scene.Name == "":
		return fmt.Errorf("%w: empty scene name", ErrInvalidConfig)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// RendererConfig converts the render section, with the field of view in
// radians
func (c *Config) RendererConfig() renderer.Config {
	return renderer.Config{
		Width:    c.Render.Width,
		Height:   c.Render.Height,
		FOV:      c.Render.FOV * math.Pi / 180,
		Workers:  c.Render.Workers,
		SpanSize: c.Render.SpanSize,
		March:    core.DefaultMarchConfig(),
	}
}
