package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if err := config.Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}

	rc := config.RendererConfig()
	if rc.Width != 1024 || rc.Height != 768 {
		t.Errorf("Expected 1024x768, got %dx%d", rc.Width, rc.Height)
	}
	if !scalar.EqualWithinAbs(rc.FOV, math.Pi/3, 1e-12) {
		t.Errorf("Expected pi/3 radians, got %f", rc.FOV)
	}
	if err := rc.Validate(); err != nil {
		t.Errorf("Converted config should be valid: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	config := DefaultConfig()
	config.Render.Width = 320
	config.Render.Height = 240
	config.Render.FOV = 45
	config.Render.Workers = 3
	config.Render.SpanSize = 64
	config.Output.Path = "frame.png"
	config.Scene.Name = "primitives"
	config.Log.Level = "debug"

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := Save(config, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *config {
		t.Errorf("Expected %+v, got %+v", *config, *loaded)
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	path := writeFile(t, "render:\n  width: 64\nscene:\n  name: empty\n")

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.Render.Width != 64 {
		t.Errorf("Expected width 64, got %d", config.Render.Width)
	}
	if config.Render.Height != 768 {
		t.Errorf("Expected default height 768, got %d", config.Render.Height)
	}
	if config.Scene.Name != "empty" {
		t.Errorf("Expected scene empty, got %q", config.Scene.Name)
	}
	if config.Output.Path != "out.ppm" {
		t.Errorf("Expected default output path, got %q", config.Output.Path)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}

	tests := []struct {
		name     string
		contents string
	}{
		{"unknown key", "render:\n  widht: 64\n"},
		{"wrong type", "render:\n  width: wide\n"},
		{"not yaml", "render: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.contents))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"zero width", func(c *Config) { c.Render.Width = 0 }, "render size"},
		{"negative height", func(c *Config) { c.Render.Height = -1 }, "render size"},
		{"zero fov", func(c *Config) { c.Render.FOV = 0 }, "fov"},
		{"straight fov", func(c *Config) { c.Render.FOV = 180 }, "fov"},
		{"negative workers", func(c *Config) { c.Render.Workers = -2 }, "workers"},
		{"negative span", func(c *Config) { c.Render.SpanSize = -1 }, "span_size"},
		{"empty output", func(c *Config) { c.Output.Path = "" }, "output"},
		{"empty scene", func(c *Config) { c.Scene.Name = "" }, "scene"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)

			err := config.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Expected ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Expected error to mention %q, got %v", tt.field, err)
			}
		})
	}
}

func TestMarshal(t *testing.T) {
	data, err := DefaultConfig().Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	out := string(data)
	for _, want := range []string{"render:", "width: 1024", "span_size: 0", "path: out.ppm", "name: default", "level: notice"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected YAML to contain %q:\n%s", want, out)
		}
	}
}
