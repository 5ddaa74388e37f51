package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-sdf-raymarcher/pkg/config"
	"github.com/df07/go-sdf-raymarcher/pkg/imageio"
	"github.com/df07/go-sdf-raymarcher/pkg/scene"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf
	err := app.Run(append([]string{"sdfr"}, args...))
	return buf.String(), err
}

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"primitives scene", "primitives", false},
		{"empty scene", "empty", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := createScene(tt.sceneType)

			if tt.expectError {
				if !errors.Is(err, scene.ErrUnknownScene) {
					t.Errorf("Expected ErrUnknownScene for '%s', got %v", tt.sceneType, err)
				}
				if sc != nil {
					t.Errorf("Expected nil scene for '%s'", tt.sceneType)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if sc == nil || sc.Name != tt.sceneType {
				t.Errorf("Expected scene named '%s', got %+v", tt.sceneType, sc)
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.ppm")

	_, err := runApp(t, "render", "--scene", "empty", "--width", "8", "--height", "6", "--workers", "2", "-o", out)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	header := "P6\n8 6\n255\n"
	if !strings.HasPrefix(string(data), header) {
		t.Errorf("Expected header %q", header)
	}
	if len(data) != len(header)+8*6*3 {
		t.Errorf("Expected %d bytes, got %d", len(header)+8*6*3, len(data))
	}
	if data[len(header)] != 51 || data[len(header)+1] != 178 || data[len(header)+2] != 204 {
		t.Errorf("Expected background color in first pixel, got %v", data[len(header):len(header)+3])
	}
}

func TestRenderCommand_ConfigFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Render.Width = 4
	cfg.Render.Height = 4
	cfg.Scene.Name = "empty"
	cfg.Output.Path = filepath.Join(dir, "from-config.png")
	cfgPath := filepath.Join(dir, "render.yaml")
	if err := config.Save(cfg, cfgPath); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// The file sets the size; the flag replaces only the width
	out, err := runApp(t, "render", "--config", cfgPath, "--width", "6", "--stats")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out, "TOTAL") {
		t.Errorf("Expected statistics table, got:\n%s", out)
	}

	img, err := imageio.LoadImage(cfg.Output.Path)
	if err != nil {
		t.Fatalf("Expected PNG output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Errorf("Expected 6x4 image, got %v", b)
	}
}

func TestRenderCommand_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown scene", []string{"render", "--scene", "nope", "-o", filepath.Join(dir, "a.ppm")}},
		{"bad size", []string{"render", "--width", "0", "-o", filepath.Join(dir, "b.ppm")}},
		{"bad fov", []string{"render", "--fov", "200", "-o", filepath.Join(dir, "c.ppm")}},
		{"unsupported format", []string{"render", "--scene", "empty", "--width", "2", "--height", "2", "-o", filepath.Join(dir, "d.gif")}},
		{"missing directory", []string{"render", "--scene", "empty", "--width", "2", "--height", "2", "-o", filepath.Join(dir, "missing", "e.ppm")}},
		{"missing config", []string{"render", "--config", filepath.Join(dir, "none.yaml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runApp(t, tt.args...); err == nil {
				t.Error("Expected render to fail")
			}
		})
	}
}

func TestScenesCommand(t *testing.T) {
	out, err := runApp(t, "scenes")
	if err != nil {
		t.Fatalf("scenes failed: %v", err)
	}
	for _, info := range scene.ListScenes() {
		if !strings.Contains(out, info.Name) {
			t.Errorf("Expected %q in scene list:\n%s", info.Name, out)
		}
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := runApp(t, "config")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "printed.yaml")
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Printed config does not load: %v", err)
	}
	if *loaded != *config.DefaultConfig() {
		t.Errorf("Expected printed config to match the defaults, got %+v", *loaded)
	}
}

func TestGlobalFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"verbose", []string{"-v", "scenes"}},
		{"very verbose", []string{"-vv", "scenes"}},
		{"no flags", []string{"scenes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, tt.args...)
			if err != nil {
				t.Fatalf("Run(%v) failed: %v", tt.args, err)
			}
			if !strings.Contains(out, "default") {
				t.Errorf("Expected the scene list, got:\n%s", out)
			}
		})
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := runApp(t, "--version")
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.Contains(out, "0.1.0") {
		t.Errorf("Expected the version, got:\n%s", out)
	}
}
