package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 1080 || cfg.Height != 720 {
		t.Errorf("expected 1080x720, got %gx%g", cfg.Width, cfg.Height)
	}
	if cfg.Framerate != 60 {
		t.Errorf("expected framerate 60, got %g", cfg.Framerate)
	}
	if cfg.Points != 500 {
		t.Errorf("expected 500 points, got %d", cfg.Points)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero framerate", func(c *Config) { c.Framerate = 0 }, ErrFramerate},
		{"negative framerate", func(c *Config) { c.Framerate = -30 }, ErrFramerate},
		{"zero width", func(c *Config) { c.Width = 0 }, ErrDomain},
		{"negative height", func(c *Config) { c.Height = -1 }, ErrDomain},
		{"negative points", func(c *Config) { c.Points = -5 }, ErrPoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNegativeSettingsAccepted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Speed.Mean = -10
	cfg.Retarget.Variance = -3
	if err := cfg.Validate(); err != nil {
		t.Errorf("motion settings are not validated, got %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	for _, name := range []string{"mesh.yaml", "mesh.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			cfg := DefaultConfig()
			cfg.Points = 42
			cfg.Corners = true
			cfg.Seed = 99
			cfg.Speed.Mean = 12.5

			if err := Save(path, cfg); err != nil {
				t.Fatalf("save failed: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}
			if *got != *cfg {
				t.Errorf("round trip mismatch: got %+v, want %+v", got, cfg)
			}
		})
	}
}

func TestLoad_PartialOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := "points: 10\nspeed:\n  mean: 80\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Points != 10 {
		t.Errorf("expected 10 points, got %d", cfg.Points)
	}
	if cfg.Speed.Mean != 80 || cfg.Speed.Variance != 0.2 {
		t.Errorf("expected speed 80±0.2, got %+v", cfg.Speed)
	}
	if cfg.Width != DefaultWidth {
		t.Errorf("width should keep default, got %g", cfg.Width)
	}
}

func TestLoadOver_Preset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "over.yaml")
	if err := os.WriteFile(path, []byte("points: 12\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := GetPreset("storm")
	cfg, err := LoadOver(path, base)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Points != 12 {
		t.Errorf("expected 12 points, got %d", cfg.Points)
	}
	if cfg.Speed != base.Speed {
		t.Errorf("expected preset speed %+v, got %+v", base.Speed, cfg.Speed)
	}
	if base.Points == 12 {
		t.Error("base config should not be modified")
	}
}

func TestLoad_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mesh.toml")
	data := "width = 320.0\nheight = 240.0\ncorners = true\n\n[retarget]\nmean = 2.0\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 240 || !cfg.Corners {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Retarget.Mean != 2 || cfg.Retarget.Variance != 0.5 {
		t.Errorf("expected retarget 2±0.5, got %+v", cfg.Retarget)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("grid-anchored")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if !cfg.Corners {
		t.Error("grid-anchored preset should enable corners")
	}

	cfg.Points = 1
	if Presets["grid-anchored"].Points == 1 {
		t.Error("GetPreset should return a copy")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestNewSimulation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Points = 25
	cfg.Corners = true
	cfg.Seed = 3

	s := cfg.NewSimulation()
	if len(s.Points()) != 29 {
		t.Fatalf("expected 29 points, got %d", len(s.Points()))
	}
	for i := 0; i < 4; i++ {
		if !s.Points()[i].IsStatic() {
			t.Errorf("point %d should be a static corner", i)
		}
	}
	if s.Points()[4].IsStatic() {
		t.Error("populated points should move")
	}
}
