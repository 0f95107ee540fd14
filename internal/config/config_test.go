package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Window.Width != 1000 || cfg.Window.Height != 800 {
		t.Errorf("expected 1000x800 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Physics.G != 9.8 {
		t.Errorf("expected g 9.8, got %f", cfg.Physics.G)
	}
	if cfg.Physics.TrailCap != 0 {
		t.Errorf("expected unbounded trails by default, got cap %d", cfg.Physics.TrailCap)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestParams(t *testing.T) {
	p := DefaultConfig().Params()

	if p.Bounds.Width != 1000 || p.Bounds.Height != 800 {
		t.Errorf("bounds = %+v, want 1000x800", p.Bounds)
	}
	if p.PlanetMass != 100 || p.SatelliteMass != 5 || p.PlanetRadius != 50 || p.VelScale != 100 {
		t.Errorf("unexpected params: %+v", p)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"zero fps", func(c *Config) { c.Window.FPS = 0 }},
		{"negative g", func(c *Config) { c.Physics.G = -1 }},
		{"zero planet mass", func(c *Config) { c.Physics.PlanetMass = 0 }},
		{"zero satellite mass", func(c *Config) { c.Physics.SatelliteMass = 0 }},
		{"negative radius", func(c *Config) { c.Physics.PlanetRadius = -1 }},
		{"zero vel scale", func(c *Config) { c.Physics.VelScale = 0 }},
		{"negative trail cap", func(c *Config) { c.Physics.TrailCap = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbitsim.yaml")

	cfg := DefaultConfig()
	cfg.Physics.PlanetMass = 250
	cfg.Physics.TrailCap = 300
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Physics.PlanetMass != 250 {
		t.Errorf("expected planet mass 250, got %f", loaded.Physics.PlanetMass)
	}
	if loaded.Physics.TrailCap != 300 {
		t.Errorf("expected trail cap 300, got %d", loaded.Physics.TrailCap)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  vel_scale: 40\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Physics.VelScale != 40 {
		t.Errorf("expected vel_scale 40, got %f", cfg.Physics.VelScale)
	}
	if cfg.Physics.G != DefaultG || cfg.Window.Width != DefaultWidth {
		t.Error("defaults lost for unspecified fields")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  g: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() = %v, want ErrInvalidConfig", err)
	}
}

func TestPresetsValid(t *testing.T) {
	for _, name := range ListPresets() {
		cfg, err := Resolve("", name)
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", name, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] >= presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
}

func TestResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "window:\n  width: 640\nphysics:\n  g: 5\n  vel_scale: 40\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		path       string
		preset     string
		width      int
		g          float64
		planetMass float64
	}{
		{"defaults", "", "", DefaultWidth, DefaultG, DefaultPlanetMass},
		{"file only", path, "", 640, 5, DefaultPlanetMass},
		{"preset only", "", "heavy", DefaultWidth, DefaultG, 400},
		{"preset replaces file physics", path, "heavy", 640, DefaultG, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Resolve(tt.path, tt.preset)
			if err != nil {
				t.Fatalf("Resolve() failed: %v", err)
			}
			if cfg.Window.Width != tt.width {
				t.Errorf("width = %d, want %d", cfg.Window.Width, tt.width)
			}
			if cfg.Physics.G != tt.g || cfg.Physics.PlanetMass != tt.planetMass {
				t.Errorf("physics = %+v, want g %v planet mass %v", cfg.Physics, tt.g, tt.planetMass)
			}
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	if _, err := Resolve("", "nope"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Resolve() = %v, want ErrUnknownPreset", err)
	}
	if _, err := Resolve(filepath.Join(t.TempDir(), "missing.yaml"), ""); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Resolve() = %v, want not-exist error", err)
	}
}
