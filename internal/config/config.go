package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitsim/internal/orbit"
)

const (
	DefaultWidth         = 1000
	DefaultHeight        = 800
	DefaultFPS           = 60
	DefaultPlanetMass    = 100.0
	DefaultSatelliteMass = 5.0
	DefaultG             = 9.8
	DefaultPlanetRadius  = 50.0
	DefaultObjSize       = 5.0
	DefaultVelScale      = 100.0
	DefaultTrailOffset   = 10.0
)

var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Physics PhysicsConfig `yaml:"physics"`
	Render  RenderConfig  `yaml:"render"`
	Log     LogConfig     `yaml:"log"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

type PhysicsConfig struct {
	G             float64 `yaml:"g"`
	PlanetMass    float64 `yaml:"planet_mass"`
	SatelliteMass float64 `yaml:"satellite_mass"`
	PlanetRadius  float64 `yaml:"planet_radius"`
	VelScale      float64 `yaml:"vel_scale"`
	TrailCap      int     `yaml:"trail_cap"`
}

type RenderConfig struct {
	ObjSize       float64      `yaml:"obj_size"`
	SatelliteSize float64      `yaml:"satellite_size"`
	TrailOffset   float64      `yaml:"trail_offset"`
	Theme         string       `yaml:"theme"`
	Assets        AssetsConfig `yaml:"assets"`
}

type AssetsConfig struct {
	Background string `yaml:"background"`
	Planet     string `yaml:"planet"`
	Satellite  string `yaml:"satellite"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  "Satellite Simulation",
			FPS:    DefaultFPS,
		},
		Physics: PhysicsConfig{
			G:             DefaultG,
			PlanetMass:    DefaultPlanetMass,
			SatelliteMass: DefaultSatelliteMass,
			PlanetRadius:  DefaultPlanetRadius,
			VelScale:      DefaultVelScale,
		},
		Render: RenderConfig{
			ObjSize:       DefaultObjSize,
			SatelliteSize: DefaultPlanetRadius / 2,
			TrailOffset:   DefaultTrailOffset,
			Theme:         "space",
			Assets: AssetsConfig{
				Background: "assets/background.png",
				Planet:     "assets/earth.png",
				Satellite:  "assets/satellite.png",
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
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
	if err := cfg.Validate(); err != nil {
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

// Validate rejects values that would make the simulation meaningless.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Window.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.Window.FPS)
	case c.Physics.G <= 0:
		return fmt.Errorf("%w: g must be positive, got %f", ErrInvalidConfig, c.Physics.G)
	case c.Physics.PlanetMass <= 0:
		return fmt.Errorf("%w: planet_mass must be positive, got %f", ErrInvalidConfig, c.Physics.PlanetMass)
	case c.Physics.SatelliteMass <= 0:
		return fmt.Errorf("%w: satellite_mass must be positive, got %f", ErrInvalidConfig, c.Physics.SatelliteMass)
	case c.Physics.PlanetRadius < 0:
		return fmt.Errorf("%w: planet_radius must not be negative, got %f", ErrInvalidConfig, c.Physics.PlanetRadius)
	case c.Physics.VelScale <= 0:
		return fmt.Errorf("%w: vel_scale must be positive, got %f", ErrInvalidConfig, c.Physics.VelScale)
	case c.Physics.TrailCap < 0:
		return fmt.Errorf("%w: trail_cap must not be negative, got %d", ErrInvalidConfig, c.Physics.TrailCap)
	}
	return nil
}

// Params converts the physics and window sections into simulation parameters.
func (c *Config) Params() orbit.Params {
	return orbit.Params{
		Bounds: orbit.Bounds{
			Width:  float64(c.Window.Width),
			Height: float64(c.Window.Height),
		},
		G:             c.Physics.G,
		PlanetMass:    c.Physics.PlanetMass,
		PlanetRadius:  c.Physics.PlanetRadius,
		SatelliteMass: c.Physics.SatelliteMass,
		VelScale:      c.Physics.VelScale,
		TrailCap:      c.Physics.TrailCap,
	}
}
