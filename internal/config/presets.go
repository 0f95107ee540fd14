package config

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

// Presets overlay the physics section of DefaultConfig.
var Presets = map[string]PhysicsConfig{
	"classic": {
		G: DefaultG, PlanetMass: DefaultPlanetMass, SatelliteMass: DefaultSatelliteMass,
		PlanetRadius: DefaultPlanetRadius, VelScale: DefaultVelScale,
	},
	"heavy": {
		G: DefaultG, PlanetMass: 400, SatelliteMass: DefaultSatelliteMass,
		PlanetRadius: 70, VelScale: 50,
	},
	"gentle": {
		G: DefaultG, PlanetMass: 40, SatelliteMass: DefaultSatelliteMass,
		PlanetRadius: 35, VelScale: 150,
	},
	"short-trails": {
		G: DefaultG, PlanetMass: DefaultPlanetMass, SatelliteMass: DefaultSatelliteMass,
		PlanetRadius: DefaultPlanetRadius, VelScale: DefaultVelScale, TrailCap: 600,
	},
}

// Resolve builds the startup configuration: defaults, then the file at path,
// then the named preset, which replaces the physics section whether or not
// the file set one. Empty path or preset skips that step.
func Resolve(path, preset string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if preset != "" {
		p, ok := Presets[preset]
		if !ok {
			return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, preset, ListPresets())
		}
		cfg.Physics = p
	}
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
