package config

import (
	"sort"

	"github.com/san-kum/bouncelab/internal/world"
)

var Presets = map[string]*Config{
	"calm": {
		Count:        16,
		SizeRange:    SizeRange{Min: 10, Max: 24},
		Viewport:     Viewport{Width: DefaultWidth, Height: DefaultHeight},
		Friction:     0.992,
		BounceEnergy: 1.01,
		Repulsion:    Repulsion{Radius: 140, MaxForce: 5},
		Velocity:     1.2,
		FPS:          DefaultFPS,
		RetryLimit:   world.DefaultRetryLimit,
	},
	"storm": {
		Count:        40,
		SizeRange:    SizeRange{Min: 5, Max: 14},
		Viewport:     Viewport{Width: DefaultWidth, Height: DefaultHeight},
		Friction:     0.999,
		BounceEnergy: 1.12,
		Repulsion:    Repulsion{Radius: 160, MaxForce: 12},
		Velocity:     5.0,
		FPS:          DefaultFPS,
		RetryLimit:   world.DefaultRetryLimit,
	},
	"marbles": {
		Count:        60,
		SizeRange:    SizeRange{Min: 4, Max: 8},
		Viewport:     Viewport{Width: DefaultWidth, Height: DefaultHeight},
		Friction:     0.996,
		BounceEnergy: 1.04,
		Repulsion:    Repulsion{Radius: 100, MaxForce: 7},
		Velocity:     3.0,
		FPS:          DefaultFPS,
		RetryLimit:   world.DefaultRetryLimit,
	},
	"boulders": {
		Count:        6,
		SizeRange:    SizeRange{Min: 30, Max: 55},
		Viewport:     Viewport{Width: 800, Height: 500},
		Friction:     0.995,
		BounceEnergy: 1.03,
		Repulsion:    Repulsion{Radius: 200, MaxForce: 6},
		Velocity:     1.8,
		FPS:          DefaultFPS,
		RetryLimit:   world.DefaultRetryLimit,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
