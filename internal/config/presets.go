package config

import (
	"sort"

	"github.com/san-kum/trimesh/internal/motion"
)

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"calm": {
		Width: DefaultWidth, Height: DefaultHeight, Framerate: 60, Points: 300, FPS: DefaultFPS,
		Speed:    motion.VariedValue{Mean: 15, Variance: 5},
		Retarget: motion.VariedValue{Mean: 10, Variance: 2},
	},
	"storm": {
		Width: DefaultWidth, Height: DefaultHeight, Framerate: 60, Points: 700, FPS: DefaultFPS,
		Speed:    motion.VariedValue{Mean: 180, Variance: 60},
		Retarget: motion.VariedValue{Mean: 0.8, Variance: 0.4},
	},
	"grid-anchored": {
		Width: DefaultWidth, Height: DefaultHeight, Framerate: 60, Points: 400, Corners: true, FPS: DefaultFPS,
		Speed:    motion.VariedValue{Mean: 50, Variance: 0.2},
		Retarget: motion.VariedValue{Mean: 5, Variance: 0.5},
	},
	"sparse": {
		Width: 640, Height: 480, Framerate: 30, Points: 60, Corners: true, FPS: DefaultFPS,
		Speed:    motion.VariedValue{Mean: 40, Variance: 10},
		Retarget: motion.VariedValue{Mean: 3, Variance: 1},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
