package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		Array:  []float64{2, 5, 8, 12, 16, 23, 38, 42, 56, 72, 91},
		Target: 72,
	},
	"absent": {
		Array:  []float64{2, 5, 8, 12, 16, 23, 38, 42, 56, 72, 91},
		Target: 100,
	},
	"single": {
		Array:  []float64{5},
		Target: 5,
	},
	"duplicates": {
		Array:  []float64{1, 3, 3, 3, 3, 3, 3, 7, 9},
		Target: 3,
	},
	"powers": {
		Array:  []float64{1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384, 32768},
		Target: 1,
	},
	"negative": {
		Array:  []float64{-40, -17.5, -3, -1, 0, 0.5, 2, 11},
		Target: -3,
	},
}

// GetPreset returns a copy of the named preset filled with defaults, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Array = append([]float64(nil), p.Array...)
	cfg.Target = p.Target
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
