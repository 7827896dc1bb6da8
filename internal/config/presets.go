package config

import "sort"

// Presets are named representation profiles grouped by target platform.
var Presets = map[string]map[string]*Config{
	"embedded": {
		"int8": {
			Representation: "int8", Bound: 100, Lossy: true,
		},
		"int16": {
			Representation: "int16", Bound: 1000,
		},
		"sensor": {
			Representation: "uint16", Bound: 4095, Lossy: true,
		},
	},
	"desktop": {
		"exact": {
			Representation: "int64", Bound: DefaultBound,
		},
		"counts": {
			Representation: "int32", Bound: DefaultBound,
		},
		"float": {
			Representation: "float64", Bound: DefaultBound,
		},
	},
	"gpu": {
		"half-range": {
			Representation: "float32", Bound: 65504,
		},
		"float": {
			Representation: "float32", Bound: DefaultBound,
		},
	},
}

// GetPreset returns a copy of the preset with default logging filled in.
func GetPreset(group, name string) *Config {
	if g, ok := Presets[group]; ok {
		if p, ok := g[name]; ok {
			cfg := DefaultConfig()
			cfg.Representation = p.Representation
			cfg.Bound = p.Bound
			cfg.Lossy = p.Lossy
			return cfg
		}
	}
	return nil
}

func ListPresets(group string) []string {
	g, ok := Presets[group]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ListGroups() []string {
	groups := make([]string, 0, len(Presets))
	for g := range Presets {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}
