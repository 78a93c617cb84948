package config

import "sort"

// Presets holds named variations of a model's default experiment.
var Presets = map[string]map[string]*Config{
	"bacteria_growth": {
		"coarse_euler": {Model: "bacteria_growth", Method: "euler", Tn: 1, Steps: 20},
		"coarse_rk4":   {Model: "bacteria_growth", Method: "rk4", Tn: 1, Steps: 20},
	},
	"gompertz": {
		"overshoot": {Model: "gompertz", Method: "rk4", Tn: 4, Steps: 4000, Init: []float64{5}},
		"slow":      {Model: "gompertz", Method: "rk4", Tn: 10, Steps: 10000, Params: map[string]float64{"alpha": 0.2}},
	},
	"constant_rate_harvesting": {
		"collapse":    {Model: "constant_rate_harvesting", Method: "rk4", Tn: 1.6, Steps: 10000, Params: map[string]float64{"h": 4}},
		"sustainable": {Model: "constant_rate_harvesting", Method: "rk4", Tn: 10, Steps: 10000, Params: map[string]float64{"h": 1}},
	},
	"lotka_volterra": {
		"staggered":    {Model: "lotka_volterra", Method: "rk4", Coupling: "staggered", Tn: 1, Steps: 10000},
		"simultaneous": {Model: "lotka_volterra", Method: "rk4", Coupling: "simultaneous", Tn: 1, Steps: 10000},
		"coarse_euler": {Model: "lotka_volterra", Method: "euler", Tn: 1, Steps: 200},
	},
	"competition": {
		"long": {Model: "competition", Method: "ssprk3", Tn: 5, Steps: 20000},
	},
	"pest_control1": {
		"heavy_release": {Model: "pest_control1", Method: "rk4", Tn: 1.6, Steps: 10000, Init: []float64{2, 2}},
	},
	"rabies_pest1": {
		"outbreak": {Model: "rabies_pest1", Method: "rk4", Tn: 5, Steps: 20000, Init: []float64{100, 1}},
	},
	"seir1": {
		"early": {Model: "seir1", Method: "rk4", Tn: 50, Steps: 10000},
	},
	"seir2": {
		"endemic": {Model: "seir2", Method: "rk38", Tn: 500, Steps: 100000},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

// ListPresets returns the preset names of a model in sorted order.
func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
