package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		Width: 100, Height: 1, Speed: 1, Algorithm: "Bubble sort", Pivot: "Start",
		ShrinkFactor: 1.3, Base: 10, Generate: GenerateIncreasing, Zoom: 4, Captures: 100,
		Distribution: DistributionConfig{Alpha: 1, Beta: 1},
	},
	"wide-quick": {
		Width: 400, Height: 40, Speed: 4, Algorithm: "Quick sort", Pivot: "Random",
		ShrinkFactor: 1.3, Base: 10, Generate: GenerateIncreasing, Zoom: 2, Captures: 100,
		Distribution: DistributionConfig{Alpha: 1, Beta: 1},
	},
	"biased-comb": {
		Width: 200, Height: 20, Speed: 2, Algorithm: "Comb sort", Pivot: "Start",
		ShrinkFactor: 1.25, Base: 10, Generate: GenerateIncreasing, Zoom: 3, Captures: 100,
		Distribution: DistributionConfig{Alpha: 0.5, Beta: 2},
	},
	"radix-hex": {
		Width: 256, Height: 16, Speed: 1, Algorithm: "Radix sort", Pivot: "Start",
		ShrinkFactor: 1.3, Base: 16, Generate: GenerateIncreasing, Zoom: 3, Captures: 60,
		Distribution: DistributionConfig{Alpha: 1, Beta: 1},
	},
	"stooge-small": {
		Width: 32, Height: 8, Speed: 8, Algorithm: "Stooge sort", Pivot: "Start",
		ShrinkFactor: 1.3, Base: 10, Generate: GenerateIncreasing, Zoom: 8, Captures: 50,
		Distribution: DistributionConfig{Alpha: 1, Beta: 1},
	},
	"reversed-heap": {
		Width: 150, Height: 30, Speed: 3, Algorithm: "Heap sort", Pivot: "Start",
		ShrinkFactor: 1.3, Base: 10, Generate: GenerateDecreasing, Zoom: 3, Captures: 100,
		Distribution: DistributionConfig{Alpha: 2, Beta: 2},
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
