package cmd

import (
	"bytes"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/ivokostovski/elevator-exercise/sim"
)

// Defaults represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Defaults struct {
	Version string                `yaml:"version"`
	Presets map[string]sim.Config `yaml:"presets"`
}

// loadDefaults parses defaults.yaml with strict field checking.
func loadDefaults(path string) (Defaults, error) {
	var d Defaults
	data, err := os.ReadFile(path)
	if err != nil {
		return d, fmt.Errorf("reading defaults file: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&d); err != nil {
		return d, fmt.Errorf("parsing defaults YAML: %w", err)
	}
	return d, nil
}

// LoadPreset returns the named building preset. Presets must be fully specified; fields
// left out of a preset are zero.
func LoadPreset(path, name string) (sim.Config, error) {
	d, err := loadDefaults(path)
	if err != nil {
		return sim.Config{}, err
	}
	cfg, ok := d.Presets[name]
	if !ok {
		names := make([]string, 0, len(d.Presets))
		for n := range d.Presets {
			names = append(names, n)
		}
		slices.Sort(names)
		return sim.Config{}, fmt.Errorf("unknown preset %q (available: %v)", name, names)
	}
	return cfg, nil
}
