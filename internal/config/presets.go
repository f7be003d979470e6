package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/GregMSThompson/dashboard-layout/internal/models"
)

type presetsFile struct {
	Presets []models.Preset `yaml:"presets"`
}

// LoadPresets reads a YAML preset catalog. Returns an os.ErrNotExist-wrapped
// error if the file is absent.
func LoadPresets(path string) ([]models.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("presets config: %w", err)
	}
	var f presetsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("presets config: %w", err)
	}
	if len(f.Presets) < 1 {
		return nil, fmt.Errorf("presets config: at least one preset is required")
	}
	seen := make(map[string]bool, len(f.Presets))
	for i, p := range f.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("presets config: presets[%d] missing name", i)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("presets config: duplicate preset %q", p.Name)
		}
		seen[p.Name] = true
		if len(p.Widgets) == 0 {
			return nil, fmt.Errorf("presets config: preset %q enables no widgets", p.Name)
		}
		for _, w := range p.Widgets {
			if !w.Valid() {
				return nil, fmt.Errorf("presets config: preset %q: unknown widget type %q", p.Name, w)
			}
		}
	}
	return f.Presets, nil
}
