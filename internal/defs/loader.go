// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed presets.json
var defaultPresets []byte

// LoadPresets reads presets from path, or the built-in list when path is empty.
func LoadPresets(path string) ([]Preset, error) {
	data := defaultPresets
	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read presets file: %w", err)
		}
		data = file
	}
	return ParsePresets(data)
}

// ParsePresets decodes and validates a JSON preset list.
func ParsePresets(data []byte) ([]Preset, error) {
	var presets []Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal presets: %w", err)
	}
	if len(presets) == 0 {
		return nil, fmt.Errorf("preset list is empty")
	}

	seen := make(map[string]bool, len(presets))
	for i, p := range presets {
		if p.ID == "" {
			return nil, fmt.Errorf("preset %d has no id", i)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate preset id %q", p.ID)
		}
		seen[p.ID] = true
		if p.DelayMs < 0 {
			return nil, fmt.Errorf("preset %q: negative delay_ms", p.ID)
		}
		if p.Size <= 0 {
			return nil, fmt.Errorf("preset %q: size must be positive", p.ID)
		}
	}
	return presets, nil
}

// Find returns the preset with the given id.
func Find(presets []Preset, id string) (Preset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}
