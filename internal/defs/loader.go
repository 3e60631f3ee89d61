// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// PresetLibrary is a map to hold all marker presets, keyed by their ID.
type PresetLibrary map[string]MarkerPreset

// LoadPresets reads the preset file and validates every entry.
func LoadPresets(path string) (PresetLibrary, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read marker presets file: %w", err)
	}
	return ParsePresets(file)
}

// ParsePresets decodes a JSON array of presets.
func ParsePresets(data []byte) (PresetLibrary, error) {
	var presets []MarkerPreset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal marker presets: %w", err)
	}

	lib := make(PresetLibrary, len(presets))
	for _, p := range presets {
		if p.ID == "" {
			return nil, fmt.Errorf("marker preset %q has no id", p.Name)
		}
		if _, dup := lib[p.ID]; dup {
			return nil, fmt.Errorf("duplicate marker preset %q", p.ID)
		}
		if _, err := p.Marker(); err != nil {
			return nil, err
		}
		if _, err := p.Prefab(); err != nil {
			return nil, err
		}
		if p.Mode == "" {
			p.Mode = ModeDisk
		}
		if p.Mode != ModeDisk && p.Mode != ModeOutline {
			return nil, fmt.Errorf("preset %s: unknown mode %q", p.ID, p.Mode)
		}
		lib[p.ID] = p
	}
	return lib, nil
}

// IDs returns the preset IDs sorted alphabetically.
func (lib PresetLibrary) IDs() []string {
	ids := make([]string, 0, len(lib))
	for id := range lib {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
