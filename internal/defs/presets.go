// internal/defs/presets.go
package defs

import (
	"fmt"

	"go-range-marker/internal/component"
	"go-range-marker/internal/config"
	"go-range-marker/pkg/rings"
)

// Mode selects how a preset shows its rings.
type Mode string

const (
	ModeDisk    Mode = "DISK"    // все кольца до радиуса
	ModeOutline Mode = "OUTLINE" // только кольцо на радиусе
)

// MarkerPreset holds the static marker data for one kind of range, e.g. movement or attack.
type MarkerPreset struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Layout      string  `json:"layout"`
	NodeSize    float64 `json:"node_size"`
	NodeSpacing float64 `json:"node_spacing"`
	MaxRadius   int     `json:"max_radius"`
	Radius      int     `json:"radius"` // радиус, показываемый по умолчанию
	Mode        Mode    `json:"mode"`
	Visuals     Visuals `json:"visuals"`
}

// Visuals describes the node prefab of a preset.
type Visuals struct {
	Color     string  `json:"color"`
	Radius    float32 `json:"radius"`
	HasStroke bool    `json:"has_stroke"`
}

// Marker converts the preset into normalized generation parameters.
func (p MarkerPreset) Marker() (config.Marker, error) {
	layout, err := rings.ParseTileLayout(p.Layout)
	if err != nil {
		return config.Marker{}, fmt.Errorf("preset %s: %w", p.ID, err)
	}
	return config.Marker{
		Layout:      layout,
		NodeSize:    p.NodeSize,
		NodeSpacing: p.NodeSpacing,
		MaxRadius:   p.MaxRadius,
	}.Normalize(), nil
}

// Prefab builds the node prefab of the preset.
func (p MarkerPreset) Prefab() (*component.Prefab, error) {
	c, err := config.ParseColor(p.Visuals.Color)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", p.ID, err)
	}
	return &component.Prefab{
		Name: p.ID,
		Renderable: component.Renderable{
			Color:     c,
			Radius:    p.Visuals.Radius,
			HasStroke: p.Visuals.HasStroke,
		},
	}, nil
}
