package defs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"go-range-marker/internal/config"
	"go-range-marker/pkg/rings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const presetsJSON = `[
	{
		"id": "move",
		"name": "Movement",
		"layout": "hex",
		"node_size": 0.9,
		"node_spacing": 1,
		"max_radius": 5,
		"radius": 3,
		"visuals": { "color": "#3080ff", "radius": 0.3, "has_stroke": true }
	},
	{
		"id": "attack",
		"name": "Attack",
		"layout": "square_8",
		"node_size": 1,
		"node_spacing": 2,
		"max_radius": 0,
		"radius": 2,
		"mode": "OUTLINE",
		"visuals": { "color": "#ff3030c0", "radius": 0.25 }
	}
]`

func TestLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	require.NoError(t, os.WriteFile(path, []byte(presetsJSON), 0644))

	lib, err := LoadPresets(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"attack", "move"}, lib.IDs())

	move := lib["move"]
	assert.Equal(t, ModeDisk, move.Mode)
	m, err := move.Marker()
	require.NoError(t, err)
	assert.Equal(t, config.Marker{Layout: rings.Hex, NodeSize: 0.9, NodeSpacing: 1, MaxRadius: 5}, m)

	attack := lib["attack"]
	assert.Equal(t, ModeOutline, attack.Mode)
	m, err = attack.Marker()
	require.NoError(t, err)
	assert.Equal(t, 1, m.MaxRadius, "max radius is clamped")

	prefab, err := attack.Prefab()
	require.NoError(t, err)
	assert.Equal(t, "attack", prefab.Name)
	assert.Equal(t, color.RGBA{0xff, 0x30, 0x30, 0xc0}, prefab.Renderable.Color)
	assert.False(t, prefab.Renderable.HasStroke)
}

func TestLoadPresets_MissingFile(t *testing.T) {
	_, err := LoadPresets(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read marker presets file")
}

func TestParsePresets_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"broken json", `[{`, "failed to unmarshal"},
		{"no id", `[{"name":"x","layout":"hex","visuals":{"color":"#ffffff"}}]`, "has no id"},
		{"duplicate", `[{"id":"a","layout":"hex","visuals":{"color":"#ffffff"}},{"id":"a","layout":"hex","visuals":{"color":"#ffffff"}}]`, "duplicate"},
		{"bad layout", `[{"id":"a","layout":"tri","visuals":{"color":"#ffffff"}}]`, "unknown tile layout"},
		{"bad color", `[{"id":"a","layout":"hex","visuals":{"color":"red"}}]`, "invalid color"},
		{"bad mode", `[{"id":"a","layout":"hex","mode":"SPIRAL","visuals":{"color":"#ffffff"}}]`, "unknown mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePresets([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
