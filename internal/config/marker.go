// internal/config/marker.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"go-range-marker/internal/component"
	"go-range-marker/pkg/rings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// FileName is the base name (without extension) of the marker config file.
const FileName = "marker"

// Marker — параметры генерации колец
type Marker struct {
	Layout      rings.TileLayout
	NodeSize    float64
	NodeSpacing float64
	MaxRadius   int
}

// DefaultMarker returns the parameters used when nothing is configured.
func DefaultMarker() Marker {
	return Marker{Layout: rings.Hex, NodeSize: 1, NodeSpacing: 1, MaxRadius: 1}
}

// Normalize clamps MaxRadius to at least 1 and replaces non-positive size or spacing with 1.
func (m Marker) Normalize() Marker {
	if m.MaxRadius < 1 {
		m.MaxRadius = 1
	}
	if m.NodeSize <= 0 {
		m.NodeSize = 1
	}
	if m.NodeSpacing <= 0 {
		m.NodeSpacing = 1
	}
	return m
}

// Settings is the decoded configuration surface: marker parameters plus the node prefab.
type Settings struct {
	LogLevel string
	Prefab   *component.Prefab // nil, если префаб не задан
	Marker   Marker
}

// Load reads the marker config file from configDir and sets default values.
// A missing file is not an error; defaults apply.
func Load(configDir string) error {
	SetDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// SetDefaults registers default values for every key.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("prefab.name", "node")
	viper.SetDefault("prefab.color", "#f0c040")
	viper.SetDefault("prefab.radius", 0.3)
	viper.SetDefault("prefab.stroke", true)

	viper.SetDefault("marker.layout", "hex")
	viper.SetDefault("marker.nodeSize", 1.0)
	viper.SetDefault("marker.nodeSpacing", 1.0)
	viper.SetDefault("marker.maxRadius", 1)
}

// Current decodes the settings currently held by viper.
func Current() (Settings, error) {
	layout, err := rings.ParseTileLayout(viper.GetString("marker.layout"))
	if err != nil {
		return Settings{}, fmt.Errorf("marker.layout: %w", err)
	}
	s := Settings{
		LogLevel: viper.GetString("logLevel"),
		Marker: Marker{
			Layout:      layout,
			NodeSize:    viper.GetFloat64("marker.nodeSize"),
			NodeSpacing: viper.GetFloat64("marker.nodeSpacing"),
			MaxRadius:   viper.GetInt("marker.maxRadius"),
		},
	}

	if name := strings.TrimSpace(viper.GetString("prefab.name")); name != "" {
		c, err := ParseColor(viper.GetString("prefab.color"))
		if err != nil {
			return Settings{}, fmt.Errorf("prefab.color: %w", err)
		}
		s.Prefab = &component.Prefab{
			Name: name,
			Renderable: component.Renderable{
				Color:     c,
				Radius:    float32(viper.GetFloat64("prefab.radius")),
				HasStroke: viper.GetBool("prefab.stroke"),
			},
		}
	}
	return s, nil
}

// Watch calls fn every time the config file changes on disk. fn runs on the
// watcher goroutine; callers hand the change over to their own loop.
func Watch(fn func()) {
	viper.OnConfigChange(func(fsnotify.Event) { fn() })
	viper.WatchConfig()
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	c := color.RGBA{A: 255}
	var err error
	switch len(s) {
	case 6:
		_, err = fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(s, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("want 6 or 8 hex digits, got %d", len(s))
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}
