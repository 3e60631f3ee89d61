// Package marker shows movement and attack range as rings of nodes around a tile.
//
// A RadiusMarker generates every ring once, parents the nodes under one
// container per ring and afterwards only toggles container visibility. Rings
// are never recomputed by Show or ShowOutline.
package marker

import (
	"fmt"

	"go-range-marker/internal/component"
	"go-range-marker/internal/config"
	"go-range-marker/internal/event"
	"go-range-marker/internal/interfaces"
	"go-range-marker/internal/logging"
	"go-range-marker/internal/types"
	"go-range-marker/pkg/rings"
	"go-range-marker/pkg/utils"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
)

// NodeBias lifts every ring above the ground plane.
const NodeBias = 0.1

// RootName is the scene name of the marker root node.
const RootName = "Marker"

// RadiusMarker owns the ring containers and their nodes in the host scene graph.
type RadiusMarker struct {
	graph  interfaces.SceneGraph
	root   types.EntityID
	prefab *component.Prefab
	cfg    config.Marker

	rings   []types.EntityID   // контейнер на каждое кольцо, индекс 0 — соседи
	nodes   [][]types.EntityID // узлы внутри колец
	visible []bool
	anchor  mgl64.Vec3

	logger     *log.Logger
	dispatcher *event.Dispatcher
}

// Option configures a RadiusMarker at creation.
type Option func(*RadiusMarker)

// WithLogger sets the logger used for degraded configurations.
func WithLogger(l *log.Logger) Option {
	return func(m *RadiusMarker) { m.logger = l }
}

// WithDispatcher makes the marker publish show/hide/regenerate events.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(m *RadiusMarker) { m.dispatcher = d }
}

// Create adds a root node named "Marker" to graph and generates the rings.
// A nil prefab or an unknown layout yields a marker with zero rings.
func Create(graph interfaces.SceneGraph, prefab *component.Prefab, cfg config.Marker, opts ...Option) *RadiusMarker {
	m := &RadiusMarker{
		graph:  graph,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.root = graph.NewNode(RootName)
	m.Update(prefab, cfg.Layout, cfg.NodeSpacing, cfg.NodeSize, cfg.MaxRadius)
	return m
}

// Update discards all ring nodes and regenerates them from the given parameters.
func (m *RadiusMarker) Update(prefab *component.Prefab, layout rings.TileLayout, spacing, size float64, radius int) {
	m.clear()

	if prefab == nil {
		m.logger.Warn("marker prefab is missing, no rings generated")
		m.dispatchRegenerated()
		return
	}
	if radius < 1 {
		m.logger.Warn("marker radius clamped", "requested", radius, "used", 1)
		radius = 1
	}
	m.prefab = prefab
	m.cfg = config.Marker{Layout: layout, NodeSize: size, NodeSpacing: spacing, MaxRadius: radius}

	generated := rings.Generate(layout, spacing, radius)
	if generated == nil {
		m.logger.Warn("unknown marker layout, no rings generated", "layout", layout)
		m.dispatchRegenerated()
		return
	}

	scale := mgl64.Vec3{size, size, size}
	for i, offsets := range generated {
		group := m.graph.NewNode(fmt.Sprintf("%02d", i))
		m.graph.SetParent(group, m.root)
		m.graph.SetLocalPosition(group, mgl64.Vec3{0, NodeBias, 0})

		nodes := make([]types.EntityID, 0, len(offsets))
		for _, offset := range offsets {
			node := m.graph.Instantiate(prefab)
			m.graph.SetParent(node, group)
			m.graph.SetLocalScale(node, scale)
			m.graph.SetLocalPosition(node, offset)
			nodes = append(nodes, node)
		}
		m.rings = append(m.rings, group)
		m.nodes = append(m.nodes, nodes)
	}
	m.visible = make([]bool, len(m.rings))
	m.HideAll()

	m.logger.Debug("marker rings generated", "layout", layout, "rings", len(m.rings), "spacing", spacing, "size", size)
	m.dispatchRegenerated()
}

// Regenerate is Update driven by a config.Marker.
func (m *RadiusMarker) Regenerate(prefab *component.Prefab, cfg config.Marker) {
	m.Update(prefab, cfg.Layout, cfg.NodeSpacing, cfg.NodeSize, cfg.MaxRadius)
}

// HideAll deactivates every ring.
func (m *RadiusMarker) HideAll() {
	for i := range m.rings {
		m.setRing(i, false)
	}
}

// ShowAll activates every ring.
func (m *RadiusMarker) ShowAll() {
	for i := range m.rings {
		m.setRing(i, true)
	}
}

// Show hides everything, then shows rings 0..radius-1 and moves the marker to pos.
// radius <= 0 leaves everything hidden and the marker where it was.
func (m *RadiusMarker) Show(pos mgl64.Vec3, radius int) {
	m.HideAll()
	if radius <= 0 {
		m.dispatch(event.MarkerHidden, nil)
		return
	}

	// проверка предела
	if radius > len(m.rings) {
		radius = len(m.rings)
	}
	for i := 0; i < radius; i++ {
		m.setRing(i, true)
	}
	m.moveTo(pos)
	m.dispatchShown(event.MarkerShown, radius)
}

// ShowOutline hides everything, then shows only the ring at distance radius.
// Radii past the last ring show the last ring.
func (m *RadiusMarker) ShowOutline(pos mgl64.Vec3, radius int) {
	m.HideAll()
	if radius <= 0 || len(m.rings) == 0 {
		m.dispatch(event.MarkerHidden, nil)
		return
	}

	idx := utils.Clamp(radius-1, 0, len(m.rings)-1)
	m.setRing(idx, true)
	m.moveTo(pos)
	m.dispatchShown(event.MarkerOutlined, radius)
}

// Destroy releases the rings and the root node.
func (m *RadiusMarker) Destroy() {
	m.clear()
	if m.root != types.NoEntity {
		m.graph.Destroy(m.root)
		m.root = types.NoEntity
	}
}

func (m *RadiusMarker) clear() {
	for _, group := range m.rings {
		m.graph.Destroy(group)
	}
	m.rings = nil
	m.nodes = nil
	m.visible = nil
	m.prefab = nil
}

func (m *RadiusMarker) setRing(i int, active bool) {
	m.graph.SetActive(m.rings[i], active)
	m.visible[i] = active
}

func (m *RadiusMarker) moveTo(pos mgl64.Vec3) {
	m.anchor = pos
	if m.root != types.NoEntity {
		m.graph.SetLocalPosition(m.root, pos)
	}
}
