// internal/marker/query.go
package marker

import (
	"go-range-marker/internal/component"
	"go-range-marker/internal/config"
	"go-range-marker/internal/event"
	"go-range-marker/internal/types"

	"github.com/go-gl/mathgl/mgl64"
)

// RingCount returns how many rings were generated.
func (m *RadiusMarker) RingCount() int { return len(m.rings) }

// RingVisible reports whether ring i is active. Out-of-range indexes are hidden.
func (m *RadiusMarker) RingVisible(i int) bool {
	if i < 0 || i >= len(m.visible) {
		return false
	}
	return m.visible[i]
}

// VisibleRings returns the indexes of the active rings in ascending order.
func (m *RadiusMarker) VisibleRings() []int {
	var out []int
	for i, v := range m.visible {
		if v {
			out = append(out, i)
		}
	}
	return out
}

// RingNodes returns the node handles of ring i, nil when out of range.
func (m *RadiusMarker) RingNodes(i int) []types.EntityID {
	if i < 0 || i >= len(m.nodes) {
		return nil
	}
	return append([]types.EntityID(nil), m.nodes[i]...)
}

// RingHandle returns the container of ring i.
func (m *RadiusMarker) RingHandle(i int) (types.EntityID, bool) {
	if i < 0 || i >= len(m.rings) {
		return types.NoEntity, false
	}
	return m.rings[i], true
}

// Root returns the marker root node.
func (m *RadiusMarker) Root() types.EntityID { return m.root }

// Anchor returns the world position passed to the last successful Show or ShowOutline.
func (m *RadiusMarker) Anchor() mgl64.Vec3 { return m.anchor }

// Config returns the parameters of the current rings.
func (m *RadiusMarker) Config() config.Marker { return m.cfg }

// Prefab returns the prefab the rings were instantiated from, nil if none.
func (m *RadiusMarker) Prefab() *component.Prefab { return m.prefab }

func (m *RadiusMarker) dispatch(t event.EventType, data any) {
	m.dispatcher.Dispatch(event.Event{Type: t, Data: data})
}

func (m *RadiusMarker) dispatchShown(t event.EventType, radius int) {
	if m.dispatcher == nil {
		return
	}
	m.dispatch(t, event.MarkerShownData{
		Radius:  radius,
		Rings:   m.VisibleRings(),
		AnchorX: m.anchor.X(),
		AnchorY: m.anchor.Y(),
		AnchorZ: m.anchor.Z(),
	})
}

func (m *RadiusMarker) dispatchRegenerated() {
	if m.dispatcher == nil {
		return
	}
	count := 0
	for _, n := range m.nodes {
		count += len(n)
	}
	m.dispatch(event.MarkerRegenerated, event.MarkerRegeneratedData{
		Layout:    m.cfg.Layout.String(),
		RingCount: len(m.rings),
		NodeCount: count,
	})
}
