package marker

import (
	"bytes"
	"fmt"
	"image/color"
	"testing"

	"go-range-marker/internal/component"
	"go-range-marker/internal/config"
	"go-range-marker/internal/entity"
	"go-range-marker/internal/event"
	"go-range-marker/internal/logging"
	"go-range-marker/pkg/rings"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPrefab = &component.Prefab{
	Name:       "node",
	Renderable: component.Renderable{Color: color.RGBA{240, 190, 60, 255}, Radius: 0.3},
}

func newMarker(t *testing.T, layout rings.TileLayout, radius int) (*RadiusMarker, *entity.ECS) {
	t.Helper()
	ecs := entity.NewECS()
	m := Create(ecs, testPrefab, config.Marker{Layout: layout, NodeSize: 0.5, NodeSpacing: 1, MaxRadius: radius})
	require.Equal(t, radius, m.RingCount())
	return m, ecs
}

func visibleSet(m *RadiusMarker) []bool {
	out := make([]bool, m.RingCount())
	for i := range out {
		out[i] = m.RingVisible(i)
	}
	return out
}

func expectPrefix(count, n int) []bool {
	out := make([]bool, count)
	for i := 0; i < n && i < count; i++ {
		out[i] = true
	}
	return out
}

func TestCreate_GeneratesHiddenRings(t *testing.T) {
	for _, layout := range rings.Layouts() {
		t.Run(layout.String(), func(t *testing.T) {
			m, ecs := newMarker(t, layout, 4)

			assert.Equal(t, RootName, ecs.Names[m.Root()])
			for i := 0; i < m.RingCount(); i++ {
				group, ok := m.RingHandle(i)
				require.True(t, ok)
				assert.Equal(t, fmt.Sprintf("%02d", i), ecs.Names[group])
				assert.Equal(t, mgl64.Vec3{0, NodeBias, 0}, ecs.Transforms[group].Position)
				assert.False(t, ecs.ActiveInHierarchy(group))

				nodes := m.RingNodes(i)
				assert.Len(t, nodes, rings.CountFor(layout, i))
				for _, n := range nodes {
					assert.Equal(t, mgl64.Vec3{0.5, 0.5, 0.5}, ecs.Transforms[n].Scale)
					assert.Contains(t, ecs.Renderables, n)
				}
			}
			assert.Empty(t, m.VisibleRings())
		})
	}
}

func TestCreate_NodesMatchGeneratedOffsets(t *testing.T) {
	m, ecs := newMarker(t, rings.Square4, 3)
	want := rings.Generate(rings.Square4, 1, 3)
	for i := range want {
		var got rings.Ring
		for _, n := range m.RingNodes(i) {
			got = append(got, ecs.Transforms[n].Position)
		}
		assert.Equal(t, want[i], got)
	}
}

func TestShow(t *testing.T) {
	const count = 5
	pos := mgl64.Vec3{3, 0, -2}
	tests := []struct {
		radius   int
		visible  int
		anchored bool
	}{
		{radius: 0, visible: 0},
		{radius: -3, visible: 0},
		{radius: 1, visible: 1, anchored: true},
		{radius: 3, visible: 3, anchored: true},
		{radius: count, visible: count, anchored: true},
		{radius: count + 5, visible: count, anchored: true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.radius), func(t *testing.T) {
			m, ecs := newMarker(t, rings.Hex, count)
			m.ShowAll()
			m.Show(pos, tt.radius)

			assert.Equal(t, expectPrefix(count, tt.visible), visibleSet(m))
			for i := 0; i < count; i++ {
				group, _ := m.RingHandle(i)
				assert.Equal(t, i < tt.visible, ecs.ActiveInHierarchy(group))
			}
			if tt.anchored {
				assert.Equal(t, pos, m.Anchor())
				assert.Equal(t, pos, ecs.Transforms[m.Root()].Position)
			} else {
				assert.Equal(t, mgl64.Vec3{}, m.Anchor())
			}
		})
	}
}

func TestShowOutline(t *testing.T) {
	const count = 4
	tests := []struct {
		radius int
		ring   int // -1: ничего не видно
	}{
		{radius: 0, ring: -1},
		{radius: -3, ring: -1},
		{radius: 1, ring: 0},
		{radius: 3, ring: 2},
		{radius: count, ring: count - 1},
		{radius: count + 1, ring: count - 1},
		{radius: count + 5, ring: count - 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.radius), func(t *testing.T) {
			m, _ := newMarker(t, rings.Square8, count)
			m.ShowAll()
			m.ShowOutline(mgl64.Vec3{1, 0, 1}, tt.radius)

			if tt.ring < 0 {
				assert.Empty(t, m.VisibleRings())
				return
			}
			assert.Equal(t, []int{tt.ring}, m.VisibleRings())
			assert.Equal(t, mgl64.Vec3{1, 0, 1}, m.Anchor())
		})
	}
}

func TestHideAllShowAll(t *testing.T) {
	m, _ := newMarker(t, rings.Square4, 3)

	m.HideAll()
	m.ShowAll()
	assert.Equal(t, []bool{true, true, true}, visibleSet(m))

	m.ShowAll()
	m.HideAll()
	assert.Equal(t, []bool{false, false, false}, visibleSet(m))

	m.HideAll()
	assert.Equal(t, []bool{false, false, false}, visibleSet(m))
}

func TestUpdate_DiscardsOldRings(t *testing.T) {
	m, ecs := newMarker(t, rings.Hex, 5)
	old := m.RingNodes(0)
	m.ShowAll()

	m.Update(testPrefab, rings.Square4, 2, 1, 2)

	require.Equal(t, 2, m.RingCount())
	for _, id := range old {
		assert.False(t, ecs.Exists(id))
	}
	// корень + 2 контейнера + 4 + 8 узлов
	assert.Equal(t, 1+2+4+8, ecs.Len())
	assert.Empty(t, m.VisibleRings())
	assert.Equal(t, config.Marker{Layout: rings.Square4, NodeSize: 1, NodeSpacing: 2, MaxRadius: 2}, m.Config())
}

func TestUpdate_RepeatedDoesNotLeak(t *testing.T) {
	m, ecs := newMarker(t, rings.Square8, 3)
	for i := 0; i < 5; i++ {
		m.Regenerate(testPrefab, config.Marker{Layout: rings.Square8, NodeSize: 1, NodeSpacing: 1, MaxRadius: 3})
	}
	assert.Equal(t, 1+3+8+16+24, ecs.Len())
}

func TestUpdate_ClampsRadius(t *testing.T) {
	var buf bytes.Buffer
	ecs := entity.NewECS()
	m := Create(ecs, testPrefab, config.Marker{Layout: rings.Hex, NodeSize: 1, NodeSpacing: 1, MaxRadius: 0},
		WithLogger(logging.New(&buf, log.WarnLevel)))

	assert.Equal(t, 1, m.RingCount())
	assert.Equal(t, 1, m.Config().MaxRadius)
	assert.Contains(t, buf.String(), "marker radius clamped")
}

func TestUpdate_NilPrefab(t *testing.T) {
	var buf bytes.Buffer
	m, ecs := newMarker(t, rings.Hex, 3)
	m.logger = logging.New(&buf, log.WarnLevel)

	m.Update(nil, rings.Hex, 1, 1, 3)

	assert.Zero(t, m.RingCount())
	assert.Nil(t, m.Prefab())
	assert.Equal(t, 1, ecs.Len(), "only the root node should remain")
	assert.Contains(t, buf.String(), "prefab is missing")

	assert.NotPanics(t, func() {
		m.Show(mgl64.Vec3{}, 2)
		m.ShowOutline(mgl64.Vec3{}, 2)
		m.ShowAll()
		m.HideAll()
	})
	assert.Empty(t, m.VisibleRings())
}

func TestUpdate_UnknownLayout(t *testing.T) {
	var buf bytes.Buffer
	ecs := entity.NewECS()
	m := Create(ecs, testPrefab, config.Marker{Layout: rings.TileLayout(7), NodeSize: 1, NodeSpacing: 1, MaxRadius: 2},
		WithLogger(logging.New(&buf, log.WarnLevel)))

	assert.Zero(t, m.RingCount())
	assert.Equal(t, 1, ecs.Len())
	assert.Contains(t, buf.String(), "unknown marker layout")
}

func TestDestroy_ReleasesEverything(t *testing.T) {
	m, ecs := newMarker(t, rings.Hex, 3)
	m.Destroy()
	assert.Zero(t, ecs.Len())
	assert.Zero(t, m.RingCount())

	assert.NotPanics(t, m.Destroy)
}

func TestRingQueries_OutOfRange(t *testing.T) {
	m, _ := newMarker(t, rings.Hex, 2)
	assert.False(t, m.RingVisible(-1))
	assert.False(t, m.RingVisible(2))
	assert.Nil(t, m.RingNodes(5))
	_, ok := m.RingHandle(2)
	assert.False(t, ok)
}

func TestNodesWorldPositions(t *testing.T) {
	m, ecs := newMarker(t, rings.Square4, 1)
	m.Show(mgl64.Vec3{10, 0, 20}, 1)
	for _, n := range m.RingNodes(0) {
		p := ecs.WorldPosition(n)
		assert.InDelta(t, NodeBias, p.Y(), 1e-12)
		assert.InDelta(t, 1, abs(p.X()-10)+abs(p.Z()-20), 1e-12)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

type recorder struct{ events []event.Event }

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func TestEvents(t *testing.T) {
	d := event.NewDispatcher()
	rec := &recorder{}
	for _, et := range []event.EventType{event.MarkerShown, event.MarkerOutlined, event.MarkerHidden, event.MarkerRegenerated} {
		d.Subscribe(et, rec)
	}

	ecs := entity.NewECS()
	m := Create(ecs, testPrefab, config.Marker{Layout: rings.Square4, NodeSize: 1, NodeSpacing: 1, MaxRadius: 3}, WithDispatcher(d))
	m.Show(mgl64.Vec3{1, 0, 1}, 2)
	m.ShowOutline(mgl64.Vec3{1, 0, 1}, 3)
	m.Show(mgl64.Vec3{}, 0)

	require.Len(t, rec.events, 4)
	assert.Equal(t, event.MarkerRegenerated, rec.events[0].Type)
	assert.Equal(t, event.MarkerRegeneratedData{Layout: "square4", RingCount: 3, NodeCount: 4 + 8 + 12}, rec.events[0].Data)

	assert.Equal(t, event.MarkerShown, rec.events[1].Type)
	shown := rec.events[1].Data.(event.MarkerShownData)
	assert.Equal(t, []int{0, 1}, shown.Rings)
	assert.Equal(t, 1.0, shown.AnchorX)

	assert.Equal(t, event.MarkerOutlined, rec.events[2].Type)
	assert.Equal(t, []int{2}, rec.events[2].Data.(event.MarkerShownData).Rings)

	assert.Equal(t, event.MarkerHidden, rec.events[3].Type)
}
