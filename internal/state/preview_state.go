// internal/state/preview_state.go
package state

import (
	"fmt"
	"image/color"

	"go-range-marker/internal/config"
	"go-range-marker/internal/defs"
	"go-range-marker/internal/entity"
	"go-range-marker/internal/event"
	"go-range-marker/internal/marker"
	"go-range-marker/internal/system"
	"go-range-marker/pkg/render"
	"go-range-marker/pkg/rings"
	"go-range-marker/pkg/viewport"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var radiusKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

type displayMode int

const (
	modeDisk displayMode = iota
	modeOutline
	modeAll
	modeHidden
)

func (m displayMode) String() string {
	switch m {
	case modeDisk:
		return "disk"
	case modeOutline:
		return "outline"
	case modeAll:
		return "all"
	}
	return "hidden"
}

// PreviewState — превью маркера: курсор выбирает тайл, клавиши меняют радиус и режим.
type PreviewState struct {
	sm       *StateMachine
	logger   *log.Logger
	settings config.Settings
	reloads  <-chan config.Settings
	presets  defs.PresetLibrary
	preset   int // индекс в presets.IDs(), -1 — настройки из файла конфигурации

	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	marker     *marker.RadiusMarker
	grid       *render.GridRenderer
	renderer   *system.RenderSystem
	view       viewport.Viewport

	radius    int
	mode      displayMode
	cursor    mgl64.Vec3
	dirty     bool
	lastEvent string
}

// NewPreviewState builds the scene. reloads delivers settings from the config
// watcher; it is drained on the update loop so the marker is only touched there.
// presets may be nil.
func NewPreviewState(sm *StateMachine, settings config.Settings, reloads <-chan config.Settings, presets defs.PresetLibrary, logger *log.Logger) *PreviewState {
	view := viewport.New(config.ScreenWidth, config.ScreenHeight, config.PixelsPerUnit)
	ecs := entity.NewECS()
	s := &PreviewState{
		sm:         sm,
		logger:     logger,
		settings:   settings,
		reloads:    reloads,
		presets:    presets,
		preset:     -1,
		ecs:        ecs,
		dispatcher: event.NewDispatcher(),
		grid:       render.NewGridRenderer(view, config.ScreenWidth, config.ScreenHeight, config.GridRadius),
		renderer:   system.NewRenderSystem(ecs, view),
		view:       view,
		radius:     1,
	}
	s.dispatcher.Subscribe(event.MarkerRegenerated, event.ListenerFunc(s.onRegenerated))
	s.dispatcher.Subscribe(event.MarkerShown, event.ListenerFunc(s.onShown))
	s.dispatcher.Subscribe(event.MarkerOutlined, event.ListenerFunc(s.onShown))
	return s
}

func (s *PreviewState) Enter() {
	m := s.settings.Marker.Normalize()
	s.marker = marker.Create(s.ecs, s.settings.Prefab, m,
		marker.WithLogger(s.logger), marker.WithDispatcher(s.dispatcher))
	s.grid.Rebuild(m.Layout, m.NodeSpacing)
	s.dirty = true
}

func (s *PreviewState) Exit() {
	if s.marker != nil {
		s.marker.Destroy()
		s.marker = nil
	}
}

func (s *PreviewState) Update(deltaTime float64) {
	select {
	case settings := <-s.reloads:
		s.apply(settings)
	default:
	}

	s.handleKeys()

	cx, cy := ebiten.CursorPosition()
	cfg := s.marker.Config()
	cursor := rings.Snap(cfg.Layout, s.view.ToWorld(float64(cx), float64(cy)), cfg.NodeSpacing)
	if cursor != s.cursor {
		s.cursor = cursor
		s.dirty = true
	}

	if s.dirty {
		s.refresh()
		s.dirty = false
	}
}

func (s *PreviewState) handleKeys() {
	for i, key := range radiusKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.radius = i + 1
			s.dirty = true
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		s.toggle(modeOutline)
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		s.toggle(modeAll)
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		s.toggle(modeHidden)
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		s.cycleLayout()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		s.nextPreset()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		s.resize(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		s.resize(-1)
	}
}

func (s *PreviewState) toggle(mode displayMode) {
	if s.mode == mode {
		s.mode = modeDisk
	} else {
		s.mode = mode
	}
	s.dirty = true
}

// cycleLayout переключает раскладку и пересоздаёт кольца
func (s *PreviewState) cycleLayout() {
	m := s.marker.Config()
	layouts := rings.Layouts()
	for i, l := range layouts {
		if l == m.Layout {
			m.Layout = layouts[(i+1)%len(layouts)]
			break
		}
	}
	s.settings.Marker = m
	s.regenerate()
}

// resize меняет максимальный радиус маркера
func (s *PreviewState) resize(delta int) {
	m := s.marker.Config()
	m.MaxRadius += delta
	if m.MaxRadius > config.MaxPreviewRadius {
		m.MaxRadius = config.MaxPreviewRadius
	}
	s.settings.Marker = m
	s.regenerate()
}

// nextPreset применяет следующий пресет из библиотеки
func (s *PreviewState) nextPreset() {
	ids := s.presets.IDs()
	if len(ids) == 0 {
		return
	}
	s.preset = (s.preset + 1) % len(ids)
	p := s.presets[ids[s.preset]]

	// пресеты проверены при загрузке
	m, err := p.Marker()
	if err != nil {
		s.logger.Warn("preset skipped", "id", p.ID, "err", err)
		return
	}
	prefab, err := p.Prefab()
	if err != nil {
		s.logger.Warn("preset skipped", "id", p.ID, "err", err)
		return
	}
	s.settings.Marker = m
	s.settings.Prefab = prefab
	s.radius = p.Radius
	if p.Mode == defs.ModeOutline {
		s.mode = modeOutline
	} else {
		s.mode = modeDisk
	}
	s.logger.Info("preset applied", "id", p.ID, "name", p.Name)
	s.regenerate()
}

func (s *PreviewState) apply(settings config.Settings) {
	s.logger.Info("config reloaded", "layout", settings.Marker.Layout, "maxRadius", settings.Marker.MaxRadius)
	s.settings = settings
	s.regenerate()
	s.dispatcher.Dispatch(event.Event{Type: event.ConfigReloaded})
}

func (s *PreviewState) regenerate() {
	m := s.settings.Marker.Normalize()
	s.marker.Regenerate(s.settings.Prefab, m)
	s.grid.Rebuild(m.Layout, m.NodeSpacing)
	s.dirty = true
}

func (s *PreviewState) refresh() {
	switch s.mode {
	case modeDisk:
		s.marker.Show(s.cursor, s.radius)
	case modeOutline:
		s.marker.ShowOutline(s.cursor, s.radius)
	case modeAll:
		s.marker.Show(s.cursor, s.marker.RingCount())
		s.marker.ShowAll()
	case modeHidden:
		s.marker.HideAll()
	}
}

func (s *PreviewState) onRegenerated(e event.Event) {
	if data, ok := e.Data.(event.MarkerRegeneratedData); ok {
		s.lastEvent = fmt.Sprintf("regenerated %s: %d rings, %d nodes", data.Layout, data.RingCount, data.NodeCount)
	}
}

func (s *PreviewState) onShown(e event.Event) {
	if data, ok := e.Data.(event.MarkerShownData); ok {
		s.lastEvent = fmt.Sprintf("%s r=%d rings=%v at (%.2f, %.2f)", e.Type, data.Radius, data.Rings, data.AnchorX, data.AnchorZ)
	}
}

func (s *PreviewState) Draw(screen *ebiten.Image) {
	s.grid.Draw(screen)
	s.grid.DrawCursor(screen, s.cursor)
	s.renderer.Draw(screen)

	cfg := s.marker.Config()
	lines := []string{
		fmt.Sprintf("layout %s  spacing %.2f  size %.2f  rings %d", cfg.Layout, cfg.NodeSpacing, cfg.NodeSize, s.marker.RingCount()),
		fmt.Sprintf("radius %d  mode %s", s.radius, s.mode),
		"1-9 radius  O outline  A all  H hide  L layout  P preset  +/- max radius",
		s.lastEvent,
	}
	for i, line := range lines {
		drawText(screen, line, config.HUDOffsetX, config.HUDOffsetY+i*config.HUDLineHeight, config.TextLightColor)
	}
}

func drawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	text.Draw(screen, s, basicfont.Face7x13, x, y, c)
}
