// pkg/render/hex_renderer.go
package render

import (
	"image/color"
	"math"

	"go-range-marker/internal/config"
	"go-range-marker/pkg/rings"
	"go-range-marker/pkg/viewport"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridRenderer pre-renders the tile grid under the marker for one layout.
type GridRenderer struct {
	view     viewport.Viewport
	layout   rings.TileLayout
	spacing  float64
	radius   int
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
	mapImage *ebiten.Image // предрендеренная сетка
}

func NewGridRenderer(view viewport.Viewport, screenWidth, screenHeight, radius int) *GridRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &GridRenderer{
		view:     view,
		radius:   radius,
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 18),
		fillIs:   make([]uint16, 0, 18),
		strokeVs: make([]ebiten.Vertex, 0, 36),
		strokeIs: make([]uint16, 0, 36),
		mapImage: ebiten.NewImage(screenWidth, screenHeight),
	}
}

// Rebuild re-renders the background for layout and spacing.
func (r *GridRenderer) Rebuild(layout rings.TileLayout, spacing float64) {
	r.layout = layout
	r.spacing = spacing
	r.mapImage.Clear()
	r.mapImage.Fill(config.BackgroundColor)

	for _, p := range rings.Disk(layout, spacing, r.radius) {
		path := r.tilePath(p)
		r.fill(path)
		r.stroke(path)
	}
}

func (r *GridRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.mapImage, nil)
}

// DrawCursor outlines the tile under the cursor.
func (r *GridRenderer) DrawCursor(screen *ebiten.Image, p mgl64.Vec3) {
	path := r.tilePath(rings.Snap(r.layout, p, r.spacing))
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: 2,
	})
	paint(r.strokeVs, config.CursorColor)
	screen.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *GridRenderer) tilePath(p mgl64.Vec3) *vector.Path {
	x, y := r.view.ToScreen(p)
	path := &vector.Path{}
	switch r.layout {
	case rings.Hex:
		// pointy top: описанная окружность — половина шага
		size := float64(r.view.Length(r.spacing / 2))
		for i := 0; i < 6; i++ {
			angle := math.Pi/3*float64(i) + math.Pi/6
			px := float32(float64(x) + size*math.Cos(angle))
			py := float32(float64(y) + size*math.Sin(angle))
			if i == 0 {
				path.MoveTo(px, py)
			} else {
				path.LineTo(px, py)
			}
		}
	default:
		half := r.view.Length(r.spacing / 2)
		path.MoveTo(x-half, y-half)
		path.LineTo(x+half, y-half)
		path.LineTo(x+half, y+half)
		path.LineTo(x-half, y+half)
	}
	path.Close()
	return path
}

func (r *GridRenderer) fill(path *vector.Path) {
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paint(r.fillVs, config.TileColor)
	r.mapImage.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *GridRenderer) stroke(path *vector.Path) {
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: float32(config.StrokeWidth),
	})
	paint(r.strokeVs, config.TileStrokeColor)
	r.mapImage.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func paint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
