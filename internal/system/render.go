// internal/system/render.go
package system

import (
	"sort"

	"go-range-marker/internal/config"
	"go-range-marker/internal/entity"
	"go-range-marker/internal/types"
	"go-range-marker/pkg/viewport"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует активные узлы сцены сверху
type RenderSystem struct {
	ecs  *entity.ECS
	view viewport.Viewport
	ids  []types.EntityID // переиспользуемый буфер для сортировки
}

func NewRenderSystem(ecs *entity.ECS, view viewport.Viewport) *RenderSystem {
	return &RenderSystem{ecs: ecs, view: view}
}

// SetViewport replaces the projection, e.g. after the tile spacing changed.
func (s *RenderSystem) SetViewport(view viewport.Viewport) {
	s.view = view
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	// порядок обхода map случаен, сортируем чтобы кадры не мерцали
	s.ids = s.ids[:0]
	for id := range s.ecs.Renderables {
		if s.ecs.ActiveInHierarchy(id) {
			s.ids = append(s.ids, id)
		}
	}
	sort.Slice(s.ids, func(i, j int) bool { return s.ids[i] < s.ids[j] })

	for _, id := range s.ids {
		render := s.ecs.Renderables[id]
		pos, scale := s.ecs.WorldTransform(id)
		x, y := s.view.ToScreen(pos)
		radius := s.view.Length(float64(render.Radius) * scale.X())
		if render.HasStroke {
			vector.DrawFilledCircle(screen, x, y, radius+config.NodeStroke, config.NodeStrokeColor, true)
		}
		vector.DrawFilledCircle(screen, x, y, radius, render.Color, true)
	}
}
