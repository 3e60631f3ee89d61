// component/render.go
package component

import "image/color"

// Renderable — компонент для отрисовки узла маркера
type Renderable struct {
	Color     color.RGBA
	Radius    float32 // в долях шага тайла, до масштабирования Transform.Scale
	HasStroke bool
}
