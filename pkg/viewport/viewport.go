// Package viewport maps the X/Z ground plane to screen pixels for a top-down view.
package viewport

import "github.com/go-gl/mathgl/mgl64"

// Viewport — камера сверху: мировой Center попадает в экранную точку (OriginX, OriginY).
// Ось Z мира направлена вверх по экрану.
type Viewport struct {
	OriginX, OriginY float64
	PixelsPerUnit    float64
	Center           mgl64.Vec3
}

// New centres the world origin on a screen of the given size.
func New(screenWidth, screenHeight int, pixelsPerUnit float64) Viewport {
	return Viewport{
		OriginX:       float64(screenWidth) / 2,
		OriginY:       float64(screenHeight) / 2,
		PixelsPerUnit: pixelsPerUnit,
	}
}

// ToScreen projects a world point. Y (height) is ignored.
func (v Viewport) ToScreen(p mgl64.Vec3) (x, y float32) {
	d := p.Sub(v.Center)
	return float32(v.OriginX + d.X()*v.PixelsPerUnit), float32(v.OriginY - d.Z()*v.PixelsPerUnit)
}

// ToWorld is the inverse of ToScreen on the ground plane.
func (v Viewport) ToWorld(x, y float64) mgl64.Vec3 {
	if v.PixelsPerUnit == 0 {
		return v.Center
	}
	return mgl64.Vec3{
		v.Center.X() + (x-v.OriginX)/v.PixelsPerUnit,
		0,
		v.Center.Z() - (y-v.OriginY)/v.PixelsPerUnit,
	}
}

// Length converts a world length to pixels.
func (v Viewport) Length(l float64) float32 {
	return float32(l * v.PixelsPerUnit)
}
