package viewport

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestToScreen(t *testing.T) {
	v := New(800, 600, 10)
	x, y := v.ToScreen(mgl64.Vec3{0, 5, 0})
	assert.Equal(t, float32(400), x)
	assert.Equal(t, float32(300), y)

	x, y = v.ToScreen(mgl64.Vec3{2, 0, 3})
	assert.Equal(t, float32(420), x)
	assert.Equal(t, float32(270), y, "positive Z goes up the screen")
}

func TestRoundTrip(t *testing.T) {
	v := New(800, 600, 32)
	v.Center = mgl64.Vec3{4, 0, -1}
	p := mgl64.Vec3{1.5, 0, 2.25}
	x, y := v.ToScreen(p)
	back := v.ToWorld(float64(x), float64(y))
	assert.InDelta(t, p.X(), back.X(), 1e-4)
	assert.InDelta(t, p.Z(), back.Z(), 1e-4)
}

func TestLengthAndDegenerate(t *testing.T) {
	v := New(100, 100, 8)
	assert.Equal(t, float32(12), v.Length(1.5))

	v.PixelsPerUnit = 0
	assert.Equal(t, v.Center, v.ToWorld(10, 10))
}
