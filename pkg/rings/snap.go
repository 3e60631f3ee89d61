// pkg/rings/snap.go
package rings

import (
	"math"

	"go-range-marker/pkg/hexmap"

	"github.com/go-gl/mathgl/mgl64"
)

// Snap moves p to the centre of the tile containing it. Y is kept.
// Unknown layouts and non-positive spacing return p unchanged.
func Snap(layout TileLayout, p mgl64.Vec3, spacing float64) mgl64.Vec3 {
	if spacing <= 0 {
		return p
	}
	switch layout {
	case Hex:
		x, z := hexmap.FromPoint(p.X(), p.Z(), spacing/2).ToPoint(spacing / 2)
		return mgl64.Vec3{x, p.Y(), z}
	case Square4, Square8:
		return mgl64.Vec3{
			math.Round(p.X()/spacing) * spacing,
			p.Y(),
			math.Round(p.Z()/spacing) * spacing,
		}
	}
	return p
}

// Disk returns the origin followed by every offset of rings 0..radius-1.
func Disk(layout TileLayout, spacing float64, radius int) []mgl64.Vec3 {
	generated := Generate(layout, spacing, radius)
	if generated == nil {
		return nil
	}
	out := []mgl64.Vec3{{}}
	for _, ring := range generated {
		out = append(out, ring...)
	}
	return out
}
