// pkg/rings/generator.go
package rings

import "github.com/go-gl/mathgl/mgl64"

// Generator produces the rings of one tile layout.
type Generator interface {
	Layout() TileLayout
	// Ring returns the offsets of ring i (0-based) for the given node spacing.
	Ring(i int, spacing float64) Ring
	// Distance measures p from the origin under the layout metric, in world units.
	Distance(p mgl64.Vec3, spacing float64) float64
}

var generators = map[TileLayout]Generator{
	Hex:     hexGenerator{},
	Square4: square4Generator{},
	Square8: square8Generator{},
}

// Lookup returns the generator registered for layout.
func Lookup(layout TileLayout) (Generator, bool) {
	g, ok := generators[layout]
	return g, ok
}

// Generate returns maxRadius rings for layout. maxRadius below 1 is treated as 1.
// An unknown layout yields nil.
func Generate(layout TileLayout, spacing float64, maxRadius int) []Ring {
	g, ok := Lookup(layout)
	if !ok {
		return nil
	}
	if maxRadius < 1 {
		maxRadius = 1
	}
	result := make([]Ring, maxRadius)
	for i := range result {
		result[i] = g.Ring(i, spacing)
	}
	return result
}

func point(x, z float64) mgl64.Vec3 {
	return mgl64.Vec3{x, 0, z}
}
