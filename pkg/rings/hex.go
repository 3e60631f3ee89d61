// pkg/rings/hex.go
package rings

import (
	"math"

	"go-range-marker/pkg/hexmap"

	"github.com/go-gl/mathgl/mgl64"
)

// hexGenerator lays rings out on a pointy-top hex grid. Rows run along X and
// stack along Z with a step of 0.75 spacing.
type hexGenerator struct{}

func (hexGenerator) Layout() TileLayout { return Hex }

func (hexGenerator) Ring(i int, spacing float64) Ring {
	xOffs := spacing * 0.5 * math.Sqrt(3)
	yOffs := spacing * 0.75
	offs := xOffs * 0.5
	n := float64(i + 1)

	ring := make(Ring, 0, CountFor(Hex, i))

	// правая сторона: крайняя точка и диагонали вверх/вниз
	ring = append(ring, point(xOffs*n, 0))
	for j := 0; j < i+1; j++ {
		x := xOffs*n - offs*float64(j+1)
		z := yOffs * float64(j+1)
		ring = append(ring, point(x, z), point(x, -z))
	}

	// левая сторона
	ring = append(ring, point(-xOffs*n, 0))
	for j := 0; j < i+1; j++ {
		x := -xOffs*n + offs*float64(j+1)
		z := yOffs * float64(j+1)
		ring = append(ring, point(x, z), point(x, -z))
	}

	// верхняя и нижняя грани без углов; для i == 0 их нет
	for j := 0; j < i; j++ {
		x := xOffs*float64(j) - offs*float64(i-1)
		ring = append(ring, point(x, yOffs*n))
	}
	for j := 0; j < i; j++ {
		x := xOffs*float64(j) - offs*float64(i-1)
		ring = append(ring, point(x, -yOffs*n))
	}
	return ring
}

// Distance snaps p to the hex grid and returns the hex distance scaled by spacing.
func (hexGenerator) Distance(p mgl64.Vec3, spacing float64) float64 {
	if spacing <= 0 {
		return 0
	}
	h := hexmap.FromPoint(p.X(), p.Z(), spacing/2)
	return float64(h.Distance(hexmap.Hex{})) * spacing
}
