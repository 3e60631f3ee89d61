// pkg/rings/square.go
package rings

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// square4Generator builds Manhattan diamonds: tiles reachable by i+1 orthogonal steps.
type square4Generator struct{}

func (square4Generator) Layout() TileLayout { return Square4 }

func (square4Generator) Ring(i int, spacing float64) Ring {
	n := spacing * float64(i+1)
	ring := make(Ring, 0, CountFor(Square4, i))

	// вверх, затем диагональ к правой и левой вершинам
	ring = append(ring, point(0, n))
	for j := 0; j < i; j++ {
		x := spacing * float64(j+1)
		z := spacing*float64(i) - spacing*float64(j)
		ring = append(ring, point(x, z), point(-x, z))
	}

	// вниз
	ring = append(ring, point(0, -n))
	for j := 0; j < i; j++ {
		x := spacing * float64(j+1)
		z := -spacing*float64(i) + spacing*float64(j)
		ring = append(ring, point(x, z), point(-x, z))
	}

	ring = append(ring, point(n, 0), point(-n, 0))
	return ring
}

func (square4Generator) Distance(p mgl64.Vec3, _ float64) float64 {
	return math.Abs(p.X()) + math.Abs(p.Z())
}

// square8Generator builds Chebyshev squares: diagonal steps count as one.
type square8Generator struct{}

func (square8Generator) Layout() TileLayout { return Square8 }

func (square8Generator) Ring(i int, spacing float64) Ring {
	n := spacing * float64(i+1)
	ring := make(Ring, 0, CountFor(Square8, i))

	// верхняя и нижняя грани целиком, включая углы
	for _, z := range []float64{n, -n} {
		ring = append(ring, point(0, z))
		for j := 0; j < i+1; j++ {
			x := spacing * float64(j+1)
			ring = append(ring, point(x, z), point(-x, z))
		}
	}

	// боковые грани без углов
	for _, x := range []float64{n, -n} {
		ring = append(ring, point(x, 0))
		for j := 0; j < i; j++ {
			z := spacing * float64(j+1)
			ring = append(ring, point(x, z), point(x, -z))
		}
	}
	return ring
}

func (square8Generator) Distance(p mgl64.Vec3, _ float64) float64 {
	return math.Max(math.Abs(p.X()), math.Abs(p.Z()))
}
