// pkg/hexmap/hex.go
package hexmap

import (
	"go-range-marker/pkg/utils"
)

// Hex представляет гекс в осевых координатах (Q, R)
type Hex struct {
	Q, R int
}

// NeighborDirections defines the 6 possible directions from a hex, starting from East and going counter-clockwise.
var NeighborDirections = []Hex{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// ToPoint конвертирует гекс в координаты плоскости X/Z (pointy top ориентация).
// size — радиус описанной окружности гекса, то есть половина шага между рядами тайлов.
func (h Hex) ToPoint(size float64) (x, z float64) {
	x = size * (Sqrt3*float64(h.Q) + Sqrt3/2*float64(h.R))
	z = size * (3.0 / 2.0 * float64(h.R))
	return
}

// FromPoint конвертирует координаты плоскости в ближайший гекс
func FromPoint(x, z, size float64) Hex {
	q := (Sqrt3/3*x - 1.0/3*z) / size
	r := (2.0 / 3 * z) / size
	return axialRound(q, r)
}

// AllPossibleNeighbors возвращает всех возможных соседей гекса
func (h Hex) AllPossibleNeighbors() []Hex {
	neighbors := make([]Hex, 0, len(NeighborDirections))
	for _, d := range NeighborDirections {
		neighbors = append(neighbors, h.Add(d))
	}
	return neighbors
}

// Add возвращает сумму двух гексов
func (h Hex) Add(other Hex) Hex {
	return Hex{
		Q: h.Q + other.Q,
		R: h.R + other.R,
	}
}

// Subtract возвращает разность двух гексов
func (h Hex) Subtract(other Hex) Hex {
	return Hex{
		Q: h.Q - other.Q,
		R: h.R - other.R,
	}
}

// Scale multiplies a hex vector by a scalar.
func (h Hex) Scale(factor int) Hex {
	return Hex{h.Q * factor, h.R * factor}
}

// Distance вычисляет расстояние между гексами
func (h Hex) Distance(to Hex) int {
	dq := h.Q - to.Q
	dr := h.R - to.R
	return (utils.Abs(dq) + utils.Abs(dr) + utils.Abs(dq+dr)) / 2
}

// Ring returns the hexes at exactly distance k from h. The walk starts k steps
// south-west of h and follows NeighborDirections around the six sides.
// k == 0 yields h itself.
func (h Hex) Ring(k int) []Hex {
	if k <= 0 {
		return []Hex{h}
	}
	results := make([]Hex, 0, 6*k)
	cur := h.Add(NeighborDirections[4].Scale(k))
	for side := 0; side < 6; side++ {
		for step := 0; step < k; step++ {
			results = append(results, cur)
			cur = cur.Add(NeighborDirections[side])
		}
	}
	return results
}
