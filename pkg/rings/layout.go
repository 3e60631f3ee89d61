// Package rings computes the node offsets of a radius marker: concentric rings
// of tile positions around an origin for hex, 4-way and 8-way square grids.
//
// Ring i (0-based) holds the tiles whose distance from the origin under the
// layout metric is exactly i+1. Offsets lie in the X/Z plane with Y = 0.
package rings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// TileLayout selects the adjacency metric and the offset formulas.
type TileLayout int

const (
	Hex TileLayout = iota
	Square4
	Square8
)

// ErrUnknownLayout is returned by ParseTileLayout for unrecognised names.
var ErrUnknownLayout = errors.New("unknown tile layout")

var layoutNames = map[TileLayout]string{
	Hex:     "hex",
	Square4: "square4",
	Square8: "square8",
}

func (l TileLayout) String() string {
	if name, ok := layoutNames[l]; ok {
		return name
	}
	return fmt.Sprintf("TileLayout(%d)", int(l))
}

// Valid reports whether l is one of the known layouts.
func (l TileLayout) Valid() bool {
	_, ok := layoutNames[l]
	return ok
}

// ParseTileLayout accepts "hex", "square4"/"square_4" and "square8"/"square_8"
// in any case.
func ParseTileLayout(s string) (TileLayout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hex":
		return Hex, nil
	case "square4", "square_4":
		return Square4, nil
	case "square8", "square_8":
		return Square8, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

// Layouts returns every known layout in declaration order.
func Layouts() []TileLayout {
	return []TileLayout{Hex, Square4, Square8}
}

// Ring is the ordered set of offsets at one ring distance.
// Only membership and values matter, not the order.
type Ring []mgl64.Vec3

// CountFor returns how many tiles ring i holds under layout, 0 for unknown layouts.
func CountFor(layout TileLayout, i int) int {
	if i < 0 {
		return 0
	}
	switch layout {
	case Hex:
		return 6 * (i + 1)
	case Square4:
		return 4 * (i + 1)
	case Square8:
		return 8 * (i + 1)
	}
	return 0
}
