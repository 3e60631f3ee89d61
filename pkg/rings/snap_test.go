package rings

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnap_Square(t *testing.T) {
	got := Snap(Square4, mgl64.Vec3{2.4, 0.3, -1.4}, 2)
	assert.Equal(t, mgl64.Vec3{2, 0.3, -2}, got)

	got = Snap(Square8, mgl64.Vec3{-1.2, 0, 3.9}, 1)
	assert.Equal(t, mgl64.Vec3{-1, 0, 4}, got)
}

func TestSnap_HexReturnsRingOffsets(t *testing.T) {
	const spacing = 1.5
	for _, ring := range Generate(Hex, spacing, 3) {
		for _, p := range ring {
			nudged := p.Add(mgl64.Vec3{0.1, 0, -0.1})
			s := Snap(Hex, nudged, spacing)
			assert.InDelta(t, p.X(), s.X(), 1e-9)
			assert.InDelta(t, p.Z(), s.Z(), 1e-9)
		}
	}
}

func TestSnap_Degenerate(t *testing.T) {
	p := mgl64.Vec3{0.3, 0, 0.7}
	assert.Equal(t, p, Snap(Hex, p, 0))
	assert.Equal(t, p, Snap(TileLayout(9), p, 1))
}

func TestDisk(t *testing.T) {
	d := Disk(Hex, 1, 3)
	require.Len(t, d, 1+6+12+18)
	assert.Equal(t, mgl64.Vec3{}, d[0])
	assert.Nil(t, Disk(TileLayout(9), 1, 3))
}
