// Package world provides the hex grid, terrain, and map generation.
// Uses odd-q offset coordinates (q = column, r = row) for the hex grid;
// odd columns sit half a hex lower than even ones.
package world

import "fmt"

// HexCoord represents a position on the hex grid.
// Comparable, so it can be used directly as a map key.
type HexCoord struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
}

// Key returns the "q,r" form used for set and map membership in logs and storage.
func (h HexCoord) Key() string {
	return fmt.Sprintf("%d,%d", h.Q, h.R)
}

func (h HexCoord) String() string {
	return "(" + h.Key() + ")"
}

// Neighbor offsets for even and odd columns. Index i is the same compass
// direction in both tables: 0=SE, 1=NE, 2=N, 3=NW, 4=SW, 5=S.
var (
	evenColumnOffsets = [6]HexCoord{
		{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
		{Q: -1, R: -1}, {Q: -1, R: 0}, {Q: 0, R: 1},
	}
	oddColumnOffsets = [6]HexCoord{
		{Q: 1, R: 1}, {Q: 1, R: 0}, {Q: 0, R: -1},
		{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
	}
)

// Neighbors returns the six adjacent hex coordinates. No bounds filtering is
// done; callers check InBounds.
func (h HexCoord) Neighbors() [6]HexCoord {
	offsets := &evenColumnOffsets
	if h.Q&1 == 1 {
		offsets = &oddColumnOffsets
	}
	var result [6]HexCoord
	for i, d := range offsets {
		result[i] = HexCoord{Q: h.Q + d.Q, R: h.R + d.R}
	}
	return result
}

// cube converts odd-q offset coordinates to cube coordinates (x, y, z).
func (h HexCoord) cube() (int, int, int) {
	x := h.Q
	z := h.R - (h.Q-(h.Q&1))/2
	return x, -x - z, z
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b HexCoord) int {
	ax, ay, az := a.cube()
	bx, by, bz := b.cube()
	return (abs(ax-bx) + abs(ay-by) + abs(az-bz)) / 2
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
