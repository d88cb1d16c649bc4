package world

import (
	"fmt"
	"math"
)

// Tile is a single hex of the terrain map.
type Tile struct {
	Height   float64 `json:"height"`
	Terrain  Terrain `json:"terrain"`
	Color    string  `json:"color"`
	HasRoad  bool    `json:"has_road"` // The only field mutable after generation
	MoveCost float64 `json:"move_cost"`
}

// NewTile builds a tile with the terrain table's cost and color.
func NewTile(t Terrain, height float64) Tile {
	return Tile{
		Height:   height,
		Terrain:  t,
		Color:    Color(t),
		MoveCost: MoveCost(t),
	}
}

// Cost returns the budget consumed by entering this tile, accounting for roads.
func (t *Tile) Cost() float64 {
	if t.HasRoad && t.Terrain.Passable() && RoadMoveCost < t.MoveCost {
		return RoadMoveCost
	}
	return t.MoveCost
}

// Map holds a rows × cols grid of tiles, stored row-major.
type Map struct {
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
	Tiles []Tile `json:"-"`
}

// NewMap creates a map with every tile set to the given terrain at its base height.
func NewMap(rows, cols int, fill Terrain) *Map {
	m := &Map{
		Rows:  rows,
		Cols:  cols,
		Tiles: make([]Tile, rows*cols),
	}
	for i := range m.Tiles {
		m.Tiles[i] = NewTile(fill, BaseHeight(fill))
	}
	return m
}

// InBounds returns true if the coordinate lies on the map.
func (m *Map) InBounds(c HexCoord) bool {
	return c.Q >= 0 && c.Q < m.Cols && c.R >= 0 && c.R < m.Rows
}

// Get returns the tile at the given coordinate; ok is false if out of bounds.
func (m *Map) Get(c HexCoord) (*Tile, bool) {
	if !m.InBounds(c) {
		return nil, false
	}
	return &m.Tiles[c.R*m.Cols+c.Q], true
}

// Set places a tile at the given coordinate. Out-of-bounds writes are ignored.
func (m *Map) Set(c HexCoord, t Tile) {
	if m.InBounds(c) {
		m.Tiles[c.R*m.Cols+c.Q] = t
	}
}

// SetRoad marks or clears a road on a tile.
func (m *Map) SetRoad(c HexCoord, road bool) {
	if tile, ok := m.Get(c); ok {
		tile.HasRoad = road
	}
}

// Passable reports whether the coordinate is on the map and not water.
func (m *Map) Passable(c HexCoord) bool {
	tile, ok := m.Get(c)
	return ok && tile.Terrain.Passable() && !math.IsInf(tile.Cost(), 1)
}

// Clone returns a copy that shares nothing with m.
func (m *Map) Clone() *Map {
	cp := &Map{Rows: m.Rows, Cols: m.Cols, Tiles: make([]Tile, len(m.Tiles))}
	copy(cp.Tiles, m.Tiles)
	return cp
}

// Each calls fn for every coordinate in row-major order.
func (m *Map) Each(fn func(c HexCoord, t *Tile)) {
	for r := 0; r < m.Rows; r++ {
		for q := 0; q < m.Cols; q++ {
			fn(HexCoord{Q: q, R: r}, &m.Tiles[r*m.Cols+q])
		}
	}
}

// HexCount returns the total number of hexes in the map.
func (m *Map) HexCount() int {
	return len(m.Tiles)
}

// String returns a summary of the map.
func (m *Map) String() string {
	return fmt.Sprintf("Map(rows=%d, cols=%d, hexes=%d)", m.Rows, m.Cols, m.HexCount())
}
