package world

import (
	"math"
	"testing"
)

func TestMap_InBounds(t *testing.T) {
	m := NewMap(4, 6, TerrainPlain)
	tests := []struct {
		c    HexCoord
		want bool
	}{
		{HexCoord{0, 0}, true},
		{HexCoord{5, 3}, true},
		{HexCoord{6, 0}, false},
		{HexCoord{0, 4}, false},
		{HexCoord{-1, 0}, false},
		{HexCoord{0, -1}, false},
	}
	for _, tc := range tests {
		if got := m.InBounds(tc.c); got != tc.want {
			t.Errorf("InBounds(%s) = %v, want %v", tc.c, got, tc.want)
		}
	}
}

func TestMap_GetOutOfBoundsIsAbsent(t *testing.T) {
	m := NewMap(3, 3, TerrainPlain)
	if tile, ok := m.Get(HexCoord{Q: 3, R: 0}); ok || tile != nil {
		t.Fatal("out-of-bounds Get should return nothing")
	}
	if _, ok := m.Get(HexCoord{Q: 2, R: 2}); !ok {
		t.Fatal("in-bounds Get should succeed")
	}
}

func TestMap_RoadLowersCost(t *testing.T) {
	m := NewMap(3, 3, TerrainForest)
	c := HexCoord{Q: 1, R: 1}
	tile, _ := m.Get(c)
	if tile.Cost() != 2 {
		t.Fatalf("forest cost should be 2, got %v", tile.Cost())
	}
	m.SetRoad(c, true)
	if tile.Cost() != RoadMoveCost {
		t.Fatalf("road cost should be %v, got %v", RoadMoveCost, tile.Cost())
	}
}

func TestMap_WaterImpassable(t *testing.T) {
	m := NewMap(2, 2, TerrainPlain)
	c := HexCoord{Q: 0, R: 1}
	m.Set(c, NewTile(TerrainWater, 0))
	if m.Passable(c) {
		t.Fatal("water should not be passable")
	}
	m.SetRoad(c, true)
	if m.Passable(c) {
		t.Fatal("a road must not make water passable")
	}
	tile, _ := m.Get(c)
	if !math.IsInf(tile.Cost(), 1) {
		t.Fatalf("water cost should be +Inf, got %v", tile.Cost())
	}
}

func TestMap_CloneIndependent(t *testing.T) {
	m := NewMap(2, 2, TerrainPlain)
	cp := m.Clone()
	cp.SetRoad(HexCoord{Q: 0, R: 0}, true)
	tile, _ := m.Get(HexCoord{Q: 0, R: 0})
	if tile.HasRoad {
		t.Fatal("road on clone leaked into original")
	}
}
