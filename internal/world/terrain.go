package world

import (
	"fmt"
	"math"
	"strings"
)

// Terrain types for hex tiles, ordered from lowest to highest ground.
type Terrain uint8

const (
	TerrainWater    Terrain = iota // Impassable to ground units
	TerrainSand                    // Beaches and shallows
	TerrainPlain                   // Open ground
	TerrainForest                  // Slows movement
	TerrainHill                    // Slows movement
	TerrainMountain                // Slowest passable ground
)

// RoadMoveCost is the traversal cost of any passable tile carrying a road.
const RoadMoveCost = 0.5

// terrainInfo is one row of the terrain lookup table.
type terrainInfo struct {
	name      string
	ceiling   float64 // Classify upper bound on normalized noise (exclusive)
	base      float64 // Base tile height
	variation float64 // Max random height jitter
	moveCost  float64
	color     string
}

var terrainTable = [...]terrainInfo{
	TerrainWater:    {name: "Water", ceiling: 0.30, base: 0.0, variation: 0, moveCost: math.Inf(1), color: "#2b65ec"},
	TerrainSand:     {name: "Sand", ceiling: 0.36, base: 0.2, variation: 0.05, moveCost: 1.5, color: "#e2c275"},
	TerrainPlain:    {name: "Plain", ceiling: 0.58, base: 0.4, variation: 0.1, moveCost: 1, color: "#7cb342"},
	TerrainForest:   {name: "Forest", ceiling: 0.70, base: 0.5, variation: 0.2, moveCost: 2, color: "#2e7d32"},
	TerrainHill:     {name: "Hill", ceiling: 0.82, base: 0.8, variation: 0.3, moveCost: 2, color: "#8d6e63"},
	TerrainMountain: {name: "Mountain", ceiling: math.Inf(1), base: 1.4, variation: 0.6, moveCost: 3, color: "#9e9e9e"},
}

// Classify maps normalized noise in [0,1] to a terrain type via fixed thresholds.
func Classify(n float64) Terrain {
	for t, info := range terrainTable {
		if n < info.ceiling {
			return Terrain(t)
		}
	}
	return TerrainMountain
}

// BaseHeight returns the base tile height for a terrain type.
func BaseHeight(t Terrain) float64 {
	return terrainTable[t].base
}

// HeightVariation returns the maximum random height jitter for a terrain type.
func HeightVariation(t Terrain) float64 {
	return terrainTable[t].variation
}

// MoveCost returns the movement budget consumed by entering a tile of this type.
// Water is +Inf.
func MoveCost(t Terrain) float64 {
	return terrainTable[t].moveCost
}

// Color returns the display color for a terrain type.
func Color(t Terrain) string {
	return terrainTable[t].color
}

// Passable reports whether ground units may stand on this terrain.
func (t Terrain) Passable() bool {
	return t != TerrainWater
}

func (t Terrain) String() string {
	return TerrainName(t)
}

// TerrainName returns a human-readable name for a terrain type.
func TerrainName(t Terrain) string {
	if int(t) < len(terrainTable) {
		return terrainTable[t].name
	}
	return "Unknown"
}

// ParseTerrain is the inverse of TerrainName (case-insensitive).
func ParseTerrain(s string) (Terrain, error) {
	for t, info := range terrainTable {
		if strings.EqualFold(info.name, s) {
			return Terrain(t), nil
		}
	}
	return 0, fmt.Errorf("unknown terrain %q", s)
}
