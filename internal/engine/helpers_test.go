package engine

import (
	"testing"

	"github.com/talgya/hex-tactics/internal/units"
	"github.com/talgya/hex-tactics/internal/world"
)

// newUnit builds a unit with sane defaults: 10 hp, 3 attack, range [1,1], move 3.
func newUnit(name string, player, q, r int) *units.Unit {
	return &units.Unit{
		ID:       units.NewID(),
		Name:     name,
		Player:   player,
		Position: world.HexCoord{Q: q, R: r},
		HP:       10,
		MaxHP:    10,
		Attack:   3,
		MinRange: 1,
		MaxRange: 1,
		Move:     3,
		MaxMove:  3,
	}
}

// newState builds a two-player state on an all-plain map.
func newState(t *testing.T, rows, cols int, us ...*units.Unit) *GameState {
	t.Helper()
	return newStateOn(t, world.NewMap(rows, cols, world.TerrainPlain), us...)
}

func newStateOn(t *testing.T, m *world.Map, us ...*units.Unit) *GameState {
	t.Helper()
	gs, err := NewGameState(m, []Player{{Name: "Red"}, {Name: "Blue"}}, us)
	if err != nil {
		t.Fatalf("NewGameState: %v", err)
	}
	return gs
}

// assertNoStacking fails if two units share a hex.
func assertNoStacking(t *testing.T, gs *GameState) {
	t.Helper()
	seen := make(map[world.HexCoord]string)
	for _, u := range gs.Units.All() {
		if other, dup := seen[u.Position]; dup {
			t.Fatalf("%s and %s both on %s", other, u.Name, u.Position)
		}
		seen[u.Position] = u.Name
	}
}
