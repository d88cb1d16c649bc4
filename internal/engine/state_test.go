package engine

import (
	"errors"
	"testing"

	"github.com/talgya/hex-tactics/internal/units"
	"github.com/talgya/hex-tactics/internal/world"
)

func TestNewGameState_Validation(t *testing.T) {
	m := world.NewMap(4, 4, world.TerrainPlain)
	m.Set(world.HexCoord{Q: 3, R: 3}, world.NewTile(world.TerrainWater, 0))

	tests := []struct {
		name  string
		units []*units.Unit
		want  error
	}{
		{"out of bounds", []*units.Unit{newUnit("a", 0, 4, 0)}, ErrOutOfBounds},
		{"on water", []*units.Unit{newUnit("a", 0, 3, 3)}, ErrImpassable},
		{"stacked", []*units.Unit{newUnit("a", 0, 1, 1), newUnit("b", 1, 1, 1)}, ErrOccupied},
		{"unknown player", []*units.Unit{newUnit("a", 5, 1, 1)}, ErrUnknownPlayer},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGameState(m, []Player{{Name: "Red"}, {Name: "Blue"}}, tc.units)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if _, err := NewGameState(m, nil, nil); !errors.Is(err, ErrNoPlayers) {
		t.Fatalf("expected ErrNoPlayers, got %v", err)
	}
}

func TestGameState_QuerySurface(t *testing.T) {
	a := newUnit("a", 0, 1, 1)
	b := newUnit("b", 1, 2, 2)
	gs := newState(t, 5, 5, a, b)

	if gs.Tile(world.HexCoord{Q: 9, R: 9}) != nil {
		t.Fatal("out-of-bounds tile should be nil")
	}
	if gs.UnitAt(world.HexCoord{Q: 2, R: 2}) != b {
		t.Fatal("UnitAt should find b")
	}
	if !gs.Occupied(a.Position, b.ID) || gs.Occupied(a.Position, a.ID) {
		t.Fatal("Occupied should ignore the excepted unit only")
	}
	if len(gs.Enemies(0)) != 1 || gs.Enemies(0)[0] != b {
		t.Fatal("Enemies(0) should be [b]")
	}
	if !gs.Players[1].Active || gs.Players[1].Index != 1 {
		t.Fatal("players should start active with their index set")
	}
}

func TestGameState_CloneIsDeep(t *testing.T) {
	a := newUnit("a", 0, 1, 1)
	gs := newState(t, 4, 4, a)
	cp := gs.Clone()

	cp.Unit(a.ID).HP = 1
	cp.Unit(a.ID).Position = world.HexCoord{Q: 3, R: 3}
	cp.Map.SetRoad(world.HexCoord{Q: 0, R: 0}, true)
	cp.Players[0].Active = false

	if a.HP != 10 || a.Position != (world.HexCoord{Q: 1, R: 1}) {
		t.Fatal("clone mutation leaked into original unit")
	}
	if gs.Tile(world.HexCoord{Q: 0, R: 0}).HasRoad {
		t.Fatal("clone mutation leaked into original map")
	}
	if !gs.Players[0].Active {
		t.Fatal("clone mutation leaked into original players")
	}
}
