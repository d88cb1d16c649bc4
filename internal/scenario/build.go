package scenario

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/zyedidia/generic/mapset"

	"github.com/talgya/hex-tactics/internal/engine"
	"github.com/talgya/hex-tactics/internal/units"
	"github.com/talgya/hex-tactics/internal/world"
)

// ErrNoRoom means a unit could not be deployed anywhere on the map.
var ErrNoRoom = errors.New("no free passable hex for unit")

// Build generates the scenario's map and deploys its units. The returned seed
// is the one actually used, so a random-seeded run can be replayed.
func Build(sc *Scenario) (*engine.GameState, int64, error) {
	cfg := sc.Map
	if cfg.Seed == 0 {
		cfg.Seed = sc.Seed
	}
	m, seed := world.GenerateSeeded(cfg)
	for _, tp := range sc.Terrain {
		t, err := world.ParseTerrain(tp.Type)
		if err != nil {
			return nil, seed, fmt.Errorf("terrain at %s: %w", tp.At, err)
		}
		m.Set(tp.At, world.NewTile(t, world.BaseHeight(t)))
	}
	for _, c := range sc.Roads {
		m.SetRoad(c, true)
	}

	taken := mapset.New[world.HexCoord]()
	us := make([]*units.Unit, 0, len(sc.Units))
	for i, spec := range sc.Units {
		pos, ok := Deploy(m, spec.At, taken)
		if !ok {
			return nil, seed, fmt.Errorf("unit %d (%s): %w", i, spec.Name, ErrNoRoom)
		}
		taken.Put(pos)
		if pos != spec.At {
			slog.Debug("unit deployed away from requested hex", "unit", spec.Name, "requested", spec.At.Key(), "placed", pos.Key())
		}

		us = append(us, &units.Unit{
			ID:       units.NewID(),
			Name:     spec.Name,
			Player:   spec.Player,
			Position: pos,
			HP:       spec.HP,
			MaxHP:    spec.HP,
			Attack:   spec.Attack,
			MinRange: spec.MinRange,
			MaxRange: spec.MaxRange,
			Move:     spec.Move,
			MaxMove:  spec.Move,
		})
	}

	players := make([]engine.Player, len(sc.Players))
	for i, p := range sc.Players {
		players[i] = engine.Player{Name: p.Name}
	}

	gs, err := engine.NewGameState(m, players, us)
	if err != nil {
		return nil, seed, fmt.Errorf("build %q: %w", sc.Name, err)
	}
	return gs, seed, nil
}

// Deploy finds the passable hex not in taken that is closest to want, by
// breadth-first search over neighbours. want is clamped onto the map first.
func Deploy(m *world.Map, want world.HexCoord, taken mapset.Set[world.HexCoord]) (world.HexCoord, bool) {
	start := world.HexCoord{Q: clamp(want.Q, 0, m.Cols-1), R: clamp(want.R, 0, m.Rows-1)}

	visited := mapset.New[world.HexCoord]()
	visited.Put(start)
	queue := []world.HexCoord{start}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		if m.Passable(c) && !taken.Has(c) {
			return c, true
		}
		for _, n := range c.Neighbors() {
			if m.InBounds(n) && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return world.HexCoord{}, false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
