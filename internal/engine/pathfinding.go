package engine

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/talgya/hex-tactics/internal/units"
	"github.com/talgya/hex-tactics/internal/world"
)

// Reach is the result of a budgeted uniform-cost search: every hex a unit can
// reach from its origin, with the cheapest cost and the predecessor on that path.
// The origin is always included at cost 0.
type Reach struct {
	origin world.HexCoord
	cost   map[world.HexCoord]float64
	prev   map[world.HexCoord]world.HexCoord
	order  []world.HexCoord // Settle order: non-decreasing cost
}

type frontierItem struct {
	coord world.HexCoord
	cost  float64
	seq   int // Discovery sequence; breaks cost ties
}

// Reachable runs Dijkstra from origin over passable, in-bounds hexes not held
// by any unit other than mover, never exceeding budget. Edge weight is the
// destination tile's cost. When two paths tie, the first discovered is kept.
func Reachable(gs *GameState, origin world.HexCoord, budget float64, mover units.ID) *Reach {
	r := &Reach{
		origin: origin,
		cost:   map[world.HexCoord]float64{origin: 0},
		prev:   make(map[world.HexCoord]world.HexCoord),
		order:  []world.HexCoord{origin},
	}
	if budget <= 0 {
		return r
	}
	r.order = r.order[:0]

	// Occupancy snapshot so the per-edge check doesn't scan the registry.
	blocked := mapset.New[world.HexCoord]()
	for _, u := range gs.Units.All() {
		if u.ID != mover {
			blocked.Put(u.Position)
		}
	}

	settled := mapset.New[world.HexCoord]()
	frontier := heap.New[frontierItem](func(a, b frontierItem) bool {
		if a.cost != b.cost {
			return a.cost < b.cost
		}
		return a.seq < b.seq
	})
	seq := 0
	frontier.Push(frontierItem{coord: origin, cost: 0, seq: seq})

	for frontier.Size() > 0 {
		item, _ := frontier.Pop()
		if settled.Has(item.coord) || item.cost > r.cost[item.coord] {
			continue // Stale entry
		}
		settled.Put(item.coord)
		r.order = append(r.order, item.coord)

		for _, n := range item.coord.Neighbors() {
			if settled.Has(n) || blocked.Has(n) {
				continue
			}
			tile, ok := gs.Map.Get(n)
			if !ok || !tile.Terrain.Passable() {
				continue
			}
			next := item.cost + tile.Cost()
			if next > budget {
				continue
			}
			if known, seen := r.cost[n]; seen && next >= known {
				continue
			}
			r.cost[n] = next
			r.prev[n] = item.coord
			seq++
			frontier.Push(frontierItem{coord: n, cost: next, seq: seq})
		}
	}

	return r
}

// Origin returns the search origin.
func (r *Reach) Origin() world.HexCoord {
	return r.origin
}

// Cost returns the cheapest cost to reach c.
func (r *Reach) Cost(c world.HexCoord) (float64, bool) {
	v, ok := r.cost[c]
	return v, ok
}

// Contains reports whether c is reachable.
func (r *Reach) Contains(c world.HexCoord) bool {
	_, ok := r.cost[c]
	return ok
}

// Coords returns every reachable hex in settle order, origin first.
func (r *Reach) Coords() []world.HexCoord {
	out := make([]world.HexCoord, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of reachable hexes, origin included.
func (r *Reach) Len() int {
	return len(r.order)
}

// PathTo reconstructs the cheapest path to dest via predecessor pointers.
// Origin excluded, destination included; empty if dest is unreachable or is
// the origin itself.
func (r *Reach) PathTo(dest world.HexCoord) []world.HexCoord {
	if dest == r.origin || !r.Contains(dest) {
		return []world.HexCoord{}
	}
	var rev []world.HexCoord
	for c := dest; c != r.origin; c = r.prev[c] {
		rev = append(rev, c)
	}
	path := make([]world.HexCoord, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}

// ShortestPath returns the minimum-cost path from origin to dest within budget,
// origin excluded and dest included. Empty when dest cannot be reached.
func ShortestPath(gs *GameState, origin, dest world.HexCoord, budget float64, mover units.ID) []world.HexCoord {
	return Reachable(gs, origin, budget, mover).PathTo(dest)
}

// PathCost sums the entry cost of every hex on a path.
func PathCost(gs *GameState, path []world.HexCoord) float64 {
	total := 0.0
	for _, c := range path {
		if t, ok := gs.Map.Get(c); ok {
			total += t.Cost()
		}
	}
	return total
}
