// Package engine provides the turn-based tactical core: game state,
// pathfinding, combat, commands, scoring, and turn flow.
package engine

import (
	"errors"
	"fmt"

	"github.com/talgya/hex-tactics/internal/units"
	"github.com/talgya/hex-tactics/internal/world"
)

// Validation errors returned by NewGameState.
var (
	ErrOutOfBounds   = errors.New("unit out of map bounds")
	ErrImpassable    = errors.New("unit on impassable terrain")
	ErrOccupied      = errors.New("hex already occupied")
	ErrUnknownPlayer = errors.New("unit owned by unknown player")
	ErrNoPlayers     = errors.New("no players")
)

// Player is a side in the battle.
type Player struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Active bool   `json:"active"` // False once the player has no units left
}

// Event is a notable occurrence in the battle.
type Event struct {
	Round       int    `json:"round" db:"round"`
	Player      int    `json:"player" db:"player"`
	Category    string `json:"category" db:"category"` // "attack", "move", "destroyed", "turn", ...
	Description string `json:"description" db:"description"`
}

// Event categories.
const (
	CategoryAttack     = "attack"
	CategoryMove       = "move"
	CategoryDestroyed  = "destroyed"
	CategoryTurn       = "turn"
	CategoryEliminated = "eliminated"
	CategoryVictory    = "victory"
)

// GameState holds the complete battle state. It exclusively owns the map and
// the unit registry; commands refer to units by ID only.
type GameState struct {
	Map     *world.Map
	Units   *units.Registry
	Players []Player

	Current int // Index of the player whose turn it is
	Round   int // Current round, starting at 1

	Events []Event // Events since the last Drain
}

// NewGameState composes a map, players, and units, validating the placement
// invariants: every unit in bounds, on passable terrain, one unit per hex.
func NewGameState(m *world.Map, players []Player, us []*units.Unit) (*GameState, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}

	occupied := make(map[world.HexCoord]units.ID, len(us))
	for _, u := range us {
		if u.Player < 0 || u.Player >= len(players) {
			return nil, fmt.Errorf("%s (player %d): %w", u.Name, u.Player, ErrUnknownPlayer)
		}
		if !m.InBounds(u.Position) {
			return nil, fmt.Errorf("%s at %s: %w", u.Name, u.Position, ErrOutOfBounds)
		}
		if !m.Passable(u.Position) {
			return nil, fmt.Errorf("%s at %s: %w", u.Name, u.Position, ErrImpassable)
		}
		if _, taken := occupied[u.Position]; taken {
			return nil, fmt.Errorf("%s at %s: %w", u.Name, u.Position, ErrOccupied)
		}
		occupied[u.Position] = u.ID
	}

	reg, err := units.NewRegistry(us...)
	if err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}

	ps := make([]Player, len(players))
	for i, p := range players {
		p.Index = i
		p.Active = true
		ps[i] = p
	}

	return &GameState{
		Map:     m,
		Units:   reg,
		Players: ps,
		Round:   1,
	}, nil
}

// Tile returns the tile at c, or nil if out of bounds.
func (gs *GameState) Tile(c world.HexCoord) *world.Tile {
	t, _ := gs.Map.Get(c)
	return t
}

// Unit returns the live unit with the given ID, or nil.
func (gs *GameState) Unit(id units.ID) *units.Unit {
	return gs.Units.Get(id)
}

// UnitAt returns the unit standing on c, or nil.
func (gs *GameState) UnitAt(c world.HexCoord) *units.Unit {
	return gs.Units.At(c)
}

// Occupied reports whether a unit other than except stands on c.
func (gs *GameState) Occupied(c world.HexCoord, except units.ID) bool {
	u := gs.Units.At(c)
	return u != nil && u.ID != except
}

// Friendly returns the player's units in registry order.
func (gs *GameState) Friendly(player int) []*units.Unit {
	return gs.Units.OwnedBy(player)
}

// Enemies returns every unit not owned by the player, in registry order.
func (gs *GameState) Enemies(player int) []*units.Unit {
	return gs.Units.Hostile(player)
}

// Clone returns a deep copy for what-if evaluation. Mutating the clone,
// including its map roads, never affects gs.
func (gs *GameState) Clone() *GameState {
	cp := &GameState{
		Map:     gs.Map.Clone(),
		Units:   gs.Units.Clone(),
		Players: make([]Player, len(gs.Players)),
		Current: gs.Current,
		Round:   gs.Round,
		Events:  make([]Event, len(gs.Events)),
	}
	copy(cp.Players, gs.Players)
	copy(cp.Events, gs.Events)
	return cp
}

// Drain returns the accumulated events and clears the buffer.
func (gs *GameState) Drain() []Event {
	ev := gs.Events
	gs.Events = nil
	return ev
}

func (gs *GameState) record(category, format string, args ...any) {
	gs.Events = append(gs.Events, Event{
		Round:       gs.Round,
		Player:      gs.Current,
		Category:    category,
		Description: fmt.Sprintf(format, args...),
	})
}

// PlayerName returns the display name of a player index.
func (gs *GameState) PlayerName(i int) string {
	if i >= 0 && i < len(gs.Players) && gs.Players[i].Name != "" {
		return gs.Players[i].Name
	}
	return fmt.Sprintf("player %d", i)
}
