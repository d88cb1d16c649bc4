// Package units provides the combat unit model and the registry that owns
// the live unit collection.
package units

import (
	"github.com/google/uuid"

	"github.com/talgya/hex-tactics/internal/world"
)

// ID is a unit's stable identity. IDs are never reused, so a command holding
// the ID of a destroyed unit resolves to nothing instead of another unit.
type ID uuid.UUID

// NoID is the zero ID; it never names a unit.
var NoID = ID(uuid.Nil)

// NewID issues a fresh random ID.
func NewID() ID {
	return ID(uuid.New())
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

// Short returns the first eight hex digits, for logs.
func (id ID) Short() string {
	return id.String()[:8]
}

// Unit is a single combat unit on the map.
type Unit struct {
	ID     ID     `json:"id"`
	Name   string `json:"name"`
	Player int    `json:"player"`

	Position world.HexCoord `json:"position"`

	// Combat
	HP       int `json:"hp"`
	MaxHP    int `json:"max_hp"`
	Attack   int `json:"attack"`
	MinRange int `json:"min_range"`
	MaxRange int `json:"max_range"`

	// Movement budget: Move is what is left this turn, MaxMove the per-turn refill.
	Move    float64 `json:"move"`
	MaxMove float64 `json:"max_move"`

	HasAttacked bool `json:"has_attacked"` // Reset at the start of the owner's turn
}

// Alive returns true while the unit has hit points left.
func (u *Unit) Alive() bool {
	return u.HP > 0
}

// CanMove returns true if any movement budget remains this turn.
func (u *Unit) CanMove() bool {
	return u.Move > 0
}

// CanAttack returns true if the unit has not attacked this turn.
func (u *Unit) CanAttack() bool {
	return !u.HasAttacked
}

// ResetTurn restores the per-turn movement budget and attack flag.
func (u *Unit) ResetTurn() {
	u.Move = u.MaxMove
	u.HasAttacked = false
}

// HPFraction returns current HP over max HP in [0, 1].
func (u *Unit) HPFraction() float64 {
	if u.MaxHP <= 0 {
		return 0
	}
	f := float64(u.HP) / float64(u.MaxHP)
	if f < 0 {
		return 0
	}
	return f
}
