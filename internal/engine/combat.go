package engine

import (
	"log/slog"

	"github.com/talgya/hex-tactics/internal/units"
	"github.com/talgya/hex-tactics/internal/world"
)

// AttackResult describes a resolved attack.
type AttackResult struct {
	Attacker  units.ID
	Defender  units.ID
	Damage    int
	Remaining int  // Defender HP after the hit
	Destroyed bool // Defender removed from the registry
}

// InRange reports whether d lies within a's [MinRange, MaxRange] band.
func InRange(a, d *units.Unit) bool {
	dist := world.Distance(a.Position, d.Position)
	return dist >= a.MinRange && dist <= a.MaxRange
}

// Attack resolves one attack. It requires both units alive, on different
// sides, the defender in range, and the attacker not yet having attacked this
// turn; otherwise nothing changes and ok is false. A defender brought to
// HP <= 0 is removed by ID, leaving every other unit's identity intact.
func Attack(gs *GameState, attackerID, defenderID units.ID) (AttackResult, bool) {
	a := gs.Units.Get(attackerID)
	d := gs.Units.Get(defenderID)
	if a == nil || d == nil || !a.Alive() || !d.Alive() {
		return AttackResult{}, false
	}
	if a.Player == d.Player || a.HasAttacked || !InRange(a, d) {
		return AttackResult{}, false
	}

	d.HP -= a.Attack
	a.HasAttacked = true

	res := AttackResult{
		Attacker:  a.ID,
		Defender:  d.ID,
		Damage:    a.Attack,
		Remaining: d.HP,
	}
	gs.record(CategoryAttack, "%s hits %s for %d (hp %d)", a.Name, d.Name, a.Attack, d.HP)

	if d.HP <= 0 {
		gs.Units.Remove(d.ID)
		res.Destroyed = true
		gs.record(CategoryDestroyed, "%s destroyed by %s at %s", d.Name, a.Name, d.Position)
		slog.Debug("unit destroyed", "unit", d.Name, "id", d.ID.Short(), "by", a.Name)
	}

	return res, true
}
