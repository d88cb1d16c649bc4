package ai

import (
	"github.com/talgya/hex-tactics/internal/engine"
	"github.com/talgya/hex-tactics/internal/world"
)

// Env is the view of the battle that doctrine conditions are evaluated
// against. Every field is visible to expr by name, e.g.
// `ReadyAttackers > 0 && Differential < 0`.
type Env struct {
	Round          int
	OwnUnits       int
	EnemyUnits     int
	OwnHP          int
	EnemyHP        int
	AvgHPFraction  float64 // Mean HP/MaxHP over own units
	Score          int
	Differential   int
	ReadyAttackers int // Own units that can attack someone right now
	Movers         int // Own units with movement budget left
	NearestEnemy   int // Smallest hex distance between any own and enemy unit; -1 if none
}

// NewEnv summarizes gs from the player's point of view.
func NewEnv(gs *engine.GameState, player int) Env {
	own := gs.Friendly(player)
	enemies := gs.Enemies(player)

	env := Env{
		Round:        gs.Round,
		OwnUnits:     len(own),
		EnemyUnits:   len(enemies),
		Score:        engine.Score(gs, player),
		Differential: engine.ScoreDifferential(gs, player),
		NearestEnemy: -1,
	}

	hpFrac := 0.0
	for _, u := range own {
		env.OwnHP += u.HP
		hpFrac += u.HPFraction()
		if u.CanMove() {
			env.Movers++
		}

		ready := false
		for _, e := range enemies {
			d := world.Distance(u.Position, e.Position)
			if env.NearestEnemy < 0 || d < env.NearestEnemy {
				env.NearestEnemy = d
			}
			if u.CanAttack() && engine.InRange(u, e) {
				ready = true
			}
		}
		if ready {
			env.ReadyAttackers++
		}
	}
	if len(own) > 0 {
		env.AvgHPFraction = hpFrac / float64(len(own))
	}
	for _, e := range enemies {
		env.EnemyHP += e.HP
	}

	return env
}
