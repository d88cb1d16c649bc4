package engine

// Score rates a player's force as the sum of HP × Attack over its living
// units. Damage spread across several units lowers the total linearly, while
// a unit kept alive on a sliver of HP contributes almost nothing, so the
// heuristic prefers forces that keep HP distributed.
func Score(gs *GameState, player int) int {
	total := 0
	for _, u := range gs.Units.All() {
		if u.Player == player && u.Alive() {
			total += u.HP * u.Attack
		}
	}
	return total
}

// ScoreDifferential returns the player's score minus every other player's.
// Positive means the player is ahead.
func ScoreDifferential(gs *GameState, player int) int {
	diff := Score(gs, player)
	for i := range gs.Players {
		if i != player {
			diff -= Score(gs, i)
		}
	}
	return diff
}

// Evaluate applies cmds in order to a clone of gs and returns the player's
// resulting differential. gs itself is never modified.
func Evaluate(gs *GameState, player int, cmds ...Command) int {
	sim := gs.Clone()
	for _, c := range cmds {
		c.Apply(sim)
	}
	return ScoreDifferential(sim, player)
}
