package engine

import (
	"log/slog"
)

// BeginTurn refills movement and clears the attack flag for every unit of
// the current player.
func BeginTurn(gs *GameState) {
	for _, u := range gs.Friendly(gs.Current) {
		u.ResetTurn()
	}
	gs.record(CategoryTurn, "%s begins round %d", gs.PlayerName(gs.Current), gs.Round)
}

// EndTurn marks players without units as eliminated and hands the turn to
// the next active player. Round advances when play wraps past the last
// player. Does nothing once the game is over.
func EndTurn(gs *GameState) {
	updateEliminations(gs)
	if GameOver(gs) {
		return
	}

	n := len(gs.Players)
	next := gs.Current
	for i := 0; i < n; i++ {
		next++
		if next == n {
			next = 0
			gs.Round++
		}
		if gs.Players[next].Active {
			break
		}
	}
	gs.Current = next
}

func updateEliminations(gs *GameState) {
	eliminated := false
	alive := make([]bool, len(gs.Players))
	for _, u := range gs.Units.All() {
		if u.Alive() && u.Player >= 0 && u.Player < len(alive) {
			alive[u.Player] = true
		}
	}
	for i := range gs.Players {
		if gs.Players[i].Active && !alive[i] {
			gs.Players[i].Active = false
			eliminated = true
			gs.record(CategoryEliminated, "%s has no units left", gs.PlayerName(i))
			slog.Info("player eliminated", "player", gs.PlayerName(i), "round", gs.Round)
		}
	}
	if w, ok := Winner(gs); ok && eliminated {
		gs.record(CategoryVictory, "%s wins in round %d", gs.PlayerName(w), gs.Round)
	}
}

// ActivePlayers returns the number of players still in the game.
func ActivePlayers(gs *GameState) int {
	n := 0
	for _, p := range gs.Players {
		if p.Active {
			n++
		}
	}
	return n
}

// GameOver reports whether at most one player remains.
func GameOver(gs *GameState) bool {
	return ActivePlayers(gs) <= 1
}

// Winner returns the sole remaining player, if there is exactly one.
func Winner(gs *GameState) (int, bool) {
	if ActivePlayers(gs) != 1 {
		return 0, false
	}
	for _, p := range gs.Players {
		if p.Active {
			return p.Index, true
		}
	}
	return 0, false
}
