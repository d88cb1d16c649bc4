package engine

import "testing"

func TestBeginTurn_ResetsCurrentPlayerOnly(t *testing.T) {
	red := newUnit("red", 0, 0, 0)
	red.Move, red.HasAttacked = 0, true
	blue := newUnit("blue", 1, 3, 3)
	blue.Move, blue.HasAttacked = 0, true
	gs := newState(t, 4, 4, red, blue)

	BeginTurn(gs)

	if red.Move != red.MaxMove || red.HasAttacked {
		t.Fatal("current player's unit not reset")
	}
	if blue.Move != 0 || !blue.HasAttacked {
		t.Fatal("other player's unit should be untouched")
	}
}

func TestEndTurn_RotatesAndCountsRounds(t *testing.T) {
	gs := newState(t, 4, 4, newUnit("red", 0, 0, 0), newUnit("blue", 1, 3, 3))

	EndTurn(gs)
	if gs.Current != 1 || gs.Round != 1 {
		t.Fatalf("after first end: current %d round %d", gs.Current, gs.Round)
	}
	EndTurn(gs)
	if gs.Current != 0 || gs.Round != 2 {
		t.Fatalf("after wrap: current %d round %d", gs.Current, gs.Round)
	}
}

func TestEndTurn_SkipsEliminatedPlayers(t *testing.T) {
	m := newState(t, 4, 4).Map
	gs, err := NewGameState(m, []Player{{Name: "Red"}, {Name: "Green"}, {Name: "Blue"}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	gs.Units.Add(newUnit("red", 0, 0, 0))
	gs.Units.Add(newUnit("blue", 2, 3, 3))

	EndTurn(gs)
	if gs.Players[1].Active {
		t.Fatal("green has no units and should be eliminated")
	}
	if gs.Current != 2 {
		t.Fatalf("expected blue to play next, got player %d", gs.Current)
	}
	if GameOver(gs) {
		t.Fatal("two players remain")
	}
}

func TestEndTurn_Victory(t *testing.T) {
	attacker := newUnit("attacker", 0, 1, 1)
	attacker.Attack = 10
	defender := newUnit("defender", 1, 2, 1)
	gs := newState(t, 4, 4, attacker, defender)

	if _, ok := Attack(gs, attacker.ID, defender.ID); !ok {
		t.Fatal("attack should land")
	}
	EndTurn(gs)

	if !GameOver(gs) {
		t.Fatal("blue has no units left")
	}
	w, ok := Winner(gs)
	if !ok || w != 0 {
		t.Fatalf("expected red to win, got %d ok=%v", w, ok)
	}
	if gs.Current != 0 {
		t.Fatal("turn should not advance after the game ends")
	}

	EndTurn(gs)
	if n := countCategory(gs, CategoryVictory); n != 1 {
		t.Fatalf("expected one victory event, got %d", n)
	}
}

func countCategory(gs *GameState, category string) int {
	n := 0
	for _, e := range gs.Events {
		if e.Category == category {
			n++
		}
	}
	return n
}
