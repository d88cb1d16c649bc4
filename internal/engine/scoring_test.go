package engine

import (
	"testing"

	"github.com/talgya/hex-tactics/internal/units"
)

func TestScore(t *testing.T) {
	a := newUnit("a", 0, 0, 0)
	a.HP, a.Attack = 10, 5
	b := newUnit("b", 0, 2, 0)
	b.HP, b.Attack = 20, 5
	enemy := newUnit("enemy", 1, 4, 4)
	enemy.HP, enemy.Attack = 5, 1
	gs := newState(t, 6, 6, a, b, enemy)

	if got := Score(gs, 0); got != 150 {
		t.Fatalf("expected 150, got %d", got)
	}
	if got := ScoreDifferential(gs, 0); got != 145 {
		t.Fatalf("expected differential 145, got %d", got)
	}
	if got := ScoreDifferential(gs, 1); got != -145 {
		t.Fatalf("expected differential -145, got %d", got)
	}
}

func TestScore_ConcentratedForce(t *testing.T) {
	gs := newState(t, 4, 4, withHP(newUnit("a", 0, 0, 0), 30, 5), withHP(newUnit("b", 0, 2, 0), 1, 5))
	if got := Score(gs, 0); got != 155 {
		t.Fatalf("expected 155, got %d", got)
	}
}

func withHP(u *units.Unit, hp, attack int) *units.Unit {
	u.HP, u.MaxHP, u.Attack = hp, hp, attack
	return u
}

func TestEvaluate_DoesNotMutate(t *testing.T) {
	attacker := newUnit("attacker", 0, 1, 1)
	defender := newUnit("defender", 1, 2, 1)
	gs := newState(t, 4, 4, attacker, defender)

	before := ScoreDifferential(gs, 0)
	cmd := Command{Kind: KindAttack, Unit: attacker.ID, Target: defender.ID}
	after := Evaluate(gs, 0, cmd)

	if after != before+3*3 {
		t.Fatalf("expected differential %d after hit, got %d", before+9, after)
	}
	if defender.HP != 10 || attacker.HasAttacked || len(gs.Events) != 0 {
		t.Fatal("Evaluate modified the live state")
	}
}

func TestEvaluate_KillCountsFullScore(t *testing.T) {
	attacker := newUnit("attacker", 0, 1, 1)
	attacker.Attack = 12
	defender := newUnit("defender", 1, 2, 1)
	gs := newState(t, 4, 4, attacker, defender)

	got := Evaluate(gs, 0, Command{Kind: KindAttack, Unit: attacker.ID, Target: defender.ID})
	if want := 10 * 12; got != want {
		t.Fatalf("expected %d with the defender gone, got %d", want, got)
	}
	if gs.Units.Len() != 2 {
		t.Fatal("kill leaked out of the clone")
	}
}
