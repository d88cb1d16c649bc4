package engine

import (
	"fmt"
	"strings"

	"github.com/talgya/hex-tactics/internal/entropy"
	"github.com/talgya/hex-tactics/internal/units"
	"github.com/talgya/hex-tactics/internal/world"
)

// Kind selects a command variant. The zero Kind is not a command; applying
// or generating one is a programming error.
type Kind uint8

const (
	KindAttack Kind = iota + 1
	KindMoveTowardsEnemy
	KindMoveAwayFromEnemy
	KindMoveRandom
	KindDoNothing
)

// Kinds lists every command variant in declaration order.
var Kinds = []Kind{KindAttack, KindMoveTowardsEnemy, KindMoveAwayFromEnemy, KindMoveRandom, KindDoNothing}

var kindNames = map[Kind]string{
	KindAttack:            "attack",
	KindMoveTowardsEnemy:  "move_towards",
	KindMoveAwayFromEnemy: "move_away",
	KindMoveRandom:        "move_random",
	KindDoNothing:         "do_nothing",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", k)
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(name, s) {
			return k, nil
		}
	}
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = k.String()
	}
	return 0, fmt.Errorf("unknown command kind %q (have %s)", s, strings.Join(names, ", "))
}

// Command is a single game transition. It refers to units by stable ID, so a
// command generated before another command destroyed its unit or target
// degrades to a no-op instead of acting on a different unit.
type Command struct {
	Kind   Kind
	Unit   units.ID
	Target units.ID       // Attack and MoveTowards/AwayFromEnemy
	Dest   world.HexCoord // MoveRandom; informational for the other moves
}

func (c Command) String() string {
	switch c.Kind {
	case KindAttack, KindMoveTowardsEnemy, KindMoveAwayFromEnemy:
		return fmt.Sprintf("%s %s -> %s", c.Kind, c.Unit.Short(), c.Target.Short())
	case KindMoveRandom:
		return fmt.Sprintf("%s %s -> %s", c.Kind, c.Unit.Short(), c.Dest)
	default:
		return fmt.Sprintf("%s %s", c.Kind, c.Unit.Short())
	}
}

// Generate proposes a command of the given kind for the current player.
// Eligible units are tried in random order; the first one that yields a
// valid command wins. ok is false when no unit or target qualifies, which is
// a normal outcome.
func Generate(kind Kind, gs *GameState, rng entropy.Source) (Command, bool) {
	if _, known := kindNames[kind]; !known {
		panic(fmt.Sprintf("engine: generate for invalid command kind %d", kind))
	}

	own := gs.Friendly(gs.Current)
	order := make([]int, len(own))
	for i := range order {
		order[i] = i
	}
	entropy.Shuffle(rng, len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	for _, i := range order {
		u := own[i]
		if !u.Alive() {
			continue
		}
		if cmd, ok := generateFor(kind, gs, u, rng); ok {
			return cmd, true
		}
	}
	return Command{}, false
}

func generateFor(kind Kind, gs *GameState, u *units.Unit, rng entropy.Source) (Command, bool) {
	switch kind {
	case KindAttack:
		if !u.CanAttack() {
			return Command{}, false
		}
		var targets []*units.Unit
		for _, e := range gs.Enemies(u.Player) {
			if e.Alive() && InRange(u, e) {
				targets = append(targets, e)
			}
		}
		if len(targets) == 0 {
			return Command{}, false
		}
		t := targets[rng.Intn(len(targets))]
		return Command{Kind: kind, Unit: u.ID, Target: t.ID, Dest: t.Position}, true

	case KindMoveTowardsEnemy, KindMoveAwayFromEnemy:
		if !u.CanMove() {
			return Command{}, false
		}
		t := nearestEnemy(gs, u)
		if t == nil {
			return Command{}, false
		}
		reach := Reachable(gs, u.Position, u.Move, u.ID)
		dest := pickByDistance(reach, t.Position, kind == KindMoveTowardsEnemy)
		if dest == u.Position {
			return Command{}, false // Already as close/far as the budget allows
		}
		return Command{Kind: kind, Unit: u.ID, Target: t.ID, Dest: dest}, true

	case KindMoveRandom:
		if !u.CanMove() {
			return Command{}, false
		}
		coords := Reachable(gs, u.Position, u.Move, u.ID).Coords()[1:] // Drop origin
		if len(coords) == 0 {
			return Command{}, false
		}
		return Command{Kind: kind, Unit: u.ID, Dest: coords[rng.Intn(len(coords))]}, true

	case KindDoNothing:
		return Command{Kind: kind, Unit: u.ID, Dest: u.Position}, true
	}
	return Command{}, false
}

// Apply performs the command against gs and reports whether it took effect.
// Stale references (a destroyed unit or target, a destination no longer
// reachable) make it a silent no-op. DoNothing takes effect, without any
// state change, as long as its unit still exists.
func (c Command) Apply(gs *GameState) bool {
	switch c.Kind {
	case KindAttack:
		_, ok := Attack(gs, c.Unit, c.Target)
		return ok

	case KindMoveTowardsEnemy, KindMoveAwayFromEnemy:
		u, t := gs.Unit(c.Unit), gs.Unit(c.Target)
		if u == nil || t == nil || !u.CanMove() {
			return false
		}
		reach := Reachable(gs, u.Position, u.Move, u.ID)
		dest := pickByDistance(reach, t.Position, c.Kind == KindMoveTowardsEnemy)
		return moveAlong(gs, u, reach, dest)

	case KindMoveRandom:
		u := gs.Unit(c.Unit)
		if u == nil || !u.CanMove() {
			return false
		}
		return moveAlong(gs, u, Reachable(gs, u.Position, u.Move, u.ID), c.Dest)

	case KindDoNothing:
		return gs.Unit(c.Unit) != nil
	}
	panic(fmt.Sprintf("engine: apply of invalid command kind %d", c.Kind))
}

// nearestEnemy returns the closest hostile unit by hex distance; ties go to
// the earlier unit in registry order.
func nearestEnemy(gs *GameState, u *units.Unit) *units.Unit {
	var best *units.Unit
	bestDist := 0
	for _, e := range gs.Enemies(u.Player) {
		if !e.Alive() {
			continue
		}
		d := world.Distance(u.Position, e.Position)
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// pickByDistance chooses the reachable hex closest to (towards) or farthest
// from target. Coords come in settle order, so keeping only strict
// improvements prefers the cheaper hex on ties.
func pickByDistance(reach *Reach, target world.HexCoord, towards bool) world.HexCoord {
	best := reach.Origin()
	bestDist := world.Distance(best, target)
	for _, c := range reach.Coords() {
		d := world.Distance(c, target)
		if (towards && d < bestDist) || (!towards && d > bestDist) {
			best, bestDist = c, d
		}
	}
	return best
}

// moveAlong advances u along the cheapest path to dest, consuming exactly
// the path cost from its budget.
func moveAlong(gs *GameState, u *units.Unit, reach *Reach, dest world.HexCoord) bool {
	path := reach.PathTo(dest)
	if len(path) == 0 {
		return false
	}
	cost, _ := reach.Cost(dest)

	from := u.Position
	u.Position = path[len(path)-1]
	u.Move -= cost
	if u.Move < 0 {
		u.Move = 0
	}

	gs.record(CategoryMove, "%s moves %s -> %s (cost %.1f, %d steps)", u.Name, from, u.Position, cost, len(path))
	return true
}
