// Package ai drives computer players: a doctrine of expr conditions decides
// which command kinds are on the table, and a one-ply look-ahead over cloned
// state picks the best concrete command.
package ai

import (
	"fmt"
	"sort"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/talgya/hex-tactics/internal/engine"
)

// Rule offers one command kind whenever its condition holds.
type Rule struct {
	Name    string `yaml:"name"`
	When    string `yaml:"when"`    // expr source evaluated against Env
	Command string `yaml:"command"` // engine.Kind name, e.g. "move_towards"
	Weight  int    `yaml:"weight"`  // Tie-break between equally scored candidates; higher wins
}

// Doctrine is a named rule set describing how a player fights.
type Doctrine struct {
	Name  string `yaml:"name"`
	Rules []Rule `yaml:"rules"`
}

type compiledRule struct {
	Rule
	kind    engine.Kind
	program *vm.Program
}

// Compile reports whether every rule of d names a known command and has a
// condition that compiles to a boolean over Env.
func Compile(d Doctrine) error {
	_, err := compileRules(d)
	return err
}

// compileRules compiles every condition into expr bytecode and resolves the
// command kinds. Rules keep their declaration order.
func compileRules(d Doctrine) ([]compiledRule, error) {
	if len(d.Rules) == 0 {
		return nil, fmt.Errorf("doctrine %q has no rules", d.Name)
	}
	out := make([]compiledRule, 0, len(d.Rules))
	for _, r := range d.Rules {
		kind, err := engine.ParseKind(r.Command)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Name, err)
		}
		when := r.When
		if strings.TrimSpace(when) == "" {
			when = "true"
		}
		program, err := expr.Compile(when, expr.Env(Env{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("rule %q: compile %q: %w", r.Name, when, err)
		}
		out = append(out, compiledRule{Rule: r, kind: kind, program: program})
	}
	return out, nil
}

// DefaultDoctrine strikes whenever possible, pulls back badly hurt armies
// that are outnumbered, and otherwise closes the distance.
func DefaultDoctrine() Doctrine {
	return Doctrine{
		Name: "balanced",
		Rules: []Rule{
			{Name: "strike", When: "ReadyAttackers > 0", Command: "attack", Weight: 10},
			{Name: "fall-back", When: "AvgHPFraction < 0.25 && EnemyUnits > OwnUnits", Command: "move_away", Weight: 5},
			{Name: "advance", When: "EnemyUnits > 0 && Movers > 0", Command: "move_towards", Weight: 3},
			{Name: "hold", When: "true", Command: "do_nothing", Weight: 0},
		},
	}
}

// CautiousDoctrine keeps its distance unless it is ahead on score.
func CautiousDoctrine() Doctrine {
	return Doctrine{
		Name: "cautious",
		Rules: []Rule{
			{Name: "strike", When: "ReadyAttackers > 0", Command: "attack", Weight: 10},
			{Name: "press", When: "Differential > 0 && Movers > 0", Command: "move_towards", Weight: 4},
			{Name: "kite", When: "Differential <= 0 && NearestEnemy >= 0 && NearestEnemy <= 2", Command: "move_away", Weight: 3},
			{Name: "hold", When: "true", Command: "do_nothing", Weight: 0},
		},
	}
}

// WandererDoctrine attacks what it stumbles into and otherwise roams.
func WandererDoctrine() Doctrine {
	return Doctrine{
		Name: "wanderer",
		Rules: []Rule{
			{Name: "strike", When: "ReadyAttackers > 0", Command: "attack", Weight: 10},
			{Name: "roam", When: "Movers > 0", Command: "move_random", Weight: 1},
			{Name: "hold", When: "true", Command: "do_nothing", Weight: 0},
		},
	}
}

var builtinDoctrines = map[string]func() Doctrine{
	"balanced": DefaultDoctrine,
	"cautious": CautiousDoctrine,
	"wanderer": WandererDoctrine,
}

// DoctrineByName returns a built-in doctrine.
func DoctrineByName(name string) (Doctrine, error) {
	if name == "" {
		return DefaultDoctrine(), nil
	}
	build, ok := builtinDoctrines[strings.ToLower(name)]
	if !ok {
		return Doctrine{}, fmt.Errorf("unknown doctrine %q (have %s)", name, strings.Join(DoctrineNames(), ", "))
	}
	return build(), nil
}

// DoctrineNames lists the built-in doctrines, sorted.
func DoctrineNames() []string {
	names := make([]string, 0, len(builtinDoctrines))
	for n := range builtinDoctrines {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
