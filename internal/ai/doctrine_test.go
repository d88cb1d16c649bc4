package ai

import (
	"strings"
	"testing"
)

func TestBuiltinDoctrinesCompile(t *testing.T) {
	for _, name := range DoctrineNames() {
		t.Run(name, func(t *testing.T) {
			d, err := DoctrineByName(name)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := compileRules(d); err != nil {
				t.Fatalf("compile %s: %v", name, err)
			}
		})
	}
}

func TestDoctrineByName(t *testing.T) {
	d, err := DoctrineByName("")
	if err != nil || d.Name != "balanced" {
		t.Fatalf("empty name should give the default, got %q %v", d.Name, err)
	}
	if d, err := DoctrineByName("Cautious"); err != nil || d.Name != "cautious" {
		t.Fatalf("lookup is case-insensitive, got %q %v", d.Name, err)
	}
	_, err = DoctrineByName("berserk")
	if err == nil || !strings.Contains(err.Error(), "wanderer") {
		t.Fatalf("expected error listing built-ins, got %v", err)
	}
}

func TestCompileRules_Errors(t *testing.T) {
	tests := []struct {
		name string
		d    Doctrine
	}{
		{"no rules", Doctrine{Name: "empty"}},
		{"unknown command", Doctrine{Rules: []Rule{{Name: "r", When: "true", Command: "teleport"}}}},
		{"syntax error", Doctrine{Rules: []Rule{{Name: "r", When: "Round >", Command: "attack"}}}},
		{"unknown field", Doctrine{Rules: []Rule{{Name: "r", When: "Morale > 3", Command: "attack"}}}},
		{"not boolean", Doctrine{Rules: []Rule{{Name: "r", When: "Round + 1", Command: "attack"}}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := Compile(tc.d); err == nil {
				t.Fatal("expected compile error")
			}
		})
	}
}

func TestCompileRules_BlankConditionAlwaysFires(t *testing.T) {
	rules, err := compileRules(Doctrine{Rules: []Rule{{Name: "idle", Command: "do_nothing"}}})
	if err != nil {
		t.Fatal(err)
	}
	p := &Planner{rules: rules}
	offers := p.offers(Env{})
	if len(offers) != 1 || offers[0].kind.String() != "do_nothing" {
		t.Fatalf("unexpected offers %+v", offers)
	}
}
