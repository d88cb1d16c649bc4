package ai

import (
	"log/slog"

	"github.com/expr-lang/expr/vm"

	"github.com/talgya/hex-tactics/internal/engine"
	"github.com/talgya/hex-tactics/internal/entropy"
)

// Planner plays whole turns for one computer player.
type Planner struct {
	Doctrine string
	MaxSteps int // Commands per turn cap; 0 = 4 per unit plus 4

	rules []compiledRule
	rng   entropy.Source
}

// NewPlanner compiles the doctrine and binds the random source used for
// command generation.
func NewPlanner(d Doctrine, rng entropy.Source) (*Planner, error) {
	rules, err := compileRules(d)
	if err != nil {
		return nil, err
	}
	return &Planner{Doctrine: d.Name, rules: rules, rng: rng}, nil
}

type offer struct {
	kind   engine.Kind
	weight int
	rank   int // Rule declaration order of the first rule offering this kind
}

// offers evaluates the doctrine against env and returns the kinds on the table,
// one entry per kind carrying the highest weight any firing rule gave it.
func (p *Planner) offers(env Env) []offer {
	var out []offer
	seen := make(map[engine.Kind]int)
	for i, r := range p.rules {
		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("doctrine condition error", "doctrine", p.Doctrine, "rule", r.Name, "error", err)
			continue
		}
		if match, ok := result.(bool); !ok || !match {
			continue
		}
		if j, dup := seen[r.kind]; dup {
			if r.Weight > out[j].weight {
				out[j].weight = r.Weight
			}
			continue
		}
		seen[r.kind] = len(out)
		out = append(out, offer{kind: r.kind, weight: r.Weight, rank: i})
	}
	return out
}

type candidate struct {
	cmd   engine.Command
	value int
	offer offer
}

func (c candidate) beats(o candidate) bool {
	if c.value != o.value {
		return c.value > o.value
	}
	if c.offer.weight != o.offer.weight {
		return c.offer.weight > o.offer.weight
	}
	return c.offer.rank < o.offer.rank
}

// PlayTurn issues commands for the current player until the doctrine settles
// on doing nothing, nothing can be generated, or MaxSteps is hit. Each step
// generates one candidate per offered kind, scores it on a clone, and applies
// the best to gs. Returns the applied commands in order.
func (p *Planner) PlayTurn(gs *engine.GameState) []engine.Command {
	player := gs.Current
	maxSteps := p.MaxSteps
	if maxSteps <= 0 {
		maxSteps = 4*len(gs.Friendly(player)) + 4
	}

	var played []engine.Command
	for step := 0; step < maxSteps; step++ {
		offers := p.offers(NewEnv(gs, player))

		var best *candidate
		for _, o := range offers {
			cmd, ok := engine.Generate(o.kind, gs, p.rng)
			if !ok {
				continue
			}
			c := candidate{cmd: cmd, value: engine.Evaluate(gs, player, cmd), offer: o}
			if best == nil || c.beats(*best) {
				best = &c
			}
		}

		if best == nil || best.cmd.Kind == engine.KindDoNothing {
			break
		}
		if !best.cmd.Apply(gs) {
			slog.Warn("planned command had no effect", "doctrine", p.Doctrine, "command", best.cmd.String())
			break
		}
		slog.Debug("command applied", "player", gs.PlayerName(player), "command", best.cmd.String(), "value", best.value)
		played = append(played, best.cmd)
	}

	return played
}
