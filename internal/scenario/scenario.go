// Package scenario loads battle setups from YAML and builds the initial
// game state from them.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/hex-tactics/internal/ai"
	"github.com/talgya/hex-tactics/internal/world"
)

// Validation errors.
var (
	ErrNoPlayers = errors.New("scenario needs at least two players")
	ErrBadMap    = errors.New("map rows and cols must be positive")
	ErrBadUnit   = errors.New("invalid unit")
)

// Scenario describes a complete battle setup.
type Scenario struct {
	Name      string           `yaml:"name"`
	Seed      int64            `yaml:"seed"`       // 0 = random
	MaxRounds int              `yaml:"max_rounds"` // 0 = DefaultMaxRounds
	Map       world.GenConfig  `yaml:"map"`
	Terrain   []TerrainPatch   `yaml:"terrain"` // Applied over the generated map, before roads
	Roads     []world.HexCoord `yaml:"roads"`
	Players   []PlayerSpec     `yaml:"players"`
	Units     []UnitSpec       `yaml:"units"`
}

// TerrainPatch forces one hex to a terrain type, e.g. a ford or a fortified hill.
type TerrainPatch struct {
	At   world.HexCoord `yaml:"at"`
	Type string         `yaml:"type"` // world.TerrainName form, e.g. "forest"
}

// PlayerSpec names a side and the doctrine its AI follows. Doctrine selects a
// built-in; Custom, when present, overrides it.
type PlayerSpec struct {
	Name     string       `yaml:"name"`
	Doctrine string       `yaml:"doctrine"`
	Custom   *ai.Doctrine `yaml:"custom_doctrine,omitempty"`
}

// UnitSpec places one unit. At is a preferred hex; deployment falls back to
// the nearest passable free hex.
type UnitSpec struct {
	Name     string         `yaml:"name"`
	Player   int            `yaml:"player"`
	At       world.HexCoord `yaml:"at"`
	HP       int            `yaml:"hp"`
	Attack   int            `yaml:"attack"`
	MinRange int            `yaml:"min_range"`
	MaxRange int            `yaml:"max_range"`
	Move     float64        `yaml:"move"`
}

// DefaultMaxRounds bounds a match when the scenario does not.
const DefaultMaxRounds = 40

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes YAML, fills defaults for omitted map settings, and validates.
func Parse(b []byte) (*Scenario, error) {
	sc := &Scenario{Map: world.DefaultGenConfig()}
	if err := yaml.Unmarshal(b, sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// Validate checks structural consistency. Terrain-dependent placement is
// checked later, by Build.
func (sc *Scenario) Validate() error {
	if len(sc.Players) < 2 {
		return ErrNoPlayers
	}
	if sc.Map.Rows <= 0 || sc.Map.Cols <= 0 {
		return fmt.Errorf("%w (got %dx%d)", ErrBadMap, sc.Map.Rows, sc.Map.Cols)
	}
	for i, tp := range sc.Terrain {
		if _, err := world.ParseTerrain(tp.Type); err != nil {
			return fmt.Errorf("%w: terrain patch %d: %v", ErrBadMap, i, err)
		}
	}
	for i, p := range sc.Players {
		if p.Custom != nil {
			if err := ai.Compile(*p.Custom); err != nil {
				return fmt.Errorf("player %d: custom doctrine %q: %w", i, p.Custom.Name, err)
			}
			continue
		}
		if _, err := ai.DoctrineByName(p.Doctrine); err != nil {
			return fmt.Errorf("player %d: %w", i, err)
		}
	}
	for i, u := range sc.Units {
		switch {
		case u.Player < 0 || u.Player >= len(sc.Players):
			return fmt.Errorf("%w: unit %d (%s) has player %d", ErrBadUnit, i, u.Name, u.Player)
		case u.HP <= 0:
			return fmt.Errorf("%w: unit %d (%s) hp must be positive", ErrBadUnit, i, u.Name)
		case u.Attack < 0:
			return fmt.Errorf("%w: unit %d (%s) attack is negative", ErrBadUnit, i, u.Name)
		case u.MinRange < 0 || u.MinRange > u.MaxRange:
			return fmt.Errorf("%w: unit %d (%s) range [%d,%d]", ErrBadUnit, i, u.Name, u.MinRange, u.MaxRange)
		case u.Move < 0:
			return fmt.Errorf("%w: unit %d (%s) move is negative", ErrBadUnit, i, u.Name)
		}
	}
	return nil
}

// Rounds returns the round cap for a match.
func (sc *Scenario) Rounds() int {
	if sc.MaxRounds > 0 {
		return sc.MaxRounds
	}
	return DefaultMaxRounds
}

// Doctrine resolves a player's doctrine.
func (sc *Scenario) Doctrine(player int) (ai.Doctrine, error) {
	p := sc.Players[player]
	if p.Custom != nil {
		return *p.Custom, nil
	}
	return ai.DoctrineByName(p.Doctrine)
}

// Default returns a two-player skirmish on a generated map.
func Default() *Scenario {
	cfg := world.DefaultGenConfig()
	left, right := 1, cfg.Cols-2
	mid := cfg.Rows / 2

	sc := &Scenario{
		Name:      "Skirmish",
		MaxRounds: DefaultMaxRounds,
		Map:       cfg,
		Players: []PlayerSpec{
			{Name: "Red", Doctrine: "balanced"},
			{Name: "Blue", Doctrine: "cautious"},
		},
	}
	for player, col := range []int{left, right} {
		sc.Units = append(sc.Units,
			UnitSpec{Name: "Infantry", Player: player, At: world.HexCoord{Q: col, R: mid - 2}, HP: 20, Attack: 5, MinRange: 1, MaxRange: 1, Move: 3},
			UnitSpec{Name: "Infantry", Player: player, At: world.HexCoord{Q: col, R: mid + 2}, HP: 20, Attack: 5, MinRange: 1, MaxRange: 1, Move: 3},
			UnitSpec{Name: "Artillery", Player: player, At: world.HexCoord{Q: col, R: mid}, HP: 12, Attack: 8, MinRange: 2, MaxRange: 3, Move: 2},
			UnitSpec{Name: "Scout", Player: player, At: world.HexCoord{Q: col + 1, R: mid}, HP: 10, Attack: 3, MinRange: 1, MaxRange: 1, Move: 5},
		)
	}
	return sc
}
