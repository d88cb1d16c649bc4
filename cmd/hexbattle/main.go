// Command hexbattle runs an AI-versus-AI battle on a generated hex map.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/talgya/hex-tactics/internal/ai"
	"github.com/talgya/hex-tactics/internal/engine"
	"github.com/talgya/hex-tactics/internal/entropy"
	"github.com/talgya/hex-tactics/internal/journal"
	"github.com/talgya/hex-tactics/internal/scenario"
	"github.com/talgya/hex-tactics/internal/world"
)

func main() {
	scenarioPath := flag.String("scenario", "", "YAML scenario file (empty = built-in skirmish)")
	seedFlag := flag.Int64("seed", 0, "random seed; overrides the scenario seed when non-zero")
	roundsFlag := flag.Int("rounds", envIntOrDefault("HEXBATTLE_ROUNDS", 0), "round cap; overrides the scenario when non-zero")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(envOrDefault("HEXBATTLE_LOG_LEVEL", "info")),
	}))
	slog.SetDefault(logger)

	// ── Scenario ─────────────────────────────────────────────────────
	sc := scenario.Default()
	if *scenarioPath != "" {
		loaded, err := scenario.Load(*scenarioPath)
		if err != nil {
			slog.Error("failed to load scenario", "error", err)
			os.Exit(1)
		}
		sc = loaded
	}
	if *seedFlag != 0 {
		sc.Seed = *seedFlag
		sc.Map.Seed = 0
	}
	if *roundsFlag > 0 {
		sc.MaxRounds = *roundsFlag
	}

	gs, seed, err := scenario.Build(sc)
	if err != nil {
		slog.Error("failed to build scenario", "error", err)
		os.Exit(1)
	}
	slog.Info("battlefield ready",
		"scenario", sc.Name,
		"seed", seed,
		"map", gs.Map.String(),
		"units", gs.Units.Len(),
	)
	for t, c := range world.TerrainCounts(gs.Map) {
		slog.Debug("terrain", "type", world.TerrainName(t), "count", c)
	}

	// ── Journal ──────────────────────────────────────────────────────
	jr, err := journal.Open()
	if err != nil {
		slog.Error("failed to open journal", "error", err)
		os.Exit(1)
	}
	defer jr.Close()
	if err := jr.SaveMeta("seed", strconv.FormatInt(seed, 10)); err != nil {
		slog.Warn("journal meta save failed", "error", err)
	}

	// ── Planners ─────────────────────────────────────────────────────
	master := entropy.NewSeeded(seed)
	planners := make([]*ai.Planner, len(gs.Players))
	for i := range gs.Players {
		d, err := sc.Doctrine(i)
		if err != nil {
			slog.Error("bad doctrine", "player", gs.PlayerName(i), "error", err)
			os.Exit(1)
		}
		p, err := ai.NewPlanner(d, master.Fork(int64(100*(i+1))))
		if err != nil {
			slog.Error("doctrine does not compile", "player", gs.PlayerName(i), "error", err)
			os.Exit(1)
		}
		planners[i] = p
		slog.Info("player", "name", gs.PlayerName(i), "doctrine", d.Name)
	}

	// ── Battle ───────────────────────────────────────────────────────
	maxRounds := sc.Rounds()
	for !engine.GameOver(gs) && gs.Round <= maxRounds {
		engine.BeginTurn(gs)
		cmds := planners[gs.Current].PlayTurn(gs)
		slog.Debug("turn played", "player", gs.PlayerName(gs.Current), "round", gs.Round, "commands", len(cmds))
		engine.EndTurn(gs)

		if err := jr.SaveEvents(gs.Drain()); err != nil {
			slog.Error("journal save failed", "error", err)
		}
	}

	printSummary(gs, jr, maxRounds)
}

func printSummary(gs *engine.GameState, jr *journal.Journal, maxRounds int) {
	fmt.Println()
	if seed, err := jr.GetMeta("seed"); err == nil {
		fmt.Printf("Seed %s (replay with -seed %s)\n", seed, seed)
	}
	if w, ok := engine.Winner(gs); ok {
		fmt.Printf("%s wins in the %s round.\n", gs.PlayerName(w), humanize.Ordinal(gs.Round))
	} else {
		fmt.Printf("No winner after %d rounds.\n", maxRounds)
	}

	for i := range gs.Players {
		fmt.Printf("  %-10s units=%d score=%s differential=%s\n",
			gs.PlayerName(i),
			len(gs.Friendly(i)),
			humanize.Comma(int64(engine.Score(gs, i))),
			humanize.Comma(int64(engine.ScoreDifferential(gs, i))),
		)
	}

	counts, err := jr.CountByCategory()
	if err != nil {
		slog.Warn("journal count failed", "error", err)
		return
	}
	fmt.Printf("  events: %d attacks, %d moves, %d destroyed\n",
		counts[engine.CategoryAttack], counts[engine.CategoryMove], counts[engine.CategoryDestroyed])

	final, err := jr.EventsInRound(gs.Round)
	if err != nil {
		slog.Warn("journal read failed", "error", err)
		return
	}
	fmt.Printf("  round %d saw %d events\n", gs.Round, len(final))

	recent, err := jr.RecentEvents(5)
	if err != nil {
		slog.Warn("journal read failed", "error", err)
		return
	}
	fmt.Println("  last events:")
	for i := len(recent) - 1; i >= 0; i-- {
		fmt.Printf("    [round %d] %s\n", recent[i].Round, recent[i].Description)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
