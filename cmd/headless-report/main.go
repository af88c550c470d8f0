package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/Garsondee/Peel-Arena/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	summary     game.Summary
	ticks       int
	peelDrops   int
	firstTag    int // tick of the first contact capture, -1 if none
	firstEscape int
}

func main() {
	var runs int
	var seconds float64
	var seedBase int64
	var seedStep int64
	var dt float64
	var configPath string

	flag.IntVar(&runs, "runs", 5, "number of headless rounds")
	flag.Float64Var(&seconds, "seconds", 0, "round length override in seconds (0 = config)")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&dt, "dt", 1.0/60, "fixed frame time in seconds")
	flag.StringVar(&configPath, "config", "", "optional YAML tuning file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if runs <= 0 {
		logger.Error("-runs must be > 0", "runs", runs)
		os.Exit(2)
	}
	if dt <= 0 {
		logger.Error("-dt must be > 0", "dt", dt)
		os.Exit(2)
	}
	cfg, err := game.LoadConfig(configPath)
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}
	if seconds > 0 {
		cfg.RoundSeconds = seconds
	}

	fmt.Printf("=== Headless Arena Report ===\n")
	fmt.Printf("runs=%d runners=%d round=%.0fs dt=%.4f seed_base=%d seed_step=%d\n\n",
		runs, cfg.RunnerCount, cfg.RoundSeconds, dt, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runRound(i+1, seed, cfg, dt)
		all = append(all, stats)
		fmt.Println(formatRun(stats))
	}

	fmt.Println()
	fmt.Print(formatAggregate(all))
}

// runRound plays one bot-driven round to completion.
func runRound(runIndex int, seed int64, cfg game.Config, dt float64) runStats {
	ts := game.NewTestSim(
		game.WithConfig(cfg),
		game.WithSeed(seed),
		game.WithBot(game.NewChaseBot()),
	)
	ts.DT = dt
	maxTicks := int(math.Ceil(cfg.RoundSeconds/dt)) + 60
	sum := ts.RunRound(maxTicks)

	return runStats{
		runIndex:    runIndex,
		seed:        seed,
		summary:     sum,
		ticks:       ts.Tick(),
		peelDrops:   ts.Round.PeelsDropped,
		firstTag:    firstTick(ts.SimLog.Filter("capture", "tag")),
		firstEscape: firstTick(ts.SimLog.Filter("capture", "escape")),
	}
}

func firstTick(entries []game.SimLogEntry) int {
	if len(entries) == 0 {
		return -1
	}
	return entries[0].Tick
}

func formatRun(rs runStats) string {
	s := rs.summary
	return fmt.Sprintf("run %02d seed=%-6d outcome=%-9s caught=%3d/%-3d escaped=%3d slips=%2d peels=%2d elapsed=%s ticks=%d first_tag=%d first_escape=%d",
		rs.runIndex, rs.seed, s.Outcome, s.Score, s.Total, s.Escapes, s.Slips, rs.peelDrops,
		game.FormatElapsed(s.Elapsed), rs.ticks, rs.firstTag, rs.firstEscape)
}

// aggregate holds the cross-run totals.
type aggregate struct {
	runs      int
	outcomes  map[game.Outcome]int
	meanScore float64
	meanSlips float64
	clearRate float64
	medianSec float64
}

func summarize(all []runStats) aggregate {
	agg := aggregate{runs: len(all), outcomes: map[game.Outcome]int{}}
	if len(all) == 0 {
		return agg
	}
	elapsed := make([]float64, 0, len(all))
	for _, rs := range all {
		agg.outcomes[rs.summary.Outcome]++
		agg.meanScore += float64(rs.summary.Score)
		agg.meanSlips += float64(rs.summary.Slips)
		elapsed = append(elapsed, rs.summary.Elapsed)
	}
	n := float64(len(all))
	agg.meanScore /= n
	agg.meanSlips /= n
	agg.clearRate = float64(agg.outcomes[game.OutcomeCleared]) / n
	sort.Float64s(elapsed)
	mid := len(elapsed) / 2
	if len(elapsed)%2 == 0 {
		agg.medianSec = (elapsed[mid-1] + elapsed[mid]) / 2
	} else {
		agg.medianSec = elapsed[mid]
	}
	return agg
}

func formatAggregate(all []runStats) string {
	agg := summarize(all)
	var b strings.Builder
	b.WriteString("=== Aggregate ===\n")
	fmt.Fprintf(&b, "runs=%d clear_rate=%.0f%% mean_caught=%.1f mean_slips=%.1f median_elapsed=%s\n",
		agg.runs, agg.clearRate*100, agg.meanScore, agg.meanSlips, game.FormatElapsed(agg.medianSec))
	for _, o := range []game.Outcome{game.OutcomeCleared, game.OutcomeTimedOut, game.OutcomeFell, game.OutcomePlaying} {
		if c := agg.outcomes[o]; c > 0 {
			fmt.Fprintf(&b, "  %-9s %d\n", o, c)
		}
	}
	return b.String()
}
