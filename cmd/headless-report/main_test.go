package main

import (
	"strings"
	"testing"

	"github.com/Garsondee/Peel-Arena/internal/game"
)

func TestSummarize_RatesAndMedian(t *testing.T) {
	all := []runStats{
		{summary: game.Summary{Outcome: game.OutcomeCleared, Score: 99, Total: 99, Elapsed: 60, Slips: 1}},
		{summary: game.Summary{Outcome: game.OutcomeTimedOut, Score: 50, Total: 99, Elapsed: 180, Slips: 3}},
		{summary: game.Summary{Outcome: game.OutcomeFell, Score: 10, Total: 99, Elapsed: 20, Slips: 2}},
		{summary: game.Summary{Outcome: game.OutcomeCleared, Score: 99, Total: 99, Elapsed: 100, Slips: 0}},
	}

	agg := summarize(all)
	if agg.runs != 4 {
		t.Fatalf("expected 4 runs, got %d", agg.runs)
	}
	if agg.clearRate != 0.5 {
		t.Fatalf("expected clear rate 0.5, got %f", agg.clearRate)
	}
	if agg.meanScore != 64.5 {
		t.Fatalf("expected mean score 64.5, got %f", agg.meanScore)
	}
	if agg.medianSec != 80 {
		t.Fatalf("expected median 80s, got %f", agg.medianSec)
	}
	if agg.outcomes[game.OutcomeFell] != 1 {
		t.Fatalf("expected one fall, got %d", agg.outcomes[game.OutcomeFell])
	}
}

func TestSummarize_Empty(t *testing.T) {
	agg := summarize(nil)
	if agg.runs != 0 || agg.clearRate != 0 {
		t.Fatalf("empty input should give zero aggregate, got %+v", agg)
	}
}

func TestFormatAggregate_ListsOutcomes(t *testing.T) {
	all := []runStats{
		{summary: game.Summary{Outcome: game.OutcomeTimedOut, Score: 40, Total: 99, Elapsed: 180}},
	}
	out := formatAggregate(all)
	if !strings.Contains(out, "timed_out") || !strings.Contains(out, "clear_rate=0%") {
		t.Fatalf("unexpected aggregate output:\n%s", out)
	}
	if strings.Contains(out, "cleared") {
		t.Fatalf("outcomes with zero count should be omitted:\n%s", out)
	}
}

func TestRunRound_SmallSwarm(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.RunnerCount = 5
	cfg.RoundSeconds = 20

	rs := runRound(1, 42, cfg, 1.0/60)
	if !rs.summary.Outcome.Terminal() {
		t.Fatalf("round should finish, got %s", rs.summary.Outcome)
	}
	if rs.summary.Total != 5 {
		t.Fatalf("expected total 5, got %d", rs.summary.Total)
	}
	if line := formatRun(rs); !strings.Contains(line, "seed=42") {
		t.Fatalf("run line missing seed: %s", line)
	}
}

func TestRunRound_CoarseStep(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.RunnerCount = 3
	cfg.RoundSeconds = 10

	rs := runRound(1, 7, cfg, 1.0/30)
	if !rs.summary.Outcome.Terminal() {
		t.Fatalf("round should finish at a coarse step, got %s", rs.summary.Outcome)
	}
	if rs.ticks > 10*30+1 {
		t.Fatalf("expected at most %d ticks, got %d", 10*30+1, rs.ticks)
	}
}
