package game

import (
	"slices"
	"testing"
)

func TestDanger_NearestRunnerCriesFirstWinsTies(t *testing.T) {
	ts := NewTestSim(
		WithRunnerAt(50, 0),
		WithRunnerAt(-44, 0),
		WithRunnerAt(0, 240),
		WithoutPeelDrops(),
	)
	for _, r := range ts.Runners {
		r.Cooldown = 0
	}
	ts.Input = InputState{Right: true}

	ts.RunTicks(1)

	first, second, far := ts.Runner(0), ts.Runner(1), ts.Runner(2)
	if first.Bubble == nil || !slices.Contains(runnerDangerCries, first.Bubble.Text) {
		t.Fatal("first equidistant runner should cry out")
	}
	if second.Bubble != nil || far.Bubble != nil {
		t.Fatal("only one runner may cry out per frame")
	}
}

func TestDanger_IgnoresStationaryOrStunnedPlayer(t *testing.T) {
	ts := NewTestSim(WithRunnerAt(50, 0), WithoutPeelDrops())
	ts.Runner(0).Cooldown = 0

	ts.RunTicks(1)
	if ts.Runner(0).Bubble != nil {
		t.Fatal("a standing player should not scare runners")
	}

	ts.Player.Stun = 1
	ts.Input = InputState{Right: true}
	ts.RunTicks(1)
	if ts.Runner(0).Bubble != nil {
		t.Fatal("a stunned player should not scare runners")
	}
}

func TestDanger_OutOfRange(t *testing.T) {
	ts := NewTestSim(WithRunnerAt(300, 0), WithoutPeelDrops())
	ts.Runner(0).Cooldown = 0
	ts.Input = InputState{Left: true}
	ts.RunTicks(1)
	if ts.nearestThreatened() != nil {
		t.Fatal("runner beyond the trigger distance should not be selected")
	}
	if ts.Runner(0).Bubble != nil {
		t.Fatal("runner beyond the trigger distance should stay quiet")
	}
}
