package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestChaseBot_TargetsNearestRunner(t *testing.T) {
	ts := NewTestSim(WithRunnerAt(100, 0), WithRunnerAt(-150, 0), WithoutPeelDrops())
	in := NewChaseBot().Next(ts.Simulation)
	if in.Target == nil || *in.Target != (mgl64.Vec2{100, 0}) {
		t.Fatalf("expected target (100,0), got %v", in.Target)
	}
}

func TestChaseBot_HeadsHomeNearEdge(t *testing.T) {
	ts := NewTestSim(WithRunnerAt(100, 0), WithPlayerAt(0, 450))
	in := NewChaseBot().Next(ts.Simulation)
	if in.Target == nil || *in.Target != (mgl64.Vec2{}) {
		t.Fatalf("expected target at the centre, got %v", in.Target)
	}
}

func TestChaseBot_SidestepsPeel(t *testing.T) {
	ts := NewTestSim(WithRunnerAt(100, 0), WithPeelAt(30, 0))
	in := NewChaseBot().Next(ts.Simulation)
	if in.Target == nil || in.Target[0] != 0 {
		t.Fatalf("expected a perpendicular sidestep, got %v", in.Target)
	}
}

func TestChaseBot_CapturesSingleRunner(t *testing.T) {
	ts := NewTestSim(WithRunnerAt(150, 0), WithBot(NewChaseBot()), WithoutPeelDrops())
	sum := ts.RunRound(600)
	if sum.Outcome != OutcomeCleared {
		t.Fatalf("bot should catch a lone runner, got %+v", sum)
	}
}
