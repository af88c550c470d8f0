package game

import (
	"math"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSwarm_SpringPullsFarRunnerIn(t *testing.T) {
	ts := NewTestSim(WithRunnerAt(300, 0), WithoutPeelDrops())
	ts.RunTicks(1)
	if x := ts.Runner(0).Pos[0]; x >= 300 {
		t.Fatalf("runner beyond rest distance should approach, x=%.3f", x)
	}
}

func TestSwarm_SpringPushesCloseRunnerOut(t *testing.T) {
	ts := NewTestSim(WithRunnerAt(100, 0), WithoutPeelDrops())
	ts.RunTicks(1)
	if x := ts.Runner(0).Pos[0]; x <= 100 {
		t.Fatalf("runner inside rest distance should back off, x=%.3f", x)
	}
}

func TestSwarm_RunnerAtRestDistanceHovers(t *testing.T) {
	ts := NewTestSim(WithRunnerAt(200, 0), WithoutPeelDrops())
	ts.RunTicks(1)
	if p := ts.Runner(0).Pos; p != (mgl64.Vec2{200, 0}) {
		t.Fatalf("runner at the spring rest distance should not move, got %v", p)
	}
}

func TestSwarm_CoincidentRunnersSeparate(t *testing.T) {
	ts := NewTestSim(WithRunnerAt(200, 0), WithRunnerAt(200, 0), WithoutPeelDrops())
	ts.RunTicks(1)
	if d := dist(ts.Runner(0).Pos, ts.Runner(1).Pos); d <= 0 {
		t.Fatalf("coincident runners should be pushed apart, dist=%.4f", d)
	}
}

func TestSwarm_SeparationIsSymmetric(t *testing.T) {
	ts := NewTestSim(WithoutPeelDrops(), WithRunnerAt(0, 200), WithRunnerAt(10, 200))
	forces := make([]mgl64.Vec2, 2)
	ts.separate(forces)
	sum := forces[0].Add(forces[1])
	if length(sum) > 1e-12 {
		t.Fatalf("separation forces should cancel, sum=%v", sum)
	}
	if forces[0][0] >= 0 || forces[1][0] <= 0 {
		t.Fatalf("runners should be pushed away from each other, got %v", forces)
	}
}

func TestSwarm_WallClampKeepsRunnerInside(t *testing.T) {
	ts := NewTestSim(WithRunnerAt(495, 0), WithoutPeelDrops())
	ts.Runner(0).Vel = mgl64.Vec2{1, 0}
	ts.RunTicks(1)

	r := ts.Runner(0)
	maxInside := ts.Arena.Radius - r.Radius - wallInset
	if d := length(r.Pos); d > maxInside+1e-9 {
		t.Fatalf("runner should be clamped to %.2f, at %.4f", maxInside, d)
	}
	if r.Vel[0] > 0 {
		t.Fatalf("outward velocity should be removed at the wall, vx=%.4f", r.Vel[0])
	}
	if !r.Alive {
		t.Fatal("clamped runner should stay alive")
	}
}

func TestSwarm_DeadRunnersIgnored(t *testing.T) {
	ts := NewTestSim(WithRunnerAt(200, 0), WithRunnerAt(200, 0), WithoutPeelDrops())
	ts.Runner(1).Alive = false
	ts.Round.Score = 1
	ts.RunTicks(1)
	if ts.Runner(1).Pos != (mgl64.Vec2{200, 0}) {
		t.Fatal("captured runner must not move")
	}
	if ts.Runner(0).Pos != (mgl64.Vec2{200, 0}) {
		t.Fatal("captured runner must not push alive runners")
	}
}

func TestRunner_BubbleCooldownGate(t *testing.T) {
	ts := NewTestSim(WithRunnerAt(200, 0), WithoutPeelDrops())
	r := ts.Runner(0)

	r.Cooldown = 0.5
	if r.trySpeak(ts.rng, runnerDangerCries) {
		t.Fatal("runner on cooldown must not speak")
	}
	r.Cooldown = 0
	if !r.trySpeak(ts.rng, runnerDangerCries) {
		t.Fatal("idle runner should speak")
	}
	if !slices.Contains(runnerDangerCries, r.Bubble.Text) {
		t.Fatalf("unexpected bubble text %q", r.Bubble.Text)
	}
	if r.Cooldown < bubbleCooldownMin || r.Cooldown >= bubbleCooldownMin+bubbleCooldownVar {
		t.Fatalf("cooldown %.3f outside [3,5)", r.Cooldown)
	}
	r.Cooldown = 0
	if r.trySpeak(ts.rng, runnerDangerCries) {
		t.Fatal("runner with an active bubble must not speak again")
	}
}

func TestRunner_TimersDecay(t *testing.T) {
	r := &Runner{Cooldown: 0.01, Bubble: &Bubble{Text: "x", TTL: 0.01}}
	r.tickTimers(0.02)
	if r.Cooldown != 0 {
		t.Fatalf("cooldown should floor at 0, got %f", r.Cooldown)
	}
	if r.Bubble != nil {
		t.Fatal("expired bubble should be cleared")
	}
}

func TestSwarm_EdgeRepulsionScalesWithPenetration(t *testing.T) {
	noSpring := func(c *Config) { c.SpringStrength = 0 }
	ts := NewTestSim(WithRunnerAt(450, 0), WithTuning(noSpring), WithoutPeelDrops())
	cfg := ts.Config()
	ts.RunTicks(1)

	depth := 450 - (cfg.ArenaRadius - cfg.EdgeRepulsionMargin)
	damping := 1 - cfg.SpringDamping*fixedDT
	want := -depth / cfg.EdgeRepulsionMargin * cfg.EdgeRepulsionStrength * damping
	v := ts.Runner(0).Vel
	if math.Abs(v[0]-want) > 1e-9 || v[1] != 0 {
		t.Fatalf("expected inward velocity (%.6f, 0), got %v", want, v)
	}

	deeper := NewTestSim(WithRunnerAt(470, 0), WithTuning(noSpring), WithoutPeelDrops())
	deeper.RunTicks(1)
	if deeper.Runner(0).Vel[0] >= v[0] {
		t.Fatalf("deeper runner should be pushed harder: %v vs %v", deeper.Runner(0).Vel, v)
	}

	off := NewTestSim(WithRunnerAt(450, 0), WithoutPeelDrops(), WithTuning(func(c *Config) {
		c.SpringStrength = 0
		c.EdgeRepulsionStrength = 0
	}))
	off.RunTicks(1)
	if off.Runner(0).Vel != (mgl64.Vec2{}) {
		t.Fatalf("without edge repulsion the runner should stay still, got %v", off.Runner(0).Vel)
	}
}

func TestSwarm_ClampBandDropsOutwardVelocity(t *testing.T) {
	noForces := func(c *Config) {
		c.SpringStrength = 0
		c.EdgeRepulsionStrength = 0
	}
	ts := NewTestSim(WithRunnerAt(475, 0), WithTuning(noForces), WithoutPeelDrops())
	ts.Runner(0).Vel = mgl64.Vec2{0.5, 0.3}
	ts.RunTicks(1)

	damping := 1 - ts.Config().SpringDamping*fixedDT
	r := ts.Runner(0)
	if r.Vel[0] != 0 {
		t.Fatalf("outward component should be zeroed inside the band, got %v", r.Vel)
	}
	if math.Abs(r.Vel[1]-0.3*damping) > 1e-12 {
		t.Fatalf("tangential component should survive, got %v", r.Vel)
	}
	if r.Pos[0] != 475 {
		t.Fatalf("runner should not drift outward, x=%.6f", r.Pos[0])
	}

	// Outside the band the same velocity is kept.
	free := NewTestSim(WithRunnerAt(460, 0), WithTuning(noForces), WithoutPeelDrops())
	free.Runner(0).Vel = mgl64.Vec2{0.5, 0.3}
	free.RunTicks(1)
	if math.Abs(free.Runner(0).Vel[0]-0.5*damping) > 1e-12 {
		t.Fatalf("outward velocity outside the band should only be damped, got %v", free.Runner(0).Vel)
	}
}
