package game

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// fixedDT is the frame time used by the headless harness.
const fixedDT = 1.0 / frameRate

// TestSim is a headless simulation harness. It mirrors Game.Update without
// any Ebiten dependency and supports deterministic seeding and hand-placed
// entities.
type TestSim struct {
	*Simulation
	Input InputState
	Bot   InputSource // when set, overrides Input each tick
	DT    float64

	cfg     Config
	seed    int64
	verbose bool

	placedRunners []mgl64.Vec2
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // config, seed, verbose: applied before the round is built
	simOptEntity                      // placement and timers: applied to the built round
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.seed = seed
	}}
}

// WithConfig replaces the whole tuning.
func WithConfig(cfg Config) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg = cfg
	}}
}

// WithTuning edits the tuning in place.
func WithTuning(edit func(*Config)) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		edit(&ts.cfg)
	}}
}

// WithVerbose enables verbose SimLog entries.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.verbose = v
	}}
}

// WithRunnerAt adds a hand-placed runner. If any runner is placed, the random
// swarm is discarded and the runner count becomes the number placed.
func WithRunnerAt(x, y float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.placedRunners = append(ts.placedRunners, mgl64.Vec2{x, y})
	}}
}

// WithPlayerAt moves the player.
func WithPlayerAt(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Player.Pos = mgl64.Vec2{x, y}
	}}
}

// WithPeelAt drops a peel at (x, y).
func WithPeelAt(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Peels = append(ts.Peels, &Peel{Pos: mgl64.Vec2{x, y}, Radius: ts.cfg.PeelRadius})
	}}
}

// WithTimeLeft overrides the round countdown.
func WithTimeLeft(sec float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Round.TimeLeft = sec
	}}
}

// WithoutPeelDrops pushes the peel timer beyond any test horizon.
func WithoutPeelDrops() SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.peelCountdown = 1e9
	}}
}

// WithBot drives the player with src instead of the fixed Input.
func WithBot(src InputSource) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Bot = src
	}}
}

// NewTestSim constructs a TestSim from the given options in two passes:
//  1. Infrastructure (config, seed, verbose, placed runners)
//  2. Build the round, then apply entity placement
//
// It panics if the resulting config does not validate.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		cfg:  DefaultConfig(),
		seed: 1,
		DT:   fixedDT,
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	if len(ts.placedRunners) > 0 {
		ts.cfg.RunnerCount = len(ts.placedRunners)
	}
	sim, err := NewSimulation(ts.cfg, rand.New(rand.NewSource(ts.seed))) // #nosec G404 -- test harness
	if err != nil {
		panic(fmt.Sprintf("NewTestSim: %v", err))
	}
	ts.Simulation = sim
	ts.SimLog.SetVerbose(ts.verbose)
	for i, pos := range ts.placedRunners {
		ts.Runners[i].Pos = pos
	}
	for _, o := range opts {
		if o.kind == simOptEntity {
			o.fn(ts)
		}
	}
	return ts
}

// Runner returns the runner with the given ID.
func (ts *TestSim) Runner(id int) *Runner {
	return ts.Runners[id]
}

// RunTicks advances the simulation n frames.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.runOneTick()
	}
}

// RunUntil advances the simulation up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.runOneTick()
		if predicate(ts) {
			return ts.Tick()
		}
	}
	return -1
}

// RunRound runs until the round ends or maxTicks elapse.
func (ts *TestSim) RunRound(maxTicks int) Summary {
	ts.RunUntil(func(ts *TestSim) bool { return ts.Round.Over() }, maxTicks)
	return ts.Round.Summary()
}

func (ts *TestSim) runOneTick() {
	in := ts.Input
	if ts.Bot != nil {
		in = ts.Bot.Next(ts.Simulation)
	}
	ts.Step(ts.DT, in)
}
