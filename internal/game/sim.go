package game

import (
	"fmt"
	"math/rand"
)

// Spawn band parameters, as offsets beyond the safe radius.
const (
	closeBandChance = 0.55
	closeBandMin    = 20
	closeBandMax    = 70
	farBandMin      = 80
	farBandMax      = 160
)

// Simulation is the complete state of one arena round. Step is the only
// per-frame mutator; Reset rebuilds all randomized state.
type Simulation struct {
	cfg   Config
	Arena Arena
	rng   *rand.Rand

	Player  Player
	Runners []*Runner
	Peels   []*Peel
	Round   Round
	Biome   Biome

	SimLog *SimLog
	feed   *EventFeed

	tick          int
	peelCountdown float64
}

// NewSimulation builds a fresh round from cfg, drawing all randomness from rng.
// A nil rng is replaced by a fixed-seed source. cfg must pass Validate.
func NewSimulation(cfg Config, rng *rand.Rand) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1)) // #nosec G404 -- game only
	}
	s := &Simulation{
		cfg:    cfg,
		rng:    rng,
		SimLog: NewSimLog(false),
		feed:   NewEventFeed(),
	}
	s.Reset()
	return s, nil
}

// Config returns the tuning the simulation was built with.
func (s *Simulation) Config() Config {
	return s.cfg
}

// Tick returns the number of frames stepped since the last reset.
func (s *Simulation) Tick() int {
	return s.tick
}

// Feed returns the recent-event ring buffer.
func (s *Simulation) Feed() *EventFeed {
	return s.feed
}

// Reset starts a new round. Nothing from the previous round survives apart
// from the RNG stream and the event feed.
func (s *Simulation) Reset() {
	cfg := s.cfg
	s.SimLog.Reset()
	s.Arena = NewArena(cfg)
	s.Biome = biomes[s.rng.Intn(len(biomes))]
	s.Player = Player{Radius: cfg.PlayerRadius}
	s.Peels = nil
	s.armPeelTimer(cfg.InitialPeelDelay)
	s.Runners = s.spawnRunners()
	s.Round = newRound(cfg)
	s.tick = 0
	s.SimLog.Add(0, "--", "round", "reset", s.Biome.Name, float64(len(s.Runners)))
	s.feed.Add(0, fmt.Sprintf("new round: %s", s.Biome.Name))
}

// spawnRunners scatters the swarm over two overlapping bands around the safe
// zone.
func (s *Simulation) spawnRunners() []*Runner {
	a := s.Arena
	out := make([]*Runner, 0, s.cfg.RunnerCount)
	for i := 0; i < s.cfg.RunnerCount; i++ {
		closeBand := s.rng.Float64() < closeBandChance
		closeR := min(a.MaxIdleSpawnRadius, a.SafeRadius+randomRange(s.rng, closeBandMin, closeBandMax))
		farR := min(a.MaxIdleSpawnRadius, a.SafeRadius+randomRange(s.rng, farBandMin, farBandMax))
		radius := farR
		if closeBand {
			radius = closeR
		}
		out = append(out, &Runner{
			ID:       i,
			Pos:      randomPointInDisk(s.rng, radius),
			Radius:   s.cfg.RunnerRadius,
			Alive:    true,
			Cooldown: s.rng.Float64(),
		})
	}
	return out
}

// Step advances the simulation by dt seconds of wall time. Once the round is
// over Step does nothing until Reset.
func (s *Simulation) Step(dt float64, in InputState) {
	if s.Round.Over() {
		return
	}
	if dt < 0 {
		dt = 0
	}
	s.tick++
	dt60 := dt * frameRate

	p := &s.Player
	p.tickTimers(dt)
	p.move(ResolveDirection(in, p.Pos, p.Radius), s.cfg.PlayerSpeed, dt60)

	if length(p.Pos) > s.Arena.Radius {
		s.finish(OutcomeFell)
		return
	}

	s.scanDanger()

	if s.updateSwarm(dt, dt60) {
		s.finish(OutcomeCleared)
		return
	}

	s.updateHazards(dt)
	s.resolveCaptures()

	s.Round.tickClock(dt)
	if o := s.Round.settle(); o.Terminal() {
		s.finish(o)
	}
}

// finish records the terminal outcome once.
func (s *Simulation) finish(o Outcome) {
	s.Round.end(o)
	sum := s.Round.Summary()
	s.SimLog.Add(s.tick, "--", "round", "end", sum.Outcome.String(), sum.Elapsed)
	s.feed.Add(s.tick, fmt.Sprintf("round over: %s (%d/%d)", sum.Outcome, sum.Score, sum.Total))
}

// Score is a shortcut for the current capture tally.
func (s *Simulation) Score() int {
	return s.Round.Score
}
