package game

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// springEpsilon guards the spring direction against coincident positions.
	springEpsilon = 0.0001
	// wallInset keeps clamped runners a hair inside R - radius.
	wallInset = 2
)

// Runner is one member of the swarm. Runners are never removed from the
// collection; capture only flips Alive.
type Runner struct {
	ID       int
	Pos      mgl64.Vec2
	Vel      mgl64.Vec2
	Radius   float64
	Alive    bool
	Bubble   *Bubble
	Cooldown float64 // seconds until a new bubble may appear
}

// Label is the short runner tag used in logs.
func (r *Runner) Label() string {
	return fmt.Sprintf("C%02d", r.ID)
}

// canSpeak reports whether the runner may start a new bubble now.
func (r *Runner) canSpeak() bool {
	return !r.Bubble.active() && r.Cooldown <= 0
}

// trySpeak gives the runner a bubble from pool if it is eligible.
func (r *Runner) trySpeak(rng *rand.Rand, pool []string) bool {
	if !r.canSpeak() {
		return false
	}
	r.say(rng, pool)
	return true
}

// say sets a bubble unconditionally and restarts the cooldown.
func (r *Runner) say(rng *rand.Rand, pool []string) {
	r.Bubble = newBubble(rng, pool, runnerBubbleTTL)
	r.Cooldown = randomBubbleCooldown(rng)
}

func (r *Runner) tickTimers(dt float64) {
	if r.Cooldown > 0 {
		r.Cooldown -= dt
		if r.Cooldown < 0 {
			r.Cooldown = 0
		}
	}
	tickBubble(&r.Bubble, dt)
}

// AliveCount returns the number of runners still in play.
func AliveCount(runners []*Runner) int {
	n := 0
	for _, r := range runners {
		if r.Alive {
			n++
		}
	}
	return n
}

// capture takes r out of play and scores it. A runner already out of play is
// left untouched.
func (s *Simulation) capture(r *Runner, how string) {
	if !r.Alive {
		return
	}
	r.Alive = false
	r.Vel = mgl64.Vec2{}
	r.Bubble = nil
	s.Round.Score++
	if how == "escape" {
		s.Round.Escapes++
	}
	s.SimLog.Add(s.tick, r.Label(), "capture", how,
		fmt.Sprintf("(%.1f,%.1f)", r.Pos[0], r.Pos[1]), float64(s.Round.Score))
	s.feed.Add(s.tick, fmt.Sprintf("%s %s  %d/%d", r.Label(), how, s.Round.Score, s.Round.Total))
}

// updateSwarm accumulates forces, integrates and clamps every alive runner.
// It returns true if an escape-capture cleared the arena.
func (s *Simulation) updateSwarm(dt, dt60 float64) bool {
	a := s.Arena
	forces := make([]mgl64.Vec2, len(s.Runners))
	wallStart := a.Radius - a.RepulsionMargin

	for i, r := range s.Runners {
		if !r.Alive {
			continue
		}
		r.tickTimers(dt)

		// Spring toward the player, pushing out inside the rest distance.
		toPlayer := s.Player.Pos.Sub(r.Pos)
		if d := length(toPlayer); d > springEpsilon {
			mag := s.cfg.SpringStrength * (d - a.SpringRest)
			forces[i] = forces[i].Add(toPlayer.Mul(mag / d))
		}

		fromCenter := length(r.Pos)
		if fromCenter > a.Radius+r.Radius {
			forces[i] = mgl64.Vec2{}
			s.capture(r, "escape")
			if s.Round.Score >= s.Round.Total {
				return true
			}
			continue
		}
		if fromCenter > wallStart {
			inward := normalize(r.Pos.Mul(-1))
			push := (fromCenter - wallStart) / a.RepulsionMargin * s.cfg.EdgeRepulsionStrength
			forces[i] = forces[i].Add(inward.Mul(push))
		}
	}

	s.separate(forces)

	damping := 1 - s.cfg.SpringDamping*dt
	if damping < 0 {
		damping = 0
	}
	for i, r := range s.Runners {
		if !r.Alive {
			continue
		}
		r.Vel = r.Vel.Add(forces[i].Mul(dt60)).Mul(damping)
		if length(r.Pos) > a.Radius-a.VelocityClampBand {
			r.Vel = removeOutward(r.Vel, normalize(r.Pos))
		}
		if sp := length(r.Vel); sp > s.cfg.RunnerSpeed {
			r.Vel = r.Vel.Mul(s.cfg.RunnerSpeed / sp)
		}
		r.Pos = r.Pos.Add(r.Vel.Mul(dt60))

		maxInside := a.Radius - r.Radius - wallInset
		if length(r.Pos) > maxInside {
			out := normalize(r.Pos)
			r.Pos = out.Mul(maxInside)
			r.Vel = removeOutward(r.Vel, out)
		}
	}
	return false
}

// separate applies pairwise equal-and-opposite pushes to overlapping alive
// runners. Coincident pairs get a random push direction.
func (s *Simulation) separate(forces []mgl64.Vec2) {
	strength := s.cfg.SeparationStrength
	pad := s.Arena.SeparationPadding
	for i := 0; i < len(s.Runners); i++ {
		ra := s.Runners[i]
		if !ra.Alive {
			continue
		}
		for j := i + 1; j < len(s.Runners); j++ {
			rb := s.Runners[j]
			if !rb.Alive {
				continue
			}
			delta := rb.Pos.Sub(ra.Pos)
			d := length(delta)
			if d == 0 {
				delta = randomUnit(s.rng)
				d = 1
			}
			minDist := ra.Radius + rb.Radius + pad
			if d >= minDist {
				continue
			}
			push := delta.Mul((minDist - d) * strength / d)
			forces[i] = forces[i].Sub(push)
			forces[j] = forces[j].Add(push)
		}
	}
}
