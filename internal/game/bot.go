package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// InputSource produces the movement intent for the next frame.
type InputSource interface {
	Next(s *Simulation) InputState
}

// ChaseBot steers the player toward the nearest alive runner and away from
// the arena edge and from peels. It drives headless rounds.
type ChaseBot struct {
	// EdgeFraction of R beyond which the bot heads back toward the centre.
	EdgeFraction float64
	// PeelAvoid is the extra clearance kept from peels.
	PeelAvoid float64
}

// NewChaseBot returns a bot with sensible defaults.
func NewChaseBot() *ChaseBot {
	return &ChaseBot{EdgeFraction: 0.85, PeelAvoid: 10}
}

// Next picks a pointer target for this frame.
func (b *ChaseBot) Next(s *Simulation) InputState {
	p := s.Player.Pos
	if length(p) > s.Arena.Radius*b.EdgeFraction {
		home := mgl64.Vec2{}
		return InputState{Target: &home}
	}

	var target *Runner
	best := math.Inf(1)
	for _, r := range s.Runners {
		if !r.Alive {
			continue
		}
		if d := dist(p, r.Pos); d < best {
			best = d
			target = r
		}
	}
	if target == nil {
		return InputState{}
	}

	goal := target.Pos
	for _, peel := range s.Peels {
		to := peel.Pos.Sub(p)
		gap := s.Player.Radius + peel.Radius + b.PeelAvoid
		if length(to) < gap*2 {
			// Sidestep perpendicular to the peel.
			side := mgl64.Vec2{-to[1], to[0]}
			goal = p.Add(normalize(side).Mul(gap))
			break
		}
	}
	return InputState{Target: &goal}
}
