package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Peel is a banana-peel hazard lying in the arena.
type Peel struct {
	Pos    mgl64.Vec2
	Radius float64
}

// armPeelTimer restarts the drop countdown at base plus random jitter.
func (s *Simulation) armPeelTimer(base float64) {
	s.peelCountdown = base + s.rng.Float64()*s.cfg.PeelDropJitter
}

// dropPeel places a peel under a random alive runner. No-op when none is alive.
func (s *Simulation) dropPeel() bool {
	alive := make([]*Runner, 0, len(s.Runners))
	for _, r := range s.Runners {
		if r.Alive {
			alive = append(alive, r)
		}
	}
	if len(alive) == 0 {
		return false
	}
	src := alive[s.rng.Intn(len(alive))]
	s.Peels = append(s.Peels, &Peel{Pos: src.Pos, Radius: s.cfg.PeelRadius})
	src.say(s.rng, peelDropMessages)
	s.Round.PeelsDropped++
	s.SimLog.Add(s.tick, src.Label(), "hazard", "peel_drop",
		fmt.Sprintf("(%.1f,%.1f)", src.Pos[0], src.Pos[1]), float64(len(s.Peels)))
	return true
}

// updateHazards runs the drop timer and resolves peel contacts. Each peel in
// contact with the player is consumed and causes one slip.
func (s *Simulation) updateHazards(dt float64) {
	s.peelCountdown -= dt
	if s.peelCountdown <= 0 {
		s.dropPeel()
		s.armPeelTimer(s.cfg.PeelDropInterval)
	}

	p := &s.Player
	for i := len(s.Peels) - 1; i >= 0; i-- {
		peel := s.Peels[i]
		if dist(p.Pos, peel.Pos) > p.Radius+peel.Radius {
			continue
		}
		s.Peels = append(s.Peels[:i], s.Peels[i+1:]...)
		s.applySlip()
		s.feed.Add(s.tick, "player slipped on a peel")
	}
}
