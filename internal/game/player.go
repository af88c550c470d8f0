package game

import "github.com/go-gl/mathgl/mgl64"

// Player is the single controlled entity.
type Player struct {
	Pos    mgl64.Vec2
	Vel    mgl64.Vec2
	Radius float64
	Stun   float64 // seconds of stun left, >= 0
	Bubble *Bubble
}

// Stunned reports whether the player is currently unable to move.
func (p *Player) Stunned() bool {
	return p.Stun > 0
}

// Speed is the current movement speed; zero while stunned.
func (p *Player) Speed() float64 {
	if p.Stunned() {
		return 0
	}
	return length(p.Vel)
}

// tickTimers decays the stun timer and the player's bubble.
func (p *Player) tickTimers(dt float64) {
	if p.Stun > 0 {
		p.Stun -= dt
		if p.Stun < 0 {
			p.Stun = 0
		}
	}
	tickBubble(&p.Bubble, dt)
}

// move integrates one frame of motion along dir at speed.
func (p *Player) move(dir mgl64.Vec2, speed, dt60 float64) {
	if p.Stunned() {
		p.Vel = mgl64.Vec2{}
		return
	}
	p.Vel = dir.Mul(speed)
	p.Pos = p.Pos.Add(p.Vel.Mul(dt60))
}

// applySlip stuns the player after a peel contact; a share of the alive
// runners laugh about it.
func (s *Simulation) applySlip() {
	p := &s.Player
	p.Stun = s.cfg.PlayerStunDuration
	p.Vel = mgl64.Vec2{}
	p.Bubble = newBubble(s.rng, playerPainMessages, playerBubbleTTL)
	s.Round.Slips++

	for _, r := range s.Runners {
		if !r.Alive {
			continue
		}
		if s.rng.Float64() < s.cfg.SlipTauntChance {
			r.trySpeak(s.rng, runnerSlipTaunts)
		}
	}
	s.SimLog.Add(s.tick, "player", "hazard", "slip", p.Bubble.Text, p.Stun)
}
