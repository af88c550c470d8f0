package game

import "math"

// dangerMinSpeed is the player speed above which runners notice the threat.
const dangerMinSpeed = 0.2

// nearestThreatened returns the closest alive runner within the danger
// distance of a moving player, or nil. Ties keep the first runner found.
func (s *Simulation) nearestThreatened() *Runner {
	p := &s.Player
	if p.Stunned() || p.Speed() <= dangerMinSpeed {
		return nil
	}
	var target *Runner
	nearest := math.Inf(1)
	for _, r := range s.Runners {
		if !r.Alive {
			continue
		}
		d := dist(p.Pos, r.Pos)
		if d < nearest && d <= s.Arena.DangerTrigger {
			nearest = d
			target = r
		}
	}
	return target
}

// scanDanger lets the nearest threatened runner cry out, cooldown permitting.
func (s *Simulation) scanDanger() {
	r := s.nearestThreatened()
	if r == nil {
		return
	}
	if r.trySpeak(s.rng, runnerDangerCries) {
		s.SimLog.AddVerbose(s.tick, r.Label(), "bubble", "danger", r.Bubble.Text, dist(s.Player.Pos, r.Pos))
	}
}
