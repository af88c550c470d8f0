package game

// resolveCaptures takes every alive runner touching the player out of play.
func (s *Simulation) resolveCaptures() {
	p := &s.Player
	for _, r := range s.Runners {
		if !r.Alive {
			continue
		}
		if dist(p.Pos, r.Pos) <= p.Radius+r.Radius {
			s.capture(r, "tag")
		}
	}
}
