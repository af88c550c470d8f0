package game

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BubbleView is a copy of an active bubble.
type BubbleView struct {
	Text string
	TTL  float64
}

// BodyView is a drawable circle with an optional bubble.
type BodyView struct {
	Pos    mgl64.Vec2
	Radius float64
	Bubble *BubbleView
}

// Snapshot is the read-only view of one frame handed to renderers. It shares
// no memory with the simulation.
type Snapshot struct {
	Arena    Arena
	Biome    Biome
	Player   BodyView
	Stunned  bool
	Runners  []BodyView // alive runners only
	Peels    []BodyView
	TimeLeft float64
	Score    int
	Total    int
	Outcome  Outcome
}

func viewBubble(b *Bubble) *BubbleView {
	if !b.active() {
		return nil
	}
	return &BubbleView{Text: b.Text, TTL: b.TTL}
}

// Snapshot projects the current state for rendering.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Arena: s.Arena,
		Biome: s.Biome,
		Player: BodyView{
			Pos:    s.Player.Pos,
			Radius: s.Player.Radius,
			Bubble: viewBubble(s.Player.Bubble),
		},
		Stunned:  s.Player.Stunned(),
		Runners:  make([]BodyView, 0, len(s.Runners)),
		Peels:    make([]BodyView, 0, len(s.Peels)),
		TimeLeft: s.Round.TimeLeft,
		Score:    s.Round.Score,
		Total:    s.Round.Total,
		Outcome:  s.Round.Outcome,
	}
	for _, r := range s.Runners {
		if !r.Alive {
			continue
		}
		snap.Runners = append(snap.Runners, BodyView{Pos: r.Pos, Radius: r.Radius, Bubble: viewBubble(r.Bubble)})
	}
	for _, p := range s.Peels {
		snap.Peels = append(snap.Peels, BodyView{Pos: p.Pos, Radius: p.Radius})
	}
	return snap
}

// Terminal reports whether the round in the snapshot is over.
func (snap Snapshot) Terminal() bool {
	return snap.Outcome.Terminal()
}

// HUD is the heads-up display data: whole seconds left and the tally.
type HUD struct {
	TimeLeft int
	Score    int
	Total    int
}

// HUD derives the display values; the timer rounds up.
func (s *Simulation) HUD() HUD {
	return HUD{
		TimeLeft: int(math.Ceil(s.Round.TimeLeft)),
		Score:    s.Round.Score,
		Total:    s.Round.Total,
	}
}

// ScoreText formats the tally as "score / total".
func (h HUD) ScoreText() string {
	return fmt.Sprintf("%d / %d", h.Score, h.Total)
}

// TimerText formats the countdown.
func (h HUD) TimerText() string {
	return fmt.Sprintf("%d", h.TimeLeft)
}
