package game

import "math/rand"

// Bubble lifetimes and the runner re-speak window, in seconds.
const (
	playerBubbleTTL   = 1.5
	runnerBubbleTTL   = 1.2
	bubbleCooldownMin = 3.0
	bubbleCooldownVar = 2.0
)

var (
	playerPainMessages = []string{"Argh!", "Eek!", "Ouch!", "I slipped!", "Whoa!"}
	runnerSlipTaunts   = []string{"Haha!", "Hehe!", "Tee-hee", "Pfft!"}
	peelDropMessages   = []string{"Ha!", "Catch!", "Eat this!", "Watch out!"}
	runnerDangerCries  = []string{"Nooo!!", "Danger!", "Run away!", "Help!", "Not me!"}
)

// Bubble is a timed text annotation above the player or a runner.
type Bubble struct {
	Text string
	TTL  float64 // seconds left
}

// Tick ages the bubble by dt and reports whether it is still visible.
func (b *Bubble) Tick(dt float64) bool {
	b.TTL -= dt
	return b.TTL > 0
}

// tickBubble ages *slot and clears it once expired.
func tickBubble(slot **Bubble, dt float64) {
	if *slot == nil {
		return
	}
	if !(*slot).Tick(dt) {
		*slot = nil
	}
}

// active reports whether b is present and unexpired.
func (b *Bubble) active() bool {
	return b != nil && b.TTL > 0
}

func newBubble(rng *rand.Rand, pool []string, ttl float64) *Bubble {
	return &Bubble{Text: randomChoice(rng, pool), TTL: ttl}
}

func randomBubbleCooldown(rng *rand.Rand) float64 {
	return bubbleCooldownMin + rng.Float64()*bubbleCooldownVar
}
