package game

import (
	"fmt"
	"math"
)

// Outcome is the state of a round: still playing or one of the terminal results.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeCleared
	OutcomeTimedOut
	OutcomeFell
)

// String returns the snake_case name used in logs and reports.
func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeCleared:
		return "cleared"
	case OutcomeTimedOut:
		return "timed_out"
	case OutcomeFell:
		return "fell"
	default:
		return "unknown"
	}
}

// Terminal reports whether o ends the round.
func (o Outcome) Terminal() bool {
	return o != OutcomePlaying
}

// Round holds the countdown, the tally and the outcome of one round.
type Round struct {
	TimeLeft float64
	Duration float64
	Score    int
	Total    int
	Outcome  Outcome

	// Bookkeeping for reports.
	Escapes      int
	Slips        int
	PeelsDropped int
}

func newRound(cfg Config) Round {
	return Round{
		TimeLeft: cfg.RoundSeconds,
		Duration: cfg.RoundSeconds,
		Total:    cfg.RunnerCount,
	}
}

// Over reports whether the round has reached a terminal outcome.
func (r *Round) Over() bool {
	return r.Outcome.Terminal()
}

// tickClock decays the countdown, floored at zero.
func (r *Round) tickClock(dt float64) {
	r.TimeLeft -= dt
	if r.TimeLeft < 0 {
		r.TimeLeft = 0
	}
}

// settle evaluates the score and timer conditions in precedence order and
// returns the outcome entered, if any. Fell is decided by the caller since it
// depends on the player position.
func (r *Round) settle() Outcome {
	if r.Over() {
		return r.Outcome
	}
	switch {
	case r.Score >= r.Total:
		r.Outcome = OutcomeCleared
	case r.TimeLeft <= 0:
		r.Outcome = OutcomeTimedOut
	}
	return r.Outcome
}

// end forces a terminal outcome unless one is already set.
func (r *Round) end(o Outcome) {
	if r.Over() {
		return
	}
	r.Outcome = o
}

// Elapsed returns how long the round has run, clamped to [0, Duration].
func (r *Round) Elapsed() float64 {
	e := r.Duration - r.TimeLeft
	if e < 0 {
		return 0
	}
	if e > r.Duration {
		return r.Duration
	}
	return e
}

// Summary is the end-of-round report.
type Summary struct {
	Outcome Outcome
	Elapsed float64
	Score   int
	Total   int
	Escapes int
	Slips   int
}

// Summary derives the report for the current round state.
func (r *Round) Summary() Summary {
	return Summary{
		Outcome: r.Outcome,
		Elapsed: r.Elapsed(),
		Score:   r.Score,
		Total:   r.Total,
		Escapes: r.Escapes,
		Slips:   r.Slips,
	}
}

// Headline is the one-line title shown on the game-over panel.
func (s Summary) Headline() string {
	switch s.Outcome {
	case OutcomeCleared:
		return "Caught every runner!"
	case OutcomeTimedOut:
		return "Time's up!"
	case OutcomeFell:
		return "You fell off the stage..."
	default:
		return ""
	}
}

// FormatElapsed renders seconds as m:ss, rounded to the nearest second.
func FormatElapsed(seconds float64) string {
	total := int(math.Round(seconds))
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// String formats the summary as the multi-line game-over detail text.
func (s Summary) String() string {
	return fmt.Sprintf("%s\nElapsed: %s\nCaught: %d / %d (escaped %d, slipped %d)",
		s.Headline(), FormatElapsed(s.Elapsed), s.Score, s.Total, s.Escapes, s.Slips)
}
