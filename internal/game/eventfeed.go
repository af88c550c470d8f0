package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const feedMaxEntries = 12

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Tick    int
	Message string
}

// EventFeed is a ring buffer of recent events rendered in the side panel.
type EventFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest when full.
func (f *EventFeed) Add(tick int, msg string) {
	f.entries[f.head] = FeedEntry{Tick: tick, Message: msg}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

const (
	logPanelWidth = 320
	feedLineH     = 16
)

var (
	feedPanelColor = color.RGBA{R: 10, G: 12, B: 16, A: 248}
	feedRuleColor  = color.RGBA{R: 50, G: 70, B: 90, A: 255}
	feedTitleColor = color.RGBA{R: 20, G: 28, B: 36, A: 255}
	feedInkColor   = color.RGBA{R: 200, G: 214, B: 226, A: 255}
)

// drawFeed renders the event feed panel to the right of the stage.
func (g *Game) drawFeed(screen *ebiten.Image, panelX int) {
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(g.height), feedPanelColor, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(g.height), 1.0, feedRuleColor, false)

	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), 20, feedTitleColor, false)
	text.Draw(screen, "EVENTS", bubbleFace, panelX+8, 15, feedInkColor)

	y := 40
	for _, e := range g.sim.Feed().Recent() {
		text.Draw(screen, fmt.Sprintf("%05d %s", e.Tick, e.Message), bubbleFace, panelX+8, y, feedInkColor)
		y += feedLineH
	}
}
