package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event of the simulation core.
type SimLogEntry struct {
	Tick     int
	Entity   string  // runner label e.g. "C07", "player", or "--" for round events
	Category string  // capture, hazard, bubble, round
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] C07    capture   tag              (12.0,-3.5)
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-6s %-9s %-16s %s",
		e.Tick, e.Entity, e.Category, e.Key, e.Value)
}

// SimLog collects structured events. Unlike EventFeed (UI ring buffer), SimLog
// is unbounded and machine-readable.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, chatty entries such as
// danger bubbles are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// SetVerbose toggles recording of verbose entries.
func (sl *SimLog) SetVerbose(v bool) {
	sl.verbose = v
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, entity, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Entity:   entity,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, entity, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, entity, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Reset drops all entries.
func (sl *SimLog) Reset() {
	sl.entries = sl.entries[:0]
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns the number of entries matching category/key.
func (sl *SimLog) Count(category, key string) int {
	return len(sl.Filter(category, key))
}

// Summary formats per-category/key counts, sorted by first appearance.
func (sl *SimLog) Summary() string {
	type ck struct{ c, k string }
	var order []ck
	counts := map[ck]int{}
	for _, e := range sl.entries {
		key := ck{e.Category, e.Key}
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++
	}
	var b strings.Builder
	b.WriteString("--- SimLog summary ---\n")
	for _, key := range order {
		fmt.Fprintf(&b, "  %-9s %-12s %d\n", key.c, key.k, counts[key])
	}
	return b.String()
}
