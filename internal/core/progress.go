package core

import (
	"fmt"
	"strings"
	"sync"
)

// Sink is where progress text ends up. The transport behind it (a terminal
// line, an edited chat message) must tolerate overwrites at unpredictable
// intervals; delivery is best-effort.
type Sink interface {
	Update(text string) error
}

// ProgressReporter receives live updates from the search workers. Both calls
// are fire-and-forget: a reporting failure never alters the search.
type ProgressReporter interface {
	Report(checked, total int)
	ReportFound(url string)
}

// BarReporter renders a fixed-width proportional bar and pushes it to a Sink.
// Safe for concurrent use by multiple workers; last write wins.
type BarReporter struct {
	sink Sink
	mu   sync.Mutex
}

func NewBarReporter(sink Sink) *BarReporter {
	return &BarReporter{sink: sink}
}

func (r *BarReporter) Report(checked, total int) {
	if r == nil || r.sink == nil {
		return
	}
	text := RenderBar(checked, total)
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.sink.Update(text)
}

func (r *BarReporter) ReportFound(url string) {
	if r == nil || r.sink == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.sink.Update("Found: " + url)
}

// RenderBar draws the 15-slot bar with percentage and raw fraction.
func RenderBar(checked, total int) string {
	percent := 0
	if total > 0 {
		percent = checked * 100 / total
	}
	filled := ProgressBarSlots * percent / 100
	if filled > ProgressBarSlots {
		filled = ProgressBarSlots
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", ProgressBarSlots-filled)
	return fmt.Sprintf("Progress: [%s] %d%% (%d/%d)", bar, percent, checked, total)
}
