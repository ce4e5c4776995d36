package burst

import (
	"fmt"
	"os"
	"time"
)

// Stats holds per-frame timing and counts. Only populated in debug mode.
type Stats struct {
	UpdateTime time.Duration
	DrawTime   time.Duration
	Groups     int
	Particles  int
	DrawCalls  int
}

// SetDebugMode enables or disables debug mode. When enabled, Update and Draw
// record Stats and log them to stderr.
func (m *ParticleManager) SetDebugMode(enabled bool) {
	m.debug = enabled
	globalDebug = enabled
}

// Stats returns the statistics of the most recent Update and Draw.
func (m *ParticleManager) Stats() Stats {
	return m.stats
}

// globalDebug mirrors the most recently set manager debug flag so that code
// without a manager pointer (atlas lookups) can check it cheaply.
var globalDebug bool

func (m *ParticleManager) debugLog(phase string) {
	if !m.debug {
		return
	}
	switch phase {
	case "update":
		_, _ = fmt.Fprintf(os.Stderr, "[burst] update: %v | groups: %d | particles: %d\n",
			m.stats.UpdateTime, m.stats.Groups, m.stats.Particles)
	case "draw":
		_, _ = fmt.Fprintf(os.Stderr, "[burst] draw: %v | draw calls: %d\n",
			m.stats.DrawTime, m.stats.DrawCalls)
	}
}
