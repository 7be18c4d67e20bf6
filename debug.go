package calm

import (
	"fmt"
	"os"
	"time"
)

// debugStats accumulates per-second timing and dispatch counts.
// Only reported when Host.debug is true.
type debugStats struct {
	ticks      int
	frames     int
	events     int
	updateTime time.Duration
	drawTime   time.Duration
	since      time.Time
}

// debugLog prints the accumulated stats to stderr about once per second.
func (h *Host) debugLog() {
	if !h.debug {
		return
	}
	now := time.Now()
	if h.stats.since.IsZero() {
		h.stats.since = now
		return
	}
	if now.Sub(h.stats.since) < time.Second {
		return
	}
	st := h.stats
	avg := func(d time.Duration, n int) time.Duration {
		if n == 0 {
			return 0
		}
		return d / time.Duration(n)
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[calm] ticks: %d | frames: %d | events: %d | update: %v | draw: %v\n",
		st.ticks, st.frames, st.events, avg(st.updateTime, st.ticks), avg(st.drawTime, st.frames))
	_, _ = fmt.Fprintf(os.Stderr,
		"[calm] layers: %d | queued frames: %d | listeners: %d\n",
		len(h.layers), len(h.frames), h.ListenerCount())
	h.stats = debugStats{since: now}
}

// debugWarnf writes a warning to stderr when debug mode is on.
func (h *Host) debugWarnf(format string, args ...any) {
	if !h.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[calm] warning: "+format+"\n", args...)
}
