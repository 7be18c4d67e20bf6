package calm

// Clock turns monotonic frame timestamps (milliseconds) into clamped deltas.
// The zero value is ready to use; without Start its first tick yields a
// zero delta.
type Clock struct {
	last    float64
	started bool
}

// Tick records now and returns min(now-last, MaxDelta), never negative.
func (c *Clock) Tick(now float64) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now - c.last
	c.last = now
	if dt < 0 {
		return 0
	}
	if dt > MaxDelta {
		return MaxDelta
	}
	return dt
}

// Start primes the clock so the next Tick measures from now.
func (c *Clock) Start(now float64) {
	c.last = now
	c.started = true
}

// Last returns the most recent timestamp passed to Tick.
func (c *Clock) Last() float64 { return c.last }
