package calm

import "testing"

func TestClockFirstTickIsZero(t *testing.T) {
	var c Clock
	if dt := c.Tick(5000); dt != 0 {
		t.Errorf("first tick = %v, want 0", dt)
	}
	if dt := c.Tick(5016); dt != 16 {
		t.Errorf("second tick = %v, want 16", dt)
	}
}

func TestClockClampsDelta(t *testing.T) {
	var c Clock
	c.Start(0)
	tests := []struct {
		now, want float64
	}{
		{16, 16},
		{48, 32},
		{1048, MaxDelta},
		{1000, 0}, // time going backwards
		{1010, 10},
	}
	for _, tt := range tests {
		if got := c.Tick(tt.now); got != tt.want {
			t.Errorf("Tick(%v) = %v, want %v", tt.now, got, tt.want)
		}
	}
	if c.Last() != 1010 {
		t.Errorf("Last = %v", c.Last())
	}
}

func TestClockNeverExceedsMax(t *testing.T) {
	var c Clock
	c.Start(0)
	now := 0.0
	for i := range 200 {
		now += float64(i * 7 % 91)
		if dt := c.Tick(now); dt < 0 || dt > MaxDelta {
			t.Fatalf("tick %d: dt = %v out of [0, %v]", i, dt, MaxDelta)
		}
	}
}
