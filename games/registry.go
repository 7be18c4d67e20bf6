// Package games holds the ten relaxation scenes. Each scene is a
// self-contained calm.Scene; Routes lists them in menu order.
package games

import "github.com/phanxgames/calm"

// Routes returns the route table of every scene in menu order.
func Routes() []calm.Route {
	return []calm.Route{
		{Name: "pop-bubbles", Title: "Pop the Bubbles", New: func() calm.Scene { return NewBubbles() }},
		{Name: "calm-touch", Title: "Calm Touch", New: func() calm.Scene { return NewRipples() }},
		{Name: "tide-wash", Title: "Tide Wash", New: func() calm.Scene { return NewTideWash() }},
		{Name: "pour-spread", Title: "Pour & Spread", New: func() calm.Scene { return NewPourSpread() }},
		{Name: "tap-grow", Title: "Tap to Grow", New: func() calm.Scene { return NewTapGrow() }},
		{Name: "catch-fall", Title: "Catch the Fall", New: func() calm.Scene { return NewCatchFall() }},
		{Name: "balloon-balance", Title: "Balloon Balance", New: func() calm.Scene { return NewBalloonBalance() }},
		{Name: "breath-sync", Title: "Breath Sync", New: func() calm.Scene { return NewBreathSync() }},
		{Name: "warm-glow", Title: "Warm Glow", New: func() calm.Scene { return NewWarmGlow() }},
		{Name: "sand-garden", Title: "Sand Garden", New: func() calm.Scene { return NewSandGarden() }},
	}
}
