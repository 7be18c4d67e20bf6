package calm

// Cue names a short sound a scene can ask for.
type Cue uint8

const (
	CuePop       Cue = iota // bubble popped
	CueChime                // ripple or bloom started
	CueGrow                 // plant seeded
	CueCatch                // particle landed in the basket
	CuePuff                 // balloon tapped
	CueBreathIn             // inhale phase began
	CueHold                 // hold phase began
	CueBreathOut            // exhale phase began
	CueSweep                // clear or rake started
)

// Sounder plays cues. Implementations must not block the game loop.
type Sounder interface {
	Play(cue Cue)
}

// Silent is a Sounder that plays nothing.
type Silent struct{}

// Play implements Sounder.
func (Silent) Play(Cue) {}
