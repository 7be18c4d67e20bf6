package calm

import (
	"encoding/json"
	"fmt"
	"os"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Route  string  `json:"route,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a script file.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var knownActions = map[string]bool{
	"navigate": true, "press": true, "move": true, "release": true,
	"click": true, "drag": true, "wait": true, "screenshot": true,
}

// Navigator switches the mounted scene by route name. Router implements it.
type Navigator interface {
	Navigate(route string)
}

// ScriptRunner sequences route changes, injected input and screenshots across
// frames. Attach it to a Host via SetScriptRunner.
type ScriptRunner struct {
	steps        []scriptStep
	cursor       int
	waitCount    int
	done         bool
	nav          Navigator
	exitWhenDone bool
}

// ParseScript parses a JSON script and returns a runner ready to be attached
// to a Host.
func ParseScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "navigate" && st.Route == "" {
			return nil, fmt.Errorf("parse script: step %d: navigate without route", i)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (*ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	return ParseScript(data)
}

// SetNavigator sets the target of "navigate" steps.
func (r *ScriptRunner) SetNavigator(nav Navigator) {
	r.nav = nav
}

// ExitWhenDone makes Host.Update return ebiten.Termination once every step
// ran and pending screenshots were written.
func (r *ScriptRunner) ExitWhenDone(exit bool) {
	r.exitWhenDone = exit
}

// SetScriptRunner attaches a runner. Its step method runs at the start of
// every tick, before input is processed.
func (h *Host) SetScriptRunner(runner *ScriptRunner) {
	h.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(h *Host) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(h.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "navigate":
		if r.nav != nil {
			r.nav.Navigate(st.Route)
		} else {
			h.debugWarnf("script: navigate %q without a navigator", st.Route)
		}
	case "screenshot":
		h.Screenshot(st.Label)
	case "press":
		h.InjectPress(st.X, st.Y)
	case "move":
		h.InjectMove(st.X, st.Y)
	case "release":
		h.InjectRelease(st.X, st.Y)
	case "click":
		h.InjectClick(st.X, st.Y)
	case "drag":
		h.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(h.injectQueue) == 0 {
		r.done = true
	}
}
