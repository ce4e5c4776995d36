package demo

import (
	"encoding/json"
	"fmt"
	"os"
)

// scriptStep is a single action in a demo script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float32 `json:"x,omitempty"`
	Y      float32 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner plays a sequence of clicks, button presses, waits and
// screenshots against a Game, one action per step.
//
// Actions:
//
//	{"action": "click", "x": 40, "y": 180}
//	{"action": "press", "label": "Explosion"}
//	{"action": "wait", "frames": 30}
//	{"action": "screenshot", "label": "after-explosion"}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON demo script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse demo script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse demo script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "click", "wait", "screenshot":
		case "press":
			if _, ok := buttonByLabel(st.Label); !ok {
				return nil, fmt.Errorf("parse demo script: step %d: unknown button %q", i, st.Label)
			}
		default:
			return nil, fmt.Errorf("parse demo script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// LoadScriptFile reads and parses a demo script.
func LoadScriptFile(path string) (*ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read demo script: %w", err)
	}
	return LoadScript(data)
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool {
	return r.done
}

func buttonByLabel(label string) (ButtonID, bool) {
	for id := ButtonTrail; id <= ButtonDust; id++ {
		if id.String() == label {
			return id, true
		}
	}
	return 0, false
}

// step advances the runner by one game step.
func (r *ScriptRunner) step(g *Game) {
	if r.done {
		return
	}
	if g.PendingInput() {
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
	case "click":
		g.InjectClick(st.X, st.Y)
	case "press":
		id, _ := buttonByLabel(st.Label)
		g.PressButton(id)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this step counts as one
		}
	case "screenshot":
		g.Screenshot(st.Label)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !g.PendingInput() {
		r.done = true
	}
}
