package ebitenhost

import (
	"encoding/json"
	"fmt"

	"github.com/phanxgames/clicker"
)

// testStep is a single action in a test script. Coordinates are in data
// space for click actions and screen space for pan.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"click": true, "rightclick": true, "pick": true, "pan": true, "reset": true, "wait": true,
}

// TestRunner sequences injected input across frames for scripted
// annotation sessions. Attach to a Canvas via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	err       error
}

// LoadTestScript parses a JSON test script:
//
//	{"steps": [
//		{"action": "click", "x": 1, "y": 1},
//		{"action": "pick", "label": "b"},
//		{"action": "rightclick", "x": 1, "y": 1},
//		{"action": "pan", "fromX": 100, "fromY": 100, "toX": 150, "toY": 100, "frames": 5},
//		{"action": "reset", "frames": 10},
//		{"action": "wait", "frames": 3}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner. Its step method runs at the start of
// every Update.
func (c *Canvas) SetTestRunner(runner *TestRunner) {
	c.testRunner = runner
}

// Done reports whether all steps have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Err returns the first step error, such as a pick on an unknown label.
func (r *TestRunner) Err() error {
	return r.err
}

// step advances the runner by one frame.
func (r *TestRunner) step(c *Canvas) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(c.injectQueue) > 0 {
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
		c.InjectDataClick(clicker.Point{X: st.X, Y: st.Y}, clicker.MouseButtonLeft)
	case "rightclick":
		c.InjectDataClick(clicker.Point{X: st.X, Y: st.Y}, clicker.MouseButtonRight)
	case "pick":
		if err := c.InjectPick(st.Label); err != nil && r.err == nil {
			r.err = fmt.Errorf("step %d: %w", r.cursor-1, err)
		}
	case "pan":
		c.InjectPan(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "reset":
		seconds := float32(st.Frames) / 60
		c.view.ResetView(seconds, nil)
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}
