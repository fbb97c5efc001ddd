package comet

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Y      float64 `json:"y,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	X      float64 `json:"x,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Anchor string  `json:"anchor,omitempty"`
	Key    string  `json:"key,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected scroll, resize and navigation events and
// snapshots across frames for automated choreography testing. Attach to a
// Page via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script such as
//
//	{"steps": [
//	  {"action": "scroll", "y": 800, "frames": 20},
//	  {"action": "wait", "frames": 60},
//	  {"action": "snapshot", "label": "after-hero"},
//	  {"action": "navigate", "anchor": "contact"}
//	]}
//
// Actions: scroll (y, optional frames), wheel (dy), resize (width, height),
// key (key name as understood by ebiten, e.g. "Escape"), click (x, y),
// navigate (anchor), wait (frames), settle, snapshot (label), screenshot
// (label). settle finishes navigation and played animations at once.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "scroll", "wheel", "resize", "click", "navigate", "wait", "settle", "snapshot", "screenshot":
		case "key":
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(st.Key)); err != nil {
				return nil, fmt.Errorf("parse test script: step %d: key %q: %w", i, st.Key, err)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the page. The runner's step method
// is called from Page.Update before input is processed each frame.
func (p *Page) SetTestRunner(runner *TestRunner) {
	p.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Page.Update.
func (r *TestRunner) step(p *Page) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(p.injectQueue) > 0 {
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
	case "snapshot":
		p.TakeSnapshot(st.Label)
	case "screenshot":
		p.Screenshot(st.Label)
	case "scroll":
		if st.Frames > 1 {
			p.InjectSmoothScroll(st.Y, st.Frames)
		} else {
			p.InjectScroll(st.Y)
		}
	case "wheel":
		p.InjectWheel(st.DY)
	case "resize":
		p.InjectResize(st.Width, st.Height)
	case "key":
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(st.Key)); err == nil {
			p.InjectKey(k)
		}
	case "click":
		p.InjectClick(st.X, st.Y)
	case "navigate":
		p.InjectNavigate(st.Anchor)
	case "settle":
		p.Settle()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(p.injectQueue) == 0 {
		r.done = true
	}
}

// ElementState is the recorded state of one element in a Snapshot.
type ElementState struct {
	Name   string
	Rect   Rect
	Alpha  float64
	ScaleX float64
	ScaleY float64
	Pinned bool
}

// Snapshot records the visible state of every named element at one frame.
type Snapshot struct {
	Label    string
	Frame    int
	Scroll   float64
	Elements []ElementState
}

// Find returns the state recorded for the named element.
func (s Snapshot) Find(name string) (ElementState, bool) {
	for _, st := range s.Elements {
		if st.Name == name {
			return st, true
		}
	}
	return ElementState{}, false
}

// TakeSnapshot records the current state of every named, visible element.
func (p *Page) TakeSnapshot(label string) Snapshot {
	snap := Snapshot{Label: label, Frame: p.frame, Scroll: p.scroll}
	var walk func(e *Element)
	walk = func(e *Element) {
		if !e.Visible {
			return
		}
		if e.Name != "" {
			snap.Elements = append(snap.Elements, ElementState{
				Name:   e.Name,
				Rect:   p.ScreenRect(e),
				Alpha:  e.Alpha,
				ScaleX: e.ScaleX,
				ScaleY: e.ScaleY,
				Pinned: e.pinned,
			})
		}
		for _, c := range e.children {
			walk(c)
		}
	}
	walk(p.root)
	p.snapshots = append(p.snapshots, snap)
	p.debugf("snapshot %q at frame %d", label, p.frame)
	return snap
}

// Snapshots returns every snapshot taken so far.
func (p *Page) Snapshots() []Snapshot {
	return p.snapshots
}
