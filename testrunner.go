package sttt

import (
	"encoding/json"
	"errors"
	"fmt"
)

// testStep represents a single action in a test script. Pointer actions
// target the center of Cell on Board when both are set, the center of Board
// when only Board is set, and (X, Y) otherwise.
type testStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Board  *uint64 `json:"board,omitempty"`
	Cell   *[2]int `json:"cell,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input and expectations across ticks for
// automated runs. Attach to a Board via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []error
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Board via SetTestRunner.
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
		case "move", "press", "release", "click", "path", "wait":
		case "expect_active":
			if st.Board == nil {
				return nil, fmt.Errorf("parse test script: step %d: expect_active needs a board", i)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Cell != nil && (st.Cell[0] < 0 || st.Cell[0] > 255 || st.Cell[1] < 0 || st.Cell[1] > 255) {
			return nil, fmt.Errorf("parse test script: step %d: cell %v out of range", i, *st.Cell)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the board. The runner's step
// method is called at the start of every Update.
func (b *Board) SetTestRunner(runner *TestRunner) {
	b.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Err returns every failed expectation so far, or nil.
func (r *TestRunner) Err() error {
	return errors.Join(r.failures...)
}

// step advances the test runner by one tick. Called from Board.Update.
func (r *TestRunner) step(b *Board) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(b.injectQueue) > 0 {
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
	case "move":
		if x, y, ok := r.target(b, st); ok {
			b.InjectMove(x, y)
		}
	case "press":
		if x, y, ok := r.target(b, st); ok {
			b.InjectPress(x, y)
		}
	case "release":
		if x, y, ok := r.target(b, st); ok {
			b.InjectRelease(x, y)
		}
	case "click":
		if x, y, ok := r.target(b, st); ok {
			b.InjectClick(x, y)
		}
	case "path":
		b.InjectPath(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "expect_active":
		if got := b.Active(); got != *st.Board {
			r.failures = append(r.failures,
				fmt.Errorf("step %d: active board = %d, want %d", r.cursor-1, got, *st.Board))
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(b.injectQueue) == 0 {
		r.done = true
	}
}

// target resolves the world position a pointer step aims at. An unknown
// board or cell is recorded as a failure and the step injects nothing.
func (r *TestRunner) target(b *Board, st testStep) (float64, float64, bool) {
	if st.Board == nil {
		return st.X, st.Y, true
	}
	if st.Cell != nil {
		if n := b.reg.N(); st.Cell[0] < 0 || st.Cell[0] >= n || st.Cell[1] < 0 || st.Cell[1] >= n {
			r.failures = append(r.failures, fmt.Errorf("step %d: no cell %v on board %d", r.cursor-1, *st.Cell, *st.Board))
			return 0, 0, false
		}
		ref := CellRef{X: uint8(st.Cell[0]), Y: uint8(st.Cell[1]), BoardID: *st.Board}
		if c, ok := b.reg.Cell(ref); ok {
			p := c.Bounds.Center()
			return p.X, p.Y, true
		}
		r.failures = append(r.failures, fmt.Errorf("step %d: no cell %s", r.cursor-1, ref))
		return 0, 0, false
	}
	if bd, ok := b.reg.Board(*st.Board); ok {
		p := bd.Bounds.Center()
		return p.X, p.Y, true
	}
	r.failures = append(r.failures, fmt.Errorf("step %d: no board %d", r.cursor-1, *st.Board))
	return 0, 0, false
}
