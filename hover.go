package sttt

// HoverTracker remembers the last reported hover state and turns each new
// hit-test result into enter/exit transitions.
type HoverTracker struct {
	state HoverState
}

// State returns the hover state as of the last Track call.
func (h *HoverTracker) State() HoverState {
	return h.state
}

// Track diffs cur against the stored state, emits transitions for the cell
// level and then the board level, and stores cur.
func (h *HoverTracker) Track(cur HoverState, emit func(Transition)) {
	prev := h.state
	diffLevel(prev.Cell, prev.HasCell, cur.Cell, cur.HasCell,
		func(c CellRef) { emit(Transition{Kind: CellEntered, Cell: c, Board: BoardRef{ID: c.BoardID}}) },
		func(c CellRef) { emit(Transition{Kind: CellExited, Cell: c, Board: BoardRef{ID: c.BoardID}}) },
	)
	diffLevel(prev.Board, prev.HasBoard, cur.Board, cur.HasBoard,
		func(b BoardRef) { emit(Transition{Kind: BoardEntered, Board: b}) },
		func(b BoardRef) { emit(Transition{Kind: BoardExited, Board: b}) },
	)
	h.state = cur
}

// Clear emits exits for whatever is hovered and forgets it.
func (h *HoverTracker) Clear(emit func(Transition)) {
	h.Track(HoverState{}, emit)
}

// diffLevel is the single hover diff rule shared by both levels. On a
// hand-off the new region is entered before the old one is exited so that a
// consumer never sees an empty hover in between.
func diffLevel[T comparable](prev T, hadPrev bool, cur T, hasCur bool, entered, exited func(T)) {
	switch {
	case !hadPrev && hasCur:
		entered(cur)
	case hadPrev && hasCur && prev != cur:
		entered(cur)
		exited(prev)
	case hadPrev && !hasCur:
		exited(prev)
	}
}
