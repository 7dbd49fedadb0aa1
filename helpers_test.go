package sttt

import "testing"

// newTestBoard builds a board from DefaultConfig (5x3 boards of 3x3 cells,
// board 7 active).
func newTestBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewBoardFromConfig(DefaultConfig())
	if err != nil {
		t.Fatalf("NewBoardFromConfig: %v", err)
	}
	return b
}

// cellCenter returns the world center of a cell.
func cellCenter(t *testing.T, reg *Registry, x, y uint8, board uint64) Vec2 {
	t.Helper()
	c, ok := reg.Cell(CellRef{X: x, Y: y, BoardID: board})
	if !ok {
		t.Fatalf("cell (%d, %d)@%d not in registry", x, y, board)
	}
	return c.Bounds.Center()
}

// paddingPoint returns a point inside board's hit area but outside its
// cells.
func paddingPoint(t *testing.T, reg *Registry, board uint64) Vec2 {
	t.Helper()
	b, ok := reg.Board(board)
	if !ok {
		t.Fatalf("board %d not in registry", board)
	}
	return Vec2{X: b.Bounds.X + 1, Y: b.Bounds.Y + 1}
}

func moveTo(b *Board, p Vec2) {
	b.Update(Input{X: p.X, Y: p.Y})
}

func clickAt(b *Board, p Vec2) {
	b.Update(Input{X: p.X, Y: p.Y, Pressed: true})
	b.Update(Input{X: p.X, Y: p.Y})
}

func kinds(ts []Transition) []TransitionKind {
	out := make([]TransitionKind, len(ts))
	for i, t := range ts {
		out[i] = t.Kind
	}
	return out
}

func equalTransitions(a, b []Transition) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
