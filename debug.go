package sttt

import (
	"fmt"
	"os"
)

// debugTransition prints one transition to stderr.
func (b *Board) debugTransition(t Transition) {
	_, _ = fmt.Fprintf(os.Stderr, "[sttt] tick %d: %s (active %d)\n", b.tick, t, b.nav.Active())
}

// debugNavigate prints the grid arithmetic behind a board change.
func (b *Board) debugNavigate(from uint64, clicked CellRef) {
	rows := uint64(b.reg.GameRows())
	to := b.nav.Active()
	dx, dy := Direction(clicked, b.reg.N())
	_, _ = fmt.Fprintf(os.Stderr,
		"[sttt] clicked %s: (%d, %d) + (%d, %d) -> (%d, %d) | board %d -> %d\n",
		clicked, from/rows, from%rows, dx, dy, to/rows, to%rows, from, to)
}

// debugCheckHover panics when a hovered cell is not backed by a hovered
// board of the same id.
func debugCheckHover(s HoverState) {
	if !s.HasCell {
		return
	}
	if !s.HasBoard || s.Board.ID != s.Cell.BoardID {
		panic(fmt.Sprintf("sttt debug: hovered cell %s without its board (board hovered=%v, id %d)",
			s.Cell, s.HasBoard, s.Board.ID))
	}
}
