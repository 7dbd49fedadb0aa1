package sttt

// HoverState is what the pointer is over. A hovered cell always implies its
// board is hovered too.
type HoverState struct {
	Cell     CellRef
	HasCell  bool
	Board    BoardRef
	HasBoard bool
}

// HitTest finds the most specific region under (x, y). Cells take
// precedence and imply their owning board; a point inside a board's hit area
// but outside all of its cells reports the board alone. Cells do not overlap
// by construction, so the first match in registry order wins.
func HitTest(reg *Registry, x, y float64) HoverState {
	cells := reg.Cells()
	for i := range cells {
		c := &cells[i]
		if c.Bounds.Contains(x, y) {
			board := reg.mustBoard(c.Cell.BoardID)
			return HoverState{
				Cell: c.Cell, HasCell: true,
				Board: board.Board, HasBoard: true,
			}
		}
	}
	boards := reg.Boards()
	for i := range boards {
		b := &boards[i]
		if b.Bounds.Contains(x, y) {
			return HoverState{Board: b.Board, HasBoard: true}
		}
	}
	return HoverState{}
}
