package sttt

// ActiveBoard is the register holding the single board that accepts play
// input.
type ActiveBoard struct {
	ID uint64
}

// sign returns -1, 0 or +1.
func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// Direction returns the step a click on c asks for. Cell coordinates are
// centered within the n-wide board first (2*x - (n-1)), so cells left of or
// below the middle step -1, cells right of or above step +1, and the exact
// middle of an odd board stays put on that axis.
func Direction(c CellRef, n int) (dx, dy int) {
	return sign(2*int(c.X) - (n - 1)), sign(2*int(c.Y) - (n - 1))
}

// NextBoard moves active one step by (dx, dy) on the gamesPerRow x gameRows
// grid of boards, wrapping around at every edge. Board ids are column-major:
// id = gameRows*x + y.
func NextBoard(active uint64, dx, dy, gamesPerRow, gameRows int) uint64 {
	rows := uint64(gameRows)
	activeX := int(active / rows)
	activeY := int(active % rows)
	newX := ((activeX+dx)%gamesPerRow + gamesPerRow) % gamesPerRow
	newY := ((activeY+dy)%gameRows + gameRows) % gameRows
	return rows*uint64(newX) + uint64(newY)
}

// Navigator owns the active-board register and applies click navigation.
type Navigator struct {
	reg    *Registry
	active ActiveBoard
}

// NewNavigator creates a navigator whose active board is the registry's
// structural midpoint.
func NewNavigator(reg *Registry) *Navigator {
	return &Navigator{reg: reg, active: ActiveBoard{ID: reg.MidpointBoard()}}
}

// Active returns the active board id.
func (n *Navigator) Active() uint64 {
	return n.active.ID
}

// Click handles a fresh primary press with the given hover state. Clicks
// with no hovered cell, or on a cell of any board but the active one, do
// nothing. It reports whether the active board changed.
func (n *Navigator) Click(hover HoverState, emit func(Transition)) bool {
	if !hover.HasCell || hover.Cell.BoardID != n.active.ID {
		return false
	}
	dx, dy := Direction(hover.Cell, n.reg.N())
	next := NextBoard(n.active.ID, dx, dy, n.reg.GamesPerRow(), n.reg.GameRows())
	return n.set(next, emit)
}

// set moves the register to id. The register is updated before the pair is
// emitted, so consumers processing either event already see the new board.
// The old board is always deactivated before the new one is activated.
func (n *Navigator) set(id uint64, emit func(Transition)) bool {
	old := n.active.ID
	if id == old {
		return false
	}
	n.reg.mustBoard(id)
	n.active.ID = id
	emit(Transition{Kind: BoardDeactivated, Board: BoardRef{ID: old}})
	emit(Transition{Kind: BoardActivated, Board: BoardRef{ID: id}})
	return true
}
