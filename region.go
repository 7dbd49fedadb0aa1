package sttt

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrInvalidGrid is returned when grid extents are out of range.
	ErrInvalidGrid = errors.New("sttt: invalid grid dimensions")
	// ErrUnknownBoard is returned when a cell names a board id that has no
	// board region.
	ErrUnknownBoard = errors.New("sttt: cell references unknown board")
	// ErrDuplicateRegion is returned when two regions share an identity.
	ErrDuplicateRegion = errors.New("sttt: duplicate region")
	// ErrMissingBoard is returned when the registry does not cover every
	// board id of the grid.
	ErrMissingBoard = errors.New("sttt: board missing from registry")
)

// CellRef identifies a cell by its local coordinates within its board.
// Local coordinates run 0..n-1, with y increasing upward on screen.
type CellRef struct {
	X, Y    uint8
	BoardID uint64
}

func (c CellRef) String() string {
	return fmt.Sprintf("(%d, %d)@%d", c.X, c.Y, c.BoardID)
}

// BoardRef identifies an inner board.
type BoardRef struct {
	ID uint64
}

func (b BoardRef) String() string {
	return fmt.Sprintf("board %d", b.ID)
}

// RegionKind distinguishes the two region variants.
type RegionKind uint8

const (
	RegionCell  RegionKind = iota // one playable cell
	RegionBoard                   // one inner board, including its padding band
)

// Region is an interactive hit area plus the layers attached to it.
// Only the field matching Kind is meaningful.
type Region struct {
	Kind   RegionKind
	Cell   CellRef
	Board  BoardRef
	Bounds Rect
	Layers []*Layer
}

// CellRegion creates a cell region.
func CellRegion(c CellRef, bounds Rect, layers ...*Layer) Region {
	return Region{Kind: RegionCell, Cell: c, Bounds: bounds, Layers: layers}
}

// BoardRegion creates a board region.
func BoardRegion(b BoardRef, bounds Rect, layers ...*Layer) Region {
	return Region{Kind: RegionBoard, Board: b, Bounds: bounds, Layers: layers}
}

// BoardID returns the id of the board the region is, or belongs to.
func (r *Region) BoardID() uint64 {
	if r.Kind == RegionCell {
		return r.Cell.BoardID
	}
	return r.Board.ID
}

// String names the region for diagnostics.
func (r *Region) String() string {
	if r.Kind == RegionCell {
		return "cell " + r.Cell.String()
	}
	return r.Board.String()
}

// Layer returns the child layer with the given role and skin, or nil.
func (r *Region) Layer(role LayerRole, skin Skin) *Layer {
	for _, l := range r.Layers {
		if l.Role == role && l.Skin == skin {
			return l
		}
	}
	return nil
}

// mustLayer is Layer for the tick path. A missing child means the registry
// was built inconsistently, which is not recoverable.
func (r *Region) mustLayer(role LayerRole, skin Skin) *Layer {
	l := r.Layer(role, skin)
	if l == nil {
		panic(fmt.Sprintf("sttt: %s has no %s layer with skin %s", r, role, skin))
	}
	return l
}

// Registry is the static hierarchy of interactive regions. It is built once
// at layout time and never changes afterwards.
type Registry struct {
	gamesPerRow int
	gameRows    int
	n           int

	cells      []Region
	boards     []Region
	cellIndex  map[CellRef]int
	boardIndex map[uint64]int

	layers []*Layer // every layer, ZIndex-sorted for drawing
}

// NewRegistry validates regions against the grid extents and indexes them.
// Regions keep their relative order; hit testing scans them in that order.
// Every board id in [0, gamesPerRow*gameRows) must have exactly one board
// region, and every cell must name an existing board and lie within n.
func NewRegistry(gamesPerRow, gameRows, n int, regions []Region) (*Registry, error) {
	if gamesPerRow < 1 || gameRows < 1 {
		return nil, fmt.Errorf("%w: %dx%d boards", ErrInvalidGrid, gamesPerRow, gameRows)
	}
	if n < 1 || n > 255 {
		return nil, fmt.Errorf("%w: board size %d", ErrInvalidGrid, n)
	}
	reg := &Registry{
		gamesPerRow: gamesPerRow,
		gameRows:    gameRows,
		n:           n,
		cellIndex:   make(map[CellRef]int),
		boardIndex:  make(map[uint64]int),
	}
	count := uint64(gamesPerRow * gameRows)

	for _, r := range regions {
		if r.Kind != RegionBoard {
			continue
		}
		if r.Board.ID >= count {
			return nil, fmt.Errorf("%w: board id %d outside %dx%d grid", ErrInvalidGrid, r.Board.ID, gamesPerRow, gameRows)
		}
		if _, dup := reg.boardIndex[r.Board.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRegion, r.Board)
		}
		reg.boardIndex[r.Board.ID] = len(reg.boards)
		reg.boards = append(reg.boards, r)
	}
	for id := uint64(0); id < count; id++ {
		if _, ok := reg.boardIndex[id]; !ok {
			return nil, fmt.Errorf("%w: board %d", ErrMissingBoard, id)
		}
	}

	for _, r := range regions {
		if r.Kind != RegionCell {
			continue
		}
		if _, ok := reg.boardIndex[r.Cell.BoardID]; !ok {
			return nil, fmt.Errorf("%w: cell %s", ErrUnknownBoard, r.Cell)
		}
		if int(r.Cell.X) >= n || int(r.Cell.Y) >= n {
			return nil, fmt.Errorf("%w: cell %s outside %dx%d board", ErrInvalidGrid, r.Cell, n, n)
		}
		if _, dup := reg.cellIndex[r.Cell]; dup {
			return nil, fmt.Errorf("%w: cell %s", ErrDuplicateRegion, r.Cell)
		}
		reg.cellIndex[r.Cell] = len(reg.cells)
		reg.cells = append(reg.cells, r)
	}

	for i := range reg.boards {
		reg.layers = append(reg.layers, reg.boards[i].Layers...)
	}
	for i := range reg.cells {
		reg.layers = append(reg.layers, reg.cells[i].Layers...)
	}
	sort.SliceStable(reg.layers, func(i, j int) bool {
		return reg.layers[i].ZIndex < reg.layers[j].ZIndex
	})
	return reg, nil
}

// GamesPerRow returns the number of board columns.
func (r *Registry) GamesPerRow() int { return r.gamesPerRow }

// GameRows returns the number of board rows.
func (r *Registry) GameRows() int { return r.gameRows }

// N returns the side length of each inner board.
func (r *Registry) N() int { return r.n }

// BoardCount returns gamesPerRow * gameRows.
func (r *Registry) BoardCount() int { return r.gamesPerRow * r.gameRows }

// MidpointBoard returns the structural midpoint board id, rows*cols/2.
func (r *Registry) MidpointBoard() uint64 {
	return uint64(r.gamesPerRow * r.gameRows / 2)
}

// Cells returns the cell regions in registry order. The returned slice MUST
// NOT be mutated.
func (r *Registry) Cells() []Region { return r.cells }

// Boards returns the board regions in registry order. The returned slice
// MUST NOT be mutated.
func (r *Registry) Boards() []Region { return r.boards }

// Layers returns every layer of every region sorted by ZIndex.
// The returned slice MUST NOT be mutated.
func (r *Registry) Layers() []*Layer { return r.layers }

// Board returns the region of the given board id.
func (r *Registry) Board(id uint64) (*Region, bool) {
	i, ok := r.boardIndex[id]
	if !ok {
		return nil, false
	}
	return &r.boards[i], true
}

// Cell returns the region of the given cell.
func (r *Registry) Cell(c CellRef) (*Region, bool) {
	i, ok := r.cellIndex[c]
	if !ok {
		return nil, false
	}
	return &r.cells[i], true
}

func (r *Registry) mustBoard(id uint64) *Region {
	b, ok := r.Board(id)
	if !ok {
		panic(fmt.Sprintf("sttt: board %d is not in the registry", id))
	}
	return b
}

func (r *Registry) mustCell(c CellRef) *Region {
	cell, ok := r.Cell(c)
	if !ok {
		panic(fmt.Sprintf("sttt: cell %s is not in the registry", c))
	}
	return cell
}
