package sttt

import "fmt"

// TransitionKind identifies an edge-triggered hover or activation change.
type TransitionKind uint8

const (
	CellEntered      TransitionKind = iota // pointer moved onto a cell
	CellExited                             // pointer left a cell
	BoardEntered                           // pointer moved onto a board's hit area
	BoardExited                            // pointer left a board's hit area
	BoardActivated                         // board became the active board
	BoardDeactivated                       // board stopped being the active board
)

func (k TransitionKind) String() string {
	switch k {
	case CellEntered:
		return "CellEntered"
	case CellExited:
		return "CellExited"
	case BoardEntered:
		return "BoardEntered"
	case BoardExited:
		return "BoardExited"
	case BoardActivated:
		return "BoardActivated"
	case BoardDeactivated:
		return "BoardDeactivated"
	default:
		return fmt.Sprintf("TransitionKind(%d)", uint8(k))
	}
}

// IsCell reports whether the kind concerns a cell rather than a board.
func (k TransitionKind) IsCell() bool {
	return k == CellEntered || k == CellExited
}

// Transition carries one change. Cell is set for cell kinds; Board is always
// set (for cell kinds it is the cell's owning board).
type Transition struct {
	Kind  TransitionKind
	Cell  CellRef
	Board BoardRef
}

func (t Transition) String() string {
	if t.Kind.IsCell() {
		return fmt.Sprintf("%s(%s)", t.Kind, t.Cell)
	}
	return fmt.Sprintf("%s(%d)", t.Kind, t.Board.ID)
}

// EventSink is the interface for optional ECS integration.
// When set on a Board, every transition is forwarded to it.
type EventSink interface {
	EmitTransition(t Transition)
}

// --- Handler registry ---

type transitionHandler struct {
	id   uint32
	kind TransitionKind
	all  bool
	fn   func(Transition)
}

type handlerRegistry struct {
	handlers []transitionHandler
	nextID   uint32
}

func (r *handlerRegistry) add(kind TransitionKind, all bool, fn func(Transition)) CallbackHandle {
	r.nextID++
	id := r.nextID
	r.handlers = append(r.handlers, transitionHandler{id: id, kind: kind, all: all, fn: fn})
	return CallbackHandle{id: id, reg: r}
}

// dispatch calls the handlers registered when it starts. Handlers may add
// or remove callbacks; Remove never mutates the slice being iterated.
func (r *handlerRegistry) dispatch(t Transition) {
	hs := r.handlers
	for i := range hs {
		h := &hs[i]
		if h.fn == nil || !(h.all || h.kind == t.Kind) {
			continue
		}
		if !r.registered(h.id) {
			continue
		}
		h.fn(t)
	}
}

func (r *handlerRegistry) registered(id uint32) bool {
	for i := range r.handlers {
		if r.handlers[i].id == id {
			return true
		}
	}
	return false
}

// CallbackHandle allows removing a registered transition callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires, including later
// in a dispatch that is already running.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.handlers
	for i := range s {
		if s[i].id == h.id {
			next := make([]transitionHandler, 0, len(s)-1)
			next = append(next, s[:i]...)
			h.reg.handlers = append(next, s[i+1:]...)
			return
		}
	}
}
