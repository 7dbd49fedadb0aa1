package sttt

import "fmt"

// Input is one tick's pointer sample in world coordinates.
type Input struct {
	X, Y float64
	// Pressed is the level of Button this tick. A press edge is derived from
	// it: pressed now, released on the previous tick.
	Pressed bool
	Button  MouseButton
	// JustPressed forces a press edge for callers that sample edges
	// themselves.
	JustPressed bool
	// DT is the tick duration in seconds, used to advance fades.
	DT float32
}

// Board is the top-level object that owns the registry, the hover and
// active-board state, and the layer visibility they drive. Call Update once
// per tick.
type Board struct {
	reg     *Registry
	hover   HoverTracker
	nav     *Navigator
	applier *Applier

	handlers    handlerRegistry
	sink        EventSink
	debug       bool
	transitions []Transition
	tick        uint64

	// pointer state
	down  bool
	lastX float64
	lastY float64

	injectQueue []Input
	testRunner  *TestRunner
}

// NewBoard creates a board over reg with the structural midpoint board
// active and its border shown.
func NewBoard(reg *Registry) *Board {
	b := &Board{reg: reg}
	b.nav = NewNavigator(reg)
	b.applier = NewApplier(reg, b.nav.Active)
	b.applier.Apply(Transition{Kind: BoardActivated, Board: BoardRef{ID: b.nav.Active()}})
	return b
}

// NewBoardFromConfig lays out cfg and creates a board over the result.
func NewBoardFromConfig(cfg Config) (*Board, error) {
	reg, err := BuildRegistry(cfg)
	if err != nil {
		return nil, err
	}
	b := NewBoard(reg)
	b.applier.SetFade(cfg.FadeSeconds)
	b.SetDebugMode(cfg.Debug)
	return b, nil
}

// Registry returns the board's region registry.
func (b *Board) Registry() *Registry {
	return b.reg
}

// Active returns the active board id.
func (b *Board) Active() uint64 {
	return b.nav.Active()
}

// Hover returns the hover state as of the last tick.
func (b *Board) Hover() HoverState {
	return b.hover.State()
}

// Applier returns the visual-state applier.
func (b *Board) Applier() *Applier {
	return b.applier
}

// Tick returns the number of completed Update calls.
func (b *Board) Tick() uint64 {
	return b.tick
}

// Pointer returns the world position of the last pointer sample.
func (b *Board) Pointer() (x, y float64) {
	return b.lastX, b.lastY
}

// Transitions returns the transitions emitted by the last Update, in
// emission order. The slice is reused by the next Update.
func (b *Board) Transitions() []Transition {
	return b.transitions
}

// SetEventSink sets the optional ECS bridge.
func (b *Board) SetEventSink(sink EventSink) {
	b.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, every
// transition and navigation step is printed to stderr and the hover
// invariants are checked each tick.
func (b *Board) SetDebugMode(enabled bool) {
	b.debug = enabled
}

// OnTransition registers a callback for one transition kind.
func (b *Board) OnTransition(kind TransitionKind, fn func(Transition)) CallbackHandle {
	return b.handlers.add(kind, false, fn)
}

// OnAnyTransition registers a callback for every transition.
func (b *Board) OnAnyTransition(fn func(Transition)) CallbackHandle {
	return b.handlers.add(0, true, fn)
}

// Update runs one tick: hover tracking first, then click navigation. All
// transitions of the tick are applied and dispatched before it returns.
func (b *Board) Update(in Input) {
	if b.testRunner != nil {
		b.testRunner.step(b)
	}
	if injected, ok := b.popInjected(); ok {
		injected.DT = in.DT
		in = injected
	}

	b.transitions = b.transitions[:0]
	b.tick++

	b.hover.Track(HitTest(b.reg, in.X, in.Y), b.emit)
	if b.debug {
		debugCheckHover(b.hover.State())
	}

	edge := in.JustPressed || (in.Pressed && !b.down)
	if edge && in.Button == MouseButtonLeft {
		prev := b.nav.Active()
		if b.nav.Click(b.hover.State(), b.emit) && b.debug {
			b.debugNavigate(prev, b.hover.State().Cell)
		}
	}
	b.down = in.Pressed || in.JustPressed
	b.lastX, b.lastY = in.X, in.Y

	b.applier.Update(in.DT)
}

// SetActive makes id the active board, emitting the deactivate/activate
// pair when it changes.
func (b *Board) SetActive(id uint64) error {
	if _, ok := b.reg.Board(id); !ok {
		return fmt.Errorf("%w: board %d", ErrUnknownBoard, id)
	}
	b.transitions = b.transitions[:0]
	b.nav.set(id, b.emit)
	return nil
}

// Reset clears hover and restores the structural midpoint as active board,
// as on a fresh start.
func (b *Board) Reset() {
	b.transitions = b.transitions[:0]
	b.hover.Clear(b.emit)
	b.nav.set(b.reg.MidpointBoard(), b.emit)
	b.applier.Clear()
	b.down = false
	b.injectQueue = b.injectQueue[:0]
}

// emit applies t to the layers, then hands it to callbacks and the sink.
func (b *Board) emit(t Transition) {
	b.transitions = append(b.transitions, t)
	if b.debug {
		b.debugTransition(t)
	}
	b.applier.Apply(t)
	b.handlers.dispatch(t)
	if b.sink != nil {
		b.sink.EmitTransition(t)
	}
}
