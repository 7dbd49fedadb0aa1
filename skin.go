package sttt

import "github.com/tanema/gween/ease"

// Applier turns transitions into layer visibility. Hover skins are chosen by
// comparing the region's board with the active board at the moment the
// transition is applied.
type Applier struct {
	reg    *Registry
	active func() uint64

	// shown records the hover layer made visible for each region so an exit
	// hides exactly what the matching enter revealed.
	shown map[*Region]*Layer

	fadeSeconds float32
	fades       []*TweenGroup
}

// NewApplier creates an applier reading the active board through active.
func NewApplier(reg *Registry, active func() uint64) *Applier {
	return &Applier{
		reg:    reg,
		active: active,
		shown:  make(map[*Region]*Layer),
	}
}

// SetFade sets the fade-in duration for revealed layers. Zero disables
// fading.
func (a *Applier) SetFade(seconds float32) {
	if seconds < 0 {
		seconds = 0
	}
	a.fadeSeconds = seconds
}

// SkinFor returns the hover skin for regions on the given board.
func (a *Applier) SkinFor(boardID uint64) Skin {
	if boardID == a.active() {
		return SkinActive
	}
	return SkinInactive
}

// Apply toggles the one layer t concerns. Activation changes additionally
// re-skin any hover layer currently shown on that board.
func (a *Applier) Apply(t Transition) {
	switch t.Kind {
	case CellEntered:
		a.enter(a.reg.mustCell(t.Cell))
	case CellExited:
		a.exit(a.reg.mustCell(t.Cell))
	case BoardEntered:
		a.enter(a.reg.mustBoard(t.Board.ID))
	case BoardExited:
		a.exit(a.reg.mustBoard(t.Board.ID))
	case BoardActivated:
		a.show(a.reg.mustBoard(t.Board.ID).mustLayer(RoleGameActive, SkinNone))
		a.reskin(t.Board.ID)
	case BoardDeactivated:
		a.reg.mustBoard(t.Board.ID).mustLayer(RoleGameActive, SkinNone).Visible = false
		a.reskin(t.Board.ID)
	}
}

// Shown returns the hover layer currently revealed for r, if any.
func (a *Applier) Shown(r *Region) *Layer {
	return a.shown[r]
}

func (a *Applier) enter(r *Region) {
	l := r.mustLayer(RoleHover, a.SkinFor(r.BoardID()))
	if prev := a.shown[r]; prev != nil && prev != l {
		prev.Visible = false
	}
	a.shown[r] = l
	a.show(l)
}

func (a *Applier) exit(r *Region) {
	l := a.shown[r]
	if l == nil {
		l = r.mustLayer(RoleHover, a.SkinFor(r.BoardID()))
	}
	l.Visible = false
	delete(a.shown, r)
}

// reskin swaps the visible hover variant of every shown region on boardID
// to the one matching the current active board.
func (a *Applier) reskin(boardID uint64) {
	want := a.SkinFor(boardID)
	for r, l := range a.shown {
		if r.BoardID() != boardID || l.Skin == want {
			continue
		}
		next := r.mustLayer(RoleHover, want)
		l.Visible = false
		a.shown[r] = next
		a.show(next)
	}
}

func (a *Applier) show(l *Layer) {
	l.Visible = true
	if l.fade != nil {
		l.fade.Done = true
	}
	if a.fadeSeconds <= 0 {
		l.Alpha = 1
		l.fade = nil
		return
	}
	l.fade = TweenAlpha(l, 0, 1, a.fadeSeconds, ease.OutQuad)
	a.fades = append(a.fades, l.fade)
}

// Update advances running fades by dt seconds and drops finished ones.
func (a *Applier) Update(dt float32) {
	if len(a.fades) == 0 {
		return
	}
	live := a.fades[:0]
	for _, g := range a.fades {
		g.Update(dt)
		if g.Done {
			if !g.target.Visible {
				g.target.Alpha = 1
			}
			if g.target.fade == g {
				g.target.fade = nil
			}
			continue
		}
		live = append(live, g)
	}
	for i := len(live); i < len(a.fades); i++ {
		a.fades[i] = nil
	}
	a.fades = live
}

// Clear hides every hover layer the applier revealed.
func (a *Applier) Clear() {
	for r, l := range a.shown {
		l.Visible = false
		delete(a.shown, r)
	}
}
