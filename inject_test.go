package sttt

import (
	"math"
	"testing"
)

func TestInjectClick(t *testing.T) {
	b := newTestBoard(t)
	p := cellCenter(t, b.Registry(), 2, 1, 7)
	b.InjectClick(p.X, p.Y)
	if b.Pending() != 2 {
		t.Fatalf("Pending() = %d, want 2", b.Pending())
	}

	// Live input is ignored while samples are queued.
	b.Update(Input{X: 10000, Y: 10000})
	if b.Active() != 10 {
		t.Errorf("Active() = %d after injected press, want 10", b.Active())
	}
	b.Update(Input{X: 10000, Y: 10000})
	if b.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", b.Pending())
	}
	if x, y := b.Pointer(); x != p.X || y != p.Y {
		t.Errorf("Pointer() = (%v, %v), want the injected position", x, y)
	}

	// Queue drained: live input is used again.
	b.Update(Input{X: 10000, Y: 10000})
	if b.Hover() != (HoverState{}) {
		t.Errorf("Hover() = %+v, want nothing", b.Hover())
	}
}

func TestInjectPressRelease(t *testing.T) {
	b := newTestBoard(t)
	p := cellCenter(t, b.Registry(), 0, 1, 7)
	q := cellCenter(t, b.Registry(), 0, 1, 4)
	b.InjectPress(p.X, p.Y)
	b.InjectPress(q.X, q.Y)
	b.InjectRelease(q.X, q.Y)
	b.InjectPress(q.X, q.Y)
	for b.Pending() > 0 {
		b.Update(Input{})
	}
	// 7 -> 4 on the first press, held through the second, 4 -> 1 after
	// the release.
	if b.Active() != 1 {
		t.Errorf("Active() = %d, want 1", b.Active())
	}
}

func TestInjectPath(t *testing.T) {
	b := newTestBoard(t)
	b.InjectPath(0, 0, 30, -60, 4)
	if b.Pending() != 4 {
		t.Fatalf("Pending() = %d, want 4", b.Pending())
	}
	want := []Vec2{{0, 0}, {10, -20}, {20, -40}, {30, -60}}
	for i, w := range want {
		b.Update(Input{DT: 1.0 / 60})
		if x, y := b.Pointer(); math.Abs(x-w.X) > 1e-9 || math.Abs(y-w.Y) > 1e-9 {
			t.Errorf("tick %d: Pointer() = (%v, %v), want (%v, %v)", i, x, y, w.X, w.Y)
		}
	}
}

func TestInjectPath_MinimumTicks(t *testing.T) {
	b := newTestBoard(t)
	b.InjectPath(0, 0, 10, 10, 0)
	if b.Pending() != 2 {
		t.Errorf("Pending() = %d, want 2", b.Pending())
	}
}

func TestInjectKeepsDT(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FadeSeconds = 1
	b, err := NewBoardFromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	p := paddingPoint(t, b.Registry(), 7)
	b.InjectMove(p.X, p.Y)
	b.Update(Input{DT: 0.5})

	l := b.Registry().mustBoard(7).mustLayer(RoleHover, SkinActive)
	if l.Alpha <= 0 {
		t.Errorf("Alpha = %v, want the fade advanced by the live DT", l.Alpha)
	}
}
