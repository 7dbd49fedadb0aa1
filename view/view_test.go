package view

import (
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/sttt"
)

func newTestBoard(t *testing.T) *sttt.Board {
	t.Helper()
	b, err := sttt.NewBoardFromConfig(sttt.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestScreenWorldRoundTrip(t *testing.T) {
	wx, wy := ScreenToWorld(400, 300, 800, 600)
	if wx != 0 || wy != 0 {
		t.Errorf("screen center -> (%v, %v), want origin", wx, wy)
	}
	sx, sy := WorldToScreen(-25, 10, 800, 600)
	if sx != 375 || sy != 310 {
		t.Errorf("WorldToScreen = (%v, %v), want (375, 310)", sx, sy)
	}
	bx, by := ScreenToWorld(sx, sy, 800, 600)
	if bx != -25 || by != 10 {
		t.Errorf("round trip = (%v, %v), want (-25, 10)", bx, by)
	}
}

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name  string
		c     sttt.Color
		alpha float64
		want  color.RGBA
	}{
		{"opaque white", sttt.ColorWhite, 1, color.RGBA{255, 255, 255, 255}},
		{"half faded", sttt.ColorWhite, 0.5, color.RGBA{128, 128, 128, 128}},
		{"transparent", sttt.Color{R: 1, A: 1}, 0, color.RGBA{}},
		{"clamped", sttt.Color{R: 2, G: -1, B: 0, A: 1}, 1, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toRGBA(tt.c, tt.alpha); got != tt.want {
				t.Errorf("toRGBA = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewGame_DefaultSize(t *testing.T) {
	cfg := sttt.DefaultConfig()
	g := NewGame(newTestBoard(t), cfg.Extent(), RunConfig{})
	ext := cfg.Extent()
	if g.width != int(ext.X)+2*defaultMargin || g.height != int(ext.Y)+2*defaultMargin {
		t.Errorf("size = %dx%d, want extent plus margin", g.width, g.height)
	}
	if w, h := g.Layout(10, 10); w != g.width || h != g.height {
		t.Errorf("Layout = %dx%d, want fixed %dx%d", w, h, g.width, g.height)
	}
	if g.cfg.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", g.cfg.ScreenshotDir, "screenshots")
	}
}

func TestBoardFitsWindow(t *testing.T) {
	cfg := sttt.DefaultConfig()
	b := newTestBoard(t)
	g := NewGame(b, cfg.Extent(), RunConfig{})
	for _, l := range b.Registry().Layers() {
		x, y, w, h := g.layerRect(l)
		if x < 0 || y < 0 || x+w > float32(g.width) || y+h > float32(g.height) {
			t.Fatalf("layer %s at (%v, %v) falls outside %dx%d window", l.Name, x, y, g.width, g.height)
		}
	}
}

func TestLayerRect(t *testing.T) {
	g := NewGame(newTestBoard(t), sttt.Vec2{}, RunConfig{Width: 200, Height: 100})
	l := sttt.NewLayer("l", sttt.RoleCell, sttt.SkinNone, sttt.Rect{X: -10, Y: 5, Width: 20, Height: 8}, sttt.ColorWhite)
	x, y, w, h := g.layerRect(l)
	if x != 90 || y != 55 || w != 20 || h != 8 {
		t.Errorf("layerRect = (%v, %v, %v, %v), want (90, 55, 20, 8)", x, y, w, h)
	}
}

func TestStatsText(t *testing.T) {
	b := newTestBoard(t)
	cell, _ := b.Registry().Cell(sttt.CellRef{X: 0, Y: 0, BoardID: 7})
	p := cell.Bounds.Center()
	b.Update(sttt.Input{X: p.X, Y: p.Y})

	got := statsText(60, 60, b)
	if !strings.Contains(got, "active: 7") {
		t.Errorf("stats missing active board: %q", got)
	}
	if !strings.Contains(got, "hover: (0, 0)@7") {
		t.Errorf("stats missing hovered cell: %q", got)
	}
}

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-click", "after-click"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	img := unpremultiply([]byte{64, 32, 0, 128, 10, 20, 30, 255}, 2, 1)
	if got := img.Pix[:4]; got[0] != 127 || got[1] != 63 || got[2] != 0 || got[3] != 128 {
		t.Errorf("half-alpha pixel = %v, want [127 63 0 128]", got)
	}
	if got := img.Pix[4:8]; got[0] != 10 || got[1] != 20 || got[2] != 30 || got[3] != 255 {
		t.Errorf("opaque pixel = %v, want unchanged", got)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := writePNG(path, unpremultiply(make([]byte, 16), 2, 2)); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	if err := writePNG(filepath.Join(t.TempDir(), "missing", "out.png"), unpremultiply(nil, 1, 1)); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	g := NewGame(newTestBoard(t), sttt.Vec2{X: 100, Y: 100}, RunConfig{})
	g.Screenshot("a")
	g.Screenshot("b")
	if len(g.screenshotQueue) != 2 || g.screenshotQueue[0] != "a" || g.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", g.screenshotQueue)
	}
}
