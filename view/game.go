// Package view draws a sttt.Board with Ebitengine and feeds it mouse input.
package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/sttt"
)

const defaultMargin = 40

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string
	// Width and Height default to the grid extent plus a margin.
	Width, Height int
	ShowFPS       bool
	// ScreenshotDir receives PNGs queued with Game.Screenshot (F12).
	ScreenshotDir string
	ClearColor    sttt.Color
}

// Game implements ebiten.Game around a board. World space is centered on
// the window.
type Game struct {
	board  *sttt.Board
	cfg    RunConfig
	width  int
	height int

	screenshotQueue []string
}

// NewGame creates a Game for board. Zero Width/Height are derived from
// extent, the world-space size of the grid.
func NewGame(board *sttt.Board, extent sttt.Vec2, cfg RunConfig) *Game {
	if cfg.Width <= 0 {
		cfg.Width = int(extent.X) + 2*defaultMargin
	}
	if cfg.Height <= 0 {
		cfg.Height = int(extent.Y) + 2*defaultMargin
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	return &Game{board: board, cfg: cfg, width: cfg.Width, height: cfg.Height}
}

// Run opens a window and runs the game loop until the window is closed.
func Run(board *sttt.Board, extent sttt.Vec2, cfg RunConfig) error {
	g := NewGame(board, extent, cfg)
	ebiten.SetWindowSize(g.width, g.height)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	return ebiten.RunGame(g)
}

// Update samples the mouse and advances the board by one tick.
// R resets the board, F12 queues a screenshot.
func (g *Game) Update() error {
	mx, my := ebiten.CursorPosition()
	wx, wy := ScreenToWorld(float64(mx), float64(my), g.width, g.height)

	in := sttt.Input{X: wx, Y: wy, DT: float32(1.0 / float64(ebiten.TPS()))}
	in.Pressed, in.Button = readButtons()
	in.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	g.board.Update(in)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.board.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.Screenshot("board")
	}
	return nil
}

// Draw fills the background and draws every visible layer back to front.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(g.cfg.ClearColor, 1))
	for _, l := range g.board.Registry().Layers() {
		if !l.Visible {
			continue
		}
		x, y, w, h := g.layerRect(l)
		vector.FillRect(screen, x, y, w, h, toRGBA(l.Color, l.Alpha), false)
	}
	if g.cfg.ShowFPS {
		drawStats(screen, g.board)
	}
	g.flushScreenshots(screen)
}

// layerRect returns the screen rectangle l covers.
func (g *Game) layerRect(l *sttt.Layer) (x, y, w, h float32) {
	sx, sy := WorldToScreen(l.Bounds.X, l.Bounds.Y, g.width, g.height)
	return float32(sx), float32(sy), float32(l.Bounds.Width), float32(l.Bounds.Height)
}

// Layout keeps a fixed logical screen.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// ScreenToWorld converts screen pixels to world units for a w x h screen
// whose center is the world origin.
func ScreenToWorld(sx, sy float64, w, h int) (float64, float64) {
	return sx - float64(w)/2, sy - float64(h)/2
}

// WorldToScreen is the inverse of ScreenToWorld.
func WorldToScreen(wx, wy float64, w, h int) (float64, float64) {
	return wx + float64(w)/2, wy + float64(h)/2
}

// readButtons reports whether any mouse button is down and which one, with
// left taking priority over right over middle.
func readButtons() (bool, sttt.MouseButton) {
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		return true, sttt.MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		return true, sttt.MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		return true, sttt.MouseButtonMiddle
	default:
		return false, sttt.MouseButtonLeft
	}
}

// toRGBA premultiplies c by its own alpha and the extra alpha factor.
func toRGBA(c sttt.Color, alpha float64) color.RGBA {
	a := clamp01(c.A * alpha)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
