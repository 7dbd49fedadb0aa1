package view

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/sttt"
)

// drawStats prints FPS, TPS and the board state in the top-left corner.
func drawStats(screen *ebiten.Image, board *sttt.Board) {
	ebitenutil.DebugPrint(screen, statsText(ebiten.ActualFPS(), ebiten.ActualTPS(), board))
}

func statsText(fps, tps float64, board *sttt.Board) string {
	h := board.Hover()
	hover := "-"
	switch {
	case h.HasCell:
		hover = h.Cell.String()
	case h.HasBoard:
		hover = h.Board.String()
	}
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nactive: %d\nhover: %s", fps, tps, board.Active(), hover)
}
