// Package termview renders a sttt.Board as text for terminals and logs.
package termview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/sttt"
)

// Glyphs used for cells.
const (
	glyphCell    = "·"
	glyphHovered = "◆"
)

// Styles holds the lipgloss styles for each board state.
type Styles struct {
	Board        lipgloss.Style
	ActiveBoard  lipgloss.Style
	HoveredBoard lipgloss.Style
	Cell         lipgloss.Style
	HoveredCell  lipgloss.Style
}

// DefaultStyles returns rounded boxes with the active board in pink and a
// hovered board in cyan.
func DefaultStyles() Styles {
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return Styles{
		Board:        box.BorderForeground(lipgloss.Color("240")),
		ActiveBoard:  box.BorderForeground(lipgloss.Color("212")).Border(lipgloss.ThickBorder()),
		HoveredBoard: box.BorderForeground(lipgloss.Color("45")),
		Cell:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		HoveredCell:  lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true),
	}
}

// Render draws every board of b in its grid position, top row first. The
// active board gets the active style even while hovered.
func Render(b *sttt.Board, st Styles) string {
	reg := b.Registry()
	rows := reg.GameRows()
	hover := b.Hover()

	lines := make([]string, 0, rows)
	for y := rows - 1; y >= 0; y-- {
		boxes := make([]string, 0, reg.GamesPerRow())
		for x := 0; x < reg.GamesPerRow(); x++ {
			id := uint64(x*rows + y)
			boxes = append(boxes, renderBoard(id, reg.N(), b.Active(), hover, st))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderBoard(id uint64, n int, active uint64, hover sttt.HoverState, st Styles) string {
	var sb strings.Builder
	for cy := n - 1; cy >= 0; cy-- {
		for cx := 0; cx < n; cx++ {
			if cx > 0 {
				sb.WriteByte(' ')
			}
			ref := sttt.CellRef{X: uint8(cx), Y: uint8(cy), BoardID: id}
			if hover.HasCell && hover.Cell == ref {
				sb.WriteString(st.HoveredCell.Render(glyphHovered))
			} else {
				sb.WriteString(st.Cell.Render(glyphCell))
			}
		}
		if cy > 0 {
			sb.WriteByte('\n')
		}
	}

	style := st.Board
	switch {
	case id == active:
		style = st.ActiveBoard
	case hover.HasBoard && hover.Board.ID == id:
		style = st.HoveredBoard
	}
	return style.Render(sb.String())
}
