package sttt

import "fmt"

// Z order of the generated layers, back to front.
const (
	zActiveBorder = iota
	zBoardBackground
	zBoardHover
	zCellHover
	zCell
)

// Pitch returns the distance between neighboring cell centers.
func (c *Config) Pitch() float64 {
	return c.CellSize + c.CellGap
}

// GameSize returns the side length covered by a board's cells.
func (c *Config) GameSize() float64 {
	return c.Pitch()*float64(c.N) - c.CellGap
}

// HoverSize returns the side length of a board's hit area: its cells plus
// the padding band.
func (c *Config) HoverSize() float64 {
	return c.GameSize() + 2*c.GamePadding
}

// BorderSize returns the side length of the active-board border.
func (c *Config) BorderSize() float64 {
	return c.HoverSize() + 2*c.ActiveBorderWidth
}

// BoardPitch returns the distance between neighboring board centers.
func (c *Config) BoardPitch() float64 {
	return c.BorderSize() + c.GameGap
}

// Extent returns the world-space size of the whole grid.
func (c *Config) Extent() Vec2 {
	p := c.BoardPitch()
	return Vec2{
		X: float64(c.GamesPerRow)*p - c.GameGap,
		Y: float64(c.GameRows)*p - c.GameGap,
	}
}

// BoardCenter returns the world position of board (x, y). The grid is
// centered on the origin; board row y=0 is the bottom row.
func (c *Config) BoardCenter(x, y int) Vec2 {
	p := c.BoardPitch()
	xOffset := -(float64(c.GamesPerRow)*p - p) / 2
	yOffset := -(float64(c.GameRows)*p - p) / 2
	return Vec2{
		X: float64(x)*p + xOffset,
		Y: -(float64(y)*p + yOffset),
	}
}

// CellCenter returns the world position of cell (cx, cy) of the board
// centered at board. Cell row cy=0 is the bottom row.
func (c *Config) CellCenter(board Vec2, cx, cy int) Vec2 {
	mid := float64(c.N-1) / 2
	return Vec2{
		X: board.X + (float64(cx)-mid)*c.Pitch(),
		Y: board.Y - (float64(cy)-mid)*c.Pitch(),
	}
}

// BuildRegistry lays out every board and cell with its layers and returns
// the resulting registry. Boards are created column by column, so the board
// at grid position (x, y) gets id x*GameRows + y.
func BuildRegistry(cfg Config) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	count := cfg.GamesPerRow * cfg.GameRows
	regions := make([]Region, 0, count*(1+cfg.N*cfg.N))
	cellHoverSize := cfg.CellSize + 2*cfg.CellGap

	var id uint64
	for x := 0; x < cfg.GamesPerRow; x++ {
		for y := 0; y < cfg.GameRows; y++ {
			center := cfg.BoardCenter(x, y)
			hitArea := RectCentered(center, cfg.HoverSize())
			name := fmt.Sprintf("board%d", id)

			regions = append(regions, BoardRegion(BoardRef{ID: id}, hitArea,
				withZ(NewHighlight(name+"/border", RoleGameActive, SkinNone,
					RectCentered(center, cfg.BorderSize()), cfg.ActiveBorderColor), zActiveBorder),
				withZ(NewLayer(name+"/background", RoleSquare, SkinNone,
					hitArea, cfg.BackgroundColor), zBoardBackground),
				withZ(NewHighlight(name+"/hover", RoleHover, SkinActive,
					hitArea, cfg.HoverBackgroundColor), zBoardHover),
				withZ(NewHighlight(name+"/hover-inactive", RoleHover, SkinInactive,
					hitArea, cfg.InactiveHoverBackgroundColor), zBoardHover),
			))

			for cx := 0; cx < cfg.N; cx++ {
				for cy := 0; cy < cfg.N; cy++ {
					ref := CellRef{X: uint8(cx), Y: uint8(cy), BoardID: id}
					cc := cfg.CellCenter(center, cx, cy)
					face := RectCentered(cc, cfg.CellSize)
					cname := fmt.Sprintf("%s/cell%d_%d", name, cx, cy)

					regions = append(regions, CellRegion(ref, face,
						withZ(NewHighlight(cname+"/hover", RoleHover, SkinActive,
							RectCentered(cc, cellHoverSize), cfg.CellHoverColor), zCellHover),
						withZ(NewHighlight(cname+"/hover-inactive", RoleHover, SkinInactive,
							RectCentered(cc, cellHoverSize), cfg.InactiveCellHoverColor), zCellHover),
						withZ(NewLayer(cname, RoleCell, SkinNone, face, cfg.CellColor), zCell),
					))
				}
			}
			id++
		}
	}
	return NewRegistry(cfg.GamesPerRow, cfg.GameRows, cfg.N, regions)
}

func withZ(l *Layer, z int) *Layer {
	l.ZIndex = z
	return l
}
