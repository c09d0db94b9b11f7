package gui

import (
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/game"
)

// Rect is an integer pixel rectangle
type Rect struct {
	X, Y, W, H int32
}

// SegmentRect returns the square drawn for cell p, centred on the cell's pixel position
func SegmentRect(cfg game.Config, p game.Point) Rect {
	cx, cy := cfg.Pixel(p)
	size := cfg.CellSize - 2*constants.SegmentInset
	return Rect{
		X: int32(cx - size/2),
		Y: int32(cy - size/2),
		W: int32(size),
		H: int32(size),
	}
}

// BorderRect returns the playfield outline, inset from the window edges
func BorderRect() Rect {
	return Rect{
		X: constants.BorderInset,
		Y: constants.BorderInset,
		W: constants.WindowWidth - 2*constants.BorderInset,
		H: constants.WindowHeight - 2*constants.BorderInset,
	}
}

// CenteredX returns the left edge for text of the given pixel width centred in the window
func CenteredX(textWidth int32) int32 {
	return constants.WindowWidth/2 - textWidth/2
}
