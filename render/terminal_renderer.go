package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/game"
)

// TerminalRenderer draws game snapshots on a tcell screen.
// Each playfield cell spans constants.CellColumns terminal columns so cells look square.
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Layout is the terminal placement of the playfield
type Layout struct {
	// Left and Top are the border's top-left corner; the HUD sits one row above it
	Left, Top     int
	Width, Height int // Including the border
}

// LayoutFor centers the playfield of cfg on a screen of the given size.
// ok is false when the screen is too small to hold the border and HUD.
func LayoutFor(cfg game.Config, screenW, screenH int) (l Layout, ok bool) {
	l.Width = cfg.Cols*constants.CellColumns + 2
	l.Height = cfg.Rows + 2
	totalH := l.Height + constants.HUDRows

	if screenW < l.Width || screenH < totalH {
		return l, false
	}

	l.Left = (screenW - l.Width) / 2
	l.Top = (screenH-totalH)/2 + constants.HUDRows
	return l, true
}

// Cell returns the screen position of the first column of playfield cell p
func (l Layout) Cell(p game.Point) (x, y int) {
	return l.Left + 1 + p.X*constants.CellColumns, l.Top + 1 + p.Y
}

// Draw renders one frame and shows it
func (r *TerminalRenderer) Draw(snap game.Snapshot) {
	r.screen.SetStyle(styleBackground)
	r.screen.Clear()

	w, h := r.screen.Size()
	layout, ok := LayoutFor(snap.Config, w, h)
	if !ok {
		r.drawText(0, 0, fmt.Sprintf(constants.TooSmallFormat, layout.Width, layout.Height+constants.HUDRows), styleHUD)
		r.screen.Show()
		return
	}

	r.drawBorder(layout)
	r.drawCell(layout, snap.Config, snap.Food, constants.GlyphFood, styleFood)
	r.drawSnake(layout, snap)
	r.drawText(layout.Left, layout.Top-constants.HUDRows, fmt.Sprintf(constants.HUDFormat, snap.Score, snap.Length()), styleHUD)

	if snap.Terminal {
		r.drawGameOver(layout, snap)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawBorder(l Layout) {
	right := l.Left + l.Width - 1
	bottom := l.Top + l.Height - 1

	for x := l.Left + 1; x < right; x++ {
		r.screen.SetContent(x, l.Top, constants.GlyphHorizontal, nil, styleBorder)
		r.screen.SetContent(x, bottom, constants.GlyphHorizontal, nil, styleBorder)
	}
	for y := l.Top + 1; y < bottom; y++ {
		r.screen.SetContent(l.Left, y, constants.GlyphVertical, nil, styleBorder)
		r.screen.SetContent(right, y, constants.GlyphVertical, nil, styleBorder)
	}
	r.screen.SetContent(l.Left, l.Top, constants.GlyphTopLeft, nil, styleBorder)
	r.screen.SetContent(right, l.Top, constants.GlyphTopRight, nil, styleBorder)
	r.screen.SetContent(l.Left, bottom, constants.GlyphBottomLeft, nil, styleBorder)
	r.screen.SetContent(right, bottom, constants.GlyphBottomRight, nil, styleBorder)
}

// drawSnake draws tail first so the head wins on overlap; a wall-crashed head is outside and skipped
func (r *TerminalRenderer) drawSnake(l Layout, snap game.Snapshot) {
	head := styleHead
	if snap.Terminal {
		head = styleDead
	}

	segments := len(snap.Body) - 1
	for i := segments; i >= 1; i-- {
		r.drawCell(l, snap.Config, snap.Body[i], constants.GlyphBody, bodyStyle(i-1, segments, snap.Terminal))
	}
	if len(snap.Body) > 0 {
		r.drawCell(l, snap.Config, snap.Body[0], constants.GlyphHead, head)
	}
}

func (r *TerminalRenderer) drawCell(l Layout, cfg game.Config, p game.Point, glyph rune, style tcell.Style) {
	if !cfg.Contains(p) {
		return
	}

	x, y := l.Cell(p)
	for dx := 0; dx < constants.CellColumns; dx++ {
		ch := glyph
		// Round glyphs like food read better as a single centered mark
		if glyph == constants.GlyphFood && dx > 0 {
			ch = ' '
		}
		r.screen.SetContent(x+dx, y, ch, nil, style)
	}
}

func (r *TerminalRenderer) drawGameOver(l Layout, snap game.Snapshot) {
	lines := []string{
		constants.GameOverText,
		"",
		fmt.Sprintf(constants.FinalScoreFormat, snap.Score),
		"",
		constants.InstructionsText,
	}

	boxW := 0
	for _, line := range lines {
		boxW = max(boxW, len(line))
	}
	boxW = min(boxW+4, l.Width-2)
	boxH := len(lines) + 2

	boxX := l.Left + (l.Width-boxW)/2
	boxY := l.Top + (l.Height-boxH)/2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			r.screen.SetContent(x, y, ' ', nil, styleOverlay)
		}
	}

	for i, line := range lines {
		x := l.Left + (l.Width-len(line))/2
		r.drawText(x, boxY+1+i, line, styleOverlay.Bold(i == 0))
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
