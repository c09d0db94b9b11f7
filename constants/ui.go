package constants

// Terminal Glyphs
const (
	GlyphHead        = '█'
	GlyphBody        = '▓'
	GlyphFood        = '●'
	GlyphHorizontal  = '─'
	GlyphVertical    = '│'
	GlyphTopLeft     = '┌'
	GlyphTopRight    = '┐'
	GlyphBottomLeft  = '└'
	GlyphBottomRight = '┘'
)

// Terminal Layout
const (
	// CellColumns is the number of terminal columns per playfield cell (keeps cells square)
	CellColumns = 2

	// HUDRows is the number of rows above the playfield border reserved for the HUD
	HUDRows = 1
)

// UI Text
const (
	HUDFormat        = "SCORE: %d  LENGTH: %d"
	GameOverText     = "*** GAME OVER ***"
	FinalScoreFormat = "FINAL SCORE: %d"
	InstructionsText = "Press SPACE to restart or ESC to quit"
	TooSmallFormat   = "Terminal too small: need %dx%d"
	WindowTitle      = "SNAKE"
)

// Window Rendering
const (
	HUDFontSize      = 20
	GameOverFontSize = 40

	// OverlayAlpha is the opacity of the game over veil
	OverlayAlpha = 0.8

	// SegmentInset shrinks drawn squares so adjacent segments stay distinct (20px cell -> 16px square)
	SegmentInset = 2
)
