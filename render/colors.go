package render

import (
	"github.com/gdamore/tcell/v2"
)

// Palette
var (
	RgbSnakeHead  = RGB{50, 255, 50} // Bright Green
	RgbSnakeBody  = RGB{0, 200, 0}   // Normal Green
	RgbSnakeTail  = RGB{0, 90, 40}   // Deep Green
	RgbSnakeDead  = RGB{180, 50, 50} // Dark Red
	RgbFood       = RGB{255, 80, 80} // Normal Red
	RgbBorder     = RGB{180, 180, 180}
	RgbHUD        = RGB{255, 255, 255}
	RgbBackground = RGB{26, 27, 38} // Tokyo Night background
	RgbOverlay    = RGB{10, 10, 14}
)

// DeadDim darkens the body of a crashed snake relative to its head
const DeadDim = 0.6

// Styles derived from the palette
var (
	styleBackground = tcell.StyleDefault.Background(RgbBackground.Tcell())
	styleBorder     = styleBackground.Foreground(RgbBorder.Tcell())
	styleHead       = styleBackground.Foreground(RgbSnakeHead.Tcell())
	styleDead       = styleBackground.Foreground(RgbSnakeDead.Tcell())
	styleFood       = styleBackground.Foreground(RgbFood.Tcell())
	styleHUD        = styleBackground.Foreground(RgbHUD.Tcell()).Bold(true)
	styleOverlay    = tcell.StyleDefault.Background(RgbOverlay.Tcell()).Foreground(RgbHUD.Tcell())
)

// bodyStyle shades segment i of a body with n segments (head excluded), fading toward the tail
func bodyStyle(i, n int, dead bool) tcell.Style {
	if dead {
		return styleBackground.Foreground(Scale(RgbSnakeDead, DeadDim).Tcell())
	}
	return styleBackground.Foreground(Gradient(RgbSnakeBody, RgbSnakeTail, i, n).Tcell())
}
