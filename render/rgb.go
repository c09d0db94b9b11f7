package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB is a 24-bit color used for palette math before conversion to tcell
type RGB struct {
	R, G, B uint8
}

// Tcell converts to a true color tcell.Color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// clamp converts float to uint8 with saturation
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Scale multiplies every channel by factor
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Lerp linearly interpolates between two colors
// t=0 returns a, t=1 returns b
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: uint8(float64(a.R) + t*float64(int(b.R)-int(a.R))),
		G: uint8(float64(a.G) + t*float64(int(b.G)-int(a.G))),
		B: uint8(float64(a.B) + t*float64(int(b.B)-int(a.B))),
	}
}

// Gradient returns the color of step i of n evenly spaced steps from a to b
func Gradient(a, b RGB, i, n int) RGB {
	if n <= 1 {
		return a
	}
	return Lerp(a, b, float64(i)/float64(n-1))
}
