package gui

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/game"
)

// Renderer draws snapshots into the open raylib window
type Renderer struct{}

// Draw renders one complete frame
func (Renderer) Draw(snap game.Snapshot) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(rl.Black)

	b := BorderRect()
	rl.DrawRectangleLinesEx(rl.NewRectangle(float32(b.X), float32(b.Y), float32(b.W), float32(b.H)), 2, rl.White)

	fillRect(SegmentRect(snap.Config, snap.Food), rl.White)
	for _, seg := range snap.Body {
		fillRect(SegmentRect(snap.Config, seg), rl.White)
	}

	hud := fmt.Sprintf(constants.HUDFormat, snap.Score, snap.Length())
	rl.DrawText(hud, constants.BorderInset, constants.BorderInset, constants.HUDFontSize, rl.White)

	if snap.Terminal {
		drawGameOver(snap)
	}
}

func fillRect(r Rect, c color.RGBA) {
	rl.DrawRectangle(r.X, r.Y, r.W, r.H, c)
}

func drawGameOver(snap game.Snapshot) {
	rl.DrawRectangle(0, 0, constants.WindowWidth, constants.WindowHeight, rl.Fade(rl.Black, constants.OverlayAlpha))

	midY := int32(constants.WindowHeight / 2)
	centered(constants.GameOverText, midY-100, constants.GameOverFontSize)
	centered(fmt.Sprintf(constants.FinalScoreFormat, snap.Score), midY, constants.HUDFontSize)
	centered(constants.InstructionsText, midY+80, constants.HUDFontSize)
}

func centered(text string, y, fontSize int32) {
	rl.DrawText(text, CenteredX(rl.MeasureText(text, fontSize)), y, fontSize, rl.White)
}
