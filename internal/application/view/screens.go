package view

import (
	"fmt"
	"image/color"

	"github.com/younwookim/spaceshooter/internal/application/render"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/domain/tuning"
)

const (
	centerX = tuning.ScreenWidth / 2
	centerY = tuning.ScreenHeight / 2
)

// Menu button layout
const (
	buttonW    = 360
	buttonH    = 54
	buttonTop  = 240
	buttonStep = 70
	buttonText = 28
	logoScale  = 0.6
	logoY      = 140
)

// CenteredText draws s horizontally centered at top y
func CenteredText(sink render.Sink, s string, y, size float64, c color.RGBA) {
	w := sink.MeasureText(s, size)
	sink.DrawText(s, centerX-w/2, y, size, c)
}

// Loading draws the title, a progress bar and the percentage.
// progress is clamped to [0, 1].
func Loading(sink render.Sink, progress float64) {
	progress = min(1, max(0, progress))

	CenteredText(sink, "Loading...", centerY-80, 40, colorRayWhite)
	sink.FillRect(entity.Rect{X: centerX - 220, Y: centerY - 10, W: 440, H: 24}, colorDarkGray)
	sink.FillRect(entity.Rect{X: centerX - 218, Y: centerY - 8, W: float64(int(436 * progress)), H: 20}, colorWhite)
	sink.DrawText(fmt.Sprintf("%d%%", int(progress*100)), centerX-18, centerY+24, 20, colorRayWhite)
}

// Menu draws the logo (or the title text) and one button per item, with
// the selected one highlighted.
func Menu(sink render.Sink, items []string, selected int) {
	if sink.HasTexture(render.TextureLogo) {
		w, h := sink.TextureSize(render.TextureLogo)
		w, h = w*logoScale, h*logoScale
		dst := entity.Rect{X: centerX - w/2, Y: logoY - h/2, W: w, H: h}
		sink.DrawTexture(render.TextureLogo, render.FullSource(sink, render.TextureLogo), dst, colorWhite)
	} else {
		CenteredText(sink, "SPACE SHOOTER", 110, 56, colorRayWhite)
	}

	buttonTex := sink.HasTexture(render.TextureButton)
	for i, item := range items {
		dst := entity.Rect{
			X: centerX - buttonW/2,
			Y: float64(buttonTop + i*buttonStep),
			W: buttonW,
			H: buttonH,
		}
		fg := colorRayWhite
		bg := colorRed
		if i == selected {
			fg = colorBlack
			bg = colorGreen
		}
		if buttonTex {
			sink.DrawTexture(render.TextureButton, render.FullSource(sink, render.TextureButton), dst, colorWhite)
		} else {
			sink.FillRect(dst, bg)
		}
		CenteredText(sink, item, dst.Y+(buttonH-buttonText)/2, buttonText, fg)
	}

	sink.DrawText("UP/DOWN to navigate • ENTER to select", centerX-240, tuning.ScreenHeight-60, 20, colorWhite)
}

// PauseOverlay draws the paused banner over the frozen world
func PauseOverlay(sink render.Sink) {
	CenteredText(sink, "PAUSED", centerY-40, 48, colorYellow)
	sink.DrawText("Press P to resume • ENTER for menu", centerX-220, centerY+24, 20, colorRayWhite)
}

// GameOver draws the final and best score with the restart hints
func GameOver(sink render.Sink, score, highScore int) {
	CenteredText(sink, "GAME OVER", 110, 64, colorRed)
	sink.DrawText(fmt.Sprintf("Score: %d", score), centerX-80, 200, 28, colorRayWhite)
	sink.DrawText(fmt.Sprintf("High Score: %d", highScore), centerX-110, 236, 28, colorYellow)
	sink.DrawText("ENTER to play again", centerX-130, 300, 22, colorWhite)
	sink.DrawText("ESC to return to menu", centerX-140, 332, 22, colorWhite)
}
