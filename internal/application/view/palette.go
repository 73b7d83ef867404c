// Package view draws a session through a render.Sink.
//
// Every textured element has a primitive fallback, so the game stays
// playable with no assets at all.
package view

import "image/color"

var (
	colorBlack    = color.RGBA{0, 0, 0, 255}
	colorWhite    = color.RGBA{255, 255, 255, 255}
	colorRayWhite = color.RGBA{245, 245, 245, 255}
	colorDarkGray = color.RGBA{80, 80, 80, 255}
	colorGreen    = color.RGBA{0, 228, 48, 255}
	colorRed      = color.RGBA{230, 41, 55, 255}
	colorBlue     = color.RGBA{0, 121, 241, 255}
	colorYellow   = color.RGBA{253, 249, 0, 255}
)

// ClearColor is the color every frame starts from
var ClearColor = colorBlack
