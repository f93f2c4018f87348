package render

import "image/color"

var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Green = color.RGBA{R: 0, G: 255, B: 0, A: 255}

	// Ink is the default pictogram foreground color
	Ink = color.RGBA{R: 100, G: 33, B: 3, A: 255}
	// Paper is the default pictogram background color
	Paper = White
)
