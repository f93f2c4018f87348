package render

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Font defines the parameters for rendering text on an image using GoCV
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
}

// DefaultFont returns default font settings used for landmark labels
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.5,
		Color:     Green,
		Thickness: 1,
		LineType:  gocv.LineAA,
	}
}

// StatusFont returns the larger font used for status text such as the
// frame rate
func StatusFont(clr color.RGBA) Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     1.0,
		Color:     clr,
		Thickness: 2,
		LineType:  gocv.LineAA,
	}
}

// Text renders the text with its bottom left corner at the given point
func Text(img *gocv.Mat, text string, pt image.Point, font Font) {
	gocv.PutTextWithParams(img, text, pt, font.Face, font.Scale, font.Color,
		font.Thickness, font.LineType, false)
}
