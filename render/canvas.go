package render

import (
	"image"
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
)

// Canvas is a raster surface the pictogram primitives are drawn onto.  The
// caller owns the underlying image buffer, drawing happens in place and the
// Canvas is not retained by any render function after it returns.
type Canvas interface {
	// Size returns the width (X) and height (Y) of the canvas in pixels
	Size() image.Point
	// Fill paints the whole canvas with the given color
	Fill(clr color.RGBA)
	// FillCircle paints a solid circle
	FillCircle(center image.Point, radius int, clr color.RGBA)
	// FillPoly paints a solid convex polygon
	FillPoly(pts []image.Point, clr color.RGBA)
}

// toPoint converts a position to a pixel coordinate, truncating any fraction
func toPoint(v r2.Vec) image.Point {
	return image.Pt(int(v.X), int(v.Y))
}
