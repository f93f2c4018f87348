package render

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// MatCanvas draws onto a GoCV Mat in BGR color order
type MatCanvas struct {
	img *gocv.Mat
}

// NewMatCanvas returns a Canvas drawing onto the given 3 channel Mat
func NewMatCanvas(img *gocv.Mat) *MatCanvas {
	return &MatCanvas{img: img}
}

// Mat returns the underlying Mat
func (m *MatCanvas) Mat() *gocv.Mat {
	return m.img
}

// Size returns the dimensions of the Mat
func (m *MatCanvas) Size() image.Point {
	return image.Pt(m.img.Cols(), m.img.Rows())
}

// Fill paints the whole Mat with the given color
func (m *MatCanvas) Fill(clr color.RGBA) {
	gocv.Rectangle(m.img, image.Rect(0, 0, m.img.Cols(), m.img.Rows()), clr, -1)
}

// FillCircle paints a solid circle
func (m *MatCanvas) FillCircle(center image.Point, radius int, clr color.RGBA) {
	gocv.Circle(m.img, center, radius, clr, -1)
}

// FillPoly paints a solid polygon
func (m *MatCanvas) FillPoly(pts []image.Point, clr color.RGBA) {

	ptsVector := gocv.NewPointsVectorFromPoints([][]image.Point{pts})
	defer ptsVector.Close()

	gocv.FillPoly(m.img, ptsVector, clr)
}
