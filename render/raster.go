package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// kappa is the control point distance for approximating a quarter circle
// with a cubic bezier curve
const kappa = 0.5522847498

// ImageCanvas draws onto an RGBA image using an anti-aliasing pure Go
// rasterizer, for use where OpenCV is not available
type ImageCanvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// NewImageCanvas returns a Canvas drawing onto the given image
func NewImageCanvas(img *image.RGBA) *ImageCanvas {
	size := img.Bounds().Size()

	return &ImageCanvas{
		img: img,
		z:   vector.NewRasterizer(size.X, size.Y),
	}
}

// Image returns the underlying image
func (c *ImageCanvas) Image() *image.RGBA {
	return c.img
}

// Size returns the dimensions of the image
func (c *ImageCanvas) Size() image.Point {
	return c.img.Bounds().Size()
}

// Fill paints the whole image with the given color
func (c *ImageCanvas) Fill(clr color.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}

// FillCircle paints a solid circle.  The radius is extended by half a pixel
// so the integer radius covers the same pixels as the OpenCV primitive and a
// zero radius still marks the center pixel.
func (c *ImageCanvas) FillCircle(center image.Point, radius int, clr color.RGBA) {

	c.reset()

	// pixel centers sit at the half coordinate in the rasterizer
	cx := float32(center.X) + 0.5
	cy := float32(center.Y) + 0.5
	r := float32(radius) + 0.5
	k := r * kappa

	c.z.MoveTo(cx+r, cy)
	c.z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	c.z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	c.z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	c.z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	c.z.ClosePath()

	c.draw(clr)
}

// FillPoly paints a solid polygon
func (c *ImageCanvas) FillPoly(pts []image.Point, clr color.RGBA) {

	if len(pts) < 3 {
		return
	}

	c.reset()

	c.z.MoveTo(float32(pts[0].X)+0.5, float32(pts[0].Y)+0.5)

	for _, pt := range pts[1:] {
		c.z.LineTo(float32(pt.X)+0.5, float32(pt.Y)+0.5)
	}

	c.z.ClosePath()

	c.draw(clr)
}

// reset clears the rasterizer for the next shape
func (c *ImageCanvas) reset() {
	size := c.img.Bounds().Size()
	c.z.Reset(size.X, size.Y)
	c.z.DrawOp = draw.Over
}

// draw composites the accumulated shape onto the image in the given color
func (c *ImageCanvas) draw(clr color.RGBA) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(clr), image.Point{})
}
