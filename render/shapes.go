package render

import (
	"image"
	"image/color"

	"github.com/swdee/go-pictogram/geometry"
	"gonum.org/v1/gonum/spatial/r2"
)

// Circle paints the solid circle with its center and radius truncated to
// whole pixels
func Circle(c Canvas, circle geometry.Circle, clr color.RGBA) {
	c.FillCircle(toPoint(circle.Center), int(circle.Radius), clr)
}

// Bone paints a tapered limb segment as a solid circle at each joint plus the
// quadrilateral joining their edges, all in a single flat color
func Bone(c Canvas, b geometry.Bone, clr color.RGBA) {

	c.FillCircle(toPoint(b.From), int(b.FromRadius), clr)
	c.FillCircle(toPoint(b.To), int(b.ToRadius), clr)

	q := b.Quad()

	// edge offsets are truncated separately from the joint position so both
	// sides of the bone round towards its axis
	pts := []image.Point{
		offsetPoint(b.From, q[0]),
		offsetPoint(b.From, q[1]),
		offsetPoint(b.To, q[2]),
		offsetPoint(b.To, q[3]),
	}

	c.FillPoly(pts, clr)
}

// offsetPoint returns the pixel coordinate of vertex v as the whole pixel
// anchor plus the truncated offset from it
func offsetPoint(anchor, v r2.Vec) image.Point {
	return toPoint(anchor).Add(toPoint(r2.Sub(v, anchor)))
}
