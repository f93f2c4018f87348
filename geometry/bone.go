package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Bone is a tapered limb segment between two joints.  It is drawn as a circle
// at each joint with the quadrilateral joining the tangent edges of the two
// circles.
type Bone struct {
	From       r2.Vec
	FromRadius float64
	To         r2.Vec
	ToRadius   float64
}

// NewBone returns a Bone from joint p1 with radius rp1 to joint p2 with
// radius rp2
func NewBone(p1 r2.Vec, rp1 float64, p2 r2.Vec, rp2 float64) Bone {
	return Bone{
		From:       p1,
		FromRadius: rp1,
		To:         p2,
		ToRadius:   rp2,
	}
}

// Angle returns the direction of the bone in radians
func (b Bone) Angle() float64 {
	return math.Atan2(b.To.Y-b.From.Y, b.To.X-b.From.X)
}

// Quad returns the vertices of the quadrilateral joining the edges of the two
// joint circles, ordered [from edge A, from edge B, to edge B, to edge A] so
// the polygon winds around its border rather than crossing itself.
// Edge A is offset a quarter turn from the bone direction and edge B three
// quarter turns.
func (b Bone) Quad() [4]r2.Vec {

	theta := b.Angle()

	edgeA := r2.Vec{X: math.Cos(theta + math.Pi/2), Y: math.Sin(theta + math.Pi/2)}
	edgeB := r2.Vec{X: math.Cos(theta + 3*math.Pi/2), Y: math.Sin(theta + 3*math.Pi/2)}

	return [4]r2.Vec{
		r2.Add(b.From, r2.Scale(b.FromRadius, edgeA)),
		r2.Add(b.From, r2.Scale(b.FromRadius, edgeB)),
		r2.Add(b.To, r2.Scale(b.ToRadius, edgeB)),
		r2.Add(b.To, r2.Scale(b.ToRadius, edgeA)),
	}
}

// Outline returns the bone shape as a set of polygons: the two joint circles
// approximated with the given number of segments plus the joining quad
func (b Bone) Outline(segments int) [][]r2.Vec {

	q := b.Quad()

	return [][]r2.Vec{
		CirclePolygon(Circle{Center: b.From, Radius: b.FromRadius}, segments),
		CirclePolygon(Circle{Center: b.To, Radius: b.ToRadius}, segments),
		q[:],
	}
}
