package geometry

import (
	"math"

	clipper "github.com/ctessum/go.clipper"
	"gonum.org/v1/gonum/spatial/r2"
)

// clipperScale is the fixed point scale used when converting polygon
// coordinates to clipper integer points
const clipperScale = 1000

// CirclePolygon approximates the circle as a regular polygon with the given
// number of segments
func CirclePolygon(c Circle, segments int) []r2.Vec {

	if segments < 3 {
		segments = 3
	}

	poly := make([]r2.Vec, segments)

	for i := 0; i < segments; i++ {
		rad := 2 * math.Pi * float64(i) / float64(segments)
		poly[i] = r2.Add(c.Center, r2.Scale(c.Radius, r2.Vec{X: math.Cos(rad), Y: math.Sin(rad)}))
	}

	return poly
}

// SegmentsIntersect returns true if line segment a1-a2 touches or crosses
// line segment b1-b2
func SegmentsIntersect(a1, a2, b1, b2 r2.Vec) bool {

	d1 := direction(b1, b2, a1)
	d2 := direction(b1, b2, a2)
	d3 := direction(a1, a2, b1)
	d4 := direction(a1, a2, b2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// collinear end points lying on the other segment
	switch {
	case d1 == 0 && onSegment(b1, b2, a1):
		return true
	case d2 == 0 && onSegment(b1, b2, a2):
		return true
	case d3 == 0 && onSegment(a1, a2, b1):
		return true
	case d4 == 0 && onSegment(a1, a2, b2):
		return true
	}

	return false
}

// direction returns the cross product sign of p relative to the line a-b
func direction(a, b, p r2.Vec) float64 {
	return r2.Cross(r2.Sub(p, a), r2.Sub(b, a))
}

// onSegment returns true if collinear point p lies within the bounds of a-b
func onSegment(a, b, p r2.Vec) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// IsSimple returns true if the closed polygon does not cross itself, that is
// no pair of non-adjacent edges intersect
func IsSimple(poly []r2.Vec) bool {

	n := len(poly)

	if n < 4 {
		return true
	}

	for i := 0; i < n; i++ {
		a1, a2 := poly[i], poly[(i+1)%n]

		for j := i + 2; j < n; j++ {
			// first and last edges share a vertex
			if i == 0 && j == n-1 {
				continue
			}

			b1, b2 := poly[j], poly[(j+1)%n]

			if SegmentsIntersect(a1, a2, b1, b2) {
				return false
			}
		}
	}

	return true
}

// toPath converts the polygon to a clipper path
func toPath(poly []r2.Vec) clipper.Path {

	var path clipper.Path

	for _, pt := range poly {
		path = append(path, &clipper.IntPoint{
			X: clipper.CInt(math.Round(pt.X * clipperScale)),
			Y: clipper.CInt(math.Round(pt.Y * clipperScale)),
		})
	}

	return path
}

// Orientation returns the winding direction of the polygon, true for a
// positive signed area
func Orientation(poly []r2.Vec) bool {
	return clipper.Orientation(toPath(poly))
}

// Area returns the absolute area of the simple polygon
func Area(poly []r2.Vec) float64 {
	return math.Abs(clipper.Area(toPath(poly))) / (clipperScale * clipperScale)
}

// UnionArea returns the area covered by the union of all the polygons, so
// overlapping regions are only counted once
func UnionArea(polys [][]r2.Vec) float64 {

	var paths clipper.Paths

	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}

		path := toPath(poly)

		// non-zero filling needs all paths to wind the same way so overlaps
		// add up instead of cancelling out
		if !clipper.Orientation(path) {
			path = reversePath(path)
		}

		paths = append(paths, path)
	}

	if len(paths) == 0 {
		return 0
	}

	c := clipper.NewClipper(0)
	c.AddPaths(paths, clipper.PtSubject, true)

	solution, ok := c.Execute1(clipper.CtUnion, clipper.PftNonZero, clipper.PftNonZero)

	if !ok {
		return 0
	}

	total := 0.0

	for _, path := range solution {
		total += clipper.Area(path)
	}

	return math.Abs(total) / (clipperScale * clipperScale)
}

// reversePath returns the path with its points in reverse order
func reversePath(path clipper.Path) clipper.Path {

	rev := make(clipper.Path, len(path))

	for i, pt := range path {
		rev[len(path)-1-i] = pt
	}

	return rev
}
