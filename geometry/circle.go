package geometry

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// epsilon is the tolerance used when testing if a point lies inside a circle
const epsilon = 1e-7

// ErrNoPoints is returned when an enclosing circle is requested for an empty
// point set
var ErrNoPoints = errors.New("no points to enclose")

// Circle is defined by its center point and radius
type Circle struct {
	Center r2.Vec
	Radius float64
}

// Contains returns true if the point lies inside or on the circle within
// the given tolerance
func (c Circle) Contains(p r2.Vec, tol float64) bool {
	return r2.Norm(r2.Sub(p, c.Center)) <= c.Radius+tol
}

// Scale returns the circle with its radius multiplied by f
func (c Circle) Scale(f float64) Circle {
	return Circle{Center: c.Center, Radius: c.Radius * f}
}

// Truncate returns the circle with its center and radius truncated to whole
// pixels for use with integer raster primitives
func (c Circle) Truncate() Circle {
	return Circle{
		Center: r2.Vec{X: math.Trunc(c.Center.X), Y: math.Trunc(c.Center.Y)},
		Radius: math.Trunc(c.Radius),
	}
}

// MinEnclosingCircle returns the smallest circle containing all the given
// points.  It uses the incremental Welzl construction without the random
// shuffle so the result is deterministic for a given point order.
func MinEnclosingCircle(pts []r2.Vec) (Circle, error) {

	if len(pts) == 0 {
		return Circle{}, ErrNoPoints
	}

	c := Circle{Center: pts[0]}

	for i := 1; i < len(pts); i++ {
		if c.Contains(pts[i], epsilon) {
			continue
		}

		// pts[i] must lie on the boundary of the circle enclosing pts[:i+1]
		c = Circle{Center: pts[i]}

		for j := 0; j < i; j++ {
			if c.Contains(pts[j], epsilon) {
				continue
			}

			// pts[i] and pts[j] both lie on the boundary
			c = circleFrom2(pts[i], pts[j])

			for k := 0; k < j; k++ {
				if !c.Contains(pts[k], epsilon) {
					c = circleFrom3(pts[i], pts[j], pts[k])
				}
			}
		}
	}

	return c, nil
}

// circleFrom2 returns the circle with a and b on opposite sides of its
// diameter
func circleFrom2(a, b r2.Vec) Circle {
	return Circle{
		Center: r2.Scale(0.5, r2.Add(a, b)),
		Radius: r2.Norm(r2.Sub(b, a)) / 2,
	}
}

// circleFrom3 returns the circumcircle of the triangle abc.  Collinear points
// have no circumcircle, so the circle spanning the furthest apart pair is
// returned instead.
func circleFrom3(a, b, c r2.Vec) Circle {

	ab := r2.Sub(b, a)
	ac := r2.Sub(c, a)
	d := 2 * r2.Cross(ab, ac)

	if math.Abs(d) < epsilon {
		best := circleFrom2(a, b)

		if alt := circleFrom2(a, c); alt.Radius > best.Radius {
			best = alt
		}

		if alt := circleFrom2(b, c); alt.Radius > best.Radius {
			best = alt
		}

		return best
	}

	abLen := r2.Norm2(ab)
	acLen := r2.Norm2(ac)

	// circumcenter relative to a
	ux := (ac.Y*abLen - ab.Y*acLen) / d
	uy := (ab.X*acLen - ac.X*abLen) / d
	u := r2.Vec{X: ux, Y: uy}

	return Circle{
		Center: r2.Add(a, u),
		Radius: r2.Norm(u),
	}
}
