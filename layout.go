package pictogram

import (
	"fmt"

	"github.com/swdee/go-pictogram/geometry"
	"github.com/swdee/go-pictogram/landmark"
	"gonum.org/v1/gonum/spatial/r2"
)

// outlineSegments is the number of edges used to approximate joint circles
// when calculating the footprint area
const outlineSegments = 64

// Segment is a single bone of a limb chain
type Segment struct {
	// Bone is the tapered shape drawn between the two joints
	Bone geometry.Bone
	// Root is the landmark id of the chain the segment belongs to
	Root int
	// From and To are the landmark ids of the joints
	From, To int
	// Visible is true if both joints pass the visibility threshold
	Visible bool
}

// Layout is the pictogram geometry calculated for a frame
type Layout struct {
	// Frame is the working copy of the landmarks with the hips moved to the
	// pelvis midpoint
	Frame landmark.Frame
	// Pelvis is the midpoint between the left and right hip
	Pelvis r2.Vec
	// Head is the scaled circle enclosing the face landmarks, truncated to
	// whole pixels
	Head geometry.Circle
	// Radii are the joint radii derived from the head size
	Radii StickRadii
	// Segments are the limb segments in draw order, farthest from the
	// camera first
	Segments []Segment
}

// NewLayout calculates the pictogram geometry for the frame without drawing
// it.  The given frame is not modified.
func NewLayout(frame landmark.Frame, mode LimbMode, threshold float64) (*Layout, error) {

	chains, err := LimbChains(mode)

	if err != nil {
		return nil, err
	}

	if err := frame.Require(requiredLandmarks(chains)...); err != nil {
		return nil, fmt.Errorf("pictogram layout: %w", err)
	}

	l := &Layout{
		Frame: frame.Clone(),
	}

	l.Pelvis, err = l.Frame.Midpoint(landmark.LeftHip, landmark.RightHip)

	if err != nil {
		return nil, fmt.Errorf("error calculating pelvis: %w", err)
	}

	// legs are drawn from the pelvis, the hip depths are left unchanged
	l.Frame[landmark.LeftHip].Position = l.Pelvis
	l.Frame[landmark.RightHip].Position = l.Pelvis

	face, err := l.Frame.Points(faceLandmarks)

	if err != nil {
		return nil, fmt.Errorf("error getting face landmarks: %w", err)
	}

	head, err := geometry.MinEnclosingCircle(face)

	if err != nil {
		return nil, fmt.Errorf("error calculating head circle: %w", err)
	}

	l.Head = head.Scale(headScale).Truncate()

	l.Radii = NewStickRadii(l.Head.Radius)

	roots := make([]int, len(chains))
	byRoot := make(map[int]LimbChain, len(chains))

	for i, chain := range chains {
		roots[i] = chain.Root()
		byRoot[chain.Root()] = chain
	}

	for _, root := range DrawOrder(l.Frame, roots) {
		l.Segments = append(l.Segments, l.chainSegments(byRoot[root], threshold)...)
	}

	return l, nil
}

// chainSegments returns a segment for each consecutive pair of joints in the
// chain, tapering the radius at each joint
func (l *Layout) chainSegments(chain LimbChain, threshold float64) []Segment {

	segs := make([]Segment, 0, len(chain)-1)

	for i := 0; i+1 < len(chain) && i+1 < len(l.Radii); i++ {
		from := l.Frame[chain[i]]
		to := l.Frame[chain[i+1]]

		segs = append(segs, Segment{
			Bone: geometry.NewBone(from.Position, l.Radii[i],
				to.Position, l.Radii[i+1]),
			Root:    chain.Root(),
			From:    from.ID,
			To:      to.ID,
			Visible: Visible(from, to, threshold),
		})
	}

	return segs
}

// VisibleSegments returns the segments that will be drawn, in draw order
func (l *Layout) VisibleSegments() []Segment {

	segs := make([]Segment, 0, len(l.Segments))

	for _, s := range l.Segments {
		if s.Visible {
			segs = append(segs, s)
		}
	}

	return segs
}

// FootprintArea returns the area in square pixels covered by the head and
// visible limb segments, counting overlapping shapes once
func (l *Layout) FootprintArea() float64 {

	polys := [][]r2.Vec{
		geometry.CirclePolygon(l.Head, outlineSegments),
	}

	for _, s := range l.VisibleSegments() {
		polys = append(polys, s.Bone.Outline(outlineSegments)...)
	}

	return geometry.UnionArea(polys)
}
