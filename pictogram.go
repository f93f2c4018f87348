package pictogram

import (
	"image/color"

	"github.com/swdee/go-pictogram/landmark"
	"github.com/swdee/go-pictogram/render"
)

// Render paints the pictogram for the frame onto the canvas.  The canvas is
// first filled with the background color, so an empty frame results in a
// blank canvas.  If the frame is missing any landmark needed an error
// wrapping landmark.ErrMissingLandmark is returned and only the background is
// painted.
func Render(c render.Canvas, frame landmark.Frame, style Style) error {

	c.Fill(style.Background)

	if frame.Empty() {
		return nil
	}

	layout, err := NewLayout(frame, style.Mode, style.VisibilityThreshold)

	if err != nil {
		return err
	}

	Draw(c, layout, style.Color)

	return nil
}

// Draw paints the head followed by each visible limb segment of the layout in
// depth order
func Draw(c render.Canvas, layout *Layout, clr color.RGBA) {

	render.Circle(c, layout.Head, clr)

	for _, s := range layout.VisibleSegments() {
		render.Bone(c, s.Bone, clr)
	}
}
