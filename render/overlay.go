package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/swdee/go-pictogram/landmark"
	"gocv.io/x/gocv"
)

var (
	// connections defines the pose skeleton landmarks to draw lines between
	// on the raw overlay.  Lines to ids missing from a frame are skipped.
	connections = [][2]int{
		// eyes
		{landmark.LeftEyeInner, landmark.LeftEye},
		{landmark.LeftEye, landmark.LeftEyeOuter},
		{landmark.RightEyeInner, landmark.RightEye},
		{landmark.RightEye, landmark.RightEyeOuter},
		// mouth
		{landmark.MouthLeft, landmark.MouthRight},
		// shoulders
		{landmark.LeftShoulder, landmark.RightShoulder},
		// arms
		{landmark.LeftShoulder, landmark.LeftElbow},
		{landmark.LeftElbow, landmark.LeftWrist},
		{landmark.RightShoulder, landmark.RightElbow},
		{landmark.RightElbow, landmark.RightWrist},
		// hands
		{landmark.LeftWrist, landmark.LeftPinky},
		{landmark.LeftPinky, landmark.LeftIndex},
		{landmark.LeftIndex, landmark.LeftThumb},
		{landmark.LeftThumb, landmark.LeftWrist},
		{landmark.RightWrist, landmark.RightPinky},
		{landmark.RightPinky, landmark.RightIndex},
		{landmark.RightIndex, landmark.RightThumb},
		{landmark.RightThumb, landmark.RightWrist},
		// torso
		{landmark.LeftShoulder, landmark.LeftHip},
		{landmark.RightShoulder, landmark.RightHip},
		{landmark.LeftHip, landmark.RightHip},
		// legs
		{landmark.LeftHip, landmark.LeftKnee},
		{landmark.LeftKnee, landmark.LeftAnkle},
		{landmark.LeftAnkle, landmark.LeftHeel},
		{landmark.LeftHeel, landmark.LeftFootIndex},
		{landmark.RightHip, landmark.RightKnee},
		{landmark.RightKnee, landmark.RightAnkle},
		{landmark.RightAnkle, landmark.RightHeel},
		{landmark.RightHeel, landmark.RightFootIndex},
	}
)

// OverlayStyle defines the parameters used for rendering the raw landmark
// overlay
type OverlayStyle struct {
	PointColor     color.RGBA
	PointRadius    int
	PointThickness int
	LineColor      color.RGBA
	LineThickness  int
	// ShowDepth renders each landmark's depth value next to it
	ShowDepth bool
	Font      Font
	// VisibilityThreshold is the minimum visibility score for a landmark to
	// be drawn
	VisibilityThreshold float64
}

// DefaultOverlayStyle returns default overlay style settings
func DefaultOverlayStyle() OverlayStyle {
	return OverlayStyle{
		PointColor:          Green,
		PointRadius:         5,
		PointThickness:      2,
		LineColor:           Green,
		LineThickness:       2,
		ShowDepth:           true,
		Font:                DefaultFont(),
		VisibilityThreshold: 0.5,
	}
}

// Overlay renders the raw pose landmarks and skeleton lines over the image,
// typically a copy of the camera frame the pose was detected on
func Overlay(img *gocv.Mat, frame landmark.Frame, style OverlayStyle) {

	// draw circles at visible landmarks
	for _, lm := range frame {
		if lm.Visibility < style.VisibilityThreshold {
			continue
		}

		pt := toPoint(lm.Position)

		gocv.Circle(img, pt, style.PointRadius, style.PointColor, style.PointThickness)

		if style.ShowDepth {
			Text(img, depthLabel(lm.Depth), image.Pt(pt.X-10, pt.Y-10), style.Font)
		}
	}

	// draw skeleton lines where both ends are visible
	for _, conn := range connections {
		a, errA := frame.Get(conn[0])
		b, errB := frame.Get(conn[1])

		if errA != nil || errB != nil {
			continue
		}

		if a.Visibility > style.VisibilityThreshold && b.Visibility > style.VisibilityThreshold {
			gocv.Line(img, toPoint(a.Position), toPoint(b.Position),
				style.LineColor, style.LineThickness)
		}
	}
}

// depthLabel formats the depth value rounded to 3 decimal places
func depthLabel(depth float64) string {
	return fmt.Sprintf("z:%s", strconv.FormatFloat(math.Round(depth*1000)/1000, 'f', -1, 64))
}
