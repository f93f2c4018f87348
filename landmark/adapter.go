package landmark

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Normalized is a landmark sample as output by the pose model where X and Y
// are relative [0,1] to the image width and height
type Normalized struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
	Presence   float64 `json:"presence,omitempty"`
}

// FromNormalized converts the pose model samples into a Frame in pixel space
// for an image of the given dimensions.  Sample order gives the landmark id.
func FromNormalized(samples []Normalized, width, height int) Frame {

	if len(samples) == 0 {
		return nil
	}

	frame := make(Frame, len(samples))

	for i, s := range samples {
		frame[i] = Landmark{
			ID: i,
			Position: r2.Vec{
				X: toPixel(s.X, width),
				Y: toPixel(s.Y, height),
			},
			Depth:      s.Z,
			Visibility: s.Visibility,
		}
	}

	return frame
}

// toPixel scales the normalized value to the given image dimension and clamps
// the result to a valid pixel index
func toPixel(v float64, size int) float64 {

	p := math.Round(v * float64(size))

	if p > float64(size-1) {
		return float64(size - 1)
	}

	if p < 0 {
		return 0
	}

	return p
}
