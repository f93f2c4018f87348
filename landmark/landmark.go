package landmark

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

/* BlazePose body landmarks
0: Nose
1-6: Eyes (inner, center, outer for left then right)
7-8: Ears
9-10: Mouth corners
11-16: Shoulders, Elbows, Wrists
17-22: Pinky, Index, Thumb knuckles
23-28: Hips, Knees, Ankles
29-32: Heels, Foot index
*/
const (
	Nose           = 0
	LeftEyeInner   = 1
	LeftEye        = 2
	LeftEyeOuter   = 3
	RightEyeInner  = 4
	RightEye       = 5
	RightEyeOuter  = 6
	LeftEar        = 7
	RightEar       = 8
	MouthLeft      = 9
	MouthRight     = 10
	LeftShoulder   = 11
	RightShoulder  = 12
	LeftElbow      = 13
	RightElbow     = 14
	LeftWrist      = 15
	RightWrist     = 16
	LeftPinky      = 17
	RightPinky     = 18
	LeftIndex      = 19
	RightIndex     = 20
	LeftThumb      = 21
	RightThumb     = 22
	LeftHip        = 23
	RightHip       = 24
	LeftKnee       = 25
	RightKnee      = 26
	LeftAnkle      = 27
	RightAnkle     = 28
	LeftHeel       = 29
	RightHeel      = 30
	LeftFootIndex  = 31
	RightFootIndex = 32

	// PoseLandmarks is the number of landmarks in a full pose frame
	PoseLandmarks = 33
)

// Labels maps each landmark id to its anatomical name
var Labels = [PoseLandmarks]string{
	"nose",
	"left eye inner", "left eye", "left eye outer",
	"right eye inner", "right eye", "right eye outer",
	"left ear", "right ear",
	"mouth left", "mouth right",
	"left shoulder", "right shoulder",
	"left elbow", "right elbow",
	"left wrist", "right wrist",
	"left pinky", "right pinky",
	"left index", "right index",
	"left thumb", "right thumb",
	"left hip", "right hip",
	"left knee", "right knee",
	"left ankle", "right ankle",
	"left heel", "right heel",
	"left foot index", "right foot index",
}

// ErrMissingLandmark is returned when a frame does not contain a landmark id
// that is required for rendering
var ErrMissingLandmark = errors.New("missing landmark")

// Label returns the anatomical name of the landmark id
func Label(id int) string {
	if id < 0 || id >= len(Labels) {
		return fmt.Sprintf("landmark %d", id)
	}
	return Labels[id]
}

// Landmark is a single body keypoint in pixel space
type Landmark struct {
	// ID is the anatomical index of the landmark
	ID int
	// Position is the pixel location on the image
	Position r2.Vec
	// Depth is the relative depth as given by the pose model, smaller values
	// are closer to the camera
	Depth float64
	// Visibility is the confidence score [0,1] that the landmark is visible
	Visibility float64
}

// Frame is the ordered set of landmarks detected for a single pose, indexed
// by landmark id.  An empty Frame means no pose was detected.
type Frame []Landmark

// Empty returns true if the frame holds no landmarks
func (f Frame) Empty() bool {
	return len(f) == 0
}

// Clone returns a copy of the frame that can be modified without affecting
// the original
func (f Frame) Clone() Frame {
	if f == nil {
		return nil
	}

	c := make(Frame, len(f))
	copy(c, f)

	return c
}

// Get returns the landmark with the given id
func (f Frame) Get(id int) (Landmark, error) {

	if id < 0 || id >= len(f) {
		return Landmark{}, fmt.Errorf("%s (id %d) not in frame of %d landmarks: %w",
			Label(id), id, len(f), ErrMissingLandmark)
	}

	if f[id].ID != id {
		return Landmark{}, fmt.Errorf("%s (id %d) slot holds landmark id %d: %w",
			Label(id), id, f[id].ID, ErrMissingLandmark)
	}

	return f[id], nil
}

// Require checks that all the given landmark ids are present in the frame
func (f Frame) Require(ids ...int) error {
	for _, id := range ids {
		if _, err := f.Get(id); err != nil {
			return err
		}
	}
	return nil
}

// Points returns the positions of the given landmark ids in the same order
func (f Frame) Points(ids []int) ([]r2.Vec, error) {

	pts := make([]r2.Vec, 0, len(ids))

	for _, id := range ids {
		lm, err := f.Get(id)

		if err != nil {
			return nil, err
		}

		pts = append(pts, lm.Position)
	}

	return pts, nil
}

// Midpoint returns the average position of landmarks a and b
func (f Frame) Midpoint(a, b int) (r2.Vec, error) {

	pts, err := f.Points([]int{a, b})

	if err != nil {
		return r2.Vec{}, err
	}

	return r2.Scale(0.5, r2.Add(pts[0], pts[1])), nil
}

// Mirror returns a copy of the frame flipped horizontally across an image of
// the given width, the landmark equivalent of a mirrored camera display
func (f Frame) Mirror(width int) Frame {

	m := f.Clone()

	for i := range m {
		m[i].Position.X = float64(width-1) - m[i].Position.X
	}

	return m
}
