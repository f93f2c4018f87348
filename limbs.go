package pictogram

import (
	"fmt"

	"github.com/swdee/go-pictogram/landmark"
)

const (
	// headScale enlarges the face enclosing circle to cover the whole head
	headScale = 1.5
	// shoulderRatio is the limb root radius relative to the head radius
	shoulderRatio = 4.0 / 5.0
	// taperRatio is the radius of each successive joint relative to the last
	taperRatio = 3.0 / 4.0
)

var (
	// faceLandmarks are the landmarks enclosed to find the head circle: inner
	// eyes, ears and mouth corners
	faceLandmarks = []int{
		landmark.LeftEyeInner, landmark.RightEyeInner,
		landmark.LeftEar, landmark.RightEar,
		landmark.MouthLeft, landmark.MouthRight,
	}

	// limbChains are the joints of each limb for a LimbMode, from the limb
	// root outwards.  The root is used to depth sort the whole limb.
	limbChains = map[LimbMode][]LimbChain{
		ModeSegmented: {
			{landmark.LeftShoulder, landmark.LeftElbow, landmark.LeftWrist},
			{landmark.RightShoulder, landmark.RightElbow, landmark.RightWrist},
			{landmark.LeftHip, landmark.LeftKnee, landmark.LeftAnkle},
			{landmark.RightHip, landmark.RightKnee, landmark.RightAnkle},
		},
		ModeSimple: {
			{landmark.LeftShoulder, landmark.LeftHip},
			{landmark.RightShoulder, landmark.RightHip},
		},
	}
)

// LimbChain is the ordered list of joint landmark ids making up a limb,
// starting at the root joint attached to the torso
type LimbChain []int

// Root returns the landmark id the limb is attached to the torso by
func (c LimbChain) Root() int {
	return c[0]
}

// LimbChains returns the limb chains drawn for the mode
func LimbChains(mode LimbMode) ([]LimbChain, error) {

	chains, ok := limbChains[mode]

	if !ok {
		return nil, fmt.Errorf("unknown limb mode %d", mode)
	}

	return chains, nil
}

// requiredLandmarks returns every landmark id referenced when rendering the
// chains
func requiredLandmarks(chains []LimbChain) []int {

	ids := make([]int, 0, len(faceLandmarks)+2+len(chains)*3)
	ids = append(ids, faceLandmarks...)
	ids = append(ids, landmark.LeftHip, landmark.RightHip)

	for _, chain := range chains {
		ids = append(ids, chain...)
	}

	return ids
}

// StickRadii are the joint radii from the limb root outwards, tapering
// towards the extremities
type StickRadii [3]float64

// NewStickRadii returns the radii for a head of the given radius.  Each
// radius is truncated to whole pixels as the raster primitives take integer
// radii.
func NewStickRadii(headRadius float64) StickRadii {

	var r StickRadii

	r[0] = float64(int(headRadius * shoulderRatio))
	r[1] = float64(int(r[0] * taperRatio))
	r[2] = float64(int(r[1] * taperRatio))

	return r
}
