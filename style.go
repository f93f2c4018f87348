package pictogram

import (
	"image/color"

	"github.com/swdee/go-pictogram/render"
)

// DefaultVisibilityThreshold is the visibility score both ends of a limb
// segment must exceed for it to be drawn
const DefaultVisibilityThreshold = 0.5

// LimbMode selects which limb chains are rendered
type LimbMode int

const (
	// ModeSegmented draws arms as shoulder-elbow-wrist and legs as
	// hip-knee-ankle chains
	ModeSegmented LimbMode = iota
	// ModeSimple draws a single stick from each shoulder to its hip
	ModeSimple
)

// String returns the name of the mode
func (m LimbMode) String() string {
	switch m {
	case ModeSegmented:
		return "segmented"
	case ModeSimple:
		return "simple"
	}
	return "unknown"
}

// Style defines the parameters used for rendering the pictogram
type Style struct {
	// Color is the foreground color the head and limbs are drawn in
	Color color.RGBA
	// Background is the color the canvas is filled with
	Background color.RGBA
	// VisibilityThreshold is the minimum visibility score [0,1] both joints
	// of a limb segment need to exceed for it to be drawn
	VisibilityThreshold float64
	// Mode selects the limb chains drawn
	Mode LimbMode
}

// DefaultStyle returns default pictogram style settings
func DefaultStyle() Style {
	return Style{
		Color:               render.Ink,
		Background:          render.Paper,
		VisibilityThreshold: DefaultVisibilityThreshold,
		Mode:                ModeSegmented,
	}
}

// ReverseStyle returns the default style with foreground and background
// colors swapped
func ReverseStyle() Style {
	s := DefaultStyle()
	s.Color, s.Background = s.Background, s.Color
	return s
}
