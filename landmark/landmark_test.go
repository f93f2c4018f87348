package landmark

import (
	"errors"
	"testing"

	"github.com/x448/float16"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// testFrame returns a full pose frame with each landmark placed on a
// diagonal so positions are unique
func testFrame() Frame {
	f := make(Frame, PoseLandmarks)

	for i := range f {
		f[i] = Landmark{
			ID:         i,
			Position:   r2.Vec{X: float64(10 * i), Y: float64(5 * i)},
			Depth:      float64(i) / 100,
			Visibility: 1,
		}
	}

	return f
}

func TestFromNormalized(t *testing.T) {

	tests := []struct {
		name      string
		sample    Normalized
		width     int
		height    int
		expectedX float64
		expectedY float64
	}{
		{"center", Normalized{X: 0.5, Y: 0.5}, 640, 360, 320, 180},
		{"round down", Normalized{X: 0.5007, Y: 0.25}, 640, 360, 320, 90},
		{"round up", Normalized{X: 0.5009, Y: 0.2514}, 640, 360, 321, 91},
		{"clamp max", Normalized{X: 0.9999, Y: 1.2}, 640, 360, 639, 359},
		{"clamp min", Normalized{X: -0.1, Y: -3}, 640, 360, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := FromNormalized([]Normalized{tc.sample}, tc.width, tc.height)

			if len(frame) != 1 {
				t.Fatalf("expected 1 landmark, got %d", len(frame))
			}

			got := frame[0].Position

			if got.X != tc.expectedX || got.Y != tc.expectedY {
				t.Errorf("expected (%v, %v), got (%v, %v)",
					tc.expectedX, tc.expectedY, got.X, got.Y)
			}
		})
	}
}

func TestFromNormalizedKeepsDepthAndVisibility(t *testing.T) {

	frame := FromNormalized([]Normalized{
		{X: 0.1, Y: 0.1, Z: -0.42, Visibility: 0.9},
		{X: 0.2, Y: 0.2, Z: 1.7, Visibility: 1.3},
	}, 100, 100)

	if frame[1].ID != 1 {
		t.Errorf("expected landmark ID 1, got %d", frame[1].ID)
	}

	if frame[0].Depth != -0.42 || frame[0].Visibility != 0.9 {
		t.Errorf("depth/visibility altered: %+v", frame[0])
	}

	// out of range visibility is passed through as provided
	if frame[1].Visibility != 1.3 {
		t.Errorf("expected visibility 1.3 untouched, got %v", frame[1].Visibility)
	}
}

func TestFromNormalizedEmpty(t *testing.T) {
	if frame := FromNormalized(nil, 640, 360); !frame.Empty() {
		t.Errorf("expected empty frame, got %d landmarks", len(frame))
	}
}

func TestFrameGet(t *testing.T) {

	frame := testFrame()

	lm, err := frame.Get(LeftHip)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if lm.ID != LeftHip {
		t.Errorf("expected id %d, got %d", LeftHip, lm.ID)
	}

	short := frame[:20]

	if _, err := short.Get(LeftHip); !errors.Is(err, ErrMissingLandmark) {
		t.Errorf("expected ErrMissingLandmark, got %v", err)
	}

	if _, err := frame.Get(-1); !errors.Is(err, ErrMissingLandmark) {
		t.Errorf("expected ErrMissingLandmark for negative id, got %v", err)
	}

	// slot holding the wrong landmark is treated as missing
	swapped := frame.Clone()
	swapped[LeftKnee].ID = RightKnee

	if _, err := swapped.Get(LeftKnee); !errors.Is(err, ErrMissingLandmark) {
		t.Errorf("expected ErrMissingLandmark for swapped slot, got %v", err)
	}
}

func TestFrameRequire(t *testing.T) {

	frame := testFrame()

	if err := frame.Require(LeftShoulder, RightAnkle); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := frame[:28].Require(LeftShoulder, RightAnkle); !errors.Is(err, ErrMissingLandmark) {
		t.Errorf("expected ErrMissingLandmark, got %v", err)
	}
}

func TestFrameCloneIsIndependent(t *testing.T) {

	frame := testFrame()
	c := frame.Clone()
	c[LeftHip].Position = r2.Vec{X: -1, Y: -1}

	if frame[LeftHip].Position.X == -1 {
		t.Errorf("modifying clone changed original frame")
	}

	var empty Frame

	if empty.Clone() != nil {
		t.Errorf("expected nil clone of nil frame")
	}
}

func TestFrameMidpoint(t *testing.T) {

	frame := testFrame()
	frame[LeftHip].Position = r2.Vec{X: 300, Y: 200}
	frame[RightHip].Position = r2.Vec{X: 341, Y: 207}

	mid, err := frame.Midpoint(LeftHip, RightHip)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mid.X != 320.5 || mid.Y != 203.5 {
		t.Errorf("expected (320.5, 203.5), got (%v, %v)", mid.X, mid.Y)
	}
}

func TestFrameMirror(t *testing.T) {

	frame := testFrame()
	m := frame.Mirror(640)

	for i := range frame {
		if m[i].Position.X != 639-frame[i].Position.X {
			t.Errorf("landmark %d: expected x=%v, got %v", i,
				639-frame[i].Position.X, m[i].Position.X)
		}

		if m[i].Position.Y != frame[i].Position.Y {
			t.Errorf("landmark %d: y changed by mirror", i)
		}
	}
}

func TestFromTensorF16(t *testing.T) {

	f16 := func(v float32) uint16 {
		return float16.Fromfloat32(v).Bits()
	}

	// two landmarks with stride 5 (x, y, z, visibility, presence)
	buf := []uint16{
		f16(0.5), f16(0.25), f16(-0.125), f16(1.0), f16(1.0),
		f16(0.75), f16(0.5), f16(0.25), f16(0.5), f16(0.0),
	}

	frame, err := FromTensorF16(buf, 5, 640, 360)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(frame) != 2 {
		t.Fatalf("expected 2 landmarks, got %d", len(frame))
	}

	if frame[0].Position.X != 320 || frame[0].Position.Y != 90 {
		t.Errorf("expected (320, 90), got (%v, %v)", frame[0].Position.X, frame[0].Position.Y)
	}

	if frame[0].Depth != -0.125 || frame[0].Visibility != 1 {
		t.Errorf("unexpected depth/visibility %v/%v", frame[0].Depth, frame[0].Visibility)
	}

	if frame[1].Position.X != 480 || frame[1].Visibility != 0.5 {
		t.Errorf("unexpected second landmark %+v", frame[1])
	}

	if _, err := FromTensorF16(buf[:7], 5, 640, 360); !errors.Is(err, ErrTensorShape) {
		t.Errorf("expected ErrTensorShape for partial record, got %v", err)
	}

	if _, err := FromTensorF16(buf, 3, 640, 360); !errors.Is(err, ErrTensorShape) {
		t.Errorf("expected ErrTensorShape for short stride, got %v", err)
	}
}

func TestLetterbox(t *testing.T) {

	tests := []struct {
		srcWidth      int
		srcHeight     int
		modelWidth    int
		modelHeight   int
		expectedXPad  int
		expectedYPad  int
		expectedScale float64
	}{
		{1280, 720, 640, 640, 0, 140, 0.50},
		{800, 1000, 640, 640, 64, 0, 0.64},
		{800, 800, 640, 640, 0, 0, 0.8},
	}

	for _, tc := range tests {
		lb := NewLetterbox(tc.srcWidth, tc.srcHeight, tc.modelWidth, tc.modelHeight)

		if lb.XPad() != tc.expectedXPad || lb.YPad() != tc.expectedYPad {
			t.Errorf("Test failed for src (%d, %d): Padding values wrong, expected XPad=%d, YPad=%d, got xPad=%d, yPad=%d",
				tc.srcWidth, tc.srcHeight, tc.expectedXPad, tc.expectedYPad, lb.XPad(), lb.YPad())
		}

		if !scalar.EqualWithinAbs(lb.ScaleFactor(), tc.expectedScale, 1e-9) {
			t.Errorf("Test failed for src (%d, %d): Scalefactor incorrect, expected %f, got %f",
				tc.srcWidth, tc.srcHeight, tc.expectedScale, lb.ScaleFactor())
		}
	}
}

func TestLetterboxNormalize(t *testing.T) {

	lb := NewLetterbox(1280, 720, 640, 640)

	// the source image center is the model input center and the top edge of
	// the source image sits below the 140 pixel padding
	tests := []struct {
		in       Normalized
		expected Normalized
	}{
		{Normalized{X: 0.5, Y: 0.5, Z: 0.3, Visibility: 0.8}, Normalized{X: 0.5, Y: 0.5, Z: 0.3, Visibility: 0.8}},
		{Normalized{X: 0.25, Y: 140.0 / 640}, Normalized{X: 0.25, Y: 0}},
		{Normalized{X: 1, Y: 500.0 / 640}, Normalized{X: 1, Y: 1}},
	}

	for _, tc := range tests {
		got := lb.Normalize(tc.in)

		if !scalar.EqualWithinAbs(got.X, tc.expected.X, 1e-9) ||
			!scalar.EqualWithinAbs(got.Y, tc.expected.Y, 1e-9) {
			t.Errorf("Normalize(%+v): expected (%v, %v), got (%v, %v)",
				tc.in, tc.expected.X, tc.expected.Y, got.X, got.Y)
		}

		if got.Z != tc.expected.Z || got.Visibility != tc.expected.Visibility {
			t.Errorf("Normalize(%+v) altered depth or visibility: %+v", tc.in, got)
		}
	}

	all := lb.NormalizeAll([]Normalized{tests[0].in, tests[1].in})

	if len(all) != 2 || !scalar.EqualWithinAbs(all[1].Y, 0, 1e-9) {
		t.Errorf("NormalizeAll returned %+v", all)
	}
}

func TestPairDiagnostics(t *testing.T) {

	frame := testFrame()
	frame[LeftShoulder].Position = r2.Vec{X: 290, Y: 110}
	frame[RightShoulder].Position = r2.Vec{X: 350, Y: 110}
	frame[LeftShoulder].Depth = -0.2504
	frame[RightShoulder].Depth = 0.2496
	frame[LeftHip].Position = r2.Vec{X: 0, Y: 0}
	frame[RightHip].Position = r2.Vec{X: 3, Y: 4}
	frame[LeftHip].Depth = 0.1
	frame[RightHip].Depth = 0.2

	reports, err := PairDiagnostics(frame)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reports) != len(DiagnosticPairs) {
		t.Fatalf("expected %d reports, got %d", len(DiagnosticPairs), len(reports))
	}

	shoulders := reports[0]

	if shoulders.Distance != 60 || !shoulders.DepthMatch {
		t.Errorf("unexpected shoulder report %+v", shoulders)
	}

	hips := reports[1]

	if hips.Distance != 5 || hips.DepthMatch {
		t.Errorf("unexpected hip report %+v", hips)
	}

	if _, err := PairDiagnostics(frame[:20]); !errors.Is(err, ErrMissingLandmark) {
		t.Errorf("expected ErrMissingLandmark, got %v", err)
	}
}

func TestLabel(t *testing.T) {
	if Label(RightAnkle) != "right ankle" {
		t.Errorf("unexpected label %q", Label(RightAnkle))
	}

	if Label(99) != "landmark 99" {
		t.Errorf("unexpected label %q", Label(99))
	}
}
