package landmark

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// DiagnosticPairs are the left/right landmark pairs compared by
// PairDiagnostics: shoulders, hips and ankles
var DiagnosticPairs = [][2]int{
	{LeftShoulder, RightShoulder},
	{LeftHip, RightHip},
	{LeftAnkle, RightAnkle},
}

// PairReport holds the comparison of a left/right landmark pair
type PairReport struct {
	A, B int
	// Distance is the whole pixel distance between the pair
	Distance int
	// DepthA and DepthB are the absolute depths rounded to 3 decimal places
	DepthA, DepthB float64
	// DepthMatch is true when both rounded depths are equal, meaning the pair
	// faces the camera square on
	DepthMatch bool
}

// PairDiagnostics reports the pixel distance and depth agreement of each
// DiagnosticPairs entry.  It has no effect on rendering and is intended for
// debug logging.
func PairDiagnostics(f Frame) ([]PairReport, error) {

	reports := make([]PairReport, 0, len(DiagnosticPairs))

	for _, pair := range DiagnosticPairs {
		a, err := f.Get(pair[0])

		if err != nil {
			return nil, err
		}

		b, err := f.Get(pair[1])

		if err != nil {
			return nil, err
		}

		da := round3(math.Abs(a.Depth))
		db := round3(math.Abs(b.Depth))

		reports = append(reports, PairReport{
			A:          pair[0],
			B:          pair[1],
			Distance:   int(r2.Norm(r2.Sub(b.Position, a.Position))),
			DepthA:     da,
			DepthB:     db,
			DepthMatch: da == db,
		})
	}

	return reports, nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
