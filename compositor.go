package pictogram

import (
	"sort"

	"github.com/swdee/go-pictogram/landmark"
)

// Visible returns true if both landmarks' visibility scores exceed the
// threshold, meaning the segment between them can be drawn
func Visible(a, b landmark.Landmark, threshold float64) bool {
	return a.Visibility > threshold && b.Visibility > threshold
}

// SortByDepth returns a copy of the landmarks ordered farthest from the
// camera first.  Landmarks of equal depth keep their original order.
func SortByDepth(lms []landmark.Landmark) []landmark.Landmark {

	sorted := make([]landmark.Landmark, len(lms))
	copy(sorted, lms)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Depth > sorted[j].Depth
	})

	return sorted
}

// DrawOrder returns the root landmark ids in the order they should be
// painted so nearer limbs are drawn over farther ones.  Ids not present in the
// frame are omitted.
func DrawOrder(frame landmark.Frame, roots []int) []int {

	isRoot := make(map[int]bool, len(roots))

	for _, id := range roots {
		isRoot[id] = true
	}

	order := make([]int, 0, len(roots))

	for _, lm := range SortByDepth(frame) {
		if isRoot[lm.ID] {
			order = append(order, lm.ID)
		}
	}

	return order
}
