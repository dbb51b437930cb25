package debug

import "github.com/Faultbox/trailwalk/pkg/math"

// BoxWireframe returns the 12 edges of an axis-aligned box as 24 line-list
// endpoints.
func BoxWireframe(lo, hi [3]float32) []math.Vec3 {
	c := [8]math.Vec3{
		{X: lo[0], Y: lo[1], Z: lo[2]},
		{X: hi[0], Y: lo[1], Z: lo[2]},
		{X: hi[0], Y: lo[1], Z: hi[2]},
		{X: lo[0], Y: lo[1], Z: hi[2]},
		{X: lo[0], Y: hi[1], Z: lo[2]},
		{X: hi[0], Y: hi[1], Z: lo[2]},
		{X: hi[0], Y: hi[1], Z: hi[2]},
		{X: lo[0], Y: hi[1], Z: hi[2]},
	}
	edges := [12][2]int{
		// Bottom
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		// Top
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		// Vertical
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}

	out := make([]math.Vec3, 0, len(edges)*2)
	for _, e := range edges {
		out = append(out, c[e[0]], c[e[1]])
	}
	return out
}
