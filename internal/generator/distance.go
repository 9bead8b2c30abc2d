// Package generator provides composable 1d & 2d value generators for
// procedural map generation.
package generator

import "math"

// AbsDiff returns the absolute difference of two unsigned values.
func AbsDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

// Distance returns the Euclidean distance between two points, rounded to
// the nearest unsigned integer.
func Distance(x1, y1, x2, y2 uint32) uint32 {
	dx := float64(AbsDiff(x1, x2))
	dy := float64(AbsDiff(y1, y2))
	return uint32(math.Round(math.Sqrt(dx*dx + dy*dy)))
}
