// Package grid holds the 2d map, its named attributes and the size math
// shared by every generation step.
package grid

import "fmt"

// Size2d is the immutable width & height of a 2d grid.
type Size2d struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

// NewSize2d creates a size from width & height.
func NewSize2d(width, height uint32) Size2d {
	return Size2d{Width: width, Height: height}
}

// Area returns the number of cells covered by the size.
func (s Size2d) Area() int {
	return int(s.Width) * int(s.Height)
}

// String returns the size in the format "3x5".
func (s Size2d) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ToIndexRisky converts a point to a linear index. The caller must
// guarantee x < Width and y < Height, otherwise the result is outside
// the grid.
func (s Size2d) ToIndexRisky(x, y uint32) int {
	return int(x) + int(y)*int(s.Width)
}

// SaturatingToIndex converts a point to a linear index, clamping x & y
// to the grid first. For a non-degenerate size the result is always a
// valid index.
func (s Size2d) SaturatingToIndex(x, y uint32) int {
	if s.Width > 0 && x >= s.Width {
		x = s.Width - 1
	}
	if s.Height > 0 && y >= s.Height {
		y = s.Height - 1
	}
	return s.ToIndexRisky(x, y)
}
