package grid

import "testing"

func TestSize2dArea(t *testing.T) {
	tests := []struct {
		size     Size2d
		expected int
	}{
		{NewSize2d(2, 3), 6},
		{NewSize2d(1, 1), 1},
		{NewSize2d(0, 5), 0},
		{NewSize2d(100, 100), 10000},
	}

	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			if got := tt.size.Area(); got != tt.expected {
				t.Errorf("Area() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestSize2dToIndexRisky(t *testing.T) {
	size := NewSize2d(2, 3)

	tests := []struct {
		x, y     uint32
		expected int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{0, 1, 2},
		{1, 1, 3},
		{0, 2, 4},
		{1, 2, 5},
	}

	for _, tt := range tests {
		if got := size.ToIndexRisky(tt.x, tt.y); got != tt.expected {
			t.Errorf("ToIndexRisky(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestSize2dSaturatingToIndex(t *testing.T) {
	size := NewSize2d(2, 3)

	tests := []struct {
		x, y     uint32
		expected int
	}{
		{0, 0, 0},
		{1, 2, 5},
		{5, 0, 1},  // x clamped to the last column
		{0, 9, 4},  // y clamped to the last row
		{9, 9, 5},  // both clamped
	}

	for _, tt := range tests {
		if got := size.SaturatingToIndex(tt.x, tt.y); got != tt.expected {
			t.Errorf("SaturatingToIndex(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.expected)
		}
	}
}
