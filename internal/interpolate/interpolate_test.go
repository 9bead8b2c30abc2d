package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testByte implements Value for the tests.
type testByte uint8

func (b testByte) Lerp(other testByte, factor float64) testByte {
	return testByte(Lerp(uint8(b), uint8(other), factor))
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		start    uint8
		end      uint8
		factor   float64
		expected uint8
	}{
		{"start", 100, 200, 0.0, 100},
		{"middle", 100, 200, 0.5, 150},
		{"end", 100, 200, 1.0, 200},
		{"descending", 200, 100, 0.5, 150},
		{"clamped below", 100, 200, -0.5, 100},
		{"clamped above", 100, 200, 1.5, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.start, tt.end, tt.factor); got != tt.expected {
				t.Errorf("Lerp(%d, %d, %v) = %d, want %d", tt.start, tt.end, tt.factor, got, tt.expected)
			}
		})
	}
}

func TestNewVectorInterpolationTooFewEntries(t *testing.T) {
	_, err := NewVectorInterpolation([]Entry[testByte]{{100, 150}})
	assert.Error(t, err)

	_, err = NewVectorInterpolation[testByte](nil)
	assert.Error(t, err)
}

func TestNewVectorInterpolationUnsortedEntries(t *testing.T) {
	_, err := NewVectorInterpolation([]Entry[testByte]{{150, 10}, {100, 20}})
	assert.Error(t, err)

	_, err = NewVectorInterpolation([]Entry[testByte]{{100, 10}, {100, 20}})
	assert.Error(t, err)
}

func TestVectorInterpolation(t *testing.T) {
	interpolation, err := NewVectorInterpolation([]Entry[testByte]{
		{100, 150},
		{150, 200},
		{200, 100},
	})
	require.NoError(t, err)

	tests := []struct {
		input    uint8
		expected testByte
	}{
		{0, 150},   // clamped to the first value
		{100, 150}, // first control point
		{125, 175}, // halfway between the first two points
		{150, 200},
		{175, 150}, // halfway down the descending segment
		{200, 100},
		{255, 100}, // clamped to the last value
	}

	for _, tt := range tests {
		if got := interpolation.Interpolate(tt.input); got != tt.expected {
			t.Errorf("Interpolate(%d) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}
