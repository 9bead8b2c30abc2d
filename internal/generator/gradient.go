package generator

import (
	"fmt"

	"github.com/MeKo-Tech/terragen/internal/interpolate"
)

// Gradient is a linear ramp between two values over a coordinate range.
// The ramp saturates at valueEnd, it never extrapolates past it.
type Gradient struct {
	valueStart uint8
	valueEnd   uint8
	start      uint32
	length     uint32
}

// NewGradient creates a gradient. It fails if the length is zero.
func NewGradient(valueStart, valueEnd uint8, start, length uint32) (Gradient, error) {
	if length == 0 {
		return Gradient{}, fmt.Errorf("gradient: length must be positive")
	}
	return Gradient{valueStart: valueStart, valueEnd: valueEnd, start: start, length: length}, nil
}

// Generate returns valueStart for every input at or before start and
// ramps towards valueEnd over length units after it.
func (g Gradient) Generate(input uint32) uint8 {
	if input <= g.start {
		return g.valueStart
	}
	factor := float64(input-g.start) / float64(g.length)
	return interpolate.Lerp(g.valueStart, g.valueEnd, factor)
}

// GenerateAbsolute ramps symmetrically in both directions from start,
// producing a V-shaped profile.
func (g Gradient) GenerateAbsolute(input uint32) uint8 {
	factor := float64(AbsDiff(g.start, input)) / float64(g.length)
	return interpolate.Lerp(g.valueStart, g.valueEnd, factor)
}

// GradientData is the serializable mirror of a Gradient.
type GradientData struct {
	ValueStart uint8  `json:"value_start"`
	ValueEnd   uint8  `json:"value_end"`
	Start      uint32 `json:"start"`
	Length     uint32 `json:"length"`
}

// ToGradient validates the data and creates the gradient.
func (d GradientData) ToGradient() (Gradient, error) {
	return NewGradient(d.ValueStart, d.ValueEnd, d.Start, d.Length)
}

// Data returns the serializable mirror of the gradient.
func (g Gradient) Data() GradientData {
	return GradientData{ValueStart: g.valueStart, ValueEnd: g.valueEnd, Start: g.start, Length: g.length}
}
