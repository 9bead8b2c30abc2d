// Package selector maps a byte input to an interpolated or looked-up
// output value.
package selector

import (
	"github.com/MeKo-Tech/terragen/internal/interpolate"
)

// Byte is a byte output value for selectors.
type Byte uint8

// Lerp implements interpolate.Value.
func (b Byte) Lerp(other Byte, factor float64) Byte {
	return Byte(interpolate.Lerp(uint8(b), uint8(other), factor))
}

// Selector picks an output of type T based on a byte input. Get is total
// over all 256 inputs for every variant. The variant set is closed.
type Selector[T interpolate.Value[T]] interface {
	// Get selects the output for the input.
	Get(input uint8) T

	sealedSelector()
}

// Const always returns the same value.
type Const[T interpolate.Value[T]] struct {
	Value T
}

func (s Const[T]) Get(uint8) T {
	return s.Value
}

// InterpolatePair blends two values linearly across the whole byte
// range.
type InterpolatePair[T interpolate.Value[T]] struct {
	First  T
	Second T
}

func (s InterpolatePair[T]) Get(input uint8) T {
	return s.First.Lerp(s.Second, float64(input)/255.0)
}

// InterpolateVector interpolates between an ordered list of control
// points, clamping at both ends.
type InterpolateVector[T interpolate.Value[T]] struct {
	interpolation interpolate.VectorInterpolation[T]
}

// NewInterpolateVector validates the control points. It requires at
// least 2 entries with strictly ascending thresholds.
func NewInterpolateVector[T interpolate.Value[T]](entries []interpolate.Entry[T]) (InterpolateVector[T], error) {
	interpolation, err := interpolate.NewVectorInterpolation(entries)
	if err != nil {
		return InterpolateVector[T]{}, err
	}
	return InterpolateVector[T]{interpolation: interpolation}, nil
}

func (s InterpolateVector[T]) Get(input uint8) T {
	return s.interpolation.Interpolate(input)
}

// Entries returns the control points.
func (s InterpolateVector[T]) Entries() []interpolate.Entry[T] {
	return s.interpolation.Entries()
}

// Lookup returns the exact match from the mapping or the default value.
// No interpolation.
type Lookup[T interpolate.Value[T]] struct {
	Mapping map[uint8]T
	Default T
}

func (s Lookup[T]) Get(input uint8) T {
	if value, ok := s.Mapping[input]; ok {
		return value
	}
	return s.Default
}

func (Const[T]) sealedSelector()             {}
func (InterpolatePair[T]) sealedSelector()   {}
func (InterpolateVector[T]) sealedSelector() {}
func (Lookup[T]) sealedSelector()            {}
