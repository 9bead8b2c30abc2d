package interpolate

import "fmt"

// Entry is a control point of a VectorInterpolation.
type Entry[T Value[T]] struct {
	Threshold uint8
	Value     T
}

// VectorInterpolation interpolates between an ordered list of control
// points. Inputs below the first threshold clamp to the first value,
// inputs above the last threshold clamp to the last value.
type VectorInterpolation[T Value[T]] struct {
	entries []Entry[T]
}

// NewVectorInterpolation validates the control points. It requires at
// least 2 entries with strictly ascending thresholds.
func NewVectorInterpolation[T Value[T]](entries []Entry[T]) (VectorInterpolation[T], error) {
	if len(entries) < 2 {
		return VectorInterpolation[T]{}, fmt.Errorf("interpolation requires at least 2 entries, got %d", len(entries))
	}

	last := entries[0].Threshold
	for _, entry := range entries[1:] {
		if entry.Threshold <= last {
			return VectorInterpolation[T]{}, fmt.Errorf("interpolation thresholds must be strictly ascending, got %d after %d", entry.Threshold, last)
		}
		last = entry.Threshold
	}

	return VectorInterpolation[T]{entries: entries}, nil
}

// Entries returns the control points.
func (v VectorInterpolation[T]) Entries() []Entry[T] {
	return v.entries
}

// Interpolate maps the input to a value between the surrounding control
// points.
func (v VectorInterpolation[T]) Interpolate(input uint8) T {
	first := v.entries[0]
	if input <= first.Threshold {
		return first.Value
	}

	previous := first
	for _, entry := range v.entries[1:] {
		if input <= entry.Threshold {
			distance := float64(input-previous.Threshold) / float64(entry.Threshold-previous.Threshold)
			return previous.Value.Lerp(entry.Value, distance)
		}
		previous = entry
	}

	return previous.Value
}
