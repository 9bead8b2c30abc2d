// Package interpolate provides the numeric interpolation primitives used
// by generators and selectors.
package interpolate

// Value is a copyable quantity that supports linear interpolation.
type Value[T any] interface {
	comparable
	Lerp(other T, factor float64) T
}

// Lerp linearly interpolates between two bytes. The factor is clamped to
// [0,1], so the result always lies between start and end.
func Lerp(start, end uint8, factor float64) uint8 {
	if factor <= 0 {
		return start
	}
	if factor >= 1 {
		return end
	}
	return uint8(float64(start) + (float64(end)-float64(start))*factor)
}
