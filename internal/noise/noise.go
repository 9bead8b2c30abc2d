// Package noise provides a deterministic, seeded noise field for 1d and
// 2d coordinates with a configurable output range.
package noise

import (
	"fmt"

	"github.com/aquilax/go-perlin"
)

// Perlin parameters shared by every noise field. alpha is the
// persistence between octaves, beta the frequency multiplier.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// Noise generates pseudo-random values in [minValue, maxValue]. Two
// instances with the same parameters produce identical outputs for every
// coordinate.
type Noise struct {
	perlin   *perlin.Perlin
	seed     int64
	scale    uint32
	minValue uint8
	maxValue uint8
}

// New creates a noise field. It fails if minValue exceeds maxValue or
// the scale is zero.
func New(seed int64, scale uint32, minValue, maxValue uint8) (*Noise, error) {
	if minValue > maxValue {
		return nil, fmt.Errorf("noise: min value %d exceeds max value %d", minValue, maxValue)
	}
	if scale == 0 {
		return nil, fmt.Errorf("noise: scale must be positive")
	}

	return &Noise{
		perlin:   perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed),
		seed:     seed,
		scale:    scale,
		minValue: minValue,
		maxValue: maxValue,
	}, nil
}

// Generate1d generates the value of the 1d point x.
func (n *Noise) Generate1d(x uint32) uint8 {
	return n.toOutputRange(n.perlin.Noise1D(float64(x) / float64(n.scale)))
}

// Generate2d generates the value of the 2d point (x,y).
func (n *Noise) Generate2d(x, y uint32) uint8 {
	return n.toOutputRange(n.perlin.Noise2D(float64(x)/float64(n.scale), float64(y)/float64(n.scale)))
}

// toOutputRange maps a raw noise value from roughly [-1,1] into
// [minValue, maxValue], clamping the ends.
func (n *Noise) toOutputRange(value float64) uint8 {
	normalized := (value + 1.0) / 2.0
	if normalized < 0 {
		normalized = 0
	} else if normalized > 1 {
		normalized = 1
	}
	return n.minValue + uint8(normalized*float64(n.maxValue-n.minValue))
}

// Data is the serializable mirror of a Noise field.
type Data struct {
	Seed     int64  `json:"seed"`
	Scale    uint32 `json:"scale"`
	MinValue uint8  `json:"min_value"`
	MaxValue uint8  `json:"max_value"`
}

// ToNoise validates the data and creates the noise field.
func (d Data) ToNoise() (*Noise, error) {
	return New(d.Seed, d.Scale, d.MinValue, d.MaxValue)
}

// Data returns the serializable mirror of the noise field.
func (n *Noise) Data() Data {
	return Data{Seed: n.seed, Scale: n.scale, MinValue: n.minValue, MaxValue: n.maxValue}
}
