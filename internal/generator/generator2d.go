package generator

import (
	"fmt"

	"github.com/MeKo-Tech/terragen/internal/grid"
	"github.com/MeKo-Tech/terragen/internal/noise"
)

// Generator2d generates a value for each 2d point. Used for the
// procedural generation of 2d maps.
type Generator2d interface {
	// Generate returns the value of the 2d point (x,y).
	Generate(x, y uint32) uint8

	sealed2d()
}

// ApplyToX feeds the x coordinate to a Generator1d, ignoring y.
type ApplyToX struct {
	Generator Generator1d
}

func (g ApplyToX) Generate(x, _ uint32) uint8 {
	return g.Generator.Generate(x)
}

// ApplyToY feeds the y coordinate to a Generator1d, ignoring x.
type ApplyToY struct {
	Generator Generator1d
}

func (g ApplyToY) Generate(_, y uint32) uint8 {
	return g.Generator.Generate(y)
}

// ApplyToDistance feeds the rounded Euclidean distance from a center
// point to a Generator1d.
type ApplyToDistance struct {
	Generator Generator1d
	CenterX   uint32
	CenterY   uint32
}

func (g ApplyToDistance) Generate(x, y uint32) uint8 {
	return g.Generator.Generate(Distance(g.CenterX, g.CenterY, x, y))
}

// IndexGenerator returns the saturating linear index of each point,
// truncated to a byte. Intended for debugging & visualization.
type IndexGenerator struct {
	Size grid.Size2d
}

func (g IndexGenerator) Generate(x, y uint32) uint8 {
	return uint8(g.Size.SaturatingToIndex(x, y))
}

// Noise2d generates 2d noise.
type Noise2d struct {
	Noise *noise.Noise
}

func (g Noise2d) Generate(x, y uint32) uint8 {
	return g.Noise.Generate2d(x, y)
}

func (ApplyToX) sealed2d()        {}
func (ApplyToY) sealed2d()        {}
func (ApplyToDistance) sealed2d() {}
func (IndexGenerator) sealed2d()  {}
func (Noise2d) sealed2d()         {}

// Variant names used by Generator2dData.
const (
	Type2dApplyToX        = "apply_to_x"
	Type2dApplyToY        = "apply_to_y"
	Type2dApplyToDistance = "apply_to_distance"
	Type2dIndex           = "index"
	Type2dNoise           = "noise"
)

// Generator2dData is the serializable mirror of a Generator2d.
type Generator2dData struct {
	Type      string           `json:"type"`
	Generator *Generator1dData `json:"generator,omitempty"`
	CenterX   uint32           `json:"center_x,omitempty"`
	CenterY   uint32           `json:"center_y,omitempty"`
	Size      *grid.Size2d     `json:"size,omitempty"`
	Noise     *noise.Data      `json:"noise,omitempty"`
}

// ToGenerator2d validates the data and creates the generator. Invalid
// nested generator parameters fail the whole conversion.
func (d Generator2dData) ToGenerator2d() (Generator2d, error) {
	switch d.Type {
	case Type2dApplyToX, Type2dApplyToY, Type2dApplyToDistance:
		if d.Generator == nil {
			return nil, fmt.Errorf("generator %q: missing 1d generator", d.Type)
		}
		inner, err := d.Generator.ToGenerator1d()
		if err != nil {
			return nil, fmt.Errorf("generator %q: %w", d.Type, err)
		}
		switch d.Type {
		case Type2dApplyToX:
			return ApplyToX{Generator: inner}, nil
		case Type2dApplyToY:
			return ApplyToY{Generator: inner}, nil
		default:
			return ApplyToDistance{Generator: inner, CenterX: d.CenterX, CenterY: d.CenterY}, nil
		}
	case Type2dIndex:
		if d.Size == nil {
			return nil, fmt.Errorf("generator %q: missing size", d.Type)
		}
		return IndexGenerator{Size: *d.Size}, nil
	case Type2dNoise:
		if d.Noise == nil {
			return nil, fmt.Errorf("generator %q: missing noise", d.Type)
		}
		n, err := d.Noise.ToNoise()
		if err != nil {
			return nil, fmt.Errorf("generator %q: %w", d.Type, err)
		}
		return Noise2d{Noise: n}, nil
	default:
		return nil, fmt.Errorf("unknown 2d generator type %q", d.Type)
	}
}

// Data2d returns the serializable mirror of a generator.
func Data2d(g Generator2d) Generator2dData {
	switch g := g.(type) {
	case ApplyToX:
		data := Data1d(g.Generator)
		return Generator2dData{Type: Type2dApplyToX, Generator: &data}
	case ApplyToY:
		data := Data1d(g.Generator)
		return Generator2dData{Type: Type2dApplyToY, Generator: &data}
	case ApplyToDistance:
		data := Data1d(g.Generator)
		return Generator2dData{Type: Type2dApplyToDistance, Generator: &data, CenterX: g.CenterX, CenterY: g.CenterY}
	case IndexGenerator:
		size := g.Size
		return Generator2dData{Type: Type2dIndex, Size: &size}
	case Noise2d:
		data := g.Noise.Data()
		return Generator2dData{Type: Type2dNoise, Noise: &data}
	default:
		panic(fmt.Sprintf("unknown 2d generator %T", g))
	}
}
