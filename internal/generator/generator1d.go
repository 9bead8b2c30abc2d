package generator

import (
	"fmt"

	"github.com/MeKo-Tech/terragen/internal/noise"
)

// Generator1d generates a value for each 1d input. The variant set is
// closed; conversions match it exhaustively.
type Generator1d interface {
	// Generate returns the value of the 1d point. It is total over the
	// whole uint32 domain.
	Generate(input uint32) uint8

	sealed1d()
}

// InputAsOutput returns the input itself, saturated at 255.
type InputAsOutput struct{}

func (InputAsOutput) Generate(input uint32) uint8 {
	if input > 255 {
		return 255
	}
	return uint8(input)
}

// Constant returns the same value for every input.
type Constant struct {
	Value uint8
}

func (c Constant) Generate(uint32) uint8 {
	return c.Value
}

// GradientRamp generates a left-clamped linear ramp.
type GradientRamp struct {
	Gradient Gradient
}

func (g GradientRamp) Generate(input uint32) uint8 {
	return g.Gradient.Generate(input)
}

// AbsoluteGradientRamp generates a V-shaped ramp centered on the
// gradient's start.
type AbsoluteGradientRamp struct {
	Gradient Gradient
}

func (g AbsoluteGradientRamp) Generate(input uint32) uint8 {
	return g.Gradient.GenerateAbsolute(input)
}

// Noise1d generates 1d noise.
type Noise1d struct {
	Noise *noise.Noise
}

func (n Noise1d) Generate(input uint32) uint8 {
	return n.Noise.Generate1d(input)
}

func (InputAsOutput) sealed1d()        {}
func (Constant) sealed1d()             {}
func (GradientRamp) sealed1d()         {}
func (AbsoluteGradientRamp) sealed1d() {}
func (Noise1d) sealed1d()              {}

// Variant names used by Generator1dData.
const (
	Type1dInputAsOutput    = "input_as_output"
	Type1dConstant         = "constant"
	Type1dGradient         = "gradient"
	Type1dAbsoluteGradient = "absolute_gradient"
	Type1dNoise            = "noise"
)

// Generator1dData is the serializable mirror of a Generator1d. Exactly
// the payload matching Type is set.
type Generator1dData struct {
	Type     string        `json:"type"`
	Value    uint8         `json:"value,omitempty"`
	Gradient *GradientData `json:"gradient,omitempty"`
	Noise    *noise.Data   `json:"noise,omitempty"`
}

// ToGenerator1d validates the data and creates the generator.
func (d Generator1dData) ToGenerator1d() (Generator1d, error) {
	switch d.Type {
	case Type1dInputAsOutput:
		return InputAsOutput{}, nil
	case Type1dConstant:
		return Constant{Value: d.Value}, nil
	case Type1dGradient, Type1dAbsoluteGradient:
		if d.Gradient == nil {
			return nil, fmt.Errorf("generator %q: missing gradient", d.Type)
		}
		gradient, err := d.Gradient.ToGradient()
		if err != nil {
			return nil, fmt.Errorf("generator %q: %w", d.Type, err)
		}
		if d.Type == Type1dAbsoluteGradient {
			return AbsoluteGradientRamp{Gradient: gradient}, nil
		}
		return GradientRamp{Gradient: gradient}, nil
	case Type1dNoise:
		if d.Noise == nil {
			return nil, fmt.Errorf("generator %q: missing noise", d.Type)
		}
		n, err := d.Noise.ToNoise()
		if err != nil {
			return nil, fmt.Errorf("generator %q: %w", d.Type, err)
		}
		return Noise1d{Noise: n}, nil
	default:
		return nil, fmt.Errorf("unknown 1d generator type %q", d.Type)
	}
}

// Data1d returns the serializable mirror of a generator.
func Data1d(g Generator1d) Generator1dData {
	switch g := g.(type) {
	case InputAsOutput:
		return Generator1dData{Type: Type1dInputAsOutput}
	case Constant:
		return Generator1dData{Type: Type1dConstant, Value: g.Value}
	case GradientRamp:
		data := g.Gradient.Data()
		return Generator1dData{Type: Type1dGradient, Gradient: &data}
	case AbsoluteGradientRamp:
		data := g.Gradient.Data()
		return Generator1dData{Type: Type1dAbsoluteGradient, Gradient: &data}
	case Noise1d:
		data := g.Noise.Data()
		return Generator1dData{Type: Type1dNoise, Noise: &data}
	default:
		panic(fmt.Sprintf("unknown 1d generator %T", g))
	}
}
