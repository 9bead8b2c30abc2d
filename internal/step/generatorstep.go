package step

import (
	"github.com/MeKo-Tech/terragen/internal/generator"
	"github.com/MeKo-Tech/terragen/internal/grid"
)

// GeneratorStep fills an attribute with the values of a Generator2d
// evaluated at every cell.
type GeneratorStep struct {
	attributeID int
	generator   generator.Generator2d
}

// NewGeneratorStep creates a step filling the attribute with the id.
func NewGeneratorStep(attributeID int, gen generator.Generator2d) GeneratorStep {
	return GeneratorStep{attributeID: attributeID, generator: gen}
}

func (s GeneratorStep) Name() string {
	return "fill with generator"
}

func (s GeneratorStep) Run(m *grid.Map2d) error {
	size := m.Size()
	values := make([]uint8, 0, size.Area())

	for y := uint32(0); y < size.Height; y++ {
		for x := uint32(0); x < size.Width; x++ {
			values = append(values, s.generator.Generate(x, y))
		}
	}

	m.Attribute(s.attributeID).ReplaceAll(values)
	return nil
}

func (GeneratorStep) sealedStep() {}

// GeneratorStepData is the serializable mirror of a GeneratorStep.
type GeneratorStepData struct {
	Attribute string                    `json:"attribute"`
	Generator generator.Generator2dData `json:"generator"`
}

// ToGeneratorStep validates the data and creates the step.
func (d GeneratorStepData) ToGeneratorStep(attributeNames []string) (GeneratorStep, error) {
	id, err := AttributeID(d.Attribute, attributeNames)
	if err != nil {
		return GeneratorStep{}, err
	}
	gen, err := d.Generator.ToGenerator2d()
	if err != nil {
		return GeneratorStep{}, err
	}
	return NewGeneratorStep(id, gen), nil
}

// Data returns the serializable mirror of the step.
func (s GeneratorStep) Data(attributeNames []string) GeneratorStepData {
	return GeneratorStepData{
		Attribute: attributeNames[s.attributeID],
		Generator: generator.Data2d(s.generator),
	}
}
