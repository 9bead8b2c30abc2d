package step

import (
	"testing"

	"github.com/MeKo-Tech/terragen/internal/generator"
	"github.com/MeKo-Tech/terragen/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorStepFillsAttribute(t *testing.T) {
	m := grid.New("world", grid.NewSize2d(2, 3))
	id, err := m.CreateAttribute("index", 0)
	require.NoError(t, err)

	s := NewGeneratorStep(id, generator.IndexGenerator{Size: m.Size()})
	require.NoError(t, s.Run(m))

	assert.Equal(t, []uint8{0, 1, 2, 3, 4, 5}, m.Attribute(id).All())
}

func TestGeneratorStepAppliesAlongY(t *testing.T) {
	m := grid.New("world", grid.NewSize2d(3, 2))
	id, err := m.CreateAttribute("ramp", 0)
	require.NoError(t, err)

	s := NewGeneratorStep(id, generator.ApplyToY{Generator: generator.Constant{Value: 7}})
	require.NoError(t, s.Run(m))

	assert.Equal(t, []uint8{7, 7, 7, 7, 7, 7}, m.Attribute(id).All())
}

func TestGeneratorStepDataRoundTrip(t *testing.T) {
	names := []string{"height"}
	inner := generator.Generator1dData{Type: generator.Type1dInputAsOutput}
	data := GeneratorStepData{
		Attribute: "height",
		Generator: generator.Generator2dData{Type: generator.Type2dApplyToDistance, Generator: &inner, CenterX: 5, CenterY: 9},
	}

	s, err := data.ToGeneratorStep(names)
	require.NoError(t, err)
	assert.Equal(t, data, s.Data(names))
}

func TestGeneratorStepDataInvalid(t *testing.T) {
	inner := generator.Generator1dData{Type: generator.Type1dInputAsOutput}
	valid := generator.Generator2dData{Type: generator.Type2dApplyToX, Generator: &inner}

	_, err := GeneratorStepData{Attribute: "missing", Generator: valid}.ToGeneratorStep([]string{"height"})
	assert.Error(t, err)

	_, err = GeneratorStepData{Attribute: "height", Generator: generator.Generator2dData{Type: "nonsense"}}.ToGeneratorStep([]string{"height"})
	assert.Error(t, err)
}
