package step

import (
	"encoding/json"
	"testing"

	"github.com/MeKo-Tech/terragen/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeID(t *testing.T) {
	names := []string{"height", "rainfall", "temperature"}

	for i, name := range names {
		id, err := AttributeID(name, names)
		require.NoError(t, err)
		assert.Equal(t, i, id)
	}

	_, err := AttributeID("biome", names)
	var unknown UnknownAttributeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "biome", unknown.Name)
}

func TestDataToStepEmpty(t *testing.T) {
	_, err := Data{}.ToStep(&[]string{})
	assert.Error(t, err)
}

// ToStep followed by ToData must reproduce the original data, including
// the name list changes of attribute-creating steps.
func TestStepDataRoundTrip(t *testing.T) {
	identity := generator.Generator1dData{Type: generator.Type1dInputAsOutput}
	noise2d := generator.Generator2dData{Type: generator.Type2dApplyToX, Generator: &identity}

	steps := []Data{
		{CreateAttribute: &CreateAttributeData{Name: "height", Default: 0}},
		{Generator: &GeneratorStepData{Attribute: "height", Generator: noise2d}},
		{DistortAlongX: &Distortion1dData{Attribute: "height", Generator: identity}},
		{DistortAlongY: &Distortion1dData{Attribute: "height", Generator: identity}},
		{CreateAttribute: &CreateAttributeData{Name: "rainfall", Default: 128}},
		{ModifyWithAttribute: &ModifyWithAttributeData{Source: "rainfall", Target: "height", Percentage: -40, Minimum: 10}},
	}

	names := []string{}
	converted := make([]Step, 0, len(steps))
	for _, data := range steps {
		s, err := data.ToStep(&names)
		require.NoError(t, err)
		converted = append(converted, s)
	}
	assert.Equal(t, []string{"height", "rainfall"}, names)

	backNames := []string{}
	for i, s := range converted {
		assert.Equal(t, steps[i], ToData(s, &backNames), "step %d", i)
	}
	assert.Equal(t, names, backNames)
}

func TestStepDataJSONRoundTrip(t *testing.T) {
	data := Data{
		DistortAlongX: &Distortion1dData{
			Attribute: "height",
			Generator: generator.Generator1dData{Type: generator.Type1dConstant, Value: 3},
		},
	}

	encoded, err := json.Marshal(data)
	require.NoError(t, err)

	var decoded Data
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, data, decoded)
}

func TestDataToStepValidatesAgainstEvolvingNames(t *testing.T) {
	names := []string{}

	// Referencing an attribute before a CreateAttribute step fails.
	_, err := Data{DistortAlongX: &Distortion1dData{
		Attribute: "height",
		Generator: generator.Generator1dData{Type: generator.Type1dInputAsOutput},
	}}.ToStep(&names)
	assert.Error(t, err)

	_, err = Data{CreateAttribute: &CreateAttributeData{Name: "height"}}.ToStep(&names)
	require.NoError(t, err)

	// Now the name resolves.
	_, err = Data{DistortAlongX: &Distortion1dData{
		Attribute: "height",
		Generator: generator.Generator1dData{Type: generator.Type1dInputAsOutput},
	}}.ToStep(&names)
	assert.NoError(t, err)

	// Duplicate creation is rejected at validation time.
	_, err = Data{CreateAttribute: &CreateAttributeData{Name: "height"}}.ToStep(&names)
	assert.Error(t, err)
}
