package generator

import (
	"testing"

	"github.com/MeKo-Tech/terragen/internal/noise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputAsOutput(t *testing.T) {
	g := InputAsOutput{}

	assert.Equal(t, uint8(0), g.Generate(0))
	assert.Equal(t, uint8(128), g.Generate(128))
	assert.Equal(t, uint8(255), g.Generate(255))
	assert.Equal(t, uint8(255), g.Generate(256), "saturates above the byte range")
	assert.Equal(t, uint8(255), g.Generate(4000000000))
}

func TestConstant(t *testing.T) {
	g := Constant{Value: 99}

	for _, input := range []uint32{0, 1, 255, 1 << 30} {
		assert.Equal(t, uint8(99), g.Generate(input))
	}
}

func TestGradientRampGenerators(t *testing.T) {
	gradient, err := NewGradient(0, 200, 0, 100)
	require.NoError(t, err)

	ramp := GradientRamp{Gradient: gradient}
	assert.Equal(t, uint8(0), ramp.Generate(0))
	assert.Equal(t, uint8(100), ramp.Generate(50))
	assert.Equal(t, uint8(200), ramp.Generate(100))

	absolute := AbsoluteGradientRamp{Gradient: gradient}
	assert.Equal(t, uint8(0), absolute.Generate(0))
	assert.Equal(t, uint8(100), absolute.Generate(50))
}

func TestGenerator1dDataRoundTrip(t *testing.T) {
	gradient := GradientData{ValueStart: 0, ValueEnd: 255, Start: 1000, Length: 500}
	noiseData := noise.Data{Seed: 300, Scale: 5, MinValue: 10, MaxValue: 128}

	tests := []Generator1dData{
		{Type: Type1dInputAsOutput},
		{Type: Type1dConstant, Value: 66},
		{Type: Type1dGradient, Gradient: &gradient},
		{Type: Type1dAbsoluteGradient, Gradient: &gradient},
		{Type: Type1dNoise, Noise: &noiseData},
	}

	for _, data := range tests {
		t.Run(data.Type, func(t *testing.T) {
			g, err := data.ToGenerator1d()
			require.NoError(t, err)
			assert.Equal(t, data, Data1d(g))
		})
	}
}

func TestGenerator1dDataInvalid(t *testing.T) {
	badNoise := noise.Data{Seed: 1, Scale: 4, MinValue: 200, MaxValue: 100}
	badGradient := GradientData{ValueStart: 0, ValueEnd: 255, Start: 0, Length: 0}

	tests := []struct {
		name string
		data Generator1dData
	}{
		{"unknown type", Generator1dData{Type: "nonsense"}},
		{"missing gradient", Generator1dData{Type: Type1dGradient}},
		{"missing noise", Generator1dData{Type: Type1dNoise}},
		{"invalid noise", Generator1dData{Type: Type1dNoise, Noise: &badNoise}},
		{"invalid gradient", Generator1dData{Type: Type1dGradient, Gradient: &badGradient}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.data.ToGenerator1d()
			assert.Error(t, err)
		})
	}
}
