package step

import (
	"testing"

	"github.com/MeKo-Tech/terragen/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModifyMap(t *testing.T) (*grid.Map2d, int, int) {
	t.Helper()
	m := grid.New("world", grid.NewSize2d(2, 2))
	sourceID, err := m.CreateAttributeFrom("rainfall", []uint8{0, 50, 100, 200})
	require.NoError(t, err)
	targetID, err := m.CreateAttributeFrom("height", []uint8{100, 100, 100, 100})
	require.NoError(t, err)
	return m, sourceID, targetID
}

func TestModifyWithAttributeIncrease(t *testing.T) {
	m, sourceID, targetID := testModifyMap(t)
	s := NewModifyWithAttribute(sourceID, targetID, 0.5, 50)

	require.NoError(t, s.Run(m))

	// Source values at or below the minimum of 50 contribute nothing.
	assert.Equal(t, []uint8{100, 100, 125, 175}, m.Attribute(targetID).All())
	assert.Equal(t, []uint8{0, 50, 100, 200}, m.Attribute(sourceID).All(), "source is untouched")
}

func TestModifyWithAttributeDecrease(t *testing.T) {
	m, sourceID, targetID := testModifyMap(t)
	s := NewModifyWithAttribute(sourceID, targetID, -1.0, 0)

	require.NoError(t, s.Run(m))

	// 100 - 200 saturates at 0 instead of wrapping.
	assert.Equal(t, []uint8{100, 50, 0, 0}, m.Attribute(targetID).All())
}

func TestModifyWithAttributeSaturatesHigh(t *testing.T) {
	m, sourceID, targetID := testModifyMap(t)
	s := NewModifyWithAttribute(sourceID, targetID, 2.0, 0)

	require.NoError(t, s.Run(m))

	assert.Equal(t, []uint8{100, 200, 255, 255}, m.Attribute(targetID).All())
}

func TestModifyWithAttributeDataRoundTrip(t *testing.T) {
	names := []string{"rainfall", "height"}

	tests := []ModifyWithAttributeData{
		{Source: "rainfall", Target: "height", Percentage: 50, Minimum: 10},
		{Source: "height", Target: "rainfall", Percentage: -120, Minimum: 0},
		{Source: "rainfall", Target: "height", Percentage: 29, Minimum: 255},
	}

	for _, data := range tests {
		s, err := data.ToModifyWithAttribute(names)
		require.NoError(t, err)
		assert.Equal(t, data, s.Data(names))
	}
}

func TestModifyWithAttributeDataUnknownAttribute(t *testing.T) {
	names := []string{"height"}

	_, err := ModifyWithAttributeData{Source: "rainfall", Target: "height"}.ToModifyWithAttribute(names)
	var unknown UnknownAttributeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "rainfall", unknown.Name)

	_, err = ModifyWithAttributeData{Source: "height", Target: "rainfall"}.ToModifyWithAttribute(names)
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "rainfall", unknown.Name)
}
