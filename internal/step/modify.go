package step

import (
	"math"

	"github.com/MeKo-Tech/terragen/internal/grid"
)

// ModifyWithAttribute recomputes a target attribute as a blend of itself
// and a source attribute. Source values below the minimum contribute
// nothing; the result saturates at the byte range instead of wrapping.
type ModifyWithAttribute struct {
	sourceID int
	targetID int
	factor   float64
	minimum  uint8
}

// NewModifyWithAttribute creates a blend step. A negative factor
// decreases the target, a positive one increases it.
func NewModifyWithAttribute(sourceID, targetID int, factor float64, minimum uint8) ModifyWithAttribute {
	return ModifyWithAttribute{sourceID: sourceID, targetID: targetID, factor: factor, minimum: minimum}
}

func (s ModifyWithAttribute) calculateValue(source, target uint8) uint8 {
	if source < s.minimum {
		source = s.minimum
	}
	value := float64(target) + float64(source-s.minimum)*s.factor
	if value < 0 {
		return 0
	}
	if value > 255 {
		return 255
	}
	return uint8(value)
}

func (s ModifyWithAttribute) calculateValues(m *grid.Map2d) []uint8 {
	source := m.Attribute(s.sourceID)
	target := m.Attribute(s.targetID)
	length := m.Size().Area()
	values := make([]uint8, 0, length)

	for index := 0; index < length; index++ {
		values = append(values, s.calculateValue(source.Get(index), target.Get(index)))
	}

	return values
}

func (s ModifyWithAttribute) Name() string {
	if s.factor < 0 {
		return "decrease with attribute"
	}
	return "increase with attribute"
}

func (s ModifyWithAttribute) Run(m *grid.Map2d) error {
	values := s.calculateValues(m)
	m.Attribute(s.targetID).ReplaceAll(values)
	return nil
}

func (ModifyWithAttribute) sealedStep() {}

// ModifyWithAttributeData is the serializable mirror of a
// ModifyWithAttribute. The factor is stored as an integer percentage.
type ModifyWithAttributeData struct {
	Source     string `json:"source"`
	Target     string `json:"target"`
	Percentage int    `json:"percentage"`
	Minimum    uint8  `json:"minimum"`
}

// ToModifyWithAttribute validates the data and creates the step.
func (d ModifyWithAttributeData) ToModifyWithAttribute(attributeNames []string) (ModifyWithAttribute, error) {
	sourceID, err := AttributeID(d.Source, attributeNames)
	if err != nil {
		return ModifyWithAttribute{}, err
	}
	targetID, err := AttributeID(d.Target, attributeNames)
	if err != nil {
		return ModifyWithAttribute{}, err
	}
	return NewModifyWithAttribute(sourceID, targetID, float64(d.Percentage)/100.0, d.Minimum), nil
}

// Data returns the serializable mirror of the step. The percentage is
// rounded to the nearest integer, so the conversion round-trips exactly.
func (s ModifyWithAttribute) Data(attributeNames []string) ModifyWithAttributeData {
	return ModifyWithAttributeData{
		Source:     attributeNames[s.sourceID],
		Target:     attributeNames[s.targetID],
		Percentage: int(math.Round(s.factor * 100.0)),
		Minimum:    s.minimum,
	}
}
