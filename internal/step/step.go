// Package step provides the generation steps that transform the named
// attributes of a 2d map. Steps are created from serializable Data
// mirrors that reference attributes by name; the conversion validates
// names & parameters once, so a runtime step cannot fail during
// execution.
package step

import (
	"fmt"
	"slices"

	"github.com/MeKo-Tech/terragen/internal/grid"
)

// Step transforms one attribute of a map by replacing its whole value
// buffer. The variant set is closed.
type Step interface {
	// Name returns a short description for logging.
	Name() string

	// Run executes the step.
	Run(m *grid.Map2d) error

	sealedStep()
}

// UnknownAttributeError reports a step referencing an attribute name
// that does not exist.
type UnknownAttributeError struct {
	Name string
}

func (e UnknownAttributeError) Error() string {
	return fmt.Sprintf("unknown attribute %q", e.Name)
}

// AttributeID resolves an attribute name to its positional id. Every
// step conversion goes through this single chokepoint.
func AttributeID(name string, attributeNames []string) (int, error) {
	id := slices.Index(attributeNames, name)
	if id < 0 {
		return 0, UnknownAttributeError{Name: name}
	}
	return id, nil
}

// Data is the serializable mirror of a Step. Exactly one field is set.
type Data struct {
	CreateAttribute     *CreateAttributeData     `json:"create_attribute,omitempty"`
	DistortAlongX       *Distortion1dData        `json:"distort_along_x,omitempty"`
	DistortAlongY       *Distortion1dData        `json:"distort_along_y,omitempty"`
	Generator           *GeneratorStepData       `json:"generator,omitempty"`
	ModifyWithAttribute *ModifyWithAttributeData `json:"modify_with_attribute,omitempty"`
}

// ToStep validates the data against the attribute names known at this
// point of a pipeline and creates the runtime step. Steps that create an
// attribute append its name, so later steps can reference it.
func (d Data) ToStep(attributeNames *[]string) (Step, error) {
	switch {
	case d.CreateAttribute != nil:
		s, err := d.CreateAttribute.ToStep(attributeNames)
		if err != nil {
			return nil, err
		}
		return s, nil
	case d.DistortAlongX != nil:
		distortion, err := d.DistortAlongX.ToDistortion1d(*attributeNames)
		if err != nil {
			return nil, fmt.Errorf("distort along x: %w", err)
		}
		return DistortAlongX{Distortion: distortion}, nil
	case d.DistortAlongY != nil:
		distortion, err := d.DistortAlongY.ToDistortion1d(*attributeNames)
		if err != nil {
			return nil, fmt.Errorf("distort along y: %w", err)
		}
		return DistortAlongY{Distortion: distortion}, nil
	case d.Generator != nil:
		s, err := d.Generator.ToGeneratorStep(*attributeNames)
		if err != nil {
			return nil, fmt.Errorf("generator step: %w", err)
		}
		return s, nil
	case d.ModifyWithAttribute != nil:
		s, err := d.ModifyWithAttribute.ToModifyWithAttribute(*attributeNames)
		if err != nil {
			return nil, fmt.Errorf("modify with attribute: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("empty step data")
	}
}

// ToData converts a runtime step back to its serializable mirror. It is
// the inverse of Data.ToStep and maintains the attribute name list the
// same way.
func ToData(s Step, attributeNames *[]string) Data {
	switch s := s.(type) {
	case CreateAttribute:
		data := s.Data()
		*attributeNames = append(*attributeNames, s.AttributeName())
		return Data{CreateAttribute: &data}
	case DistortAlongX:
		data := s.Distortion.Data(*attributeNames)
		return Data{DistortAlongX: &data}
	case DistortAlongY:
		data := s.Distortion.Data(*attributeNames)
		return Data{DistortAlongY: &data}
	case GeneratorStep:
		data := s.Data(*attributeNames)
		return Data{Generator: &data}
	case ModifyWithAttribute:
		data := s.Data(*attributeNames)
		return Data{ModifyWithAttribute: &data}
	default:
		panic(fmt.Sprintf("unknown step %T", s))
	}
}
