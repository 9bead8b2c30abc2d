package step

import (
	"github.com/MeKo-Tech/terragen/internal/generator"
	"github.com/MeKo-Tech/terragen/internal/grid"
)

// Distortion1d shifts each row or column of an attribute by an amount
// derived from a Generator1d evaluated at the row's or column's
// coordinate. The vacated edge is filled with the line's original first
// value; values shifted past the far edge are dropped.
type Distortion1d struct {
	attributeID int
	generator   generator.Generator1d
}

// NewDistortion1d creates a distortion of the attribute with the id.
func NewDistortion1d(attributeID int, gen generator.Generator1d) Distortion1d {
	return Distortion1d{attributeID: attributeID, generator: gen}
}

func (d Distortion1d) distortRow(attribute *grid.Attribute, y uint32, shift uint8, values []uint8) []uint8 {
	size := attribute.Size()
	start := size.ToIndexRisky(0, y)
	startValue := attribute.Get(start)

	fill := uint32(shift)
	if fill > size.Width {
		fill = size.Width
	}

	for x := uint32(0); x < fill; x++ {
		values = append(values, startValue)
	}

	remaining := size.Width - fill

	for x := 0; x < int(remaining); x++ {
		values = append(values, attribute.Get(start+x))
	}

	return values
}

// DistortMapAlongX computes the distorted buffer without touching the
// map. The shift of row y is generator(y).
func (d Distortion1d) DistortMapAlongX(m *grid.Map2d) []uint8 {
	attribute := m.Attribute(d.attributeID)
	values := make([]uint8, 0, m.Size().Area())

	for y := uint32(0); y < m.Size().Height; y++ {
		shift := d.generator.Generate(y)
		values = d.distortRow(attribute, y, shift, values)
	}

	return values
}

func (d Distortion1d) distortColumn(attribute *grid.Attribute, x uint32, shift uint8, values []uint8) {
	size := attribute.Size()
	start := size.ToIndexRisky(x, 0)
	startValue := attribute.Get(start)
	width := int(size.Width)
	index := start

	fill := uint32(shift)
	if fill > size.Height {
		fill = size.Height
	}

	for y := uint32(0); y < fill; y++ {
		values[index] = startValue
		index += width
	}

	remaining := size.Height - fill

	sourceIndex := start
	for y := uint32(0); y < remaining; y++ {
		values[index] = attribute.Get(sourceIndex)
		index += width
		sourceIndex += width
	}
}

// DistortMapAlongY computes the distorted buffer without touching the
// map. The shift of column x is generator(x).
func (d Distortion1d) DistortMapAlongY(m *grid.Map2d) []uint8 {
	attribute := m.Attribute(d.attributeID)
	values := make([]uint8, m.Size().Area())

	for x := uint32(0); x < m.Size().Width; x++ {
		shift := d.generator.Generate(x)
		d.distortColumn(attribute, x, shift, values)
	}

	return values
}

// Distortion1dData is the serializable mirror of a Distortion1d.
type Distortion1dData struct {
	Attribute string                    `json:"attribute"`
	Generator generator.Generator1dData `json:"generator"`
}

// ToDistortion1d validates the data and creates the distortion.
func (d Distortion1dData) ToDistortion1d(attributeNames []string) (Distortion1d, error) {
	id, err := AttributeID(d.Attribute, attributeNames)
	if err != nil {
		return Distortion1d{}, err
	}
	gen, err := d.Generator.ToGenerator1d()
	if err != nil {
		return Distortion1d{}, err
	}
	return NewDistortion1d(id, gen), nil
}

// Data returns the serializable mirror of the distortion.
func (d Distortion1d) Data(attributeNames []string) Distortion1dData {
	return Distortion1dData{
		Attribute: attributeNames[d.attributeID],
		Generator: generator.Data1d(d.generator),
	}
}

// DistortAlongX shifts each row of the attribute along the x-axis.
type DistortAlongX struct {
	Distortion Distortion1d
}

func (s DistortAlongX) Name() string {
	return "distort along x"
}

func (s DistortAlongX) Run(m *grid.Map2d) error {
	values := s.Distortion.DistortMapAlongX(m)
	m.Attribute(s.Distortion.attributeID).ReplaceAll(values)
	return nil
}

// DistortAlongY shifts each column of the attribute along the y-axis.
type DistortAlongY struct {
	Distortion Distortion1d
}

func (s DistortAlongY) Name() string {
	return "distort along y"
}

func (s DistortAlongY) Run(m *grid.Map2d) error {
	values := s.Distortion.DistortMapAlongY(m)
	m.Attribute(s.Distortion.attributeID).ReplaceAll(values)
	return nil
}

func (DistortAlongX) sealedStep() {}
func (DistortAlongY) sealedStep() {}
