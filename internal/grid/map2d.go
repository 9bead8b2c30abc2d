package grid

import "fmt"

// Map2d owns an ordered collection of same-sized attributes. An
// attribute's id is its position in the collection, assigned at creation
// and never reused; attributes cannot be removed.
type Map2d struct {
	name       string
	size       Size2d
	attributes []Attribute
}

// New creates an empty map.
func New(name string, size Size2d) *Map2d {
	return &Map2d{name: name, size: size}
}

// Name returns the map's name.
func (m *Map2d) Name() string {
	return m.name
}

// Size returns the map's size, shared by all attributes.
func (m *Map2d) Size() Size2d {
	return m.size
}

// CreateAttribute adds an attribute with every cell set to the default
// value and returns its id.
func (m *Map2d) CreateAttribute(name string, defaultValue uint8) (int, error) {
	values := make([]uint8, m.size.Area())
	for i := range values {
		values[i] = defaultValue
	}
	return m.CreateAttributeFrom(name, values)
}

// CreateAttributeFrom adds an attribute with the given values and
// returns its id. It fails if the name is taken or the buffer does not
// cover the map.
func (m *Map2d) CreateAttributeFrom(name string, values []uint8) (int, error) {
	for _, attribute := range m.attributes {
		if attribute.name == name {
			return 0, fmt.Errorf("map %q already has an attribute %q", m.name, name)
		}
	}
	if len(values) != m.size.Area() {
		return 0, fmt.Errorf("attribute %q: %d values do not cover a %s map", name, len(values), m.size)
	}

	id := len(m.attributes)
	m.attributes = append(m.attributes, newAttribute(name, m.size, values))
	return id, nil
}

// Attribute returns the attribute with the given id for reading.
func (m *Map2d) Attribute(id int) *Attribute {
	return &m.attributes[id]
}

// AttributeNames returns the names of all attributes in id order.
func (m *Map2d) AttributeNames() []string {
	names := make([]string, len(m.attributes))
	for i, attribute := range m.attributes {
		names[i] = attribute.name
	}
	return names
}

// AttributeCount returns the number of attributes.
func (m *Map2d) AttributeCount() int {
	return len(m.attributes)
}
