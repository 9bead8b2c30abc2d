package grid

import "fmt"

// Attribute is a named dense byte grid covering every cell of a map.
// Attributes are owned by a Map2d and are only mutated by swapping the
// whole value buffer.
type Attribute struct {
	name   string
	size   Size2d
	values []uint8
}

func newAttribute(name string, size Size2d, values []uint8) Attribute {
	return Attribute{name: name, size: size, values: values}
}

// Name returns the attribute's name.
func (a *Attribute) Name() string {
	return a.name
}

// Size returns the size of the attribute's grid.
func (a *Attribute) Size() Size2d {
	return a.size
}

// Get returns the value at a linear index.
func (a *Attribute) Get(index int) uint8 {
	return a.values[index]
}

// All returns the whole value buffer. Callers must not modify it.
func (a *Attribute) All() []uint8 {
	return a.values
}

// ReplaceAll swaps the attribute's value buffer. The new buffer must
// cover the whole grid; panics otherwise, since steps compute buffers of
// exactly the right length by construction.
func (a *Attribute) ReplaceAll(values []uint8) {
	if len(values) != a.size.Area() {
		panic(fmt.Sprintf("attribute %q: buffer of %d values does not cover %s", a.name, len(values), a.size))
	}
	a.values = values
}
