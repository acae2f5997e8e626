// Package acir defines the opcode and witness data model the solve loop
// operates on: the witness map, expressions, and the five opcode kinds
// (Arithmetic, BlackBox, Directive, MemoryBlock, Bytecode) described in the
// data model.
package acir

import (
	"fmt"

	"github.com/vocdoni/acvm-go/field"
)

// Witness is a 32-bit identifier for a cell in the circuit's variable
// vector.
type Witness uint32

func (w Witness) String() string {
	return fmt.Sprintf("w%d", uint32(w))
}

// Map is a witness map M: W -> F. Insertion is idempotent under equality:
// once a witness is assigned, a later insertion must carry the same value.
type Map struct {
	values map[Witness]field.Element
}

// NewMap returns an empty witness map.
func NewMap() *Map {
	return &Map{values: make(map[Witness]field.Element)}
}

// NewMapFrom returns a witness map pre-populated with the given initial
// assignment. The caller's map is copied, not aliased.
func NewMapFrom(initial map[Witness]field.Element) *Map {
	m := NewMap()
	for w, v := range initial {
		m.values[w] = v
	}
	return m
}

// Get returns the value assigned to w, if any.
func (m *Map) Get(w Witness) (field.Element, bool) {
	v, ok := m.values[w]
	return v, ok
}

// Has reports whether w has an assignment.
func (m *Map) Has(w Witness) bool {
	_, ok := m.values[w]
	return ok
}

// ErrUnsatisfiedConstraint is returned by Insert when a witness already
// carries a different value than the one being inserted.
var ErrUnsatisfiedConstraint = fmt.Errorf("unsatisfied constraint")

// Insert assigns value to w. If w already carries a value, the insertion is
// idempotent when the values match, and fails with ErrUnsatisfiedConstraint
// otherwise — this is the write-once witness-map discipline from the data
// model's lifecycle section.
func (m *Map) Insert(w Witness, value field.Element) error {
	if existing, ok := m.values[w]; ok {
		if !field.Equal(existing, value) {
			return ErrUnsatisfiedConstraint
		}
		return nil
	}
	m.values[w] = value
	return nil
}

// Len returns the number of assigned witnesses.
func (m *Map) Len() int {
	return len(m.values)
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	c := NewMap()
	for w, v := range m.values {
		c.values[w] = v
	}
	return c
}

// Range calls f for every assigned witness. Iteration order is unspecified.
func (m *Map) Range(f func(Witness, field.Element)) {
	for w, v := range m.values {
		f(w, v)
	}
}
